package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/pinghoyk/kaloribot/pkg/locales"
	"github.com/pinghoyk/kaloribot/pkg/models"
)

func startKeyboard() tgbotapi.InlineKeyboardMarkup {
	l := locales.Get()
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(l.Welcome.StartButton, "start_registration"),
		),
	)
}

func genderKeyboard() tgbotapi.InlineKeyboardMarkup {
	l := locales.Get()
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(l.Registration.Buttons.GenderMale, "gender:male"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(l.Registration.Buttons.GenderFemale, "gender:female"),
		),
	)
}

func activityKeyboard() tgbotapi.InlineKeyboardMarkup {
	l := locales.Get()
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(l.Registration.Buttons.ActivityMinimal, "activity:1.2"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(l.Registration.Buttons.ActivityLow, "activity:1.375"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(l.Registration.Buttons.ActivityMedium, "activity:1.55"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(l.Registration.Buttons.ActivityHigh, "activity:1.725"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(l.Registration.Buttons.ActivityExtra, "activity:1.9"),
		),
	)
}

func confirmationKeyboard() tgbotapi.InlineKeyboardMarkup {
	l := locales.Get()
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(l.Registration.Buttons.ConfirmYes, "confirmation:yes"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(l.Registration.Buttons.ConfirmEdit, "confirmation:edit"),
		),
	)
}

func actionsKeyboard() tgbotapi.InlineKeyboardMarkup {
	l := locales.Get()
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(l.Summary.Buttons.Delete, "action:delete"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(l.Summary.Buttons.Edit, "action:edit"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(l.Summary.Buttons.StartTracking, "action:start_tracking"),
		),
	)
}

func goalKeyboard() tgbotapi.InlineKeyboardMarkup {
	l := locales.Get()
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(l.Goal.Buttons.Maintain, "goal:maintain"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(l.Goal.Buttons.Loss, "goal:loss"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(l.Goal.Buttons.Gain, "goal:gain"),
		),
	)
}

func diaryKeyboard() tgbotapi.InlineKeyboardMarkup {
	l := locales.Get()
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(l.Diary.Buttons.AddFood, "diary:add_food"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(l.Diary.Buttons.Summary, "diary:today_summary"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(l.Diary.Buttons.ChangeGoal, "diary:change_goal"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(l.Diary.Buttons.Reminders, "diary:reminders"),
		),
	)
}

func foodInputKeyboard() tgbotapi.InlineKeyboardMarkup {
	l := locales.Get()
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(l.Food.Buttons.ManualInput, "food:manual_input"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(l.Food.Buttons.Favorites, "food:favorites"),
		),
	)
}

// favoritesKeyboard строит кнопку на каждый избранный продукт
func favoritesKeyboard(items []models.FoodItem) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(items))
	for _, item := range items {
		label := fmt.Sprintf("%s — %d ккал/100г", item.Name, item.CaloriesPer100g)
		data := fmt.Sprintf("add_favorite_food:%d", item.ID)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, data),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func addToFavoritesKeyboard(foodName string, foodID int64) tgbotapi.InlineKeyboardMarkup {
	l := locales.Get()
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf(l.Favorites.SuggestButton, foodName),
				fmt.Sprintf("add_favorite:%d", foodID),
			),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(l.Favorites.ContinueButton, "continue:daily"),
		),
	)
}

func reminderKeyboard() tgbotapi.InlineKeyboardMarkup {
	l := locales.Get()
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(l.Reminders.Buttons.Morning, "reminder:09:00"),
			tgbotapi.NewInlineKeyboardButtonData(l.Reminders.Buttons.Noon, "reminder:12:00"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(l.Reminders.Buttons.Evening, "reminder:18:00"),
			tgbotapi.NewInlineKeyboardButtonData(l.Reminders.Buttons.Night, "reminder:20:00"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(l.Reminders.Buttons.Off, "reminder:off"),
		),
	)
}

func editChoiceKeyboard() tgbotapi.InlineKeyboardMarkup {
	l := locales.Get()
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(l.Edit.Buttons.Name, "edit:name"),
			tgbotapi.NewInlineKeyboardButtonData(l.Edit.Buttons.Gender, "edit:gender"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(l.Edit.Buttons.Age, "edit:age"),
			tgbotapi.NewInlineKeyboardButtonData(l.Edit.Buttons.Height, "edit:height"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(l.Edit.Buttons.Weight, "edit:weight"),
			tgbotapi.NewInlineKeyboardButtonData(l.Edit.Buttons.Activity, "edit:activity"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(l.Edit.Buttons.All, "edit:all"),
		),
	)
}
