package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pinghoyk/kaloribot/pkg/calories"
	"github.com/pinghoyk/kaloribot/pkg/locales"
	"github.com/pinghoyk/kaloribot/pkg/models"
)

// handleRegistrationText обрабатывает свободный текст во время регистрации.
// Пол и активность выбираются только кнопками, остальное вводится текстом
func (b *Bot) handleRegistrationText(ctx context.Context, chatID int64, user *models.User, text string) {
	l := locales.Get()

	switch user.Step {
	case models.StepName:
		user.SetName(text)
		b.saveUser(ctx, user)
		b.sendWelcome(chatID, user.Name)
	case models.StepGender:
		// Пол выбирается только кнопками
	case models.StepAge:
		age, ok := parseAge(text)
		if !ok {
			b.reply(chatID, l.Registration.AgeInvalid)
			return
		}
		user.SetAge(age)
		b.saveUser(ctx, user)
		b.reply(chatID, l.Registration.AgeSaved)
	case models.StepHeight:
		height, ok := parseHeight(text)
		if !ok {
			b.reply(chatID, l.Registration.HeightInvalid)
			return
		}
		user.SetHeight(height)
		b.saveUser(ctx, user)
		b.reply(chatID, l.Registration.HeightSaved)
	case models.StepWeight:
		weight, ok := parseWeight(text)
		if !ok {
			b.reply(chatID, l.Registration.WeightInvalid)
			return
		}
		user.SetWeight(weight)
		b.saveUser(ctx, user)
		b.replyKeyboard(chatID, l.Registration.WeightSaved, activityKeyboard())
	case models.StepActivity:
		b.replyKeyboard(chatID, l.Registration.UseButtons, activityKeyboard())
	case models.StepConfirmation:
		b.reply(chatID, l.Registration.UseButtons)
	}
}

// handleFieldEdit обрабатывает текст в режиме редактирования одного поля.
// Валидаторы те же, что при регистрации; шаг регистрации не меняется
func (b *Bot) handleFieldEdit(ctx context.Context, chatID int64, user *models.User, text string) {
	l := locales.Get()

	switch user.EditingField {
	case models.FieldName:
		user.Name = strings.TrimSpace(text)
	case models.FieldAge:
		age, ok := parseAge(text)
		if !ok {
			b.reply(chatID, l.Registration.AgeInvalid)
			return
		}
		user.Age = age
	case models.FieldHeight:
		height, ok := parseHeight(text)
		if !ok {
			b.reply(chatID, l.Registration.HeightInvalid)
			return
		}
		user.Height = height
	case models.FieldWeight:
		weight, ok := parseWeight(text)
		if !ok {
			b.reply(chatID, l.Registration.WeightInvalid)
			return
		}
		user.Weight = weight
	case models.FieldGender:
		b.replyKeyboard(chatID, l.Registration.AskGender, genderKeyboard())
		return
	case models.FieldActivity:
		b.replyKeyboard(chatID, l.Edit.AskActivity, activityKeyboard())
		return
	}

	b.finishFieldEdit(ctx, chatID, user)
}

// finishFieldEdit выходит из режима редактирования, пересчитывает норму
// при выбранной цели и показывает обновлённую сводку
func (b *Bot) finishFieldEdit(ctx context.Context, chatID int64, user *models.User) {
	l := locales.Get()

	user.FinishEditing()
	if user.Goal != "" {
		if targets, ok := calories.Calculate(user); ok {
			user.DailyCalories = targets.ForGoal(user.Goal)
		}
	}
	b.saveUser(ctx, user)

	b.reply(chatID, l.Edit.Saved)
	b.showProfileSummary(chatID, user)
}

// askGender показывает выбор пола
func (b *Bot) askGender(chatID int64) {
	b.replyKeyboard(chatID, locales.Get().Registration.AskGender, genderKeyboard())
}

// showConfirmationSummary показывает сводку профиля с кнопками подтверждения
func (b *Bot) showConfirmationSummary(chatID int64, user *models.User) {
	l := locales.Get()
	b.replyKeyboard(chatID, b.summaryText(user)+l.Summary.Confirm, confirmationKeyboard())
}

// showProfileSummary показывает сводку профиля: с подтверждением, если
// регистрация ещё не завершена, и с меню действий, если уже завершена
func (b *Bot) showProfileSummary(chatID int64, user *models.User) {
	if user.Step == models.StepDone {
		b.replyKeyboard(chatID, b.summaryText(user), actionsKeyboard())
		return
	}
	b.showConfirmationSummary(chatID, user)
}

func (b *Bot) summaryText(user *models.User) string {
	l := locales.Get()
	return fmt.Sprintf(l.Summary.Text,
		user.Name,
		genderText(user.Gender),
		user.Age,
		formatNumber(user.Height),
		formatNumber(user.Weight),
		calories.ActivityText(user.Activity),
	)
}

// showCalories показывает полный расчёт нормы калорий с меню действий
func (b *Bot) showCalories(chatID int64, user *models.User) {
	l := locales.Get()

	targets, ok := calories.Calculate(user)
	if !ok {
		b.reply(chatID, l.Errors.CalcFailed)
		return
	}

	text := fmt.Sprintf(l.Calories.Result,
		targets.Maintain,
		targets.Loss,
		targets.Gain,
		genderText(user.Gender),
		user.Age,
		formatNumber(user.Height),
		formatNumber(user.Weight),
		calories.ActivityText(user.Activity),
	)
	b.replyKeyboard(chatID, text, actionsKeyboard())
}

func genderText(gender string) string {
	l := locales.Get()
	if gender == models.GenderMale {
		return l.Summary.GenderMale
	}
	return l.Summary.GenderFemale
}

// formatNumber печатает число без хвостовых нулей: 175 или 82.5
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseAge(text string) (int, bool) {
	age, err := strconv.Atoi(text)
	if err != nil || age < 1 || age > 120 {
		return 0, false
	}
	return age, true
}

func parseHeight(text string) (float64, bool) {
	height, err := strconv.ParseFloat(strings.ReplaceAll(text, ",", "."), 64)
	if err != nil || height < 50 || height > 250 {
		return 0, false
	}
	return height, true
}

func parseWeight(text string) (float64, bool) {
	weight, err := strconv.ParseFloat(strings.ReplaceAll(text, ",", "."), 64)
	if err != nil || weight < 20 || weight > 500 {
		return 0, false
	}
	return weight, true
}
