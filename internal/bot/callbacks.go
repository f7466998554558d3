package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/pinghoyk/kaloribot/pkg/calories"
	"github.com/pinghoyk/kaloribot/pkg/locales"
	"github.com/pinghoyk/kaloribot/pkg/models"
)

// handleCallback обрабатывает нажатие inline-кнопки. Данные кнопки имеют
// вид «пространство:значение»; повторное нажатие той же кнопки во время
// обработки молча игнорируется
func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	l := locales.Get()

	// Убираем «часики» на кнопке
	if _, err := b.tg.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		slog.Debug("не удалось ответить на callback", "error", err)
	}

	if cb.From == nil || cb.Message == nil {
		return
	}
	userID := strconv.FormatInt(cb.From.ID, 10)
	chatID := cb.Message.Chat.ID

	if !b.guard.Admit(userID) {
		slog.Debug("callback отклонён: слишком часто", "user_id", userID)
		return
	}
	if !b.guard.TryBeginAction(userID, cb.Data) {
		slog.Debug("callback уже в обработке", "user_id", userID, "data", cb.Data)
		return
	}
	defer b.guard.EndAction(userID, cb.Data)

	user, err := b.db.GetUser(ctx, userID)
	if err != nil {
		slog.Error("не удалось получить пользователя", "user_id", userID, "error", err)
		b.reply(chatID, l.Errors.Internal)
		return
	}
	if user == nil {
		user = models.New(userID)
		b.saveUser(ctx, user)
	}

	namespace, value, _ := strings.Cut(cb.Data, ":")

	switch namespace {
	case "start_registration":
		b.askGender(chatID)
	case "gender":
		b.handleGenderCallback(ctx, chatID, user, value)
	case "activity":
		b.handleActivityCallback(ctx, chatID, user, value)
	case "confirmation":
		b.handleConfirmationCallback(ctx, chatID, user, value)
	case "action":
		b.handleActionCallback(ctx, chatID, user, value)
	case "goal":
		b.handleGoalCallback(ctx, chatID, user, value)
	case "diary":
		b.handleDiaryCallback(ctx, chatID, user, value)
	case "edit":
		b.handleEditCallback(ctx, chatID, user, value)
	case "reminder":
		b.handleReminderCallback(ctx, chatID, user, value)
	case "food":
		b.handleFoodCallback(ctx, chatID, user, value)
	case "add_food", "add_favorite_food":
		b.handleAddFoodCallback(ctx, chatID, user, value)
	case "add_favorite":
		b.handleAddFavoriteCallback(ctx, chatID, user, value)
	case "continue":
		b.replyKeyboard(chatID, l.Diary.Continue, diaryKeyboard())
	default:
		slog.Debug("неизвестный callback", "data", cb.Data)
	}
}

func (b *Bot) handleGenderCallback(ctx context.Context, chatID int64, user *models.User, value string) {
	l := locales.Get()

	if !models.ValidGender(value) {
		slog.Debug("некорректное значение пола", "value", value)
		return
	}
	if user.EditingField == models.FieldGender {
		user.Gender = value
		b.finishFieldEdit(ctx, chatID, user)
		return
	}
	// Устаревшая кнопка вне шага выбора пола
	if user.Step != models.StepGender {
		return
	}
	user.SetGender(value)
	b.saveUser(ctx, user)
	b.reply(chatID, l.Registration.AskAge)
}

func (b *Bot) handleActivityCallback(ctx context.Context, chatID int64, user *models.User, value string) {
	l := locales.Get()

	activity, err := strconv.ParseFloat(value, 64)
	if err != nil || !models.ValidActivity(activity) {
		slog.Debug("некорректный уровень активности", "value", value)
		return
	}
	if user.EditingField == models.FieldActivity {
		user.Activity = activity
		b.finishFieldEdit(ctx, chatID, user)
		return
	}
	if user.Step != models.StepActivity {
		return
	}
	user.SetActivity(activity)
	b.saveUser(ctx, user)
	b.reply(chatID, l.Registration.ActivitySaved)
	b.showConfirmationSummary(chatID, user)
}

func (b *Bot) handleConfirmationCallback(ctx context.Context, chatID int64, user *models.User, value string) {
	l := locales.Get()

	if user.Step != models.StepConfirmation {
		return
	}
	switch value {
	case "yes":
		user.Confirm()
		b.saveUser(ctx, user)
		b.reply(chatID, l.Calories.Saved)
		b.showCalories(chatID, user)
	case "edit":
		b.replyKeyboard(chatID, l.Edit.Choose, editChoiceKeyboard())
	}
}

func (b *Bot) handleActionCallback(ctx context.Context, chatID int64, user *models.User, value string) {
	l := locales.Get()

	switch value {
	case "delete":
		b.resetUser(ctx, chatID, user)
	case "edit":
		b.replyKeyboard(chatID, l.Edit.Choose, editChoiceKeyboard())
	case "start_tracking":
		b.showGoalSelection(chatID, user)
	}
}

// showGoalSelection показывает три цели с рассчитанными нормами
func (b *Bot) showGoalSelection(chatID int64, user *models.User) {
	l := locales.Get()

	targets, ok := calories.Calculate(user)
	if !ok {
		b.reply(chatID, l.Errors.NotRegistered)
		return
	}
	b.replyKeyboard(chatID, fmt.Sprintf(l.Goal.Choose, targets.Maintain, targets.Loss, targets.Gain), goalKeyboard())
}

func (b *Bot) handleGoalCallback(ctx context.Context, chatID int64, user *models.User, value string) {
	l := locales.Get()

	if !models.ValidGoal(value) {
		slog.Debug("некорректная цель", "value", value)
		return
	}
	if user.Step != models.StepDone {
		b.reply(chatID, l.Errors.NotRegistered)
		return
	}
	targets, ok := calories.Calculate(user)
	if !ok {
		b.reply(chatID, l.Errors.CalcFailed)
		return
	}
	user.SetGoal(value, targets.ForGoal(value))
	b.saveUser(ctx, user)
	b.replyKeyboard(chatID, fmt.Sprintf(l.Goal.Saved, goalName(value), user.DailyCalories), diaryKeyboard())
}

func goalName(goal string) string {
	l := locales.Get()
	switch goal {
	case models.GoalLoss:
		return l.Goal.NameLoss
	case models.GoalGain:
		return l.Goal.NameGain
	default:
		return l.Goal.NameMaintain
	}
}

func (b *Bot) handleDiaryCallback(ctx context.Context, chatID int64, user *models.User, value string) {
	l := locales.Get()

	switch value {
	case "add_food":
		b.replyKeyboard(chatID, l.Food.InputMethods, foodInputKeyboard())
	case "today_summary":
		b.showTodaySummary(ctx, chatID, user)
	case "change_goal":
		b.showGoalSelection(chatID, user)
	case "reminders":
		b.showReminders(ctx, chatID, user)
	}
}

func (b *Bot) handleEditCallback(ctx context.Context, chatID int64, user *models.User, value string) {
	l := locales.Get()

	// Редактирование доступно с экрана подтверждения и после регистрации;
	// устаревшая кнопка в других состояниях игнорируется
	if user.Step != models.StepConfirmation && user.Step != models.StepDone {
		return
	}

	if value == "all" {
		user.StartOver()
		b.saveUser(ctx, user)
		b.reply(chatID, l.Edit.Editing)
		b.askGender(chatID)
		return
	}
	if !models.ValidEditField(value) {
		slog.Debug("некорректное поле редактирования", "value", value)
		return
	}

	user.StartEditing(value)
	b.saveUser(ctx, user)

	switch value {
	case models.FieldName:
		b.reply(chatID, l.Edit.AskName)
	case models.FieldGender:
		b.replyKeyboard(chatID, l.Registration.AskGender, genderKeyboard())
	case models.FieldAge:
		b.reply(chatID, l.Edit.AskAge)
	case models.FieldHeight:
		b.reply(chatID, l.Edit.AskHeight)
	case models.FieldWeight:
		b.reply(chatID, l.Edit.AskWeight)
	case models.FieldActivity:
		b.replyKeyboard(chatID, l.Edit.AskActivity, activityKeyboard())
	}
}

// showReminders показывает текущие настройки напоминаний
func (b *Bot) showReminders(ctx context.Context, chatID int64, user *models.User) {
	l := locales.Get()

	enabled, remindAt, err := b.db.GetReminderSettings(ctx, user.UserID)
	if err != nil {
		slog.Error("не удалось прочитать настройки напоминаний", "user_id", user.UserID, "error", err)
		enabled, remindAt = user.RemindersEnabled, user.ReminderTime
	}

	status := l.Reminders.Off
	if enabled {
		status = l.Reminders.On
	}
	b.replyKeyboard(chatID, fmt.Sprintf(l.Reminders.Status, status, remindAt), reminderKeyboard())
}

func (b *Bot) handleReminderCallback(ctx context.Context, chatID int64, user *models.User, value string) {
	l := locales.Get()

	switch value {
	case "off", "disable":
		user.RemindersEnabled = false
		if err := b.db.SetReminderSettings(ctx, user.UserID, false, user.ReminderTime); err != nil {
			slog.Error("не удалось сохранить настройки напоминаний", "user_id", user.UserID, "error", err)
		}
		b.replyKeyboard(chatID, l.Reminders.SavedOff, diaryKeyboard())
		return
	case "enable":
		// Включение без времени оставляет прежнее время
	default:
		if _, err := time.Parse("15:04", value); err != nil {
			slog.Debug("некорректное время напоминания", "value", value)
			return
		}
		user.ReminderTime = value
	}

	user.RemindersEnabled = true
	if err := b.db.SetReminderSettings(ctx, user.UserID, true, user.ReminderTime); err != nil {
		slog.Error("не удалось сохранить настройки напоминаний", "user_id", user.UserID, "error", err)
	}
	b.replyKeyboard(chatID, fmt.Sprintf(l.Reminders.SavedOn, user.ReminderTime), diaryKeyboard())
}

func (b *Bot) handleFoodCallback(ctx context.Context, chatID int64, user *models.User, value string) {
	l := locales.Get()

	switch value {
	case "manual_input":
		b.reply(chatID, l.Food.ManualPrompt)
	case "favorites":
		items, err := b.db.GetFavorites(ctx, user.UserID)
		if err != nil {
			slog.Error("не удалось получить избранное", "user_id", user.UserID, "error", err)
			b.reply(chatID, l.Errors.Internal)
			return
		}
		if len(items) == 0 {
			b.replyKeyboard(chatID, l.Favorites.Empty, diaryKeyboard())
			return
		}
		b.replyKeyboard(chatID, l.Favorites.Header, favoritesKeyboard(items))
	}
}

// handleAddFoodCallback начинает запись выбранного из базы продукта:
// калорийность уже известна, бот спрашивает граммы
func (b *Bot) handleAddFoodCallback(ctx context.Context, chatID int64, user *models.User, value string) {
	l := locales.Get()

	// Дневник ведётся только после регистрации: устаревшая кнопка не
	// должна запускать ввод продукта посреди другого диалога
	if user.Step != models.StepDone {
		return
	}

	foodID, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		slog.Debug("некорректный id продукта", "value", value)
		return
	}
	item, err := b.db.GetFoodByID(ctx, foodID)
	if err != nil {
		slog.Error("не удалось получить продукт", "food_id", foodID, "error", err)
		b.reply(chatID, l.Errors.Internal)
		return
	}
	if item == nil {
		return
	}
	user.StagePending(*item)
	b.saveUser(ctx, user)
	b.reply(chatID, fmt.Sprintf(l.Food.AskGrams, item.Name))
}

func (b *Bot) handleAddFavoriteCallback(ctx context.Context, chatID int64, user *models.User, value string) {
	l := locales.Get()

	foodID, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		slog.Debug("некорректный id продукта", "value", value)
		return
	}
	item, err := b.db.GetFoodByID(ctx, foodID)
	if err != nil {
		slog.Error("не удалось получить продукт", "food_id", foodID, "error", err)
		b.reply(chatID, l.Errors.Internal)
		return
	}
	if item == nil {
		return
	}
	if err := b.db.AddFavorite(ctx, user.UserID, foodID); err != nil {
		slog.Error("не удалось добавить в избранное", "user_id", user.UserID, "error", err)
		b.reply(chatID, l.Errors.Internal)
		return
	}
	b.replyKeyboard(chatID, fmt.Sprintf(l.Favorites.Added, item.Name), diaryKeyboard())
}
