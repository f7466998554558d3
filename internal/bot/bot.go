package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/pinghoyk/kaloribot/internal/database"
	"github.com/pinghoyk/kaloribot/internal/guard"
	"github.com/pinghoyk/kaloribot/pkg/locales"
	"github.com/pinghoyk/kaloribot/pkg/models"
)

// sender — часть Telegram API, нужная обработчикам.
// Выделена в интерфейс, чтобы подменять отправку в тестах
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Bot представляет Telegram бота
type Bot struct {
	api   *tgbotapi.BotAPI
	tg    sender
	db    *database.DB
	guard *guard.Guard
}

// New создает нового бота
func New(token string, db *database.DB) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания бота: %w", err)
	}

	slog.Info("бот авторизован", "username", api.Self.UserName)

	return &Bot{
		api:   api,
		tg:    api,
		db:    db,
		guard: guard.New(guard.DefaultInterval),
	}, nil
}

// Start запускает обработку обновлений
func (b *Bot) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return nil
		case update := <-updates:
			go b.handleUpdate(ctx, update)
		}
	}
}

// handleUpdate обрабатывает входящее обновление.
// Паника внутри обработчиков не должна ронять процесс
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	var chatID int64
	defer func() {
		if r := recover(); r != nil {
			slog.Error("паника при обработке обновления", "panic", r)
			if chatID != 0 {
				b.reply(chatID, locales.Get().Errors.Internal)
			}
		}
	}()

	switch {
	case update.CallbackQuery != nil:
		if update.CallbackQuery.Message != nil {
			chatID = update.CallbackQuery.Message.Chat.ID
		}
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		chatID = update.Message.Chat.ID
		b.handleMessage(ctx, update.Message)
	}
}

// handleMessage обрабатывает текстовые сообщения и команды
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	l := locales.Get()
	chatID := msg.Chat.ID

	if msg.From == nil {
		b.reply(chatID, l.Errors.NoProfile)
		return
	}
	userID := strconv.FormatInt(msg.From.ID, 10)

	if !b.guard.Admit(userID) {
		slog.Debug("сообщение отклонено: слишком часто", "user_id", userID)
		return
	}

	user, err := b.db.GetUser(ctx, userID)
	if err != nil {
		slog.Error("не удалось получить пользователя", "user_id", userID, "error", err)
		b.reply(chatID, l.Errors.Internal)
		return
	}

	if msg.IsCommand() {
		b.handleCommand(ctx, chatID, userID, user, msg)
		return
	}

	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return
	}

	if user == nil {
		// Первый контакт без /start: создаём запись и спрашиваем имя
		user = models.New(userID)
		b.saveUser(ctx, user)
		b.reply(chatID, l.Welcome.AskName)
		return
	}

	// Порядок разбора строго фиксирован: режим редактирования поля,
	// затем незавершённый ввод продукта, затем дневник, затем регистрация
	switch {
	case user.EditingField != "":
		b.handleFieldEdit(ctx, chatID, user, text)
	case user.PendingActive():
		b.handlePendingInput(ctx, chatID, user, text)
	case user.Step == models.StepDone:
		b.handleFoodText(ctx, chatID, user, text)
	default:
		b.handleRegistrationText(ctx, chatID, user, text)
	}
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, chatID int64, userID string, user *models.User, msg *tgbotapi.Message) {
	l := locales.Get()

	switch msg.Command() {
	case "start":
		b.startConversation(ctx, chatID, userID, user, msg.From)
	case "calculate":
		if user == nil || user.Step != models.StepDone {
			b.reply(chatID, l.Errors.NotRegistered)
			b.askGender(chatID)
			return
		}
		b.showCalories(chatID, user)
	case "reset":
		if user == nil {
			user = models.New(userID)
		}
		b.resetUser(ctx, chatID, user)
	case "help":
		b.reply(chatID, l.Welcome.Help)
	default:
		slog.Debug("неизвестная команда", "command", msg.Command())
	}
}

// startConversation начинает регистрацию заново. Если в профиле Telegram
// есть имя, берём его и сразу показываем приветствие
func (b *Bot) startConversation(ctx context.Context, chatID int64, userID string, user *models.User, from *tgbotapi.User) {
	l := locales.Get()

	if user == nil {
		user = models.New(userID)
	} else {
		user.Reset()
	}

	displayName := from.FirstName
	if displayName == "" {
		displayName = from.UserName
	}
	if displayName != "" {
		user.SetName(displayName)
		b.saveUser(ctx, user)
		b.sendWelcome(chatID, user.Name)
		return
	}

	b.saveUser(ctx, user)
	b.reply(chatID, l.Welcome.AskName)
}

// sendWelcome показывает приветствие с кнопкой начала регистрации
func (b *Bot) sendWelcome(chatID int64, name string) {
	l := locales.Get()
	b.replyKeyboard(chatID, fmt.Sprintf(l.Welcome.Text, name), startKeyboard())
}

// resetUser сбрасывает профиль и дневник; база продуктов и избранное
// не затрагиваются
func (b *Bot) resetUser(ctx context.Context, chatID int64, user *models.User) {
	l := locales.Get()

	if err := b.db.ClearFoodEntries(ctx, user.UserID); err != nil {
		slog.Error("не удалось очистить дневник", "user_id", user.UserID, "error", err)
	}
	user.Reset()
	b.saveUser(ctx, user)
	b.guard.Forget(user.UserID)

	b.reply(chatID, l.Reset.Done)
	b.reply(chatID, l.Welcome.AskName)
}

// reply отправляет текстовое сообщение. Ошибка отправки логируется,
// но уже сделанные изменения состояния не откатываются
func (b *Bot) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.tg.Send(msg); err != nil {
		slog.Error("не удалось отправить сообщение", "chat_id", chatID, "error", err)
	}
}

// replyKeyboard отправляет сообщение с inline-клавиатурой
func (b *Bot) replyKeyboard(chatID int64, text string, keyboard tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboard
	if _, err := b.tg.Send(msg); err != nil {
		slog.Error("не удалось отправить сообщение", "chat_id", chatID, "error", err)
	}
}

func (b *Bot) saveUser(ctx context.Context, user *models.User) {
	if err := b.db.SaveUser(ctx, user); err != nil {
		slog.Error("не удалось сохранить пользователя", "user_id", user.UserID, "error", err)
	}
}
