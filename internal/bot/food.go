package bot

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pinghoyk/kaloribot/pkg/locales"
	"github.com/pinghoyk/kaloribot/pkg/models"
)

const (
	newFoodWord   = "новый"
	newFoodPhrase = "новый продукт"
)

// handleFoodText разбирает свободный текст в режиме дневника.
// Порядок правил фиксирован: выбор номера из прошлого поиска, слово
// «новый», формат с дефисами, поиск по базе, начало ввода нового продукта
func (b *Bot) handleFoodText(ctx context.Context, chatID int64, user *models.User, text string) {
	l := locales.Get()

	// Выбор продукта номером из результатов прошлого поиска
	if n, ok := parsePositiveInt(text); ok && n <= len(user.LastSearchResults) {
		item := user.LastSearchResults[n-1]
		user.StagePending(item)
		b.saveUser(ctx, user)
		b.reply(chatID, fmt.Sprintf(l.Food.AskGrams, item.Name))
		return
	}

	// Явный запрос на ручной ввод
	lower := strings.ToLower(text)
	if lower == newFoodWord || lower == newFoodPhrase {
		user.LastSearchResults = nil
		b.saveUser(ctx, user)
		b.reply(chatID, l.Food.ManualPrompt)
		return
	}

	// Формат «продукт - калории» или «продукт - калории - граммы»
	if strings.Contains(text, "-") && b.tryDashEntry(ctx, chatID, user, text) {
		return
	}

	// Поиск по базе продуктов
	results, err := b.db.SearchFoods(ctx, text)
	if err != nil {
		slog.Error("не удалось выполнить поиск продуктов", "error", err)
		b.reply(chatID, l.Errors.Internal)
		return
	}
	if len(results) > 0 {
		user.LastSearchResults = results
		b.saveUser(ctx, user)
		b.reply(chatID, searchResultsText(text, results))
		return
	}

	// Незнакомое название — начинаем ввод нового продукта.
	// Короткий или числовой ввод без совпадений молча игнорируется
	if utf8.RuneCountInString(text) > 2 && !isNumeric(text) {
		user.StagePendingName(text)
		b.saveUser(ctx, user)
		b.reply(chatID, fmt.Sprintf(l.Food.AskCalories, text))
	}
}

// tryDashEntry разбирает ввод с дефисами. Возвращает false, если ввод не
// подошёл под формат и его нужно передать дальше по цепочке правил
func (b *Bot) tryDashEntry(ctx context.Context, chatID int64, user *models.User, text string) bool {
	parts := strings.Split(text, "-")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	switch len(parts) {
	case 2:
		// «продукт - калории»: порция считается за 100 г
		cal, ok := parsePositiveInt(parts[1])
		if parts[0] == "" || !ok {
			return false
		}
		b.logFood(ctx, chatID, user, parts[0], cal, 100, cal, 0)
		return true
	case 3:
		// «продукт - ккал на 100г - граммы»
		per100, ok1 := parsePositiveInt(parts[1])
		grams, ok2 := parsePositiveInt(parts[2])
		if parts[0] == "" || !ok1 || !ok2 {
			return false
		}
		total := int(math.Round(float64(per100) * float64(grams) / 100))
		b.logFood(ctx, chatID, user, parts[0], per100, grams, total, 0)
		return true
	}
	return false
}

// handlePendingInput продолжает двухфазный ввод продукта: сначала
// калорийность (для нового продукта), затем граммы. Нечисловой ввод
// здесь молча игнорируется
func (b *Bot) handlePendingInput(ctx context.Context, chatID int64, user *models.User, text string) {
	l := locales.Get()

	if user.PendingFoodCalories == 0 {
		cal, ok := parsePositiveInt(text)
		if !ok {
			return
		}
		user.PendingFoodCalories = cal
		b.saveUser(ctx, user)
		b.reply(chatID, fmt.Sprintf(l.Food.AskGrams, user.PendingFoodName))
		return
	}

	grams, ok := parsePositiveInt(text)
	if !ok {
		return
	}

	per100 := user.PendingFoodCalories
	total := int(math.Round(float64(per100) * float64(grams) / 100))
	b.logFood(ctx, chatID, user, user.PendingFoodName, per100, grams, total, user.PendingFoodID)
}

// logFood записывает приём пищи в дневник, пополняет базу продуктов
// (если продукт введён вручную) и предлагает добавить его в избранное.
// foodID равен нулю для продуктов не из базы
func (b *Bot) logFood(ctx context.Context, chatID int64, user *models.User, food string, per100, grams, total int, foodID int64) {
	l := locales.Get()

	label := fmt.Sprintf("%s (%dг)", food, grams)
	if err := b.db.AddFoodEntry(ctx, user.UserID, label, total); err != nil {
		slog.Error("не удалось записать приём пищи", "user_id", user.UserID, "error", err)
		b.reply(chatID, l.Errors.Internal)
		return
	}
	if foodID == 0 {
		if err := b.db.AddFood(ctx, food, per100); err != nil {
			slog.Error("не удалось пополнить базу продуктов", "food", food, "error", err)
		}
	}

	user.ClearPending()
	user.LastSearchResults = nil
	b.saveUser(ctx, user)

	b.reply(chatID, fmt.Sprintf(l.Food.Added, label, total))
	b.suggestFavorite(ctx, chatID, user, food, foodID)
}

// suggestFavorite предлагает добавить продукт в избранное, если он есть
// в базе и ещё не избран; иначе показывает меню дневника
func (b *Bot) suggestFavorite(ctx context.Context, chatID int64, user *models.User, food string, foodID int64) {
	l := locales.Get()

	if foodID == 0 {
		item, err := b.db.GetFoodByName(ctx, food)
		if err != nil {
			slog.Error("не удалось найти продукт", "food", food, "error", err)
		}
		if item == nil {
			b.replyKeyboard(chatID, l.Diary.Continue, diaryKeyboard())
			return
		}
		foodID = item.ID
		food = item.Name
	}

	fav, err := b.db.IsFavorite(ctx, user.UserID, foodID)
	if err != nil {
		slog.Error("не удалось проверить избранное", "user_id", user.UserID, "error", err)
	}
	if fav {
		b.replyKeyboard(chatID, l.Diary.Continue, diaryKeyboard())
		return
	}
	b.replyKeyboard(chatID, l.Favorites.Suggest, addToFavoritesKeyboard(food, foodID))
}

// showTodaySummary показывает сводку за сегодня с мотивационной фразой
func (b *Bot) showTodaySummary(ctx context.Context, chatID int64, user *models.User) {
	l := locales.Get()

	if user.DailyCalories == 0 {
		b.reply(chatID, l.Diary.NotTracking)
		return
	}

	entries, err := b.db.GetTodayEntries(ctx, user.UserID)
	if err != nil {
		slog.Error("не удалось прочитать дневник", "user_id", user.UserID, "error", err)
		b.reply(chatID, l.Errors.Internal)
		return
	}

	eaten := 0
	for _, e := range entries {
		eaten += e.Calories
	}

	text := fmt.Sprintf(l.Diary.Summary,
		user.DailyCalories, eaten, user.DailyCalories-eaten, motivation(eaten, user.DailyCalories))
	b.replyKeyboard(chatID, text, diaryKeyboard())
}

// motivation подбирает фразу по доле съеденного от суточной нормы
func motivation(eaten, daily int) string {
	l := locales.Get()

	percentage := float64(eaten) / float64(daily) * 100
	switch {
	case percentage < 70:
		return fmt.Sprintf(l.Diary.MotivationLow, eaten, daily, daily-eaten)
	case percentage <= 100:
		return fmt.Sprintf(l.Diary.MotivationGood, eaten, daily)
	case percentage <= 120:
		return fmt.Sprintf(l.Diary.MotivationOver, eaten, daily)
	default:
		return fmt.Sprintf(l.Diary.MotivationHigh, eaten)
	}
}

func searchResultsText(query string, results []models.FoodItem) string {
	l := locales.Get()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(l.Food.SearchHeader, query))
	for i, item := range results {
		sb.WriteString(fmt.Sprintf(l.Food.SearchItem, i+1, item.Name, item.CaloriesPer100g))
	}
	sb.WriteString(l.Food.SearchFooter)
	return sb.String()
}

func parsePositiveInt(text string) (int, bool) {
	n, err := strconv.Atoi(text)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func isNumeric(text string) bool {
	_, err := strconv.ParseFloat(strings.ReplaceAll(text, ",", "."), 64)
	return err == nil
}
