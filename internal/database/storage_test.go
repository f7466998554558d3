package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinghoyk/kaloribot/pkg/models"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestGetUserMissing(t *testing.T) {
	db := newTestDB(t)

	user, err := db.GetUser(context.Background(), "нет-такого")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestSaveUserRoundtrip(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	u := models.New("42")
	u.SetName("Анна")
	u.SetGender(models.GenderFemale)
	u.SetAge(30)
	u.SetHeight(165.5)
	u.SetWeight(60)
	u.SetActivity(1.375)
	u.Confirm()
	u.SetGoal(models.GoalLoss, 1500)
	u.EditingField = models.FieldWeight
	u.PendingFoodName = "киноа"
	u.PendingFoodCalories = 120
	u.PendingFoodID = 7
	u.LastSearchResults = []models.FoodItem{
		{ID: 1, Name: "яблоко", CaloriesPer100g: 52},
		{ID: 2, Name: "банан", CaloriesPer100g: 89},
	}
	u.RemindersEnabled = true
	u.ReminderTime = "09:00"

	require.NoError(t, db.SaveUser(ctx, u))

	got, err := db.GetUser(ctx, "42")
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "Анна", got.Name)
	assert.Equal(t, models.GenderFemale, got.Gender)
	assert.Equal(t, 30, got.Age)
	assert.Equal(t, 165.5, got.Height)
	assert.Equal(t, 60.0, got.Weight)
	assert.Equal(t, 1.375, got.Activity)
	assert.Equal(t, models.StepDone, got.Step)
	assert.Equal(t, models.GoalLoss, got.Goal)
	assert.Equal(t, 1500, got.DailyCalories)
	assert.Equal(t, models.FieldWeight, got.EditingField)
	assert.Equal(t, "киноа", got.PendingFoodName)
	assert.Equal(t, 120, got.PendingFoodCalories)
	assert.Equal(t, int64(7), got.PendingFoodID)
	assert.Equal(t, u.LastSearchResults, got.LastSearchResults)
	assert.True(t, got.RemindersEnabled)
	assert.Equal(t, "09:00", got.ReminderTime)
}

func TestSaveUserUpdates(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	u := models.New("42")
	require.NoError(t, db.SaveUser(ctx, u))

	u.SetName("Анна")
	require.NoError(t, db.SaveUser(ctx, u))

	got, err := db.GetUser(ctx, "42")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Анна", got.Name)
	assert.Equal(t, models.StepGender, got.Step)
}

func TestSeededFoods(t *testing.T) {
	db := newTestDB(t)

	item, err := db.GetFoodByName(context.Background(), "яблоко")
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, 52, item.CaloriesPer100g)
}

func TestSearchFoodsRanking(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.AddFood(ctx, "тест", 100))
	require.NoError(t, db.AddFood(ctx, "тестовый продукт", 200))
	require.NoError(t, db.AddFood(ctx, "протестированный", 300))

	results, err := db.SearchFoods(ctx, "Тест")
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Точное совпадение, потом по началу названия, потом остальные
	assert.Equal(t, "тест", results[0].Name)
	assert.Equal(t, "тестовый продукт", results[1].Name)
	assert.Equal(t, "протестированный", results[2].Name)
}

func TestSearchFoodsLimit(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		name := "груша сорт " + string(rune('а'+i))
		require.NoError(t, db.AddFood(ctx, name, 50+i))
	}

	results, err := db.SearchFoods(ctx, "груша")
	require.NoError(t, err)
	assert.Len(t, results, 10)
}

func TestAddFoodIgnoresDuplicates(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.AddFood(ctx, "Киноа", 120))
	require.NoError(t, db.AddFood(ctx, "киноа", 999))

	item, err := db.GetFoodByName(ctx, "киноа")
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, 120, item.CaloriesPer100g)
}

func TestFoodEntries(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.AddFoodEntry(ctx, "42", "яблоко (100г)", 52))
	require.NoError(t, db.AddFoodEntry(ctx, "42", "банан (200г)", 178))
	require.NoError(t, db.AddFoodEntry(ctx, "99", "рис (100г)", 130))

	entries, err := db.GetTodayEntries(ctx, "42")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	total := 0
	for _, e := range entries {
		total += e.Calories
	}
	assert.Equal(t, 230, total)

	require.NoError(t, db.ClearFoodEntries(ctx, "42"))

	entries, err = db.GetTodayEntries(ctx, "42")
	require.NoError(t, err)
	assert.Empty(t, entries)

	// Чужой дневник не затронут
	entries, err = db.GetTodayEntries(ctx, "99")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFavorites(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	apple, err := db.GetFoodByName(ctx, "яблоко")
	require.NoError(t, err)
	require.NotNil(t, apple)
	banana, err := db.GetFoodByName(ctx, "банан")
	require.NoError(t, err)
	require.NotNil(t, banana)

	fav, err := db.IsFavorite(ctx, "42", apple.ID)
	require.NoError(t, err)
	assert.False(t, fav)

	require.NoError(t, db.AddFavorite(ctx, "42", apple.ID))
	require.NoError(t, db.AddFavorite(ctx, "42", banana.ID))
	// Повторное добавление не ошибка
	require.NoError(t, db.AddFavorite(ctx, "42", apple.ID))

	fav, err = db.IsFavorite(ctx, "42", apple.ID)
	require.NoError(t, err)
	assert.True(t, fav)

	items, err := db.GetFavorites(ctx, "42")
	require.NoError(t, err)
	require.Len(t, items, 2)
	// По алфавиту
	assert.Equal(t, "банан", items[0].Name)
	assert.Equal(t, "яблоко", items[1].Name)

	items, err = db.GetFavorites(ctx, "99")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestReminderSettings(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	// Для незарегистрированного пользователя — значения по умолчанию
	enabled, remindAt, err := db.GetReminderSettings(ctx, "42")
	require.NoError(t, err)
	assert.False(t, enabled)
	assert.Equal(t, models.DefaultReminderTime, remindAt)

	require.NoError(t, db.SaveUser(ctx, models.New("42")))
	require.NoError(t, db.SetReminderSettings(ctx, "42", true, "18:00"))

	enabled, remindAt, err = db.GetReminderSettings(ctx, "42")
	require.NoError(t, err)
	assert.True(t, enabled)
	assert.Equal(t, "18:00", remindAt)
}

func TestGetFoodByID(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	apple, err := db.GetFoodByName(ctx, "яблоко")
	require.NoError(t, err)
	require.NotNil(t, apple)

	item, err := db.GetFoodByID(ctx, apple.ID)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "яблоко", item.Name)

	item, err = db.GetFoodByID(ctx, 1<<40)
	require.NoError(t, err)
	assert.Nil(t, item)
}
