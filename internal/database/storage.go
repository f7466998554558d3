package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pinghoyk/kaloribot/pkg/models"
)

// GetUser возвращает пользователя по ID или nil, если его нет
func (db *DB) GetUser(ctx context.Context, userID string) (*models.User, error) {
	query := `
		SELECT user_id, name, gender, age, height, weight, activity,
		       goal, daily_calories, step, editing_field,
		       pending_food_name, pending_food_calories, pending_food_id,
		       last_search_json, reminders_enabled, reminder_time,
		       created_at, updated_at
		FROM users WHERE user_id = ?`

	row := db.conn.QueryRowContext(ctx, query, userID)

	var u models.User
	var gender, goal sql.NullString
	var age, dailyCalories sql.NullInt64
	var height, weight, activity sql.NullFloat64
	var searchJSON string
	var remindersEnabled int

	err := row.Scan(
		&u.UserID, &u.Name, &gender, &age, &height, &weight, &activity,
		&goal, &dailyCalories, &u.Step, &u.EditingField,
		&u.PendingFoodName, &u.PendingFoodCalories, &u.PendingFoodID,
		&searchJSON, &remindersEnabled, &u.ReminderTime,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать пользователя: %w", err)
	}

	u.Gender = gender.String
	u.Goal = goal.String
	u.Age = int(age.Int64)
	u.Height = height.Float64
	u.Weight = weight.Float64
	u.Activity = activity.Float64
	u.DailyCalories = int(dailyCalories.Int64)
	u.RemindersEnabled = remindersEnabled != 0

	if searchJSON != "" {
		if err := json.Unmarshal([]byte(searchJSON), &u.LastSearchResults); err != nil {
			return nil, fmt.Errorf("не удалось распарсить результаты поиска: %w", err)
		}
	}

	return &u, nil
}

// SaveUser создаёт или полностью обновляет запись пользователя
func (db *DB) SaveUser(ctx context.Context, u *models.User) error {
	var searchJSON string
	if len(u.LastSearchResults) > 0 {
		raw, err := json.Marshal(u.LastSearchResults)
		if err != nil {
			return fmt.Errorf("не удалось сериализовать результаты поиска: %w", err)
		}
		searchJSON = string(raw)
	}

	query := `
		INSERT INTO users (
			user_id, name, gender, age, height, weight, activity,
			goal, daily_calories, step, editing_field,
			pending_food_name, pending_food_calories, pending_food_id,
			last_search_json, reminders_enabled, reminder_time
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			name = excluded.name,
			gender = excluded.gender,
			age = excluded.age,
			height = excluded.height,
			weight = excluded.weight,
			activity = excluded.activity,
			goal = excluded.goal,
			daily_calories = excluded.daily_calories,
			step = excluded.step,
			editing_field = excluded.editing_field,
			pending_food_name = excluded.pending_food_name,
			pending_food_calories = excluded.pending_food_calories,
			pending_food_id = excluded.pending_food_id,
			last_search_json = excluded.last_search_json,
			reminders_enabled = excluded.reminders_enabled,
			reminder_time = excluded.reminder_time,
			updated_at = CURRENT_TIMESTAMP`

	_, err := db.conn.ExecContext(ctx, query,
		u.UserID, u.Name, nullString(u.Gender), nullInt(u.Age),
		nullFloat(u.Height), nullFloat(u.Weight), nullFloat(u.Activity),
		nullString(u.Goal), nullInt(u.DailyCalories), u.Step, u.EditingField,
		u.PendingFoodName, u.PendingFoodCalories, u.PendingFoodID,
		searchJSON, boolToInt(u.RemindersEnabled), u.ReminderTime,
	)
	if err != nil {
		return fmt.Errorf("не удалось сохранить пользователя: %w", err)
	}
	return nil
}

// AddFoodEntry добавляет запись в дневник питания
func (db *DB) AddFoodEntry(ctx context.Context, userID, foodName string, calories int) error {
	query := `INSERT INTO food_entries (user_id, food_name, calories) VALUES (?, ?, ?)`
	if _, err := db.conn.ExecContext(ctx, query, userID, foodName, calories); err != nil {
		return fmt.Errorf("не удалось добавить запись о питании: %w", err)
	}
	return nil
}

// GetTodayEntries возвращает сегодняшние записи пользователя,
// от новых к старым
func (db *DB) GetTodayEntries(ctx context.Context, userID string) ([]models.FoodEntry, error) {
	query := `
		SELECT id, user_id, food_name, calories, entry_date, created_at
		FROM food_entries
		WHERE user_id = ? AND entry_date = DATE('now')
		ORDER BY created_at DESC`

	rows, err := db.conn.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать дневник: %w", err)
	}
	defer rows.Close()

	var entries []models.FoodEntry
	for rows.Next() {
		var e models.FoodEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.FoodName, &e.Calories, &e.EntryDate, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("не удалось прочитать запись дневника: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ClearFoodEntries удаляет все записи пользователя из дневника
func (db *DB) ClearFoodEntries(ctx context.Context, userID string) error {
	if _, err := db.conn.ExecContext(ctx, `DELETE FROM food_entries WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("не удалось очистить дневник: %w", err)
	}
	return nil
}

// AddFood добавляет продукт в общую базу. Название приводится к нижнему
// регистру; повторная вставка того же названия игнорируется
func (db *DB) AddFood(ctx context.Context, name string, caloriesPer100g int) error {
	query := `INSERT OR IGNORE INTO foods (name, calories_per_100g) VALUES (?, ?)`
	if _, err := db.conn.ExecContext(ctx, query, strings.ToLower(name), caloriesPer100g); err != nil {
		return fmt.Errorf("не удалось добавить продукт: %w", err)
	}
	return nil
}

// SearchFoods ищет продукты по подстроке: сначала точное совпадение,
// потом совпадение по началу названия, потом остальные. Не больше 10
func (db *DB) SearchFoods(ctx context.Context, query string) ([]models.FoodItem, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	sqlQuery := `
		SELECT id, name, calories_per_100g, category
		FROM foods
		WHERE name LIKE ?
		ORDER BY
			CASE WHEN name = ? THEN 1
			     WHEN name LIKE ? THEN 2
			     ELSE 3 END,
			name
		LIMIT 10`

	rows, err := db.conn.QueryContext(ctx, sqlQuery, "%"+q+"%", q, q+"%")
	if err != nil {
		return nil, fmt.Errorf("не удалось выполнить поиск продуктов: %w", err)
	}
	defer rows.Close()

	return scanFoodItems(rows)
}

// GetFoodByID возвращает продукт по ID или nil, если его нет
func (db *DB) GetFoodByID(ctx context.Context, foodID int64) (*models.FoodItem, error) {
	row := db.conn.QueryRowContext(ctx,
		`SELECT id, name, calories_per_100g, category FROM foods WHERE id = ?`, foodID)

	var item models.FoodItem
	var category sql.NullString
	err := row.Scan(&item.ID, &item.Name, &item.CaloriesPer100g, &category)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать продукт: %w", err)
	}
	item.Category = category.String
	return &item, nil
}

// GetFoodByName возвращает продукт по точному названию (без учёта
// регистра) или nil, если его нет
func (db *DB) GetFoodByName(ctx context.Context, name string) (*models.FoodItem, error) {
	row := db.conn.QueryRowContext(ctx,
		`SELECT id, name, calories_per_100g, category FROM foods WHERE name = ?`,
		strings.ToLower(strings.TrimSpace(name)))

	var item models.FoodItem
	var category sql.NullString
	err := row.Scan(&item.ID, &item.Name, &item.CaloriesPer100g, &category)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать продукт: %w", err)
	}
	item.Category = category.String
	return &item, nil
}

// AddFavorite добавляет продукт в избранное пользователя
func (db *DB) AddFavorite(ctx context.Context, userID string, foodID int64) error {
	query := `INSERT OR REPLACE INTO user_favorites (user_id, food_id) VALUES (?, ?)`
	if _, err := db.conn.ExecContext(ctx, query, userID, foodID); err != nil {
		return fmt.Errorf("не удалось добавить в избранное: %w", err)
	}
	return nil
}

// IsFavorite сообщает, есть ли продукт в избранном пользователя
func (db *DB) IsFavorite(ctx context.Context, userID string, foodID int64) (bool, error) {
	row := db.conn.QueryRowContext(ctx,
		`SELECT 1 FROM user_favorites WHERE user_id = ? AND food_id = ?`, userID, foodID)

	var one int
	err := row.Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("не удалось проверить избранное: %w", err)
	}
	return true, nil
}

// GetFavorites возвращает избранные продукты пользователя по алфавиту
func (db *DB) GetFavorites(ctx context.Context, userID string) ([]models.FoodItem, error) {
	query := `
		SELECT f.id, f.name, f.calories_per_100g, f.category
		FROM foods f
		JOIN user_favorites uf ON f.id = uf.food_id
		WHERE uf.user_id = ?
		ORDER BY f.name`

	rows, err := db.conn.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать избранное: %w", err)
	}
	defer rows.Close()

	return scanFoodItems(rows)
}

// SetReminderSettings сохраняет настройки напоминаний
func (db *DB) SetReminderSettings(ctx context.Context, userID string, enabled bool, reminderTime string) error {
	query := `
		UPDATE users
		SET reminders_enabled = ?, reminder_time = ?, updated_at = CURRENT_TIMESTAMP
		WHERE user_id = ?`
	if _, err := db.conn.ExecContext(ctx, query, boolToInt(enabled), reminderTime, userID); err != nil {
		return fmt.Errorf("не удалось сохранить настройки напоминаний: %w", err)
	}
	return nil
}

// GetReminderSettings возвращает настройки напоминаний пользователя
func (db *DB) GetReminderSettings(ctx context.Context, userID string) (bool, string, error) {
	row := db.conn.QueryRowContext(ctx,
		`SELECT reminders_enabled, reminder_time FROM users WHERE user_id = ?`, userID)

	var enabled int
	var reminderTime string
	err := row.Scan(&enabled, &reminderTime)
	if err == sql.ErrNoRows {
		return false, models.DefaultReminderTime, nil
	}
	if err != nil {
		return false, "", fmt.Errorf("не удалось прочитать настройки напоминаний: %w", err)
	}
	return enabled != 0, reminderTime, nil
}

func scanFoodItems(rows *sql.Rows) ([]models.FoodItem, error) {
	var items []models.FoodItem
	for rows.Next() {
		var item models.FoodItem
		var category sql.NullString
		if err := rows.Scan(&item.ID, &item.Name, &item.CaloriesPer100g, &category); err != nil {
			return nil, fmt.Errorf("не удалось прочитать продукт: %w", err)
		}
		item.Category = category.String
		items = append(items, item)
	}
	return items, rows.Err()
}

func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func nullInt(n int) interface{} {
	if n == 0 {
		return nil
	}
	return n
}

func nullFloat(f float64) interface{} {
	if f == 0 {
		return nil
	}
	return f
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
