package models

import (
	"strings"
	"time"
)

// Шаги регистрации
const (
	StepName         = "name"
	StepGender       = "gender"
	StepAge          = "age"
	StepHeight       = "height"
	StepWeight       = "weight"
	StepActivity     = "activity"
	StepConfirmation = "confirmation"
	StepDone         = "done"
)

// Пол
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// Цели
const (
	GoalMaintain = "maintain"
	GoalLoss     = "loss"
	GoalGain     = "gain"
)

// Поля профиля, доступные для точечного редактирования
const (
	FieldName     = "name"
	FieldGender   = "gender"
	FieldAge      = "age"
	FieldHeight   = "height"
	FieldWeight   = "weight"
	FieldActivity = "activity"
)

// DefaultReminderTime — время напоминаний по умолчанию
const DefaultReminderTime = "20:00"

// ActivityLevels — пять фиксированных коэффициентов активности
var ActivityLevels = []float64{1.2, 1.375, 1.55, 1.725, 1.9}

// User представляет пользователя бота: данные профиля, текущий шаг
// диалога и служебные поля незавершённых подпотоков
type User struct {
	UserID        string
	Name          string
	Gender        string // "male" / "female", пусто пока не выбран
	Age           int
	Height        float64 // см
	Weight        float64 // кг
	Activity      float64 // один из ActivityLevels
	Step          string
	Goal          string // "maintain" / "loss" / "gain"
	DailyCalories int

	// Служебные поля: активно не больше одного подпотока за раз —
	// либо обычная регистрация по Step, либо редактирование одного
	// поля, либо незавершённый ввод продукта
	EditingField        string
	PendingFoodName     string
	PendingFoodCalories int // ккал на 100г
	PendingFoodID       int64
	LastSearchResults   []FoodItem

	RemindersEnabled bool
	ReminderTime     string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FoodEntry — одна запись в дневнике питания
type FoodEntry struct {
	ID        int64
	UserID    string
	FoodName  string
	Calories  int
	EntryDate time.Time
	CreatedAt time.Time
}

// FoodItem — продукт из общей базы продуктов
type FoodItem struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	CaloriesPer100g int    `json:"calories_per_100g"`
	Category        string `json:"category,omitempty"`
}

// New создаёт пользователя в начальном состоянии регистрации
func New(userID string) *User {
	return &User{
		UserID:       userID,
		Step:         StepName,
		ReminderTime: DefaultReminderTime,
	}
}

// SetName сохраняет имя и переводит на шаг выбора пола
func (u *User) SetName(name string) {
	u.Name = strings.TrimSpace(name)
	u.Step = StepGender
}

// SetGender сохраняет пол и переводит на шаг возраста
func (u *User) SetGender(gender string) {
	u.Gender = gender
	u.Step = StepAge
}

// SetAge сохраняет возраст и переводит на шаг роста
func (u *User) SetAge(age int) {
	u.Age = age
	u.Step = StepHeight
}

// SetHeight сохраняет рост и переводит на шаг веса
func (u *User) SetHeight(height float64) {
	u.Height = height
	u.Step = StepWeight
}

// SetWeight сохраняет вес и переводит на шаг активности
func (u *User) SetWeight(weight float64) {
	u.Weight = weight
	u.Step = StepActivity
}

// SetActivity сохраняет активность и переводит на шаг подтверждения
func (u *User) SetActivity(activity float64) {
	u.Activity = activity
	u.Step = StepConfirmation
}

// Confirm завершает регистрацию
func (u *User) Confirm() {
	u.Step = StepDone
}

// SetGoal сохраняет цель и суточную норму калорий
func (u *User) SetGoal(goal string, dailyCalories int) {
	u.Goal = goal
	u.DailyCalories = dailyCalories
}

// Reset возвращает пользователя к начальному состоянию регистрации.
// Настройки напоминаний сохраняются
func (u *User) Reset() {
	u.Name = ""
	u.Gender = ""
	u.Age = 0
	u.Height = 0
	u.Weight = 0
	u.Activity = 0
	u.Step = StepName
	u.Goal = ""
	u.DailyCalories = 0
	u.FinishEditing()
	u.ClearPending()
	u.LastSearchResults = nil
}

// StartOver очищает данные профиля и начинает заполнение заново
// с выбора пола. Имя сохраняется
func (u *User) StartOver() {
	u.Gender = ""
	u.Age = 0
	u.Height = 0
	u.Weight = 0
	u.Activity = 0
	u.Step = StepGender
	u.Goal = ""
	u.DailyCalories = 0
	u.FinishEditing()
	u.ClearPending()
}

// StartEditing включает режим редактирования одного поля.
// Step при этом не меняется
func (u *User) StartEditing(field string) {
	u.EditingField = field
	u.ClearPending()
}

// FinishEditing выключает режим редактирования
func (u *User) FinishEditing() {
	u.EditingField = ""
}

// StagePending начинает двухфазный ввод продукта из базы:
// название и калорийность известны, осталось узнать граммы
func (u *User) StagePending(item FoodItem) {
	u.PendingFoodName = item.Name
	u.PendingFoodCalories = item.CaloriesPer100g
	u.PendingFoodID = item.ID
	u.LastSearchResults = nil
}

// StagePendingName начинает ввод нового продукта: известно только
// название, дальше бот спросит калорийность и граммы
func (u *User) StagePendingName(name string) {
	u.PendingFoodName = name
	u.PendingFoodCalories = 0
	u.PendingFoodID = 0
	u.LastSearchResults = nil
}

// ClearPending сбрасывает незавершённый ввод продукта
func (u *User) ClearPending() {
	u.PendingFoodName = ""
	u.PendingFoodCalories = 0
	u.PendingFoodID = 0
}

// PendingActive сообщает, идёт ли сейчас двухфазный ввод продукта
func (u *User) PendingActive() bool {
	return u.PendingFoodName != ""
}

// ProfileComplete сообщает, заполнены ли все пять полей профиля
func (u *User) ProfileComplete() bool {
	return u.Gender != "" && u.Age > 0 && u.Height > 0 && u.Weight > 0 && u.Activity > 0
}

// ValidGender проверяет значение пола из callback
func ValidGender(gender string) bool {
	return gender == GenderMale || gender == GenderFemale
}

// ValidGoal проверяет значение цели из callback
func ValidGoal(goal string) bool {
	return goal == GoalMaintain || goal == GoalLoss || goal == GoalGain
}

// ValidActivity проверяет, что коэффициент — один из пяти фиксированных
func ValidActivity(activity float64) bool {
	for _, level := range ActivityLevels {
		if activity == level {
			return true
		}
	}
	return false
}

// ValidEditField проверяет имя поля из callback редактирования
func ValidEditField(field string) bool {
	switch field {
	case FieldName, FieldGender, FieldAge, FieldHeight, FieldWeight, FieldActivity:
		return true
	}
	return false
}
