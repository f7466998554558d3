package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registeredUser() *User {
	u := New("1")
	u.SetName("Анна")
	u.SetGender(GenderFemale)
	u.SetAge(30)
	u.SetHeight(165)
	u.SetWeight(60)
	u.SetActivity(1.2)
	u.Confirm()
	return u
}

func TestRegistrationSteps(t *testing.T) {
	u := New("1")
	assert.Equal(t, StepName, u.Step)

	u.SetName("  Анна  ")
	assert.Equal(t, "Анна", u.Name)
	assert.Equal(t, StepGender, u.Step)

	u.SetGender(GenderFemale)
	assert.Equal(t, StepAge, u.Step)

	u.SetAge(30)
	assert.Equal(t, StepHeight, u.Step)

	u.SetHeight(165)
	assert.Equal(t, StepWeight, u.Step)

	u.SetWeight(60)
	assert.Equal(t, StepActivity, u.Step)

	u.SetActivity(1.2)
	assert.Equal(t, StepConfirmation, u.Step)

	u.Confirm()
	assert.Equal(t, StepDone, u.Step)
	assert.True(t, u.ProfileComplete())
}

func TestResetKeepsReminders(t *testing.T) {
	u := registeredUser()
	u.SetGoal(GoalLoss, 1500)
	u.RemindersEnabled = true
	u.ReminderTime = "09:00"
	u.StagePendingName("киноа")

	u.Reset()

	assert.Equal(t, StepName, u.Step)
	assert.Empty(t, u.Name)
	assert.Empty(t, u.Gender)
	assert.Zero(t, u.Age)
	assert.Empty(t, u.Goal)
	assert.Zero(t, u.DailyCalories)
	assert.False(t, u.PendingActive())
	assert.Nil(t, u.LastSearchResults)

	assert.True(t, u.RemindersEnabled)
	assert.Equal(t, "09:00", u.ReminderTime)
}

func TestStartOverKeepsName(t *testing.T) {
	u := registeredUser()
	u.SetGoal(GoalMaintain, 2000)

	u.StartOver()

	assert.Equal(t, "Анна", u.Name)
	assert.Equal(t, StepGender, u.Step)
	assert.Empty(t, u.Gender)
	assert.Zero(t, u.DailyCalories)
}

func TestStartEditingDoesNotChangeStep(t *testing.T) {
	u := registeredUser()
	u.StagePendingName("киноа")

	u.StartEditing(FieldWeight)

	assert.Equal(t, StepDone, u.Step)
	assert.Equal(t, FieldWeight, u.EditingField)
	// Редактирование отменяет незавершённый ввод продукта
	assert.False(t, u.PendingActive())

	u.FinishEditing()
	assert.Empty(t, u.EditingField)
}

func TestStagePending(t *testing.T) {
	u := registeredUser()
	u.LastSearchResults = []FoodItem{{ID: 2, Name: "банан", CaloriesPer100g: 89}}

	u.StagePending(u.LastSearchResults[0])

	require.True(t, u.PendingActive())
	assert.Equal(t, "банан", u.PendingFoodName)
	assert.Equal(t, 89, u.PendingFoodCalories)
	assert.Equal(t, int64(2), u.PendingFoodID)
	assert.Nil(t, u.LastSearchResults)

	u.ClearPending()
	assert.False(t, u.PendingActive())
	assert.Zero(t, u.PendingFoodID)
}

func TestStagePendingName(t *testing.T) {
	u := registeredUser()

	u.StagePendingName("киноа")

	require.True(t, u.PendingActive())
	assert.Equal(t, "киноа", u.PendingFoodName)
	assert.Zero(t, u.PendingFoodCalories)
	assert.Zero(t, u.PendingFoodID)
}

func TestValidators(t *testing.T) {
	assert.True(t, ValidGender(GenderMale))
	assert.True(t, ValidGender(GenderFemale))
	assert.False(t, ValidGender("other"))

	assert.True(t, ValidGoal(GoalMaintain))
	assert.False(t, ValidGoal(""))

	for _, level := range ActivityLevels {
		assert.True(t, ValidActivity(level))
	}
	assert.False(t, ValidActivity(1.0))

	assert.True(t, ValidEditField(FieldHeight))
	assert.False(t, ValidEditField("goal"))
}
