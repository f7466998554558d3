package calories

import (
	"math"

	"github.com/pinghoyk/kaloribot/pkg/models"
)

// Targets — суточные нормы калорий для трёх целей
type Targets struct {
	Maintain int
	Loss     int
	Gain     int
}

// Calculate считает суточные нормы по формуле Миффлина-Сан Жеора.
// Возвращает false, если в профиле не хватает данных
func Calculate(u *models.User) (Targets, bool) {
	if u == nil || !u.ProfileComplete() {
		return Targets{}, false
	}

	bmr := 10*u.Weight + 6.25*u.Height - 5*float64(u.Age)
	if u.Gender == models.GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}

	maintain := int(math.Round(bmr * u.Activity))
	return Targets{
		Maintain: maintain,
		Loss:     int(math.Round(float64(maintain) * 0.85)),
		Gain:     int(math.Round(float64(maintain) * 1.15)),
	}, true
}

// ForGoal возвращает норму для выбранной цели
func (t Targets) ForGoal(goal string) int {
	switch goal {
	case models.GoalLoss:
		return t.Loss
	case models.GoalGain:
		return t.Gain
	default:
		return t.Maintain
	}
}

// ActivityText — человекочитаемое описание коэффициента активности
func ActivityText(activity float64) string {
	switch activity {
	case 1.2:
		return "Минимальная (сидячий образ жизни)"
	case 1.375:
		return "Низкая (тренировки 1-3 раза в неделю)"
	case 1.55:
		return "Средняя (тренировки 3-5 раз в неделю)"
	case 1.725:
		return "Высокая (тренировки 6-7 раз в неделю)"
	case 1.9:
		return "Экстра-высокая (профессиональные спортсмены)"
	}
	return ""
}
