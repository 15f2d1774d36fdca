package nutrition

import (
	"fmt"
	"math"
)

const (
	// GoalCalorieDelta ~ 1 lb/semana con 3500 kcal por libra.
	GoalCalorieDelta = 500

	ProteinKcalPerGram = 4
	CarbsKcalPerGram   = 4
	FatKcalPerGram     = 9

	proteinShare = 0.3
	carbsShare   = 0.4
	fatShare     = 0.3
)

// CalculateBMR aplica Mifflin-St Jeor. No valida rangos: eso lo decide el caller.
func CalculateBMR(weightKg, heightCm float64, age int, sex Sex) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)

	switch sex {
	case SexMale:
		return base + 5
	case SexFemale:
		return base - 161
	case SexOther:
		// punto medio entre +5 y -161
		return base - 78
	}
	panic(fmt.Sprintf("nutrition: unhandled sex %q", string(sex)))
}

func ActivityMultiplier(level ActivityLevel) float64 {
	switch level {
	case ActivitySedentary:
		return 1.2
	case ActivityLight:
		return 1.375
	case ActivityModerate:
		return 1.55
	case ActivityActive:
		return 1.725
	case ActivityVeryActive:
		return 1.9
	}
	panic(fmt.Sprintf("nutrition: unhandled activity level %q", string(level)))
}

// CalculateTDEE = round(BMR * multiplicador), redondeo half away from zero.
func CalculateTDEE(weightKg, heightCm float64, age int, sex Sex, level ActivityLevel) int {
	bmr := CalculateBMR(weightKg, heightCm, age, sex)
	return round(bmr * ActivityMultiplier(level))
}

func AdjustForGoal(tdee int, goal Goal) int {
	switch goal {
	case GoalLose:
		return tdee - GoalCalorieDelta
	case GoalGain:
		return tdee + GoalCalorieDelta
	case GoalMaintain:
		return tdee
	}
	panic(fmt.Sprintf("nutrition: unhandled goal %q", string(goal)))
}

// CalculateMacros reparte 30/40/30 y convierte a gramos.
// Cada macro se redondea por separado, así que la suma puede diferir unas kcal del input.
func CalculateMacros(calories int) MacroTargets {
	kcal := float64(calories)
	return MacroTargets{
		Protein: round(kcal * proteinShare / ProteinKcalPerGram),
		Carbs:   round(kcal * carbsShare / CarbsKcalPerGram),
		Fat:     round(kcal * fatShare / FatKcalPerGram),
	}
}

// Plan es el resultado completo que muestra el último paso del onboarding.
type Plan struct {
	BMR           float64      `json:"bmr"`
	TDEE          int          `json:"tdee"`
	DailyCalories int          `json:"daily_calories"`
	Macros        MacroTargets `json:"macros"`
}

func ComputePlan(b Biometrics, level ActivityLevel, goal Goal) Plan {
	tdee := CalculateTDEE(b.WeightKg, b.HeightCm, b.Age, b.Sex, level)
	daily := AdjustForGoal(tdee, goal)
	return Plan{
		BMR:           CalculateBMR(b.WeightKg, b.HeightCm, b.Age, b.Sex),
		TDEE:          tdee,
		DailyCalories: daily,
		Macros:        CalculateMacros(daily),
	}
}

func round(v float64) int {
	return int(math.Round(v))
}
