package dashboard

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"nutrisnap/internal/domain/nutrition"
	"nutrisnap/internal/domain/session"
)

const (
	DefaultDisplayName   = "Henry"
	DefaultCalorieTarget = 2000
)

// DefaultMacroTargets se usan mientras el usuario no completó el onboarding.
var DefaultMacroTargets = nutrition.MacroTargets{Protein: 150, Carbs: 250, Fat: 67}

// Hasta que exista el registro de comidas el consumo del día es fijo.
var (
	mockConsumed = 1247
	mockMacros   = nutrition.MacroTargets{Protein: 65, Carbs: 180, Fat: 45}
	mockMeals    = []Meal{
		{Name: "Grilled Chicken Breast", Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6, Time: "12:30 PM"},
		{Name: "Brown Rice", Calories: 216, Protein: 5, Carbs: 45, Fat: 1.6, Time: "12:35 PM"},
		{Name: "Oatmeal with Banana", Calories: 210, Protein: 7, Carbs: 38, Fat: 4, Time: "8:15 AM"},
	}
)

// mealNamespace hace que los ids de comidas sean estables entre requests.
var mealNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("nutrisnap/meals"))

type Service struct{}

func NewService() *Service { return &Service{} }

// Today arma el resumen del día para st; now define hora (saludo) y fecha.
func (s *Service) Today(_ context.Context, st session.State, now time.Time) Summary {
	target := DefaultCalorieTarget
	macroTargets := DefaultMacroTargets
	if st.User != nil {
		if st.User.DailyCalorieTarget != nil && *st.User.DailyCalorieTarget > 0 {
			target = *st.User.DailyCalorieTarget
		}
		if m, ok := st.User.Macros(); ok {
			macroTargets = m
		}
	}

	progress := percent(mockConsumed, target)

	out := Summary{
		Greeting:        Greeting(now),
		DisplayName:     DisplayName(st),
		DateLabel:       now.Format("Monday, January 2"),
		CalorieTarget:   target,
		Consumed:        mockConsumed,
		Remaining:       target - mockConsumed,
		ProgressPercent: int(math.Round(progress)),
		Status:          StatusFor(progress),
		Macros: []MacroProgress{
			macro("protein", mockMacros.Protein, macroTargets.Protein),
			macro("carbs", mockMacros.Carbs, macroTargets.Carbs),
			macro("fat", mockMacros.Fat, macroTargets.Fat),
		},
		Meals: make([]Meal, 0, len(mockMeals)),
	}
	for _, m := range mockMeals {
		m.ID = uuid.NewSHA1(mealNamespace, []byte(m.Name)).String()
		out.Meals = append(out.Meals, m)
	}
	return out
}

func Greeting(now time.Time) string {
	switch h := now.Hour(); {
	case h < 12:
		return "Good morning"
	case h < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

// DisplayName: primer nombre del perfil o el nombre por defecto.
func DisplayName(st session.State) string {
	if st.Profile != nil {
		if n := st.Profile.FirstName(); n != "" {
			return n
		}
	}
	return DefaultDisplayName
}

func StatusFor(progress float64) Status {
	switch {
	case progress < 80:
		return StatusOnTrack
	case progress <= 100:
		return StatusNearLimit
	default:
		return StatusOver
	}
}

func macro(name string, current, target int) MacroProgress {
	return MacroProgress{
		Name:    name,
		Current: current,
		Target:  target,
		Percent: int(math.Round(math.Min(percent(current, target), 100))),
	}
}

func percent(current, target int) float64 {
	if target <= 0 {
		return 0
	}
	return float64(current) / float64(target) * 100
}
