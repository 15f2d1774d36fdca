package accounts

import (
	"strings"
	"time"

	"nutrisnap/internal/domain/nutrition"
)

// User es la fila de la tabla `users`: datos del onboarding y metas diarias.
// Las columnas opcionales son punteros (nil = no cargado todavía).
type User struct {
	ID    string
	Email string

	Age    *int
	Height *float64 // cm
	Weight *float64 // kg

	Sex           *nutrition.Sex
	ActivityLevel *nutrition.ActivityLevel
	Goal          *nutrition.Goal
	TargetWeight  *float64 // kg

	DailyCalorieTarget *int
	DailyProteinTarget *int
	DailyCarbsTarget   *int
	DailyFatTarget     *int

	OnboardingCompleted bool

	CreatedAt time.Time
}

// Macros devuelve las metas de macros si están todas cargadas.
func (u User) Macros() (nutrition.MacroTargets, bool) {
	if u.DailyProteinTarget == nil || u.DailyCarbsTarget == nil || u.DailyFatTarget == nil {
		return nutrition.MacroTargets{}, false
	}
	return nutrition.MacroTargets{
		Protein: *u.DailyProteinTarget,
		Carbs:   *u.DailyCarbsTarget,
		Fat:     *u.DailyFatTarget,
	}, true
}

// Profile es la fila de la tabla `profiles` (datos de la cuenta social).
type Profile struct {
	ID        string
	FullName  *string
	AvatarURL *string
	UpdatedAt *time.Time
}

// FirstName devuelve la primera palabra del nombre completo, o "".
func (p Profile) FirstName() string {
	if p.FullName == nil {
		return ""
	}
	fields := strings.Fields(*p.FullName)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
