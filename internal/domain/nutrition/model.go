package nutrition

import (
	"errors"
	"strings"
)

var (
	ErrUnknownSex           = errors.New("unknown sex")
	ErrUnknownActivityLevel = errors.New("unknown activity level")
	ErrUnknownGoal          = errors.New("unknown goal")
)

// Sex define el sexo biológico usado por la fórmula de BMR.
// @Enum male, female, other
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
	SexOther  Sex = "other"
)

// ActivityLevel define el nivel de actividad física declarado.
// @Enum sedentary, light, moderate, active, very_active
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// Goal define el objetivo de peso.
// @Enum lose, maintain, gain
type Goal string

const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
)

// Biometrics agrupa los datos físicos en unidades métricas.
type Biometrics struct {
	WeightKg float64
	HeightCm float64
	Age      int
	Sex      Sex
}

// MacroTargets son gramos diarios por macronutriente.
type MacroTargets struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fat     int `json:"fat"`
}

// Calories devuelve las kcal que representan los gramos (4/4/9).
func (m MacroTargets) Calories() int {
	return m.Protein*ProteinKcalPerGram + m.Carbs*CarbsKcalPerGram + m.Fat*FatKcalPerGram
}

// HeightImperial es una altura expresada en pies + pulgadas.
type HeightImperial struct {
	Feet   int `json:"feet"`
	Inches int `json:"inches"`
}

func Sexes() []Sex {
	return []Sex{SexMale, SexFemale, SexOther}
}

func ActivityLevels() []ActivityLevel {
	return []ActivityLevel{ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive}
}

func Goals() []Goal {
	return []Goal{GoalLose, GoalMaintain, GoalGain}
}

func ParseSex(s string) (Sex, error) {
	v := Sex(strings.ToLower(strings.TrimSpace(s)))
	switch v {
	case SexMale, SexFemale, SexOther:
		return v, nil
	}
	return "", ErrUnknownSex
}

func ParseActivityLevel(s string) (ActivityLevel, error) {
	v := ActivityLevel(strings.ToLower(strings.TrimSpace(s)))
	switch v {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive:
		return v, nil
	}
	return "", ErrUnknownActivityLevel
}

func ParseGoal(s string) (Goal, error) {
	v := Goal(strings.ToLower(strings.TrimSpace(s)))
	switch v {
	case GoalLose, GoalMaintain, GoalGain:
		return v, nil
	}
	return "", ErrUnknownGoal
}

// Title formatea el nivel para UI: "very_active" => "Very Active".
func (l ActivityLevel) Title() string {
	words := strings.Split(string(l), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Title formatea el sexo para UI: "male" => "Male".
func (s Sex) Title() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}
