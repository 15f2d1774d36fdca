package onboarding

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"nutrisnap/internal/domain/nutrition"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnknownStep  = errors.New("unknown step")
	ErrUnknownUnit  = errors.New("unknown unit")
)

type Unit string

const (
	UnitMetric   Unit = "metric"
	UnitImperial Unit = "imperial"
)

// ParseUnit: vacío => metric.
func ParseUnit(s string) (Unit, error) {
	switch u := Unit(strings.ToLower(strings.TrimSpace(s))); u {
	case "":
		return UnitMetric, nil
	case UnitMetric, UnitImperial:
		return u, nil
	}
	return "", ErrUnknownUnit
}

// Form es el formulario tal como lo tipeó el usuario. En imperial la altura
// viene en HeightFeet/HeightInches y los pesos en lbs. En JSON cada campo
// puede llegar como string o como número.
type Form struct {
	Unit string `json:"unit" example:"metric"`

	Age          string `json:"age" example:"30"`
	Height       string `json:"height" example:"175"`
	HeightFeet   string `json:"height_feet"`
	HeightInches string `json:"height_inches"`
	Weight       string `json:"weight" example:"70"`
	Sex          string `json:"sex" example:"male"`

	ActivityLevel string `json:"activity_level" example:"moderate"`
	Goal          string `json:"goal" example:"lose"`
	TargetWeight  string `json:"target_weight" example:"65"`
}

// formValue acepta un string o un número JSON y guarda su texto.
type formValue string

func (v *formValue) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*v = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = formValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", b)
	}
	*v = formValue(n.String())
	return nil
}

func (f *Form) UnmarshalJSON(b []byte) error {
	var w struct {
		Unit          formValue `json:"unit"`
		Age           formValue `json:"age"`
		Height        formValue `json:"height"`
		HeightFeet    formValue `json:"height_feet"`
		HeightInches  formValue `json:"height_inches"`
		Weight        formValue `json:"weight"`
		Sex           formValue `json:"sex"`
		ActivityLevel formValue `json:"activity_level"`
		Goal          formValue `json:"goal"`
		TargetWeight  formValue `json:"target_weight"`
	}
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	*f = Form{
		Unit:          string(w.Unit),
		Age:           string(w.Age),
		Height:        string(w.Height),
		HeightFeet:    string(w.HeightFeet),
		HeightInches:  string(w.HeightInches),
		Weight:        string(w.Weight),
		Sex:           string(w.Sex),
		ActivityLevel: string(w.ActivityLevel),
		Goal:          string(w.Goal),
		TargetWeight:  string(w.TargetWeight),
	}
	return nil
}

// Input es el formulario validado y en unidades métricas.
type Input struct {
	Unit           Unit
	Biometrics     nutrition.Biometrics
	ActivityLevel  nutrition.ActivityLevel
	Goal           nutrition.Goal
	TargetWeightKg float64
}

// Normalize valida todos los pasos y convierte a métrico. Con el peso objetivo
// vacío usa el peso actual. Nunca completa con defaults datos inválidos.
func Normalize(f Form) (Input, error) {
	if err := ValidateStep(TotalSteps, f); err != nil {
		return Input{}, err
	}

	unit, _ := ParseUnit(f.Unit)
	m := measure(unit, f)

	// ya validados por ValidateStep
	sex, _ := nutrition.ParseSex(f.Sex)
	level, _ := nutrition.ParseActivityLevel(f.ActivityLevel)
	goal, _ := nutrition.ParseGoal(f.Goal)

	target := m.weightKg
	if strings.TrimSpace(f.TargetWeight) != "" {
		target = toKg(unit, parseNumber(f.TargetWeight))
	}

	return Input{
		Unit: unit,
		Biometrics: nutrition.Biometrics{
			WeightKg: m.weightKg,
			HeightCm: m.heightCm,
			Age:      m.age,
			Sex:      sex,
		},
		ActivityLevel:  level,
		Goal:           goal,
		TargetWeightKg: target,
	}, nil
}

// HeightLabel y WeightLabel repiten lo tipeado con su unidad ("175 cm", 5'9").
func HeightLabel(f Form) string {
	unit, _ := ParseUnit(f.Unit)
	if unit == UnitImperial {
		inches := strings.TrimSpace(f.HeightInches)
		if inches == "" {
			inches = "0"
		}
		return fmt.Sprintf("%s'%s\"", strings.TrimSpace(f.HeightFeet), inches)
	}
	return strings.TrimSpace(f.Height) + " cm"
}

func WeightLabel(f Form) string {
	unit, _ := ParseUnit(f.Unit)
	if unit == UnitImperial {
		return strings.TrimSpace(f.Weight) + " lbs"
	}
	return strings.TrimSpace(f.Weight) + " kg"
}

type measurements struct {
	age      int
	ageOK    bool
	heightCm float64
	weightKg float64
}

func measure(unit Unit, f Form) measurements {
	var m measurements

	if age, err := strconv.Atoi(strings.TrimSpace(f.Age)); err == nil {
		m.age, m.ageOK = age, true
	}

	if unit == UnitImperial {
		feet := parseWhole(f.HeightFeet)
		inches := 0.0
		if strings.TrimSpace(f.HeightInches) != "" {
			inches = parseWhole(f.HeightInches)
		}
		m.heightCm = nutrition.FeetToCm(feet, inches)
	} else {
		m.heightCm = parseNumber(f.Height)
	}

	m.weightKg = toKg(unit, parseNumber(f.Weight))
	return m
}

func toKg(unit Unit, v float64) float64 {
	if unit == UnitImperial {
		return nutrition.LbsToKg(v)
	}
	return v
}

// parseNumber devuelve NaN si el texto no es un número finito; NaN nunca pasa
// los validadores de rango.
func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsInf(v, 0) {
		return math.NaN()
	}
	return v
}

func parseWhole(s string) float64 {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return math.NaN()
	}
	return float64(v)
}
