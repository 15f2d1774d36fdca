package onboarding

import (
	"fmt"
	"math"
	"strings"

	"nutrisnap/internal/domain/nutrition"
)

const TotalSteps = 5

const (
	StepWelcome  = 1
	StepBasics   = 2
	StepActivity = 3
	StepGoal     = 4
	StepSummary  = 5
)

// StepError es lo que el cliente muestra como alerta (Title + Message).
type StepError struct {
	Step    int    `json:"step"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d: %s", e.Step, e.Message)
}

func (e *StepError) Unwrap() error { return ErrInvalidInput }

// ValidateStep valida lo que pide cada paso. El resumen (5) revalida 2..4.
func ValidateStep(step int, f Form) error {
	switch step {
	case StepWelcome:
		return nil
	case StepBasics:
		return validateBasics(f)
	case StepActivity:
		if _, err := nutrition.ParseActivityLevel(f.ActivityLevel); err != nil {
			return &StepError{Step: step, Title: "Missing Info", Message: "Please select your activity level"}
		}
		return nil
	case StepGoal:
		return validateGoal(f)
	case StepSummary:
		for s := StepBasics; s < StepSummary; s++ {
			if err := ValidateStep(s, f); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("%w: %d", ErrUnknownStep, step)
}

func validateBasics(f Form) error {
	unit, err := ParseUnit(f.Unit)
	if err != nil {
		return &StepError{Step: StepBasics, Title: "Invalid Unit", Message: "Please choose metric or imperial units"}
	}

	m := measure(unit, f)
	if !m.ageOK || !nutrition.ValidateAge(m.age) {
		return &StepError{Step: StepBasics, Title: "Invalid Age", Message: "Please enter a valid age between 13 and 120"}
	}
	if !nutrition.ValidateHeight(m.heightCm) {
		return &StepError{Step: StepBasics, Title: "Invalid Height", Message: "Please enter a valid height"}
	}
	if !nutrition.ValidateWeight(m.weightKg) {
		return &StepError{Step: StepBasics, Title: "Invalid Weight", Message: "Please enter a valid weight"}
	}
	if _, err := nutrition.ParseSex(f.Sex); err != nil {
		return &StepError{Step: StepBasics, Title: "Missing Info", Message: "Please select your biological sex"}
	}
	return nil
}

func validateGoal(f Form) error {
	goal, err := nutrition.ParseGoal(f.Goal)
	if err != nil {
		return &StepError{Step: StepGoal, Title: "Missing Info", Message: "Please select your goal"}
	}

	target := strings.TrimSpace(f.TargetWeight)
	if goal != nutrition.GoalMaintain && target == "" {
		return &StepError{Step: StepGoal, Title: "Missing Info", Message: "Please enter your target weight"}
	}
	if target != "" {
		if v := parseNumber(target); math.IsNaN(v) || v <= 0 {
			return &StepError{Step: StepGoal, Title: "Invalid Weight", Message: "Please enter a valid target weight"}
		}
	}
	return nil
}
