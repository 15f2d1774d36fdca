package nutrition

import (
	"fmt"
	"strings"
)

func ActivityDescription(level ActivityLevel) string {
	switch level {
	case ActivitySedentary:
		return "Little to no exercise"
	case ActivityLight:
		return "Exercise 1-3 days/week"
	case ActivityModerate:
		return "Exercise 3-5 days/week"
	case ActivityActive:
		return "Exercise 6-7 days/week"
	case ActivityVeryActive:
		return "Physical job + daily exercise"
	}
	panic(fmt.Sprintf("nutrition: unhandled activity level %q", string(level)))
}

func GoalDescription(goal Goal) string {
	switch goal {
	case GoalLose:
		return "Lose Weight (500 cal deficit)"
	case GoalMaintain:
		return "Maintain Weight"
	case GoalGain:
		return "Gain Weight (500 cal surplus)"
	}
	panic(fmt.Sprintf("nutrition: unhandled goal %q", string(goal)))
}

// GoalLabel es la parte de la descripción antes del paréntesis ("Lose Weight").
func GoalLabel(goal Goal) string {
	d := GoalDescription(goal)
	if i := strings.Index(d, " ("); i >= 0 {
		return d[:i]
	}
	return d
}

// GoalDetail es el texto entre paréntesis ("500 cal deficit"), o "" si no hay.
func GoalDetail(goal Goal) string {
	d := GoalDescription(goal)
	open := strings.Index(d, "(")
	end := strings.LastIndex(d, ")")
	if open < 0 || end <= open {
		return ""
	}
	return d[open+1 : end]
}
