package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nutrisnap/internal/domain/onboarding"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := newRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestPlanCommand_Metric(t *testing.T) {
	out, err := runCLI(t, "plan",
		"--age", "30", "--height", "175", "--weight", "70",
		"--sex", "male", "--activity", "sedentary", "--goal", "maintain")
	require.NoError(t, err)

	var got planOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	// 1648.75 * 1.2 = 1978.5 => 1979
	assert.Equal(t, 1979, got.Plan.TDEE)
	assert.Equal(t, 1979, got.Plan.DailyCalories)
	assert.Equal(t, 70.0, got.TargetWeightKg)
	assert.Equal(t, "Maintain Weight", got.Goal)
}

func TestPlanCommand_Imperial(t *testing.T) {
	out, err := runCLI(t, "plan", "--unit", "imperial",
		"--age", "28", "--feet", "5", "--inches", "6", "--weight", "140",
		"--sex", "female", "--activity", "light", "--goal", "gain", "--target", "150")
	require.NoError(t, err)

	var got planOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.InDelta(t, 167.64, got.HeightCm, 1e-9)
	assert.Equal(t, got.Plan.TDEE+500, got.Plan.DailyCalories)
}

func TestPlanCommand_Invalid(t *testing.T) {
	_, err := runCLI(t, "plan", "--age", "5", "--height", "175", "--weight", "70",
		"--sex", "male", "--activity", "sedentary")
	require.Error(t, err)

	var se *onboarding.StepError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "Invalid Age", se.Title)
}
