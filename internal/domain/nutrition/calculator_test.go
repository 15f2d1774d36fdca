package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBMR_Offsets(t *testing.T) {
	base := 10*70.0 + 6.25*175.0 - 5*30.0

	assert.Equal(t, base+5, CalculateBMR(70, 175, 30, SexMale))
	assert.Equal(t, base-161, CalculateBMR(70, 175, 30, SexFemale))
	assert.Equal(t, base-78, CalculateBMR(70, 175, 30, SexOther))
}

func TestCalculateBMR_Monotonic(t *testing.T) {
	for _, sex := range Sexes() {
		prev := CalculateBMR(30, 170, 40, sex)
		for w := 31.0; w <= 300; w += 7 {
			cur := CalculateBMR(w, 170, 40, sex)
			assert.Greater(t, cur, prev, "weight %v sex %s", w, sex)
			prev = cur
		}

		prev = CalculateBMR(70, 100, 40, sex)
		for h := 105.0; h <= 250; h += 5 {
			cur := CalculateBMR(70, h, 40, sex)
			assert.Greater(t, cur, prev, "height %v sex %s", h, sex)
			prev = cur
		}

		prev = CalculateBMR(70, 170, 13, sex)
		for a := 14; a <= 120; a++ {
			cur := CalculateBMR(70, 170, a, sex)
			assert.Less(t, cur, prev, "age %d sex %s", a, sex)
			prev = cur
		}
	}
}

func TestCalculateTDEE_FormulaChain(t *testing.T) {
	// 10*70 + 6.25*175 - 5*30 + 5 = 1648.75 ; *1.2 = 1978.5 => 1979
	bmr := 10*70.0 + 6.25*175.0 - 5*30.0 + 5
	require.Equal(t, 1648.75, bmr)

	got := CalculateTDEE(70, 175, 30, SexMale, ActivitySedentary)
	assert.Equal(t, 1979, got)
	assert.Equal(t, round(bmr*1.2), got)
}

func TestCalculateTDEE_AllLevels(t *testing.T) {
	bmr := CalculateBMR(60, 165, 28, SexFemale)
	for _, lvl := range ActivityLevels() {
		assert.Equal(t, round(bmr*ActivityMultiplier(lvl)), CalculateTDEE(60, 165, 28, SexFemale, lvl), string(lvl))
	}
}

func TestActivityMultiplier_Table(t *testing.T) {
	want := map[ActivityLevel]float64{
		ActivitySedentary:  1.2,
		ActivityLight:      1.375,
		ActivityModerate:   1.55,
		ActivityActive:     1.725,
		ActivityVeryActive: 1.9,
	}
	require.Len(t, ActivityLevels(), len(want))
	for _, lvl := range ActivityLevels() {
		assert.Equal(t, want[lvl], ActivityMultiplier(lvl), string(lvl))
	}
}

func TestActivityMultiplier_PanicsOnUnknown(t *testing.T) {
	assert.Panics(t, func() { ActivityMultiplier(ActivityLevel("couch")) })
}

func TestAdjustForGoal(t *testing.T) {
	assert.Equal(t, 1500, AdjustForGoal(2000, GoalLose))
	assert.Equal(t, 2500, AdjustForGoal(2000, GoalGain))
	assert.Equal(t, 2000, AdjustForGoal(2000, GoalMaintain))
}

func TestCalculateMacros_2000(t *testing.T) {
	assert.Equal(t, MacroTargets{Protein: 150, Carbs: 200, Fat: 67}, CalculateMacros(2000))
}

func TestCalculateMacros_NonNegativeAndCloseToInput(t *testing.T) {
	for kcal := 0; kcal <= 6000; kcal += 37 {
		m := CalculateMacros(kcal)
		assert.GreaterOrEqual(t, m.Protein, 0)
		assert.GreaterOrEqual(t, m.Carbs, 0)
		assert.GreaterOrEqual(t, m.Fat, 0)

		// cada macro se redondea a lo sumo 0.5 g: 2 + 2 + 4.5 kcal
		diff := m.Calories() - kcal
		assert.LessOrEqual(t, diff, 9, "kcal %d", kcal)
		assert.GreaterOrEqual(t, diff, -9, "kcal %d", kcal)
	}
}

func TestComputePlan(t *testing.T) {
	b := Biometrics{WeightKg: 70, HeightCm: 175, Age: 30, Sex: SexMale}
	p := ComputePlan(b, ActivitySedentary, GoalLose)

	assert.Equal(t, 1648.75, p.BMR)
	assert.Equal(t, 1979, p.TDEE)
	assert.Equal(t, 1479, p.DailyCalories)
	assert.Equal(t, CalculateMacros(1479), p.Macros)
}
