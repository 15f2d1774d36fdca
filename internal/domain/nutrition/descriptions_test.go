package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptions_CoverEveryVariant(t *testing.T) {
	for _, lvl := range ActivityLevels() {
		assert.NotEmpty(t, ActivityDescription(lvl), string(lvl))
	}
	for _, g := range Goals() {
		assert.NotEmpty(t, GoalDescription(g), string(g))
	}
}

func TestGoalLabelAndDetail(t *testing.T) {
	assert.Equal(t, "Lose Weight", GoalLabel(GoalLose))
	assert.Equal(t, "500 cal deficit", GoalDetail(GoalLose))
	assert.Equal(t, "Maintain Weight", GoalLabel(GoalMaintain))
	assert.Equal(t, "", GoalDetail(GoalMaintain))
	assert.Equal(t, "500 cal surplus", GoalDetail(GoalGain))
}

func TestParse(t *testing.T) {
	s, err := ParseSex(" Female ")
	require.NoError(t, err)
	assert.Equal(t, SexFemale, s)

	_, err = ParseSex("unknown")
	assert.ErrorIs(t, err, ErrUnknownSex)

	lvl, err := ParseActivityLevel("very_active")
	require.NoError(t, err)
	assert.Equal(t, ActivityVeryActive, lvl)
	assert.Equal(t, "Very Active", lvl.Title())

	_, err = ParseActivityLevel("")
	assert.ErrorIs(t, err, ErrUnknownActivityLevel)

	g, err := ParseGoal("GAIN")
	require.NoError(t, err)
	assert.Equal(t, GoalGain, g)

	_, err = ParseGoal("bulk")
	assert.ErrorIs(t, err, ErrUnknownGoal)
}
