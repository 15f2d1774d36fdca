package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeightConversions(t *testing.T) {
	assert.InDelta(t, 45.3592, LbsToKg(100), 1e-9)
	assert.InDelta(t, 220.462, KgToLbs(100), 1e-9)
	assert.InDelta(t, 70, LbsToKg(KgToLbs(70)), 0.001)
}

func TestFeetToCm(t *testing.T) {
	assert.InDelta(t, 177.8, FeetToCm(5, 10), 1e-9)
	assert.InDelta(t, 152.4, FeetToCm(5, 0), 1e-9)
}

func TestCmToFeet_RoundTrip(t *testing.T) {
	assert.Equal(t, HeightImperial{Feet: 5, Inches: 10}, CmToFeet(FeetToCm(5, 10)))

	for cm := 100.0; cm <= 250; cm += 0.5 {
		h := CmToFeet(cm)
		back := FeetToCm(float64(h.Feet), float64(h.Inches))
		assert.InDelta(t, cm, back, 2.54, "cm %v", cm)
	}
}

func TestCmToFeet_DoesNotCarryInches(t *testing.T) {
	// 182 cm = 71.65 in => 5 ft + 11.65 in, que redondea a 12
	assert.Equal(t, HeightImperial{Feet: 5, Inches: 12}, CmToFeet(182))
}
