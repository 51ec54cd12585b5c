package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateBMR(t *testing.T) {
	// Mifflin-St Jeor: 10*70 + 6.25*175 - 5*25 = 1668.75, then the
	// gender offset.
	assert.Equal(t, 1674, CalculateBMR(70, 175, 25, "male"))
	assert.Equal(t, 1508, CalculateBMR(70, 175, 25, "female"))
	assert.Equal(t, 1591, CalculateBMR(70, 175, 25, "other"))

	// Unknown gender strings take the averaged offset too.
	assert.Equal(t, CalculateBMR(70, 175, 25, "other"), CalculateBMR(70, 175, 25, ""))
}

func TestCalculateTDEE(t *testing.T) {
	assert.Equal(t, 2688, CalculateTDEE(1734, "moderately_active"))

	// Unknown levels fall back to sedentary.
	assert.Equal(t, CalculateTDEE(1734, "sedentary"), CalculateTDEE(1734, "couch"))
	assert.Equal(t, CalculateTDEE(1734, "sedentary"), CalculateTDEE(1734, ""))
}

func TestCalculateTDEE_Multipliers(t *testing.T) {
	// tdee(bmr, level)/bmr must reproduce the documented multiplier for
	// every valid level, within the half-up rounding of the result.
	const bmr = 2000
	for level, mult := range ActivityMultipliers {
		got := CalculateTDEE(bmr, level)
		want := int(math.Floor(float64(bmr)*mult + 0.5))
		assert.Equal(t, want, got, "level %s", level)
		assert.InDelta(t, mult, float64(got)/float64(bmr), 0.0005, "level %s", level)
	}
}

func TestMacroTargets(t *testing.T) {
	m := MacroTargets(2688)
	assert.Equal(t, 202, m.ProteinG)
	assert.Equal(t, 269, m.CarbsG)
	assert.Equal(t, 90, m.FatsG)
}

func TestRoundHalfUp(t *testing.T) {
	assert.Equal(t, 2, roundHalfUp(1.5))
	assert.Equal(t, 1, roundHalfUp(1.49))
	assert.Equal(t, -1, roundHalfUp(-1.5))
	assert.Equal(t, -2, roundHalfUp(-1.51))
	assert.Equal(t, 0, roundHalfUp(0))
}

func TestCalorieBalance(t *testing.T) {
	assert.Equal(t, -500.0, CalorieBalance(2000, 1700, 800))
	assert.Equal(t, 300.0, CalorieBalance(3000, 1700, 1000))
}

func TestEstimateCaloriesBurned(t *testing.T) {
	// 8 MET, 70kg, 30min: 8*3.5*70/200*30 = 294.
	assert.InDelta(t, 294.0, EstimateCaloriesBurned(8, 70, 30), 1e-9)
	assert.Equal(t, 0.0, EstimateCaloriesBurned(0, 70, 30))
}

func TestValidNumber(t *testing.T) {
	assert.True(t, ValidNumber(0))
	assert.True(t, ValidNumber(-12.5))
	assert.False(t, ValidNumber(math.NaN()))
	assert.False(t, ValidNumber(math.Inf(1)))
	assert.False(t, ValidNumber(math.Inf(-1)))
}
