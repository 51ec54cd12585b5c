package utils

import "math"

// ActivityMultipliers maps activity level strings to their TDEE
// multiplier. This is the single source of truth for valid activity
// levels — also used for input validation on profile writes.
var ActivityMultipliers = map[string]float64{
	"sedentary":         1.2,
	"lightly_active":    1.375,
	"moderately_active": 1.55,
	"very_active":       1.725,
	"extremely_active":  1.9,
}

// MacroTargetSet is the recommended daily grams per macro for a given
// calorie target.
type MacroTargetSet struct {
	ProteinG int `json:"protein_g"`
	CarbsG   int `json:"carbs_g"`
	FatsG    int `json:"fats_g"`
}

// roundHalfUp rounds to the nearest integer with halves going up,
// i.e. floor(x+0.5). All kcal rounding in this package uses this rule.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// CalculateBMR computes basal metabolic rate (kcal/day) via
// Mifflin-St Jeor: 10*weight + 6.25*height - 5*age, then +5 for male,
// -161 for female, -78 (the average of the two) for other.
func CalculateBMR(weightKg, heightCm float64, age int, gender string) int {
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	switch gender {
	case "male":
		return roundHalfUp(base + 5)
	case "female":
		return roundHalfUp(base - 161)
	default:
		return roundHalfUp(base - 78)
	}
}

// CalculateTDEE scales BMR by the activity multiplier. An unknown or
// empty activity level deliberately falls back to sedentary (1.2).
func CalculateTDEE(bmr int, activityLevel string) int {
	mult, ok := ActivityMultipliers[activityLevel]
	if !ok {
		mult = 1.2
	}
	return roundHalfUp(float64(bmr) * mult)
}

// MacroTargets splits a calorie target into gram targets using the
// fixed 30/40/30 protein/carbs/fats ratio (4, 4 and 9 kcal per gram).
func MacroTargets(calories int) MacroTargetSet {
	c := float64(calories)
	return MacroTargetSet{
		ProteinG: roundHalfUp(c * 0.30 / 4),
		CarbsG:   roundHalfUp(c * 0.40 / 4),
		FatsG:    roundHalfUp(c * 0.30 / 9),
	}
}

// CalorieBalance is consumed minus the resting burn minus exercise
// burn. Positive = surplus, negative = deficit. The caller chooses the
// resting burn source: the day's stored BMR snapshot where present,
// else the profile BMR.
func CalorieBalance(consumed, restingBurn, burnedExercise float64) float64 {
	return consumed - restingBurn - burnedExercise
}

// EstimateCaloriesBurned applies the standard MET equation:
// kcal = MET * 3.5 * weightKg / 200 * minutes.
func EstimateCaloriesBurned(met, weightKg, durationMinutes float64) float64 {
	return met * 3.5 * weightKg / 200 * durationMinutes
}

// ValidNumber reports whether f is a finite number. Inputs are checked
// at the service boundary so the formulas above stay total.
func ValidNumber(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
