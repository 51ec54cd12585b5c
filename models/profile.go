package models

import "gorm.io/gorm"

// Profile holds one user's body stats plus the derived energy numbers
// (BMR, TDEE, calorie target, macro targets). Exactly one row per user.
type Profile struct {
	gorm.Model
	UserID string `gorm:"uniqueIndex;not null" json:"user_id"`
	Name   string `gorm:"not null" json:"name"`
	Email  string `json:"email,omitempty"`

	Age           int     `json:"age"`
	Gender        string  `gorm:"size:10" json:"gender"` // "male" | "female" | "other"
	HeightCm      float64 `json:"height_cm"`
	WeightKg      float64 `json:"weight_kg"`
	ActivityLevel string  `gorm:"size:20" json:"activity_level"` // sedentary … extremely_active

	// Derived. Recomputed on edit per the recalculation policy.
	BMR           int `json:"bmr"`
	TDEE          int `json:"tdee"`
	CalorieTarget int `json:"calorie_target"`
	ProteinTarget int `json:"protein_target_g"`
	CarbsTarget   int `json:"carbs_target_g"`
	FatsTarget    int `json:"fats_target_g"`

	Units string `gorm:"size:10;default:metric" json:"units"` // "metric" | "imperial"
}
