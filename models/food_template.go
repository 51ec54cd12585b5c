package models

import (
	"time"

	"gorm.io/gorm"
)

// FoodTemplate is a reusable named food preset. UsageCount and LastUsed
// drive the ranking of template lists.
type FoodTemplate struct {
	gorm.Model
	UserID string `gorm:"index;not null" json:"user_id"`

	Name     string  `gorm:"not null" json:"name"`
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatsG    float64 `json:"fats_g"`

	DefaultAmount float64 `json:"default_amount"`
	DefaultUnit   string  `gorm:"size:32" json:"default_unit"`
	Category      string  `gorm:"size:16" json:"category"` // meal | snack | drink

	IsFavorite bool       `json:"is_favorite"`
	UsageCount int        `json:"usage_count"`
	LastUsed   *time.Time `json:"last_used,omitempty"`
}
