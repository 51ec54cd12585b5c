package models

import (
	"time"

	"gorm.io/gorm"
)

type FoodEntry struct {
	gorm.Model
	UserID       string `gorm:"index;not null" json:"user_id"`
	DailyEntryID uint   `gorm:"index;not null" json:"daily_entry_id"`

	Name     string  `gorm:"not null" json:"name"`
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatsG    float64 `json:"fats_g"`

	Amount     float64   `json:"amount"`
	Unit       string    `gorm:"size:32" json:"unit"`
	MealType   string    `gorm:"size:16" json:"meal_type"` // breakfast | lunch | dinner | snack
	ConsumedAt time.Time `json:"consumed_at"`
}
