package models

import (
	"time"

	"gorm.io/gorm"
)

type ExerciseEntry struct {
	gorm.Model
	UserID       string `gorm:"index;not null" json:"user_id"`
	DailyEntryID uint   `gorm:"index;not null" json:"daily_entry_id"`

	Name            string  `gorm:"not null" json:"name"`
	Category        string  `gorm:"size:20" json:"category"` // cardio | strength | sports | daily_activities
	METValue        float64 `json:"met_value"`
	DurationMinutes float64 `json:"duration_minutes"`
	CaloriesBurned  float64 `json:"calories_burned"`
	Intensity       string  `gorm:"size:10" json:"intensity"` // low | moderate | high
	Notes           string  `json:"notes,omitempty"`

	PerformedAt time.Time `json:"performed_at"`
}
