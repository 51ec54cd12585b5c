package models

import (
	"time"

	"gorm.io/gorm"
)

// WeeklyEntry holds up to three weekly objectives plus a review. One
// row per (user, week start date), week starting Monday.
type WeeklyEntry struct {
	gorm.Model
	UserID        string    `gorm:"index;not null;uniqueIndex:idx_user_week" json:"user_id"`
	WeekStartDate time.Time `gorm:"not null;uniqueIndex:idx_user_week" json:"week_start_date"`

	Objective1     string `json:"objective_1,omitempty"`
	Objective1Done bool   `json:"objective_1_completed"`
	Objective2     string `json:"objective_2,omitempty"`
	Objective2Done bool   `json:"objective_2_completed"`
	Objective3     string `json:"objective_3,omitempty"`
	Objective3Done bool   `json:"objective_3_completed"`

	CompletionRate *float64   `json:"completion_rate,omitempty"`
	Insights       string     `gorm:"type:text" json:"insights,omitempty"`
	NextWeekFocus  string     `json:"next_week_focus,omitempty"`
	ReviewDate     *time.Time `json:"review_date,omitempty"`
}
