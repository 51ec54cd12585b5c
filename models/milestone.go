package models

import (
	"time"

	"gorm.io/gorm"
)

type ProgressMilestone struct {
	gorm.Model
	UserID string `gorm:"index;not null" json:"user_id"`

	Name        string `gorm:"not null" json:"name"`
	Category    string `gorm:"size:16" json:"category"` // strength | skill | flexibility | endurance
	Description string `gorm:"type:text" json:"description"`

	TargetDate         *time.Time `json:"target_date,omitempty"`
	CompletedDate      *time.Time `json:"completed_date,omitempty"`
	IsCompleted        bool       `json:"is_completed"`
	ProgressPercentage int        `json:"progress_percentage"`
	Notes              string     `json:"notes,omitempty"`
}
