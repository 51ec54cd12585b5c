package models

import (
	"time"

	"gorm.io/gorm"
)

// NirvanaSession logs one mobility/training session. Exercises and
// BodyParts are comma-joined lists.
type NirvanaSession struct {
	gorm.Model
	UserID string `gorm:"index;not null" json:"user_id"`

	SessionDate     time.Time `gorm:"index" json:"session_date"`
	SessionType     string    `json:"session_type"`
	DurationMinutes float64   `json:"duration_minutes"`
	Difficulty      string    `gorm:"size:16" json:"difficulty"` // beginner | intermediate | advanced
	QualityRating   int       `json:"quality_rating"`            // 1-5
	Exercises       string    `gorm:"type:text" json:"exercises"`
	BodyParts       string    `gorm:"type:text" json:"body_parts"`
	Notes           string    `json:"notes,omitempty"`
}
