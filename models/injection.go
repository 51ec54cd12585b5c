package models

import (
	"time"

	"gorm.io/gorm"
)

// InjectableCompound is a per-user catalog entry for a compound.
type InjectableCompound struct {
	gorm.Model
	UserID string `gorm:"index;not null" json:"user_id"`

	Name           string  `gorm:"not null" json:"name"`
	Concentration  float64 `json:"concentration"` // mg/ml
	EsterType      string  `gorm:"size:20" json:"ester_type"`
	HalfLifeDays   float64 `json:"half_life_days"`
	Category       string  `gorm:"size:16" json:"category"` // trt | hrt | peptide | other
	WeeklyTargetMg float64 `json:"weekly_target_mg"`
	Notes          string  `json:"notes,omitempty"`
}

// InjectionEntry is one administered dose of a cataloged compound.
type InjectionEntry struct {
	gorm.Model
	UserID     string `gorm:"index;not null" json:"user_id"`
	CompoundID uint   `gorm:"index;not null" json:"compound_id"`

	Compound InjectableCompound `json:"compound,omitempty"`

	DoseMg        float64   `json:"dose_mg"`
	VolumeMl      float64   `json:"volume_ml"`
	InjectionSite string    `gorm:"size:20" json:"injection_site"`
	InjectionDate time.Time `gorm:"index" json:"injection_date"`
	Notes         string    `json:"notes,omitempty"`
}
