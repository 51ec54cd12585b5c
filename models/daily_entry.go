package models

import (
	"time"

	"gorm.io/gorm"
)

// DailyEntry is the aggregation root for one calendar day. Created
// lazily on first write for a date, never deleted by normal flow.
//
// CaloriesConsumed and the macro totals are denormalized sums over the
// day's FoodEntries, rewritten transactionally after every food
// mutation. Exercise burn is intentionally NOT stored here — consumers
// sum ExerciseEntries fresh on read.
type DailyEntry struct {
	gorm.Model
	UserID string    `gorm:"index;not null;uniqueIndex:idx_user_date" json:"user_id"`
	Date   time.Time `gorm:"not null;uniqueIndex:idx_user_date" json:"date"` // local midnight

	WeightKg *float64 `json:"weight_kg,omitempty"`

	CaloriesConsumed  float64 `json:"calories_consumed"`
	CaloriesBurnedBMR float64 `json:"calories_burned_bmr"` // profile BMR snapshot at creation
	ProteinG          float64 `json:"protein_consumed_g"`
	CarbsG            float64 `json:"carbs_consumed_g"`
	FatsG             float64 `json:"fats_consumed_g"`

	// Most Important Task slots, up to three per day.
	MITTask1     string `json:"mit_task_1,omitempty"`
	MITTask1Done bool   `json:"mit_task_1_completed"`
	MITTask2     string `json:"mit_task_2,omitempty"`
	MITTask2Done bool   `json:"mit_task_2_completed"`
	MITTask3     string `json:"mit_task_3,omitempty"`
	MITTask3Done bool   `json:"mit_task_3_completed"`

	DeepWorkCompleted bool   `json:"deep_work_completed"`
	Notes             string `gorm:"type:text" json:"notes,omitempty"`

	FoodEntries     []FoodEntry     `json:"food_entries,omitempty"`
	ExerciseEntries []ExerciseEntry `json:"exercise_entries,omitempty"`
}

// MITCompleted counts the completed task slots (0-3).
func (d *DailyEntry) MITCompleted() int {
	n := 0
	for _, done := range []bool{d.MITTask1Done, d.MITTask2Done, d.MITTask3Done} {
		if done {
			n++
		}
	}
	return n
}
