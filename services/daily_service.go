// services/daily_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"healthtrack/models"
	"healthtrack/utils"

	"gorm.io/gorm"
)

type DailyEntryService struct{ db *gorm.DB }

func NewDailyEntryService(db *gorm.DB) *DailyEntryService { return &DailyEntryService{db: db} }

// DailyView is the assembled read model for one day. Exercise burn is
// summed fresh from the day's exercise entries on every read.
type DailyView struct {
	Entry          models.DailyEntry `json:"entry"`
	BurnedExercise float64           `json:"calories_burned_exercise"`
	CalorieBalance float64           `json:"calorie_balance"`
}

// GetByDate returns the day's view. A missing row is not an error: the
// caller gets a zeroed entry for the date, without one being persisted.
func (s *DailyEntryService) GetByDate(userID string, date time.Time) (*DailyView, error) {
	day := dayStart(date)

	var entry models.DailyEntry
	err := s.db.
		Preload("FoodEntries", func(db *gorm.DB) *gorm.DB { return db.Order("consumed_at ASC") }).
		Preload("ExerciseEntries", func(db *gorm.DB) *gorm.DB { return db.Order("performed_at ASC") }).
		Where("user_id = ? AND date = ?", userID, day).
		First(&entry).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		entry = models.DailyEntry{UserID: userID, Date: day}
	}

	burned := 0.0
	for _, ex := range entry.ExerciseEntries {
		burned += ex.CaloriesBurned
	}

	return &DailyView{
		Entry:          entry,
		BurnedExercise: burned,
		CalorieBalance: utils.CalorieBalance(entry.CaloriesConsumed, s.restingBurn(&entry), burned),
	}, nil
}

// restingBurn picks the day's stored BMR snapshot, falling back to the
// current profile BMR when the day has none (use stored value else
// profile BMR).
func (s *DailyEntryService) restingBurn(entry *models.DailyEntry) float64 {
	if entry.CaloriesBurnedBMR > 0 {
		return entry.CaloriesBurnedBMR
	}
	var p models.Profile
	if err := s.db.Where("user_id = ?", entry.UserID).First(&p).Error; err != nil {
		return 0
	}
	return float64(p.BMR)
}

// getOrCreate loads the (user, date) row, creating it with zeroed
// totals on first write for the date. New rows snapshot the profile
// BMR so the day's balance stays stable across later profile edits.
func getOrCreate(tx *gorm.DB, userID string, date time.Time) (*models.DailyEntry, error) {
	day := dayStart(date)

	var entry models.DailyEntry
	err := tx.Where("user_id = ? AND date = ?", userID, day).First(&entry).Error
	if err == nil {
		return &entry, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	entry = models.DailyEntry{UserID: userID, Date: day}
	var p models.Profile
	if err := tx.Where("user_id = ?", userID).First(&p).Error; err == nil {
		entry.CaloriesBurnedBMR = float64(p.BMR)
	}
	if err := tx.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// LogWeight records the day's weigh-in.
func (s *DailyEntryService) LogWeight(userID string, date time.Time, weightKg float64) (*models.DailyEntry, error) {
	if !utils.ValidNumber(weightKg) || weightKg <= 0 {
		return nil, fmt.Errorf("%w: weight must be a positive number", ErrInvalidInput)
	}

	entry, err := getOrCreate(s.db, userID, date)
	if err != nil {
		return nil, err
	}
	entry.WeightKg = &weightKg
	if err := s.db.Save(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// SetMITTask sets the text of one of the three task slots (1-3) and
// resets its completed flag.
func (s *DailyEntryService) SetMITTask(userID string, date time.Time, slot int, task string) (*models.DailyEntry, error) {
	if slot < 1 || slot > 3 {
		return nil, fmt.Errorf("%w: MIT slot must be 1-3", ErrInvalidInput)
	}

	entry, err := getOrCreate(s.db, userID, date)
	if err != nil {
		return nil, err
	}
	switch slot {
	case 1:
		entry.MITTask1, entry.MITTask1Done = task, false
	case 2:
		entry.MITTask2, entry.MITTask2Done = task, false
	case 3:
		entry.MITTask3, entry.MITTask3Done = task, false
	}
	if err := s.db.Save(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// ToggleMITTask flips the completed flag of a task slot. Toggling an
// empty slot is rejected.
func (s *DailyEntryService) ToggleMITTask(userID string, date time.Time, slot int) (*models.DailyEntry, error) {
	if slot < 1 || slot > 3 {
		return nil, fmt.Errorf("%w: MIT slot must be 1-3", ErrInvalidInput)
	}

	entry, err := getOrCreate(s.db, userID, date)
	if err != nil {
		return nil, err
	}
	switch slot {
	case 1:
		if entry.MITTask1 == "" {
			return nil, fmt.Errorf("%w: MIT slot 1 is empty", ErrInvalidInput)
		}
		entry.MITTask1Done = !entry.MITTask1Done
	case 2:
		if entry.MITTask2 == "" {
			return nil, fmt.Errorf("%w: MIT slot 2 is empty", ErrInvalidInput)
		}
		entry.MITTask2Done = !entry.MITTask2Done
	case 3:
		if entry.MITTask3 == "" {
			return nil, fmt.Errorf("%w: MIT slot 3 is empty", ErrInvalidInput)
		}
		entry.MITTask3Done = !entry.MITTask3Done
	}
	if err := s.db.Save(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *DailyEntryService) ToggleDeepWork(userID string, date time.Time) (*models.DailyEntry, error) {
	entry, err := getOrCreate(s.db, userID, date)
	if err != nil {
		return nil, err
	}
	entry.DeepWorkCompleted = !entry.DeepWorkCompleted
	if err := s.db.Save(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *DailyEntryService) SetNotes(userID string, date time.Time, notes string) (*models.DailyEntry, error) {
	entry, err := getOrCreate(s.db, userID, date)
	if err != nil {
		return nil, err
	}
	entry.Notes = notes
	if err := s.db.Save(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}
