// services/exercise_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"healthtrack/models"
	"healthtrack/utils"

	"gorm.io/gorm"
)

type ExerciseEntryService struct{ db *gorm.DB }

func NewExerciseEntryService(db *gorm.DB) *ExerciseEntryService {
	return &ExerciseEntryService{db: db}
}

type ExerciseEntryInput struct {
	Name            string  `json:"name" binding:"required"`
	Category        string  `json:"category"`
	METValue        float64 `json:"met_value"`
	DurationMinutes float64 `json:"duration_minutes"`
	CaloriesBurned  float64 `json:"calories_burned"`
	Intensity       string  `json:"intensity"`
	Notes           string  `json:"notes"`
}

func (in *ExerciseEntryInput) validate() error {
	for _, v := range []float64{in.METValue, in.DurationMinutes, in.CaloriesBurned} {
		if !utils.ValidNumber(v) || v < 0 {
			return fmt.Errorf("%w: exercise values must be non-negative numbers", ErrInvalidInput)
		}
	}
	switch in.Category {
	case "cardio", "strength", "sports", "daily_activities":
	default:
		return fmt.Errorf("%w: unknown exercise category %q", ErrInvalidInput, in.Category)
	}
	return nil
}

// Add records an exercise for the day. When the caller passes no
// burned calories but a MET value and the user has a weigh-in, the
// burn is estimated from the MET equation.
func (s *ExerciseEntryService) Add(userID string, date time.Time, in ExerciseEntryInput) (*models.ExerciseEntry, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var ee models.ExerciseEntry
	err := s.db.Transaction(func(tx *gorm.DB) error {
		entry, err := getOrCreate(tx, userID, date)
		if err != nil {
			return err
		}

		burned := in.CaloriesBurned
		if burned == 0 && in.METValue > 0 {
			var p models.Profile
			if err := tx.Where("user_id = ?", userID).First(&p).Error; err == nil {
				burned = utils.EstimateCaloriesBurned(in.METValue, p.WeightKg, in.DurationMinutes)
			}
		}

		ee = models.ExerciseEntry{
			UserID:          userID,
			DailyEntryID:    entry.ID,
			Name:            in.Name,
			Category:        in.Category,
			METValue:        in.METValue,
			DurationMinutes: in.DurationMinutes,
			CaloriesBurned:  burned,
			Intensity:       in.Intensity,
			Notes:           in.Notes,
			PerformedAt:     time.Now(),
		}
		return tx.Create(&ee).Error
	})
	if err != nil {
		return nil, err
	}
	return &ee, nil
}

func (s *ExerciseEntryService) Update(userID string, entryID uint, in ExerciseEntryInput) (*models.ExerciseEntry, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var ee models.ExerciseEntry
	if err := s.db.Where("id = ? AND user_id = ?", entryID, userID).First(&ee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: exercise entry %d", ErrNotFound, entryID)
		}
		return nil, err
	}
	ee.Name = in.Name
	ee.Category = in.Category
	ee.METValue = in.METValue
	ee.DurationMinutes = in.DurationMinutes
	ee.CaloriesBurned = in.CaloriesBurned
	ee.Intensity = in.Intensity
	ee.Notes = in.Notes
	if err := s.db.Save(&ee).Error; err != nil {
		return nil, err
	}
	return &ee, nil
}

func (s *ExerciseEntryService) Delete(userID string, entryID uint) error {
	res := s.db.Unscoped().Where("id = ? AND user_id = ?", entryID, userID).Delete(&models.ExerciseEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: exercise entry %d", ErrNotFound, entryID)
	}
	return nil
}

func (s *ExerciseEntryService) ListForDate(userID string, date time.Time) ([]models.ExerciseEntry, error) {
	var entries []models.ExerciseEntry
	err := s.db.
		Where("user_id = ? AND performed_at BETWEEN ? AND ?", userID, dayStart(date), dayEnd(date)).
		Order("performed_at ASC").
		Find(&entries).Error
	return entries, err
}

// BurnedOn sums the day's exercise burn. Exercise totals are never
// persisted on the daily row; this fresh sum is the only source.
func (s *ExerciseEntryService) BurnedOn(userID string, date time.Time) (float64, error) {
	entries, err := s.ListForDate(userID, date)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for _, ee := range entries {
		total += ee.CaloriesBurned
	}
	return total, nil
}
