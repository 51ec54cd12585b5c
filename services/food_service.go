// services/food_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"healthtrack/models"
	"healthtrack/utils"

	"gorm.io/gorm"
)

type FoodEntryService struct{ db *gorm.DB }

func NewFoodEntryService(db *gorm.DB) *FoodEntryService { return &FoodEntryService{db: db} }

type FoodEntryInput struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatsG    float64 `json:"fats_g"`
	Amount   float64 `json:"amount"`
	Unit     string  `json:"unit"`
	MealType string  `json:"meal_type"`
}

func validMealType(t string) bool {
	switch t {
	case "breakfast", "lunch", "dinner", "snack":
		return true
	}
	return false
}

func (in *FoodEntryInput) validate() error {
	if in.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	for _, v := range []float64{in.Calories, in.ProteinG, in.CarbsG, in.FatsG, in.Amount} {
		if !utils.ValidNumber(v) || v < 0 {
			return fmt.Errorf("%w: nutrition values must be non-negative numbers", ErrInvalidInput)
		}
	}
	if !validMealType(in.MealType) {
		return fmt.Errorf("%w: meal_type must be breakfast, lunch, dinner or snack", ErrInvalidInput)
	}
	return nil
}

// Add appends a food entry to the day and recomputes the parent
// totals, both inside one transaction so the aggregate can never be
// observed out of step with its children.
func (s *FoodEntryService) Add(userID string, date time.Time, in FoodEntryInput) (*models.FoodEntry, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var fe models.FoodEntry
	err := s.db.Transaction(func(tx *gorm.DB) error {
		entry, err := getOrCreate(tx, userID, date)
		if err != nil {
			return err
		}
		fe = models.FoodEntry{
			UserID:       userID,
			DailyEntryID: entry.ID,
			Name:         in.Name,
			Calories:     in.Calories,
			ProteinG:     in.ProteinG,
			CarbsG:       in.CarbsG,
			FatsG:        in.FatsG,
			Amount:       in.Amount,
			Unit:         in.Unit,
			MealType:     in.MealType,
			ConsumedAt:   time.Now(),
		}
		if err := tx.Create(&fe).Error; err != nil {
			return err
		}
		return recomputeTotals(tx, entry.ID)
	})
	if err != nil {
		return nil, err
	}
	return &fe, nil
}

// AddFromTemplate materializes a template into a food entry and bumps
// the template's usage ranking.
func (s *FoodEntryService) AddFromTemplate(userID string, date time.Time, templateID uint, mealType string) (*models.FoodEntry, error) {
	if !validMealType(mealType) {
		return nil, fmt.Errorf("%w: meal_type must be breakfast, lunch, dinner or snack", ErrInvalidInput)
	}

	var fe models.FoodEntry
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var tpl models.FoodTemplate
		if err := tx.Where("id = ? AND user_id = ?", templateID, userID).First(&tpl).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: food template %d", ErrNotFound, templateID)
			}
			return err
		}

		entry, err := getOrCreate(tx, userID, date)
		if err != nil {
			return err
		}
		fe = models.FoodEntry{
			UserID:       userID,
			DailyEntryID: entry.ID,
			Name:         tpl.Name,
			Calories:     tpl.Calories,
			ProteinG:     tpl.ProteinG,
			CarbsG:       tpl.CarbsG,
			FatsG:        tpl.FatsG,
			Amount:       tpl.DefaultAmount,
			Unit:         tpl.DefaultUnit,
			MealType:     mealType,
			ConsumedAt:   time.Now(),
		}
		if err := tx.Create(&fe).Error; err != nil {
			return err
		}

		now := time.Now()
		tpl.UsageCount++
		tpl.LastUsed = &now
		if err := tx.Save(&tpl).Error; err != nil {
			return err
		}
		return recomputeTotals(tx, entry.ID)
	})
	if err != nil {
		return nil, err
	}
	return &fe, nil
}

func (s *FoodEntryService) Update(userID string, entryID uint, in FoodEntryInput) (*models.FoodEntry, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var fe models.FoodEntry
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", entryID, userID).First(&fe).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: food entry %d", ErrNotFound, entryID)
			}
			return err
		}
		fe.Name = in.Name
		fe.Calories = in.Calories
		fe.ProteinG = in.ProteinG
		fe.CarbsG = in.CarbsG
		fe.FatsG = in.FatsG
		fe.Amount = in.Amount
		fe.Unit = in.Unit
		fe.MealType = in.MealType
		if err := tx.Save(&fe).Error; err != nil {
			return err
		}
		return recomputeTotals(tx, fe.DailyEntryID)
	})
	if err != nil {
		return nil, err
	}
	return &fe, nil
}

func (s *FoodEntryService) Delete(userID string, entryID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var fe models.FoodEntry
		if err := tx.Where("id = ? AND user_id = ?", entryID, userID).First(&fe).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: food entry %d", ErrNotFound, entryID)
			}
			return err
		}
		if err := tx.Unscoped().Delete(&fe).Error; err != nil {
			return err
		}
		return recomputeTotals(tx, fe.DailyEntryID)
	})
}

func (s *FoodEntryService) ListForDate(userID string, date time.Time) ([]models.FoodEntry, error) {
	var entry models.DailyEntry
	err := s.db.Where("user_id = ? AND date = ?", userID, dayStart(date)).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []models.FoodEntry{}, nil
		}
		return nil, err
	}

	var entries []models.FoodEntry
	err = s.db.Where("daily_entry_id = ?", entry.ID).Order("consumed_at ASC").Find(&entries).Error
	return entries, err
}

// RecomputeTotals re-derives the parent's nutrition totals from its
// food entries. Idempotent: running it twice with no intervening
// writes yields identical totals.
func (s *FoodEntryService) RecomputeTotals(userID string, date time.Time) error {
	var entry models.DailyEntry
	err := s.db.Where("user_id = ? AND date = ?", userID, dayStart(date)).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil // no row, nothing to reconcile
		}
		return err
	}
	return recomputeTotals(s.db, entry.ID)
}

// recomputeTotals enforces the invariant
// DailyEntry totals == Σ FoodEntry fields for the day.
func recomputeTotals(tx *gorm.DB, dailyEntryID uint) error {
	var entries []models.FoodEntry
	if err := tx.Where("daily_entry_id = ?", dailyEntryID).Find(&entries).Error; err != nil {
		return err
	}

	var cals, prot, carbs, fats float64
	for _, fe := range entries {
		cals += fe.Calories
		prot += fe.ProteinG
		carbs += fe.CarbsG
		fats += fe.FatsG
	}

	return tx.Model(&models.DailyEntry{}).
		Where("id = ?", dailyEntryID).
		Updates(map[string]interface{}{
			"calories_consumed": cals,
			"protein_g":         prot,
			"carbs_g":           carbs,
			"fats_g":            fats,
		}).Error
}
