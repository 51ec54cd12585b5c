// services/template_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"healthtrack/models"
	"healthtrack/utils"

	"gorm.io/gorm"
)

type TemplateService struct{ db *gorm.DB }

func NewTemplateService(db *gorm.DB) *TemplateService { return &TemplateService{db: db} }

type FoodTemplateInput struct {
	Name          string  `json:"name" binding:"required"`
	Calories      float64 `json:"calories"`
	ProteinG      float64 `json:"protein_g"`
	CarbsG        float64 `json:"carbs_g"`
	FatsG         float64 `json:"fats_g"`
	DefaultAmount float64 `json:"default_amount"`
	DefaultUnit   string  `json:"default_unit"`
	Category      string  `json:"category"`
	IsFavorite    bool    `json:"is_favorite"`
}

func (in *FoodTemplateInput) validate() error {
	for _, v := range []float64{in.Calories, in.ProteinG, in.CarbsG, in.FatsG, in.DefaultAmount} {
		if !utils.ValidNumber(v) || v < 0 {
			return fmt.Errorf("%w: template values must be non-negative numbers", ErrInvalidInput)
		}
	}
	switch in.Category {
	case "meal", "snack", "drink":
	default:
		return fmt.Errorf("%w: category must be meal, snack or drink", ErrInvalidInput)
	}
	return nil
}

func (s *TemplateService) Create(userID string, in FoodTemplateInput) (*models.FoodTemplate, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	t := models.FoodTemplate{
		UserID:        userID,
		Name:          in.Name,
		Calories:      in.Calories,
		ProteinG:      in.ProteinG,
		CarbsG:        in.CarbsG,
		FatsG:         in.FatsG,
		DefaultAmount: in.DefaultAmount,
		DefaultUnit:   in.DefaultUnit,
		Category:      in.Category,
		IsFavorite:    in.IsFavorite,
	}
	if err := s.db.Create(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// List returns templates ranked for the picker: favorites first, then
// most used, then most recently used.
func (s *TemplateService) List(userID string) ([]models.FoodTemplate, error) {
	var out []models.FoodTemplate
	err := s.db.
		Where("user_id = ?", userID).
		Order("is_favorite DESC").
		Order("usage_count DESC").
		Order("last_used DESC").
		Find(&out).Error
	return out, err
}

func (s *TemplateService) Update(userID string, id uint, in FoodTemplateInput) (*models.FoodTemplate, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	var t models.FoodTemplate
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: food template %d", ErrNotFound, id)
		}
		return nil, err
	}
	t.Name = in.Name
	t.Calories = in.Calories
	t.ProteinG = in.ProteinG
	t.CarbsG = in.CarbsG
	t.FatsG = in.FatsG
	t.DefaultAmount = in.DefaultAmount
	t.DefaultUnit = in.DefaultUnit
	t.Category = in.Category
	t.IsFavorite = in.IsFavorite
	if err := s.db.Save(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *TemplateService) Delete(userID string, id uint) error {
	res := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.FoodTemplate{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: food template %d", ErrNotFound, id)
	}
	return nil
}

// MarkUsed bumps the ranking counters without creating a food entry.
func (s *TemplateService) MarkUsed(userID string, id uint) (*models.FoodTemplate, error) {
	var t models.FoodTemplate
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: food template %d", ErrNotFound, id)
		}
		return nil, err
	}
	now := time.Now()
	t.UsageCount++
	t.LastUsed = &now
	if err := s.db.Save(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}
