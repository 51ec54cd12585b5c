// services/injection_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"healthtrack/models"
	"healthtrack/utils"

	"gorm.io/gorm"
)

type InjectionService struct{ db *gorm.DB }

func NewInjectionService(db *gorm.DB) *InjectionService { return &InjectionService{db: db} }

type CompoundInput struct {
	Name           string  `json:"name" binding:"required"`
	Concentration  float64 `json:"concentration"`
	EsterType      string  `json:"ester_type"`
	HalfLifeDays   float64 `json:"half_life_days"`
	Category       string  `json:"category"`
	WeeklyTargetMg float64 `json:"weekly_target_mg"`
	Notes          string  `json:"notes"`
}

func (in *CompoundInput) validate() error {
	for _, v := range []float64{in.Concentration, in.HalfLifeDays, in.WeeklyTargetMg} {
		if !utils.ValidNumber(v) || v < 0 {
			return fmt.Errorf("%w: compound values must be non-negative numbers", ErrInvalidInput)
		}
	}
	return nil
}

func (s *InjectionService) CreateCompound(userID string, in CompoundInput) (*models.InjectableCompound, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	c := models.InjectableCompound{
		UserID:         userID,
		Name:           in.Name,
		Concentration:  in.Concentration,
		EsterType:      in.EsterType,
		HalfLifeDays:   in.HalfLifeDays,
		Category:       in.Category,
		WeeklyTargetMg: in.WeeklyTargetMg,
		Notes:          in.Notes,
	}
	if err := s.db.Create(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *InjectionService) ListCompounds(userID string) ([]models.InjectableCompound, error) {
	var out []models.InjectableCompound
	err := s.db.Where("user_id = ?", userID).Order("name ASC").Find(&out).Error
	return out, err
}

func (s *InjectionService) UpdateCompound(userID string, id uint, in CompoundInput) (*models.InjectableCompound, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	var c models.InjectableCompound
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: compound %d", ErrNotFound, id)
		}
		return nil, err
	}
	c.Name = in.Name
	c.Concentration = in.Concentration
	c.EsterType = in.EsterType
	c.HalfLifeDays = in.HalfLifeDays
	c.Category = in.Category
	c.WeeklyTargetMg = in.WeeklyTargetMg
	c.Notes = in.Notes
	if err := s.db.Save(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *InjectionService) DeleteCompound(userID string, id uint) error {
	res := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.InjectableCompound{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: compound %d", ErrNotFound, id)
	}
	return nil
}

type InjectionInput struct {
	CompoundID    uint    `json:"compound_id" binding:"required"`
	DoseMg        float64 `json:"dose_mg"`
	VolumeMl      float64 `json:"volume_ml"`
	InjectionSite string  `json:"injection_site"`
	Date          string  `json:"injection_date"` // YYYY-MM-DD, empty = today
	Notes         string  `json:"notes"`
}

func (s *InjectionService) LogInjection(userID string, in InjectionInput) (*models.InjectionEntry, error) {
	if !utils.ValidNumber(in.DoseMg) || in.DoseMg <= 0 {
		return nil, fmt.Errorf("%w: dose must be a positive number", ErrInvalidInput)
	}
	if !utils.ValidNumber(in.VolumeMl) || in.VolumeMl < 0 {
		return nil, fmt.Errorf("%w: volume must be non-negative", ErrInvalidInput)
	}

	date := dayStart(time.Now())
	if in.Date != "" {
		d, err := time.ParseInLocation("2006-01-02", in.Date, time.Local)
		if err != nil {
			return nil, fmt.Errorf("%w: injection_date must be YYYY-MM-DD", ErrInvalidInput)
		}
		date = d
	}

	// Compound must belong to the same user.
	var c models.InjectableCompound
	if err := s.db.Where("id = ? AND user_id = ?", in.CompoundID, userID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: compound %d", ErrNotFound, in.CompoundID)
		}
		return nil, err
	}

	e := models.InjectionEntry{
		UserID:        userID,
		CompoundID:    in.CompoundID,
		DoseMg:        in.DoseMg,
		VolumeMl:      in.VolumeMl,
		InjectionSite: in.InjectionSite,
		InjectionDate: date,
		Notes:         in.Notes,
	}
	if err := s.db.Create(&e).Error; err != nil {
		return nil, err
	}
	e.Compound = c
	return &e, nil
}

func (s *InjectionService) ListInjections(userID string, days int) ([]models.InjectionEntry, error) {
	var out []models.InjectionEntry
	err := s.db.
		Preload("Compound").
		Where("user_id = ? AND injection_date >= ?", userID, windowStart(days)).
		Order("injection_date ASC").
		Find(&out).Error
	return out, err
}

func (s *InjectionService) DeleteInjection(userID string, id uint) error {
	res := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.InjectionEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: injection %d", ErrNotFound, id)
	}
	return nil
}
