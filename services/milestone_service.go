// services/milestone_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"healthtrack/models"

	"gorm.io/gorm"
)

type MilestoneService struct{ db *gorm.DB }

func NewMilestoneService(db *gorm.DB) *MilestoneService { return &MilestoneService{db: db} }

type MilestoneInput struct {
	Name               string     `json:"name" binding:"required"`
	Category           string     `json:"category"`
	Description        string     `json:"description"`
	TargetDate         *time.Time `json:"target_date"`
	ProgressPercentage int        `json:"progress_percentage"`
	Notes              string     `json:"notes"`
}

func (in *MilestoneInput) validate() error {
	switch in.Category {
	case "strength", "skill", "flexibility", "endurance":
	default:
		return fmt.Errorf("%w: unknown milestone category %q", ErrInvalidInput, in.Category)
	}
	if in.ProgressPercentage < 0 || in.ProgressPercentage > 100 {
		return fmt.Errorf("%w: progress must be 0-100", ErrInvalidInput)
	}
	return nil
}

func (s *MilestoneService) Create(userID string, in MilestoneInput) (*models.ProgressMilestone, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	m := models.ProgressMilestone{
		UserID:             userID,
		Name:               in.Name,
		Category:           in.Category,
		Description:        in.Description,
		TargetDate:         in.TargetDate,
		ProgressPercentage: in.ProgressPercentage,
		Notes:              in.Notes,
	}
	if err := s.db.Create(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *MilestoneService) List(userID string) ([]models.ProgressMilestone, error) {
	var out []models.ProgressMilestone
	err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (s *MilestoneService) Update(userID string, id uint, in MilestoneInput) (*models.ProgressMilestone, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	var m models.ProgressMilestone
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: milestone %d", ErrNotFound, id)
		}
		return nil, err
	}
	m.Name = in.Name
	m.Category = in.Category
	m.Description = in.Description
	m.TargetDate = in.TargetDate
	m.ProgressPercentage = in.ProgressPercentage
	m.Notes = in.Notes
	if err := s.db.Save(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// Complete marks the milestone done at 100% with today's date.
func (s *MilestoneService) Complete(userID string, id uint) (*models.ProgressMilestone, error) {
	var m models.ProgressMilestone
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: milestone %d", ErrNotFound, id)
		}
		return nil, err
	}
	now := time.Now()
	m.IsCompleted = true
	m.CompletedDate = &now
	m.ProgressPercentage = 100
	if err := s.db.Save(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *MilestoneService) Delete(userID string, id uint) error {
	res := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.ProgressMilestone{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: milestone %d", ErrNotFound, id)
	}
	return nil
}

// CountActive counts milestones not yet completed.
func (s *MilestoneService) CountActive(userID string) (int64, error) {
	var n int64
	err := s.db.Model(&models.ProgressMilestone{}).
		Where("user_id = ? AND is_completed = ?", userID, false).
		Count(&n).Error
	return n, err
}
