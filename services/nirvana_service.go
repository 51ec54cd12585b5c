// services/nirvana_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"healthtrack/models"

	"gorm.io/gorm"
)

type NirvanaService struct{ db *gorm.DB }

func NewNirvanaService(db *gorm.DB) *NirvanaService { return &NirvanaService{db: db} }

type NirvanaSessionInput struct {
	Date            string   `json:"session_date"` // YYYY-MM-DD, empty = today
	SessionType     string   `json:"session_type" binding:"required"`
	DurationMinutes float64  `json:"duration_minutes"`
	Difficulty      string   `json:"difficulty"`
	QualityRating   int      `json:"quality_rating"`
	Exercises       []string `json:"exercises"`
	BodyParts       []string `json:"body_parts"`
	Notes           string   `json:"notes"`
}

func (in *NirvanaSessionInput) validate() (time.Time, error) {
	if in.QualityRating < 1 || in.QualityRating > 5 {
		return time.Time{}, fmt.Errorf("%w: quality_rating must be 1-5", ErrInvalidInput)
	}
	if in.DurationMinutes < 0 {
		return time.Time{}, fmt.Errorf("%w: duration must be non-negative", ErrInvalidInput)
	}
	switch in.Difficulty {
	case "beginner", "intermediate", "advanced":
	default:
		return time.Time{}, fmt.Errorf("%w: difficulty must be beginner, intermediate or advanced", ErrInvalidInput)
	}

	date := dayStart(time.Now())
	if in.Date != "" {
		d, err := time.ParseInLocation("2006-01-02", in.Date, time.Local)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: session_date must be YYYY-MM-DD", ErrInvalidInput)
		}
		date = d
	}
	return date, nil
}

func (s *NirvanaService) Create(userID string, in NirvanaSessionInput) (*models.NirvanaSession, error) {
	date, err := in.validate()
	if err != nil {
		return nil, err
	}
	sess := models.NirvanaSession{
		UserID:          userID,
		SessionDate:     date,
		SessionType:     in.SessionType,
		DurationMinutes: in.DurationMinutes,
		Difficulty:      in.Difficulty,
		QualityRating:   in.QualityRating,
		Exercises:       strings.Join(in.Exercises, ","),
		BodyParts:       strings.Join(in.BodyParts, ","),
		Notes:           in.Notes,
	}
	if err := s.db.Create(&sess).Error; err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *NirvanaService) Update(userID string, id uint, in NirvanaSessionInput) (*models.NirvanaSession, error) {
	date, err := in.validate()
	if err != nil {
		return nil, err
	}
	var sess models.NirvanaSession
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&sess).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: nirvana session %d", ErrNotFound, id)
		}
		return nil, err
	}
	sess.SessionDate = date
	sess.SessionType = in.SessionType
	sess.DurationMinutes = in.DurationMinutes
	sess.Difficulty = in.Difficulty
	sess.QualityRating = in.QualityRating
	sess.Exercises = strings.Join(in.Exercises, ",")
	sess.BodyParts = strings.Join(in.BodyParts, ",")
	sess.Notes = in.Notes
	if err := s.db.Save(&sess).Error; err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *NirvanaService) Delete(userID string, id uint) error {
	res := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.NirvanaSession{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: nirvana session %d", ErrNotFound, id)
	}
	return nil
}

func (s *NirvanaService) List(userID string, days int) ([]models.NirvanaSession, error) {
	var out []models.NirvanaSession
	err := s.db.
		Where("user_id = ? AND session_date >= ?", userID, windowStart(days)).
		Order("session_date ASC").
		Find(&out).Error
	return out, err
}
