// services/weekly_service.go
package services

import (
	"errors"
	"time"

	"healthtrack/models"

	"gorm.io/gorm"
)

type WeeklyService struct{ db *gorm.DB }

func NewWeeklyService(db *gorm.DB) *WeeklyService { return &WeeklyService{db: db} }

// WeeklyUpdate is a partial update for a week's objectives and review.
type WeeklyUpdate struct {
	Objective1     *string    `json:"objective_1"`
	Objective1Done *bool      `json:"objective_1_completed"`
	Objective2     *string    `json:"objective_2"`
	Objective2Done *bool      `json:"objective_2_completed"`
	Objective3     *string    `json:"objective_3"`
	Objective3Done *bool      `json:"objective_3_completed"`
	Insights       *string    `json:"insights"`
	NextWeekFocus  *string    `json:"next_week_focus"`
	ReviewDate     *time.Time `json:"review_date"`
}

// Upsert applies the update to the entry for the week containing date,
// creating the row on first write. The completion rate is re-derived
// from the non-empty objectives on every write.
func (s *WeeklyService) Upsert(userID string, date time.Time, up WeeklyUpdate) (*models.WeeklyEntry, error) {
	ws := weekStart(date)

	var w models.WeeklyEntry
	err := s.db.Where("user_id = ? AND week_start_date = ?", userID, ws).First(&w).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		w = models.WeeklyEntry{UserID: userID, WeekStartDate: ws}
	}

	if up.Objective1 != nil {
		w.Objective1 = *up.Objective1
	}
	if up.Objective1Done != nil {
		w.Objective1Done = *up.Objective1Done
	}
	if up.Objective2 != nil {
		w.Objective2 = *up.Objective2
	}
	if up.Objective2Done != nil {
		w.Objective2Done = *up.Objective2Done
	}
	if up.Objective3 != nil {
		w.Objective3 = *up.Objective3
	}
	if up.Objective3Done != nil {
		w.Objective3Done = *up.Objective3Done
	}
	if up.Insights != nil {
		w.Insights = *up.Insights
	}
	if up.NextWeekFocus != nil {
		w.NextWeekFocus = *up.NextWeekFocus
	}
	if up.ReviewDate != nil {
		w.ReviewDate = up.ReviewDate
	}

	w.CompletionRate = completionRate(&w)

	if err := s.db.Save(&w).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

// GetWeek returns the entry for the week containing date, or an
// unsaved zeroed row when none exists.
func (s *WeeklyService) GetWeek(userID string, date time.Time) (*models.WeeklyEntry, error) {
	ws := weekStart(date)
	var w models.WeeklyEntry
	err := s.db.Where("user_id = ? AND week_start_date = ?", userID, ws).First(&w).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.WeeklyEntry{UserID: userID, WeekStartDate: ws}, nil
		}
		return nil, err
	}
	return &w, nil
}

func (s *WeeklyService) List(userID string, weeks int) ([]models.WeeklyEntry, error) {
	start := weekStart(time.Now()).AddDate(0, 0, -7*weeks)
	var out []models.WeeklyEntry
	err := s.db.
		Where("user_id = ? AND week_start_date >= ?", userID, start).
		Order("week_start_date ASC").
		Find(&out).Error
	return out, err
}

// completionRate is completed/set objectives * 100, nil when no
// objective text is set.
func completionRate(w *models.WeeklyEntry) *float64 {
	set, done := 0, 0
	for _, o := range []struct {
		text string
		ok   bool
	}{
		{w.Objective1, w.Objective1Done},
		{w.Objective2, w.Objective2Done},
		{w.Objective3, w.Objective3Done},
	} {
		if o.text == "" {
			continue
		}
		set++
		if o.ok {
			done++
		}
	}
	if set == 0 {
		return nil
	}
	rate := float64(done) / float64(set) * 100
	return &rate
}
