// services/analytics_service.go
package services

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	"healthtrack/models"
	"healthtrack/utils"

	"gorm.io/gorm"
)

// AnalyticsService produces time-windowed series and summary
// statistics for the dashboards. All queries are stateless snapshot
// reads; nothing is cached or incrementally updated.
type AnalyticsService struct{ db *gorm.DB }

func NewAnalyticsService(db *gorm.DB) *AnalyticsService { return &AnalyticsService{db: db} }

type WeightPoint struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
}

type CaloriePoint struct {
	Date     string  `json:"date"`
	Consumed float64 `json:"consumed"`
	Burned   float64 `json:"burned"`
	Balance  float64 `json:"balance"`
	BMR      float64 `json:"bmr"`
}

type MacroPoint struct {
	Date          string  `json:"date"`
	Protein       float64 `json:"protein"`
	Carbs         float64 `json:"carbs"`
	Fats          float64 `json:"fats"`
	ProteinTarget int     `json:"protein_target"`
	CarbsTarget   int     `json:"carbs_target"`
	FatsTarget    int     `json:"fats_target"`
}

type WorkoutDay struct {
	Date          string   `json:"date"`
	TotalCalories float64  `json:"total_calories"`
	Duration      float64  `json:"duration"`
	ExerciseCount int      `json:"exercise_count"`
	Categories    []string `json:"categories"`
}

type InjectionDay struct {
	Date           string   `json:"date"`
	TotalDose      float64  `json:"total_dose"`
	Compounds      []string `json:"compounds"`
	AdherenceScore float64  `json:"adherence_score"`
}

type ProductivityDay struct {
	Date              string `json:"date"`
	MITCompleted      int    `json:"mit_completed"`
	MITTotal          int    `json:"mit_total"`
	DeepWorkCompleted bool   `json:"deep_work_completed"`
}

type NirvanaDay struct {
	Date       string  `json:"date"`
	Duration   float64 `json:"duration"`
	Difficulty string  `json:"difficulty"`
	Quality    int     `json:"quality"`
}

type Overview struct {
	CurrentWeight          *float64 `json:"current_weight"`
	WeightChange7Days      *float64 `json:"weight_change_7_days"`
	WeightChange30Days     *float64 `json:"weight_change_30_days"`
	AvgCalorieBalance7Days *float64 `json:"avg_calorie_balance_7_days"`
	AvgCalorieBalance30    *float64 `json:"avg_calorie_balance_30_days"`
	MITCompletionRate7     float64  `json:"mit_completion_rate_7_days"`
	MITCompletionRate30    float64  `json:"mit_completion_rate_30_days"`
	DeepWorkStreak         int      `json:"deep_work_streak"`
	TotalWorkouts7Days     int      `json:"total_workouts_7_days"`
	TotalWorkouts30Days    int      `json:"total_workouts_30_days"`
	InjectionAdherence7    float64  `json:"injection_adherence_7_days"`
	NirvanaSessions7Days   int      `json:"nirvana_sessions_7_days"`
	ActiveMilestones       int64    `json:"active_milestones"`
}

// WeightTrend returns (date, weight) for days with a recorded weight,
// ascending by date.
func (s *AnalyticsService) WeightTrend(ctx context.Context, userID string, days int) ([]WeightPoint, error) {
	var rows []models.DailyEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND weight_kg IS NOT NULL", userID, windowStart(days)).
		Order("date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]WeightPoint, 0, len(rows))
	for _, r := range rows {
		out = append(out, WeightPoint{Date: dateKey(r.Date), Weight: *r.WeightKg})
	}
	return out, nil
}

// CalorieBalanceSeries returns (date, consumed, burned, balance, bmr)
// ascending by date. Exercise burn is summed fresh per date; the
// resting burn is the day's stored BMR snapshot, else the profile BMR.
func (s *AnalyticsService) CalorieBalanceSeries(ctx context.Context, userID string, days int) ([]CaloriePoint, error) {
	var rows []models.DailyEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, windowStart(days)).
		Order("date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	burned, err := s.exerciseBurnByDate(ctx, userID, days)
	if err != nil {
		return nil, err
	}

	profileBMR := 0.0
	var p models.Profile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error; err == nil {
		profileBMR = float64(p.BMR)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	out := make([]CaloriePoint, 0, len(rows))
	for _, r := range rows {
		bmr := r.CaloriesBurnedBMR
		if bmr == 0 {
			bmr = profileBMR
		}
		b := burned[dateKey(r.Date)]
		out = append(out, CaloriePoint{
			Date:     dateKey(r.Date),
			Consumed: r.CaloriesConsumed,
			Burned:   b,
			Balance:  utils.CalorieBalance(r.CaloriesConsumed, bmr, b),
			BMR:      bmr,
		})
	}
	return out, nil
}

// MacroTrend returns consumed macros per date against the current
// profile targets. Targets are not versioned: a profile edit
// retroactively relabels past points. Known limitation, kept as-is.
func (s *AnalyticsService) MacroTrend(ctx context.Context, userID string, days int) ([]MacroPoint, error) {
	var rows []models.DailyEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, windowStart(days)).
		Order("date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	var p models.Profile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error; err != nil &&
		!errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	out := make([]MacroPoint, 0, len(rows))
	for _, r := range rows {
		out = append(out, MacroPoint{
			Date:          dateKey(r.Date),
			Protein:       r.ProteinG,
			Carbs:         r.CarbsG,
			Fats:          r.FatsG,
			ProteinTarget: p.ProteinTarget,
			CarbsTarget:   p.CarbsTarget,
			FatsTarget:    p.FatsTarget,
		})
	}
	return out, nil
}

// WorkoutSummary groups exercise entries per date with summed
// calories, summed duration, entry count and distinct categories.
func (s *AnalyticsService) WorkoutSummary(ctx context.Context, userID string, days int) ([]WorkoutDay, error) {
	var rows []models.ExerciseEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND performed_at >= ?", userID, windowStart(days)).
		Order("performed_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	byDate := map[string]*WorkoutDay{}
	cats := map[string]map[string]bool{}
	for _, r := range rows {
		key := dateKey(r.PerformedAt)
		day, ok := byDate[key]
		if !ok {
			day = &WorkoutDay{Date: key}
			byDate[key] = day
			cats[key] = map[string]bool{}
		}
		day.TotalCalories += r.CaloriesBurned
		day.Duration += r.DurationMinutes
		day.ExerciseCount++
		cats[key][r.Category] = true
	}

	out := make([]WorkoutDay, 0, len(byDate))
	for key, day := range byDate {
		for c := range cats[key] {
			day.Categories = append(day.Categories, c)
		}
		sort.Strings(day.Categories)
		out = append(out, *day)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

// InjectionAdherence returns the per-date total dose and a 0-100
// adherence score: the mean over the day's doses of
// min(dose/(weekly_target/7), 1) * 100. A compound with a zero weekly
// target contributes adherence 0 for its dose rather than dividing by
// zero.
func (s *AnalyticsService) InjectionAdherence(ctx context.Context, userID string, days int) ([]InjectionDay, error) {
	var rows []models.InjectionEntry
	err := s.db.WithContext(ctx).
		Preload("Compound").
		Where("user_id = ? AND injection_date >= ?", userID, windowStart(days)).
		Order("injection_date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	type dayAcc struct {
		total     float64
		scores    []float64
		compounds map[string]bool
	}
	byDate := map[string]*dayAcc{}
	for _, r := range rows {
		key := dateKey(r.InjectionDate)
		acc, ok := byDate[key]
		if !ok {
			acc = &dayAcc{compounds: map[string]bool{}}
			byDate[key] = acc
		}
		acc.total += r.DoseMg
		acc.compounds[r.Compound.Name] = true

		dailyTarget := r.Compound.WeeklyTargetMg / 7
		if dailyTarget <= 0 {
			acc.scores = append(acc.scores, 0)
		} else {
			acc.scores = append(acc.scores, math.Min(r.DoseMg/dailyTarget, 1))
		}
	}

	out := make([]InjectionDay, 0, len(byDate))
	for key, acc := range byDate {
		sum := 0.0
		for _, sc := range acc.scores {
			sum += sc
		}
		day := InjectionDay{
			Date:           key,
			TotalDose:      acc.total,
			AdherenceScore: sum / float64(len(acc.scores)) * 100,
		}
		for c := range acc.compounds {
			day.Compounds = append(day.Compounds, c)
		}
		sort.Strings(day.Compounds)
		out = append(out, day)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

// MITCompletion returns the per-date completed slot count (of a fixed
// total of 3) plus the deep work flag, ascending by date.
func (s *AnalyticsService) MITCompletion(ctx context.Context, userID string, days int) ([]ProductivityDay, error) {
	var rows []models.DailyEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, windowStart(days)).
		Order("date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]ProductivityDay, 0, len(rows))
	for _, r := range rows {
		out = append(out, ProductivityDay{
			Date:              dateKey(r.Date),
			MITCompleted:      r.MITCompleted(),
			MITTotal:          3,
			DeepWorkCompleted: r.DeepWorkCompleted,
		})
	}
	return out, nil
}

func (s *AnalyticsService) NirvanaSeries(ctx context.Context, userID string, days int) ([]NirvanaDay, error) {
	var rows []models.NirvanaSession
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND session_date >= ?", userID, windowStart(days)).
		Order("session_date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]NirvanaDay, 0, len(rows))
	for _, r := range rows {
		out = append(out, NirvanaDay{
			Date:       dateKey(r.SessionDate),
			Duration:   r.DurationMinutes,
			Difficulty: r.Difficulty,
			Quality:    r.QualityRating,
		})
	}
	return out, nil
}

func (s *AnalyticsService) WeeklyObjectives(ctx context.Context, userID string, weeks int) ([]models.WeeklyEntry, error) {
	start := weekStart(time.Now()).AddDate(0, 0, -7*weeks)
	var rows []models.WeeklyEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND week_start_date >= ?", userID, start).
		Order("week_start_date ASC").
		Find(&rows).Error
	return rows, err
}

// GetOverview composes the window queries into the dashboard summary.
// The weight trend is fetched with 30 extra days of history so a
// boundary sample usually exists for the delta computations.
func (s *AnalyticsService) GetOverview(ctx context.Context, userID string, days int) (*Overview, error) {
	weights, err := s.WeightTrend(ctx, userID, days+30)
	if err != nil {
		return nil, err
	}
	calories, err := s.CalorieBalanceSeries(ctx, userID, days)
	if err != nil {
		return nil, err
	}
	mits, err := s.MITCompletion(ctx, userID, days)
	if err != nil {
		return nil, err
	}
	workouts, err := s.WorkoutSummary(ctx, userID, days)
	if err != nil {
		return nil, err
	}
	injections, err := s.InjectionAdherence(ctx, userID, days)
	if err != nil {
		return nil, err
	}
	nirvana, err := s.NirvanaSeries(ctx, userID, days)
	if err != nil {
		return nil, err
	}

	var active int64
	if err := s.db.WithContext(ctx).Model(&models.ProgressMilestone{}).
		Where("user_id = ? AND is_completed = ?", userID, false).
		Count(&active).Error; err != nil {
		return nil, err
	}

	out := &Overview{ActiveMilestones: active}

	key7 := dateKey(windowStart(7))
	keyN := dateKey(windowStart(days))

	if len(weights) > 0 {
		cur := weights[len(weights)-1].Weight
		out.CurrentWeight = &cur
		if ago := weightOnOrBefore(weights, key7); ago != nil {
			d := cur - *ago
			out.WeightChange7Days = &d
		}
		if ago := weightOnOrBefore(weights, keyN); ago != nil {
			d := cur - *ago
			out.WeightChange30Days = &d
		}
	}

	out.AvgCalorieBalance7Days = avgBalance(calories, key7)
	out.AvgCalorieBalance30 = avgBalance(calories, "")

	out.MITCompletionRate7 = mitRate(mits, key7)
	out.MITCompletionRate30 = mitRate(mits, "")
	out.DeepWorkStreak = deepWorkStreak(mits)

	for _, w := range workouts {
		out.TotalWorkouts30Days += w.ExerciseCount
		if w.Date >= key7 {
			out.TotalWorkouts7Days += w.ExerciseCount
		}
	}

	sum, n := 0.0, 0
	for _, inj := range injections {
		if inj.Date >= key7 {
			sum += inj.AdherenceScore
			n++
		}
	}
	if n > 0 {
		out.InjectionAdherence7 = sum / float64(n)
	}

	for _, nv := range nirvana {
		if nv.Date >= key7 {
			out.NirvanaSessions7Days++
		}
	}

	return out, nil
}

// weightOnOrBefore finds the nearest sample at or before the boundary
// date. Returns nil when every sample is later.
func weightOnOrBefore(points []WeightPoint, boundary string) *float64 {
	for i := len(points) - 1; i >= 0; i-- {
		if points[i].Date <= boundary {
			return &points[i].Weight
		}
	}
	return nil
}

// avgBalance is the mean balance over points at or after cutoff
// (empty cutoff = all points); nil when the window holds no data.
func avgBalance(points []CaloriePoint, cutoff string) *float64 {
	sum, n := 0.0, 0
	for _, p := range points {
		if p.Date >= cutoff {
			sum += p.Balance
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := sum / float64(n)
	return &avg
}

// mitRate is mean(completed/total)*100 over the window, 0 when there
// is no data. The zero default (rather than nil) is deliberate and
// mirrors what overview consumers already expect.
func mitRate(days []ProductivityDay, cutoff string) float64 {
	sum, n := 0.0, 0
	for _, d := range days {
		if d.Date >= cutoff {
			sum += float64(d.MITCompleted) / float64(d.MITTotal)
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n) * 100
}

// deepWorkStreak counts consecutive deep-work days scanning backward
// from the most recent entry. The scan runs over the ordered list of
// existing entries only, so missing days do not break the streak.
func deepWorkStreak(days []ProductivityDay) int {
	streak := 0
	for i := len(days) - 1; i >= 0; i-- {
		if !days[i].DeepWorkCompleted {
			break
		}
		streak++
	}
	return streak
}

// exerciseBurnByDate sums exercise burn per date key over the window.
func (s *AnalyticsService) exerciseBurnByDate(ctx context.Context, userID string, days int) (map[string]float64, error) {
	var rows []models.ExerciseEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND performed_at >= ?", userID, windowStart(days)).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := map[string]float64{}
	for _, r := range rows {
		out[dateKey(r.PerformedAt)] += r.CaloriesBurned
	}
	return out, nil
}
