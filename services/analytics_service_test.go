package services

import (
	"context"
	"testing"
	"time"

	"healthtrack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedDay(t *testing.T, db *gorm.DB, userID string, daysAgo int, mutate func(*models.DailyEntry)) *models.DailyEntry {
	t.Helper()
	entry := models.DailyEntry{
		UserID: userID,
		Date:   dayStart(time.Now().AddDate(0, 0, -daysAgo)),
	}
	if mutate != nil {
		mutate(&entry)
	}
	require.NoError(t, db.Create(&entry).Error)
	return &entry
}

func fptr(v float64) *float64 { return &v }

func TestDeepWorkStreak(t *testing.T) {
	mk := func(flags ...bool) []ProductivityDay {
		out := make([]ProductivityDay, len(flags))
		for i, f := range flags {
			out[i] = ProductivityDay{DeepWorkCompleted: f}
		}
		return out
	}

	assert.Equal(t, 2, deepWorkStreak(mk(false, true, true)))
	assert.Equal(t, 1, deepWorkStreak(mk(true, false, true)))
	assert.Equal(t, 0, deepWorkStreak(mk(true, true, false)))
	assert.Equal(t, 3, deepWorkStreak(mk(true, true, true)))
	assert.Equal(t, 0, deepWorkStreak(nil))
}

func TestWeightOnOrBefore(t *testing.T) {
	points := []WeightPoint{
		{Date: "2026-08-01", Weight: 72},
		{Date: "2026-08-10", Weight: 71},
		{Date: "2026-08-20", Weight: 70},
	}

	got := weightOnOrBefore(points, "2026-08-15")
	require.NotNil(t, got)
	assert.Equal(t, 71.0, *got) // nearest at-or-before, not the earliest

	got = weightOnOrBefore(points, "2026-08-10")
	require.NotNil(t, got)
	assert.Equal(t, 71.0, *got)

	assert.Nil(t, weightOnOrBefore(points, "2026-07-31"))
	assert.Nil(t, weightOnOrBefore(nil, "2026-08-15"))
}

func TestAvgBalanceAndMITRateDefaults(t *testing.T) {
	// No data: balance is nil, MIT rate is 0. The mismatch is part of
	// the dashboard contract.
	assert.Nil(t, avgBalance(nil, ""))
	assert.Equal(t, 0.0, mitRate(nil, ""))

	points := []CaloriePoint{
		{Date: "2026-08-01", Balance: -200},
		{Date: "2026-08-02", Balance: 100},
	}
	got := avgBalance(points, "")
	require.NotNil(t, got)
	assert.Equal(t, -50.0, *got)

	days := []ProductivityDay{
		{Date: "2026-08-01", MITCompleted: 3, MITTotal: 3},
		{Date: "2026-08-02", MITCompleted: 0, MITTotal: 3},
	}
	assert.Equal(t, 50.0, mitRate(days, ""))
	assert.Equal(t, 0.0, mitRate(days, "2026-08-03")) // cutoff excludes everything
}

func TestWeightTrend_SkipsDaysWithoutWeight(t *testing.T) {
	db := newTestDB(t)
	userID := newUserID()
	svc := NewAnalyticsService(db)

	seedDay(t, db, userID, 5, func(d *models.DailyEntry) { d.WeightKg = fptr(72) })
	seedDay(t, db, userID, 3, nil) // no weigh-in
	seedDay(t, db, userID, 1, func(d *models.DailyEntry) { d.WeightKg = fptr(71) })

	points, err := svc.WeightTrend(context.Background(), userID, 30)
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, 72.0, points[0].Weight)
	assert.Equal(t, 71.0, points[1].Weight)
	assert.Less(t, points[0].Date, points[1].Date)
}

func TestCalorieBalanceSeries_RestingBurnSources(t *testing.T) {
	db := newTestDB(t)
	userID := newUserID()
	seedProfile(t, db, userID) // BMR 1674
	svc := NewAnalyticsService(db)

	seedDay(t, db, userID, 2, func(d *models.DailyEntry) {
		d.CaloriesConsumed = 2000
		d.CaloriesBurnedBMR = 1600 // day-level snapshot wins
	})
	seedDay(t, db, userID, 1, func(d *models.DailyEntry) {
		d.CaloriesConsumed = 1800 // no snapshot, profile BMR applies
	})

	points, err := svc.CalorieBalanceSeries(context.Background(), userID, 30)
	require.NoError(t, err)
	require.Len(t, points, 2)

	assert.Equal(t, 1600.0, points[0].BMR)
	assert.Equal(t, 400.0, points[0].Balance)
	assert.Equal(t, 1674.0, points[1].BMR)
	assert.Equal(t, 126.0, points[1].Balance)
}

func TestInjectionAdherence(t *testing.T) {
	db := newTestDB(t)
	userID := newUserID()
	svc := NewAnalyticsService(db)

	tracked := models.InjectableCompound{UserID: userID, Name: "Test-C", WeeklyTargetMg: 70}
	require.NoError(t, db.Create(&tracked).Error)
	untracked := models.InjectableCompound{UserID: userID, Name: "No-Target", WeeklyTargetMg: 0}
	require.NoError(t, db.Create(&untracked).Error)

	today := dayStart(time.Now())
	yesterday := today.AddDate(0, 0, -1)

	// Daily target is 70/7 = 10mg. Full dose yesterday, half today,
	// plus a dose of the untracked compound today.
	require.NoError(t, db.Create(&models.InjectionEntry{
		UserID: userID, CompoundID: tracked.ID, DoseMg: 10, InjectionDate: yesterday,
	}).Error)
	require.NoError(t, db.Create(&models.InjectionEntry{
		UserID: userID, CompoundID: tracked.ID, DoseMg: 5, InjectionDate: today,
	}).Error)
	require.NoError(t, db.Create(&models.InjectionEntry{
		UserID: userID, CompoundID: untracked.ID, DoseMg: 250, InjectionDate: today,
	}).Error)

	days, err := svc.InjectionAdherence(context.Background(), userID, 30)
	require.NoError(t, err)
	require.Len(t, days, 2)

	assert.Equal(t, 100.0, days[0].AdherenceScore)
	assert.Equal(t, 10.0, days[0].TotalDose)
	assert.Equal(t, []string{"Test-C"}, days[0].Compounds)

	// Today: mean of 50 (half dose) and 0 (zero target, no division).
	assert.Equal(t, 25.0, days[1].AdherenceScore)
	assert.Equal(t, 255.0, days[1].TotalDose)
	assert.Equal(t, []string{"No-Target", "Test-C"}, days[1].Compounds)
}

func TestInjectionAdherence_OverdoseCapsAt100(t *testing.T) {
	db := newTestDB(t)
	userID := newUserID()

	c := models.InjectableCompound{UserID: userID, Name: "Test-C", WeeklyTargetMg: 70}
	require.NoError(t, db.Create(&c).Error)
	require.NoError(t, db.Create(&models.InjectionEntry{
		UserID: userID, CompoundID: c.ID, DoseMg: 40, InjectionDate: dayStart(time.Now()),
	}).Error)

	days, err := NewAnalyticsService(db).InjectionAdherence(context.Background(), userID, 7)
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, 100.0, days[0].AdherenceScore)
}

func TestWorkoutSummary_GroupsPerDate(t *testing.T) {
	db := newTestDB(t)
	userID := newUserID()

	day := seedDay(t, db, userID, 1, nil)
	performed := day.Date.Add(8 * time.Hour)
	for _, e := range []models.ExerciseEntry{
		{UserID: userID, DailyEntryID: day.ID, Name: "Run", Category: "cardio", DurationMinutes: 30, CaloriesBurned: 300, PerformedAt: performed},
		{UserID: userID, DailyEntryID: day.ID, Name: "Lift", Category: "strength", DurationMinutes: 45, CaloriesBurned: 200, PerformedAt: performed.Add(time.Hour)},
		{UserID: userID, DailyEntryID: day.ID, Name: "Row", Category: "cardio", DurationMinutes: 15, CaloriesBurned: 120, PerformedAt: performed.Add(2 * time.Hour)},
	} {
		e := e
		require.NoError(t, db.Create(&e).Error)
	}

	days, err := NewAnalyticsService(db).WorkoutSummary(context.Background(), userID, 30)
	require.NoError(t, err)
	require.Len(t, days, 1)

	assert.Equal(t, 620.0, days[0].TotalCalories)
	assert.Equal(t, 90.0, days[0].Duration)
	assert.Equal(t, 3, days[0].ExerciseCount)
	assert.Equal(t, []string{"cardio", "strength"}, days[0].Categories)
}

func TestGetOverview_EmptyData(t *testing.T) {
	db := newTestDB(t)
	userID := newUserID()

	out, err := NewAnalyticsService(db).GetOverview(context.Background(), userID, 30)
	require.NoError(t, err)

	assert.Nil(t, out.CurrentWeight)
	assert.Nil(t, out.WeightChange7Days)
	assert.Nil(t, out.WeightChange30Days)
	assert.Nil(t, out.AvgCalorieBalance7Days)
	assert.Nil(t, out.AvgCalorieBalance30)
	assert.Equal(t, 0.0, out.MITCompletionRate7)
	assert.Equal(t, 0.0, out.MITCompletionRate30)
	assert.Equal(t, 0, out.DeepWorkStreak)
	assert.Equal(t, 0, out.TotalWorkouts7Days)
	assert.Equal(t, 0.0, out.InjectionAdherence7)
	assert.Equal(t, int64(0), out.ActiveMilestones)
}

func TestGetOverview_WeightDeltas(t *testing.T) {
	db := newTestDB(t)
	userID := newUserID()

	// A sample before the 7-day boundary and a current one. Nothing at
	// or before the 30-day boundary, so that delta stays nil.
	seedDay(t, db, userID, 10, func(d *models.DailyEntry) { d.WeightKg = fptr(72) })
	seedDay(t, db, userID, 0, func(d *models.DailyEntry) { d.WeightKg = fptr(70) })

	out, err := NewAnalyticsService(db).GetOverview(context.Background(), userID, 30)
	require.NoError(t, err)

	require.NotNil(t, out.CurrentWeight)
	assert.Equal(t, 70.0, *out.CurrentWeight)
	require.NotNil(t, out.WeightChange7Days)
	assert.Equal(t, -2.0, *out.WeightChange7Days)
	assert.Nil(t, out.WeightChange30Days)
}

func TestGetOverview_ProductivityAndCounts(t *testing.T) {
	db := newTestDB(t)
	userID := newUserID()

	seedDay(t, db, userID, 2, func(d *models.DailyEntry) {
		d.MITTask1, d.MITTask1Done = "a", true
		d.MITTask2, d.MITTask2Done = "b", true
		d.MITTask3 = "c"
		d.DeepWorkCompleted = true
	})
	seedDay(t, db, userID, 1, func(d *models.DailyEntry) {
		d.MITTask1, d.MITTask1Done = "a", true
		d.DeepWorkCompleted = true
	})

	require.NoError(t, db.Create(&models.ProgressMilestone{
		UserID: userID, Name: "Bodyweight pistol squat", Category: "strength",
	}).Error)
	require.NoError(t, db.Create(&models.NirvanaSession{
		UserID: userID, SessionType: "flow", SessionDate: dayStart(time.Now()),
	}).Error)

	out, err := NewAnalyticsService(db).GetOverview(context.Background(), userID, 30)
	require.NoError(t, err)

	// Day -2: 2/3, day -1: 1/3 → mean 50%.
	assert.InDelta(t, 50.0, out.MITCompletionRate30, 1e-9)
	assert.Equal(t, 2, out.DeepWorkStreak)
	assert.Equal(t, int64(1), out.ActiveMilestones)
	assert.Equal(t, 1, out.NirvanaSessions7Days)
}
