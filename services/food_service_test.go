package services

import (
	"testing"
	"time"

	"healthtrack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func sampleFood() FoodEntryInput {
	return FoodEntryInput{
		Name:     "Chicken breast",
		Calories: 330,
		ProteinG: 62,
		CarbsG:   0,
		FatsG:    7,
		Amount:   200,
		Unit:     "g",
		MealType: "lunch",
	}
}

func dailyTotals(t *testing.T, db *gorm.DB, userID string, date time.Time) models.DailyEntry {
	t.Helper()
	var entry models.DailyEntry
	require.NoError(t, db.Where("user_id = ? AND date = ?", userID, dayStart(date)).First(&entry).Error)
	return entry
}

func TestFoodAdd_CreatesDayAndTotals(t *testing.T) {
	db := newTestDB(t)
	userID := newUserID()
	seedProfile(t, db, userID)
	today := time.Now()

	fe, err := NewFoodEntryService(db).Add(userID, today, sampleFood())
	require.NoError(t, err)
	assert.NotZero(t, fe.ID)
	assert.NotZero(t, fe.DailyEntryID)

	entry := dailyTotals(t, db, userID, today)
	assert.Equal(t, 330.0, entry.CaloriesConsumed)
	assert.Equal(t, 62.0, entry.ProteinG)
	assert.Equal(t, 0.0, entry.CarbsG)
	assert.Equal(t, 7.0, entry.FatsG)
	// Lazy creation snapshots the profile BMR.
	assert.Equal(t, 1674.0, entry.CaloriesBurnedBMR)
}

func TestFoodAddThenDelete_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	userID := newUserID()
	today := time.Now()
	svc := NewFoodEntryService(db)

	_, err := svc.Add(userID, today, sampleFood())
	require.NoError(t, err)
	before := dailyTotals(t, db, userID, today)

	extra := sampleFood()
	extra.Name = "Rice"
	extra.Calories = 205.5
	extra.CarbsG = 44.5
	fe, err := svc.Add(userID, today, extra)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(userID, fe.ID))

	// Totals return to their pre-add values exactly, no drift.
	after := dailyTotals(t, db, userID, today)
	assert.Equal(t, before.CaloriesConsumed, after.CaloriesConsumed)
	assert.Equal(t, before.ProteinG, after.ProteinG)
	assert.Equal(t, before.CarbsG, after.CarbsG)
	assert.Equal(t, before.FatsG, after.FatsG)
}

func TestFoodRecomputeTotals_Idempotent(t *testing.T) {
	db := newTestDB(t)
	userID := newUserID()
	today := time.Now()
	svc := NewFoodEntryService(db)

	_, err := svc.Add(userID, today, sampleFood())
	require.NoError(t, err)

	require.NoError(t, svc.RecomputeTotals(userID, today))
	first := dailyTotals(t, db, userID, today)
	require.NoError(t, svc.RecomputeTotals(userID, today))
	second := dailyTotals(t, db, userID, today)

	assert.Equal(t, first.CaloriesConsumed, second.CaloriesConsumed)
	assert.Equal(t, first.ProteinG, second.ProteinG)
	assert.Equal(t, first.CarbsG, second.CarbsG)
	assert.Equal(t, first.FatsG, second.FatsG)
}

func TestFoodRecomputeTotals_NoRowIsNoop(t *testing.T) {
	db := newTestDB(t)
	assert.NoError(t, NewFoodEntryService(db).RecomputeTotals(newUserID(), time.Now()))
}

func TestFoodUpdate_RecomputesTotals(t *testing.T) {
	db := newTestDB(t)
	userID := newUserID()
	today := time.Now()
	svc := NewFoodEntryService(db)

	fe, err := svc.Add(userID, today, sampleFood())
	require.NoError(t, err)

	in := sampleFood()
	in.Calories = 500
	_, err = svc.Update(userID, fe.ID, in)
	require.NoError(t, err)

	entry := dailyTotals(t, db, userID, today)
	assert.Equal(t, 500.0, entry.CaloriesConsumed)
}

func TestFoodAdd_Invalid(t *testing.T) {
	db := newTestDB(t)
	svc := NewFoodEntryService(db)

	in := sampleFood()
	in.Name = ""
	_, err := svc.Add(newUserID(), time.Now(), in)
	assert.ErrorIs(t, err, ErrInvalidInput)

	in = sampleFood()
	in.MealType = "brunch"
	_, err = svc.Add(newUserID(), time.Now(), in)
	assert.ErrorIs(t, err, ErrInvalidInput)

	in = sampleFood()
	in.Calories = -10
	_, err = svc.Add(newUserID(), time.Now(), in)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFoodAddFromTemplate(t *testing.T) {
	db := newTestDB(t)
	userID := newUserID()
	today := time.Now()

	tpl := models.FoodTemplate{
		UserID:        userID,
		Name:          "Protein shake",
		Calories:      220,
		ProteinG:      40,
		CarbsG:        8,
		FatsG:         3,
		DefaultAmount: 1,
		DefaultUnit:   "serving",
	}
	require.NoError(t, db.Create(&tpl).Error)

	svc := NewFoodEntryService(db)
	fe, err := svc.AddFromTemplate(userID, today, tpl.ID, "snack")
	require.NoError(t, err)
	assert.Equal(t, "Protein shake", fe.Name)
	assert.Equal(t, 220.0, fe.Calories)
	assert.Equal(t, "snack", fe.MealType)

	var reloaded models.FoodTemplate
	require.NoError(t, db.First(&reloaded, tpl.ID).Error)
	assert.Equal(t, 1, reloaded.UsageCount)
	assert.NotNil(t, reloaded.LastUsed)

	entry := dailyTotals(t, db, userID, today)
	assert.Equal(t, 220.0, entry.CaloriesConsumed)

	_, err = svc.AddFromTemplate(userID, today, tpl.ID+100, "snack")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFoodDelete_WrongUser(t *testing.T) {
	db := newTestDB(t)
	userID := newUserID()
	svc := NewFoodEntryService(db)

	fe, err := svc.Add(userID, time.Now(), sampleFood())
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(newUserID(), fe.ID), ErrNotFound)
}
