package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogInjection(t *testing.T) {
	db := newTestDB(t)
	userID := newUserID()
	svc := NewInjectionService(db)

	c, err := svc.CreateCompound(userID, CompoundInput{
		Name:           "Test Cypionate",
		Concentration:  200,
		EsterType:      "cypionate",
		HalfLifeDays:   8,
		Category:       "trt",
		WeeklyTargetMg: 140,
	})
	require.NoError(t, err)

	e, err := svc.LogInjection(userID, InjectionInput{
		CompoundID:    c.ID,
		DoseMg:        20,
		VolumeMl:      0.1,
		InjectionSite: "delt_left",
		Date:          "2026-08-30",
	})
	require.NoError(t, err)
	assert.Equal(t, 20.0, e.DoseMg)
	assert.Equal(t, "Test Cypionate", e.Compound.Name)
	assert.Equal(t, "2026-08-30", e.InjectionDate.Format("2006-01-02"))

	// Empty date defaults to today.
	e, err = svc.LogInjection(userID, InjectionInput{CompoundID: c.ID, DoseMg: 20})
	require.NoError(t, err)
	assert.Equal(t, time.Now().Format("2006-01-02"), e.InjectionDate.Format("2006-01-02"))
}

func TestLogInjection_Invalid(t *testing.T) {
	db := newTestDB(t)
	userID := newUserID()
	svc := NewInjectionService(db)

	c, err := svc.CreateCompound(userID, CompoundInput{Name: "Test-C"})
	require.NoError(t, err)

	_, err = svc.LogInjection(userID, InjectionInput{CompoundID: c.ID, DoseMg: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.LogInjection(userID, InjectionInput{CompoundID: c.ID, DoseMg: 20, Date: "30/08/2026"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Another user's compound is invisible.
	_, err = svc.LogInjection(newUserID(), InjectionInput{CompoundID: c.ID, DoseMg: 20})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListInjections_Window(t *testing.T) {
	db := newTestDB(t)
	userID := newUserID()
	svc := NewInjectionService(db)

	c, err := svc.CreateCompound(userID, CompoundInput{Name: "Test-C"})
	require.NoError(t, err)

	old := dayStart(time.Now()).AddDate(0, 0, -20).Format("2006-01-02")
	recent := dayStart(time.Now()).AddDate(0, 0, -2).Format("2006-01-02")
	for _, d := range []string{old, recent} {
		_, err := svc.LogInjection(userID, InjectionInput{CompoundID: c.ID, DoseMg: 20, Date: d})
		require.NoError(t, err)
	}

	out, err := svc.ListInjections(userID, 7)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, recent, out[0].InjectionDate.Format("2006-01-02"))
	assert.Equal(t, "Test-C", out[0].Compound.Name)

	out, err = svc.ListInjections(userID, 30)
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestCompoundCRUD(t *testing.T) {
	db := newTestDB(t)
	userID := newUserID()
	svc := NewInjectionService(db)

	c, err := svc.CreateCompound(userID, CompoundInput{Name: "Test-C", WeeklyTargetMg: 140})
	require.NoError(t, err)

	c, err = svc.UpdateCompound(userID, c.ID, CompoundInput{Name: "Test-C", WeeklyTargetMg: 100})
	require.NoError(t, err)
	assert.Equal(t, 100.0, c.WeeklyTargetMg)

	_, err = svc.UpdateCompound(newUserID(), c.ID, CompoundInput{Name: "x"})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.DeleteCompound(userID, c.ID))
	assert.ErrorIs(t, svc.DeleteCompound(userID, c.ID), ErrNotFound)

	_, err = svc.CreateCompound(userID, CompoundInput{Name: "Bad", WeeklyTargetMg: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
