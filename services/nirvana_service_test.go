package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSession() NirvanaSessionInput {
	return NirvanaSessionInput{
		SessionType:     "mobility",
		DurationMinutes: 25,
		Difficulty:      "intermediate",
		QualityRating:   4,
		Exercises:       []string{"jefferson curl", "couch stretch"},
		BodyParts:       []string{"hamstrings", "hips"},
	}
}

func TestNirvanaCreate(t *testing.T) {
	db := newTestDB(t)
	userID := newUserID()

	sess, err := NewNirvanaService(db).Create(userID, sampleSession())
	require.NoError(t, err)
	assert.Equal(t, "jefferson curl,couch stretch", sess.Exercises)
	assert.Equal(t, "hamstrings,hips", sess.BodyParts)
	assert.Equal(t, time.Now().Format("2006-01-02"), sess.SessionDate.Format("2006-01-02"))
}

func TestNirvanaCreate_Invalid(t *testing.T) {
	db := newTestDB(t)
	svc := NewNirvanaService(db)

	in := sampleSession()
	in.QualityRating = 6
	_, err := svc.Create(newUserID(), in)
	assert.ErrorIs(t, err, ErrInvalidInput)

	in = sampleSession()
	in.Difficulty = "impossible"
	_, err = svc.Create(newUserID(), in)
	assert.ErrorIs(t, err, ErrInvalidInput)

	in = sampleSession()
	in.Date = "yesterday"
	_, err = svc.Create(newUserID(), in)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNirvanaList_Window(t *testing.T) {
	db := newTestDB(t)
	userID := newUserID()
	svc := NewNirvanaService(db)

	old := sampleSession()
	old.Date = time.Now().AddDate(0, 0, -20).Format("2006-01-02")
	_, err := svc.Create(userID, old)
	require.NoError(t, err)

	_, err = svc.Create(userID, sampleSession())
	require.NoError(t, err)

	out, err := svc.List(userID, 7)
	require.NoError(t, err)
	assert.Len(t, out, 1)

	out, err = svc.List(userID, 30)
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestNirvanaUpdateDelete_UserScoping(t *testing.T) {
	db := newTestDB(t)
	userID := newUserID()
	svc := NewNirvanaService(db)

	sess, err := svc.Create(userID, sampleSession())
	require.NoError(t, err)

	_, err = svc.Update(newUserID(), sess.ID, sampleSession())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete(newUserID(), sess.ID), ErrNotFound)

	in := sampleSession()
	in.QualityRating = 5
	got, err := svc.Update(userID, sess.ID, in)
	require.NoError(t, err)
	assert.Equal(t, 5, got.QualityRating)

	require.NoError(t, svc.Delete(userID, sess.ID))
}
