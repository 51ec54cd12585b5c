package services

import (
	"path/filepath"
	"testing"

	"healthtrack/config"
	"healthtrack/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a throwaway sqlite database with the full schema.
// A file under t.TempDir() rather than :memory: so GORM's connection
// pool always sees the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func newUserID() string { return uuid.NewString() }

// seedProfile creates a baseline profile the derived-field tests can
// compute against: male, 70kg, 175cm, 25y, moderately active.
func seedProfile(t *testing.T, db *gorm.DB, userID string) *models.Profile {
	t.Helper()
	p, err := NewProfileService(db).Create(userID, ProfileInput{
		Name:          "Test User",
		Age:           25,
		Gender:        "male",
		HeightCm:      175,
		WeightKg:      70,
		ActivityLevel: "moderately_active",
	})
	require.NoError(t, err)
	return p
}
