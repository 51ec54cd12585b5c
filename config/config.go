package config

import (
	"fmt"
	"os"

	"healthtrack/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Load reads .env if present. A missing file is not an error: in
// production the environment is set by the deployment.
func Load() {
	_ = godotenv.Load()
}

// InitDB opens the Postgres connection from DB_* env vars and migrates
// the schema. The handle is returned for injection rather than held in
// a package global.
func InitDB() (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate runs AutoMigrate for every entity. Shared with the test
// harness, which runs it against sqlite.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Profile{},
		&models.DailyEntry{},
		&models.FoodEntry{},
		&models.ExerciseEntry{},
		&models.InjectableCompound{},
		&models.InjectionEntry{},
		&models.NirvanaSession{},
		&models.FoodTemplate{},
		&models.ProgressMilestone{},
		&models.WeeklyEntry{},
	)
	if err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

// Port returns the listen address, defaulting to :8080.
func Port() string {
	if p := os.Getenv("PORT"); p != "" {
		return ":" + p
	}
	return ":8080"
}
