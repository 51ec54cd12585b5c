// services/profile_service.go
package services

import (
	"errors"
	"fmt"

	"healthtrack/models"
	"healthtrack/utils"

	"gorm.io/gorm"
)

type ProfileService struct{ db *gorm.DB }

func NewProfileService(db *gorm.DB) *ProfileService { return &ProfileService{db: db} }

// ProfileInput carries the user-supplied fields at profile setup.
// CalorieTarget is optional — when absent the target follows TDEE.
type ProfileInput struct {
	Name          string  `json:"name" binding:"required"`
	Email         string  `json:"email"`
	Age           int     `json:"age" binding:"required"`
	Gender        string  `json:"gender" binding:"required"`
	HeightCm      float64 `json:"height_cm" binding:"required"`
	WeightKg      float64 `json:"weight_kg" binding:"required"`
	ActivityLevel string  `json:"activity_level" binding:"required"`
	CalorieTarget *int    `json:"calorie_target"`
	Units         string  `json:"units"`
}

// ProfileUpdate is a partial update: nil means "field not present".
// The recalculation policy pattern-matches on presence, so every
// mutable attribute gets its own optional slot.
type ProfileUpdate struct {
	Name          *string  `json:"name"`
	Email         *string  `json:"email"`
	Age           *int     `json:"age"`
	Gender        *string  `json:"gender"`
	HeightCm      *float64 `json:"height_cm"`
	WeightKg      *float64 `json:"weight_kg"`
	ActivityLevel *string  `json:"activity_level"`
	CalorieTarget *int     `json:"calorie_target"`
	Units         *string  `json:"units"`
}

func validGender(g string) bool {
	return g == "male" || g == "female" || g == "other"
}

func validateBodyStats(weightKg, heightCm float64, age int) error {
	if !utils.ValidNumber(weightKg) || !utils.ValidNumber(heightCm) {
		return fmt.Errorf("%w: weight and height must be finite numbers", ErrInvalidInput)
	}
	if weightKg <= 0 || heightCm <= 0 || age <= 0 {
		return fmt.Errorf("%w: weight, height and age must be positive", ErrInvalidInput)
	}
	return nil
}

// Create sets up the single profile row for a user, deriving BMR, TDEE,
// calorie target and macro targets. An explicit calorie target in the
// input is honored; macros are computed from whichever target applies.
func (s *ProfileService) Create(userID string, in ProfileInput) (*models.Profile, error) {
	if err := validateBodyStats(in.WeightKg, in.HeightCm, in.Age); err != nil {
		return nil, err
	}
	if !validGender(in.Gender) {
		return nil, fmt.Errorf("%w: gender must be male, female or other", ErrInvalidInput)
	}
	if _, ok := utils.ActivityMultipliers[in.ActivityLevel]; !ok {
		return nil, fmt.Errorf("%w: unknown activity level %q", ErrInvalidInput, in.ActivityLevel)
	}

	bmr := utils.CalculateBMR(in.WeightKg, in.HeightCm, in.Age, in.Gender)
	tdee := utils.CalculateTDEE(bmr, in.ActivityLevel)
	target := tdee
	if in.CalorieTarget != nil {
		if *in.CalorieTarget <= 0 {
			return nil, fmt.Errorf("%w: calorie target must be positive", ErrInvalidInput)
		}
		target = *in.CalorieTarget
	}
	macros := utils.MacroTargets(target)

	units := in.Units
	if units == "" {
		units = "metric"
	}

	p := models.Profile{
		UserID:        userID,
		Name:          in.Name,
		Email:         in.Email,
		Age:           in.Age,
		Gender:        in.Gender,
		HeightCm:      in.HeightCm,
		WeightKg:      in.WeightKg,
		ActivityLevel: in.ActivityLevel,
		BMR:           bmr,
		TDEE:          tdee,
		CalorieTarget: target,
		ProteinTarget: macros.ProteinG,
		CarbsTarget:   macros.CarbsG,
		FatsTarget:    macros.FatsG,
		Units:         units,
	}
	if err := s.db.Create(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ProfileService) Get(userID string) (*models.Profile, error) {
	var p models.Profile
	if err := s.db.Where("user_id = ?", userID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: profile for user", ErrNotFound)
		}
		return nil, err
	}
	return &p, nil
}

// Update applies a partial update. If any of weight, height, age,
// gender or activity level is present, BMR and TDEE are recomputed
// from the merged values. The calorie target and macro targets follow
// the new TDEE only when no explicit calorie_target rides in the same
// update — explicit targets are sticky and never auto-rebalanced.
func (s *ProfileService) Update(userID string, up ProfileUpdate) (*models.Profile, error) {
	p, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	if up.Name != nil {
		p.Name = *up.Name
	}
	if up.Email != nil {
		p.Email = *up.Email
	}
	if up.Units != nil {
		if *up.Units != "metric" && *up.Units != "imperial" {
			return nil, fmt.Errorf("%w: units must be metric or imperial", ErrInvalidInput)
		}
		p.Units = *up.Units
	}

	needsRecalc := up.WeightKg != nil || up.HeightCm != nil || up.Age != nil ||
		up.Gender != nil || up.ActivityLevel != nil

	if up.Gender != nil {
		if !validGender(*up.Gender) {
			return nil, fmt.Errorf("%w: gender must be male, female or other", ErrInvalidInput)
		}
		p.Gender = *up.Gender
	}
	if up.ActivityLevel != nil {
		if _, ok := utils.ActivityMultipliers[*up.ActivityLevel]; !ok {
			return nil, fmt.Errorf("%w: unknown activity level %q", ErrInvalidInput, *up.ActivityLevel)
		}
		p.ActivityLevel = *up.ActivityLevel
	}
	if up.WeightKg != nil {
		p.WeightKg = *up.WeightKg
	}
	if up.HeightCm != nil {
		p.HeightCm = *up.HeightCm
	}
	if up.Age != nil {
		p.Age = *up.Age
	}

	if needsRecalc {
		if err := validateBodyStats(p.WeightKg, p.HeightCm, p.Age); err != nil {
			return nil, err
		}
		p.BMR = utils.CalculateBMR(p.WeightKg, p.HeightCm, p.Age, p.Gender)
		p.TDEE = utils.CalculateTDEE(p.BMR, p.ActivityLevel)

		if up.CalorieTarget == nil {
			p.CalorieTarget = p.TDEE
			macros := utils.MacroTargets(p.TDEE)
			p.ProteinTarget = macros.ProteinG
			p.CarbsTarget = macros.CarbsG
			p.FatsTarget = macros.FatsG
		}
	}

	if up.CalorieTarget != nil {
		if *up.CalorieTarget <= 0 {
			return nil, fmt.Errorf("%w: calorie target must be positive", ErrInvalidInput)
		}
		p.CalorieTarget = *up.CalorieTarget
	}

	if err := s.db.Save(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProfileService) Delete(userID string) error {
	res := s.db.Where("user_id = ?", userID).Delete(&models.Profile{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: profile for user", ErrNotFound)
	}
	return nil
}
