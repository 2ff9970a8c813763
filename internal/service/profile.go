package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/poshan-ai/backend/internal/models"
	"github.com/poshan-ai/backend/internal/types"
)

// ProfileService handles user health profile operations
type ProfileService struct {
	db *gorm.DB
}

// Ensure ProfileService implements IProfileService and ProfileStore
var (
	_ IProfileService = (*ProfileService)(nil)
	_ ProfileStore    = (*ProfileService)(nil)
)

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// GetProfile retrieves a user's health profile
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetByUserID implements ProfileStore for the plan generator.
func (s *ProfileService) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	return s.GetProfile(ctx, userID)
}

// UpdateProfile updates the physiological fields that are provided.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}

	if req.Age != nil {
		profile.Age = req.Age
	}
	if req.Gender != nil {
		profile.Gender = *req.Gender
	}
	if req.Weight != nil {
		profile.Weight = req.Weight
	}
	if req.Height != nil {
		profile.Height = req.Height
	}
	if req.ActivityLevel != nil {
		profile.ActivityLevel = *req.ActivityLevel
	}
	if req.Goal != nil {
		profile.Goal = *req.Goal
	}
	if req.Diseases != nil {
		profile.Diseases = *req.Diseases
	}
	if req.Allergies != nil {
		profile.Allergies = *req.Allergies
	}
	if req.DietaryPrefs != nil {
		profile.DietaryPrefs = *req.DietaryPrefs
	}

	if err := s.db.WithContext(ctx).Save(&profile).Error; err != nil {
		return nil, err
	}

	return &profile, nil
}
