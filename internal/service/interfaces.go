package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/poshan-ai/backend/internal/models"
	"github.com/poshan-ai/backend/internal/types"
)

// CatalogStore is the read interface the food selector consumes.
type CatalogStore interface {
	QueryAvailable(ctx context.Context, season string, categoryIn, categoryNotIn []string) ([]models.Food, error)
}

// ProfileStore supplies the physiological profile the engine reads.
type ProfileStore interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
}

// FileStore abstracts the object storage used for medical report files.
type FileStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IProfileService defines the interface for user profile operations
type IProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.UserProfile, error)
}

// INutritionService is the surface the engine exposes to request handlers.
type INutritionService interface {
	GenerateMealRecommendation(ctx context.Context, userID uuid.UUID, mealType string, date time.Time) (*models.MealRecommendation, error)
	CreateNutritionPlan(ctx context.Context, userID uuid.UUID, durationDays int) (*models.NutritionPlan, error)
}
