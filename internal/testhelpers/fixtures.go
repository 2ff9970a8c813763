package testhelpers

import (
	"testing"

	"gorm.io/gorm"

	"github.com/poshan-ai/backend/internal/models"
)

// CreateTestUser inserts a user plus profile and returns both. The profile is
// a complete physiological profile unless mutated by the caller afterwards.
func CreateTestUser(t *testing.T, db *gorm.DB, email string) (*models.User, *models.UserProfile) {
	t.Helper()

	user := &models.User{
		FirstName:    "Test",
		LastName:     "User",
		Email:        email,
		PasswordHash: "not-a-real-hash",
		IsActive:     true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	age := 30
	weight := 70.0
	height := 170.0
	profile := &models.UserProfile{
		UserID:        user.ID,
		Age:           &age,
		Gender:        "M",
		Weight:        &weight,
		Height:        &height,
		ActivityLevel: "moderate",
		Goal:          "health",
	}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to create test profile: %v", err)
	}

	return user, profile
}

// SeedFoods inserts the given foods into the catalog.
func SeedFoods(t *testing.T, db *gorm.DB, foods []models.Food) {
	t.Helper()
	for i := range foods {
		// Create replaces a zero-value IsAvailable with the column default
		// (true), both in the row and in the struct, so an IsAvailable: false
		// seed would silently become available; remember it and write it back.
		available := foods[i].IsAvailable
		if err := db.Create(&foods[i]).Error; err != nil {
			t.Fatalf("failed to seed food %q: %v", foods[i].Name, err)
		}
		if !available {
			if err := db.Model(&foods[i]).Update("is_available", false).Error; err != nil {
				t.Fatalf("failed to seed food %q: %v", foods[i].Name, err)
			}
			foods[i].IsAvailable = false
		}
	}
}
