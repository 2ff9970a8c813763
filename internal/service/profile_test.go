package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/poshan-ai/backend/internal/service"
	"github.com/poshan-ai/backend/internal/testhelpers"
	"github.com/poshan-ai/backend/internal/types"
)

func TestGetProfile(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	user, _ := testhelpers.CreateTestUser(t, db, "profile@example.com")
	svc := service.NewProfileService(db)

	profile, err := svc.GetProfile(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, profile.UserID)

	_, err = svc.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateProfile(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	user, _ := testhelpers.CreateTestUser(t, db, "update@example.com")
	svc := service.NewProfileService(db)

	weight := 82.5
	goal := "lose"
	diseases := "diabetes, hypertension"
	updated, err := svc.UpdateProfile(context.Background(), user.ID, &types.UpdateProfileRequest{
		Weight:   &weight,
		Goal:     &goal,
		Diseases: &diseases,
	})
	require.NoError(t, err)

	assert.Equal(t, 82.5, *updated.Weight)
	assert.Equal(t, "lose", updated.Goal)
	assert.Equal(t, "diabetes, hypertension", updated.Diseases)

	// Fields not in the request are untouched.
	assert.Equal(t, "M", updated.Gender)
	require.NotNil(t, updated.Height)
	assert.Equal(t, 170.0, *updated.Height)
}
