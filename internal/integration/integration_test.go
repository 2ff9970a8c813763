package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poshan-ai/backend/internal/models"
	"github.com/poshan-ai/backend/internal/service"
	"github.com/poshan-ai/backend/internal/testhelpers"
	"github.com/poshan-ai/backend/internal/types"
)

// TestRecommendationFlow exercises the full path against a real Postgres
// instance: register, complete the profile, upload and analyze a medical
// report, then generate a plan.
func TestRecommendationFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	db := testhelpers.SetupPostgresDatabase(t)
	ctx := context.Background()

	require.NoError(t, db.Create(&models.Disease{
		Name:              "diabetes",
		Category:          "metabolic",
		DietaryGuidelines: "Prefer low glycemic index foods.",
	}).Error)

	testhelpers.SeedFoods(t, db, []models.Food{
		{Name: "Spinach", Category: models.CategoryVegetable, Season: models.SeasonAll, Calories: 23, Protein: 2.9, Carbs: 3.6, Fat: 0.4, IsAvailable: true},
		{Name: "Rice", Category: models.CategoryGrain, Season: models.SeasonAll, Calories: 130, Protein: 2.7, Carbs: 28.0, Fat: 0.3, IsAvailable: true},
		{Name: "Lentils", Category: models.CategoryProtein, Season: models.SeasonAll, Calories: 116, Protein: 9.0, Carbs: 20.1, Fat: 0.4, IsAvailable: true},
		{Name: "Walnut", Category: models.CategoryNuts, Season: models.SeasonAll, Calories: 654, Protein: 15.2, Carbs: 13.7, Fat: 65.2, IsAvailable: true},
	})

	authSvc := service.NewAuthService(db, "integration-secret")
	profileSvc := service.NewProfileService(db)
	medicalSvc := service.NewMedicalService(db, service.NewReportScanner(nil, nil), nil)
	planner := service.NewPlanGenerator(
		db,
		service.NewRequirementCalculator(nil),
		service.NewFoodSelector(service.NewFoodService(db, nil), nil),
		profileSvc,
		nil,
	)

	// Register and resolve the user.
	token, err := authSvc.Register(ctx, &types.RegisterRequest{
		FirstName: "Bina",
		LastName:  "Gurung",
		Email:     "bina@example.com",
		Password:  "password123",
	})
	require.NoError(t, err)
	claims, err := authSvc.ValidateToken(token)
	require.NoError(t, err)

	// Complete the physiological profile.
	age := 42
	weight := 68.0
	height := 158.0
	gender := "F"
	goal := "lose"
	_, err = profileSvc.UpdateProfile(ctx, claims.UserID, &types.UpdateProfileRequest{
		Age:    &age,
		Gender: &gender,
		Weight: &weight,
		Height: &height,
		Goal:   &goal,
	})
	require.NoError(t, err)

	// Upload and analyze a report; the detected condition lands on the
	// profile for the engine to pick up.
	report, err := medicalSvc.UploadReport(ctx, claims.UserID, "blood_test", "", nil, "",
		"HbA1c: 7.2. Consistent with diabetes.")
	require.NoError(t, err)
	analyzed, err := medicalSvc.AnalyzeReport(ctx, claims.UserID, report.ID)
	require.NoError(t, err)
	require.Equal(t, models.ReportCompleted, analyzed.Status)
	require.Contains(t, analyzed.DetectedConditions, "diabetes")

	diseases := analyzed.DetectedConditions
	_, err = profileSvc.UpdateProfile(ctx, claims.UserID, &types.UpdateProfileRequest{Diseases: &diseases})
	require.NoError(t, err)

	// Generate a 3-day plan and verify its meals honor the exclusion.
	plan, err := planner.CreateNutritionPlan(ctx, claims.UserID, 3)
	require.NoError(t, err)

	meals, err := planner.PlanMeals(ctx, plan)
	require.NoError(t, err)
	require.Len(t, meals, 9)

	for _, meal := range meals {
		for _, f := range meal.Foods {
			assert.NotEqual(t, models.CategoryGrain, f.Category, "meal %s on %s", meal.MealType, meal.Date)
		}
	}
	assert.Contains(t, plan.HealthFocus, "diabetes")
}
