package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/poshan-ai/backend/internal/api"
	"github.com/poshan-ai/backend/internal/models"
	"github.com/poshan-ai/backend/internal/service"
	"github.com/poshan-ai/backend/internal/testhelpers"
)

func setupNutritionAPI(t *testing.T) (*gin.Engine, *gorm.DB, uuid.UUID) {
	gin.SetMode(gin.TestMode)
	db := testhelpers.SetupTestDatabase(t)
	user, _ := testhelpers.CreateTestUser(t, db, "api@example.com")
	testhelpers.SeedFoods(t, db, []models.Food{
		{Name: "Spinach", Category: models.CategoryVegetable, Season: models.SeasonAll, Calories: 23, Protein: 2.9, Carbs: 3.6, Fat: 0.4, IsAvailable: true},
		{Name: "Rice", Category: models.CategoryGrain, Season: models.SeasonAll, Calories: 130, Protein: 2.7, Carbs: 28.0, Fat: 0.3, IsAvailable: true},
		{Name: "Lentils", Category: models.CategoryProtein, Season: models.SeasonAll, Calories: 116, Protein: 9.0, Carbs: 20.1, Fat: 0.4, IsAvailable: true},
	})

	catalog := service.NewFoodService(db, nil)
	planner := service.NewPlanGenerator(
		db,
		service.NewRequirementCalculator(nil),
		service.NewFoodSelector(catalog, nil),
		service.NewProfileService(db),
		nil,
	)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(func(c *gin.Context) {
		c.Set("user_id", user.ID)
		c.Next()
	})

	v1 := router.Group("/api/v1")
	api.NewNutritionHandler(db, planner).RegisterRoutes(v1)

	return router, db, user.ID
}

func TestGenerateMealEndpoint(t *testing.T) {
	router, _, userID := setupNutritionAPI(t)

	req := httptest.NewRequest("POST", "/api/v1/nutrition/meals/generate", strings.NewReader(`{
		"meal_type": "lunch",
		"date": "2026-01-15"
	}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var meal models.MealRecommendation
	require.NoError(t, json.NewDecoder(w.Body).Decode(&meal))
	assert.Equal(t, userID, meal.UserID)
	assert.Equal(t, "lunch", meal.MealType)
	assert.NotEmpty(t, meal.Foods)
}

func TestGenerateMealEndpointValidation(t *testing.T) {
	router, _, _ := setupNutritionAPI(t)

	t.Run("unknown meal type", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/nutrition/meals/generate",
			strings.NewReader(`{"meal_type": "brunch"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad date", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/nutrition/meals/generate",
			strings.NewReader(`{"meal_type": "lunch", "date": "15/01/2026"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCreatePlanEndpoint(t *testing.T) {
	router, db, userID := setupNutritionAPI(t)

	req := httptest.NewRequest("POST", "/api/v1/nutrition/plans", strings.NewReader(`{"duration_days": 3}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var plan models.NutritionPlan
	require.NoError(t, json.NewDecoder(w.Body).Decode(&plan))
	assert.Equal(t, userID, plan.UserID)

	var count int64
	require.NoError(t, db.Model(&models.MealRecommendation{}).Where("user_id = ?", userID).Count(&count).Error)
	assert.EqualValues(t, 9, count)

	// The plan's meals are reachable through the plan endpoint.
	req = httptest.NewRequest("GET", "/api/v1/nutrition/plans/"+plan.ID.String()+"/meals", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Meals []models.MealRecommendation `json:"meals"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Len(t, resp.Meals, 9)
}

func TestCreatePlanDefaultsToAWeek(t *testing.T) {
	router, db, userID := setupNutritionAPI(t)

	req := httptest.NewRequest("POST", "/api/v1/nutrition/plans", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.MealRecommendation{}).Where("user_id = ?", userID).Count(&count).Error)
	assert.EqualValues(t, 21, count)
}

func TestPlanMealsNotFound(t *testing.T) {
	router, _, _ := setupNutritionAPI(t)

	req := httptest.NewRequest("GET", "/api/v1/nutrition/plans/"+uuid.NewString()+"/meals", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListMealsEndpoint(t *testing.T) {
	router, _, _ := setupNutritionAPI(t)

	// Generate one meal, then list.
	req := httptest.NewRequest("POST", "/api/v1/nutrition/meals/generate",
		strings.NewReader(`{"meal_type": "dinner"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	req = httptest.NewRequest("GET", "/api/v1/nutrition/meals", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Meals []models.MealRecommendation `json:"meals"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Len(t, resp.Meals, 1)
}
