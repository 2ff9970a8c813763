package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/poshan-ai/backend/internal/models"
	"github.com/poshan-ai/backend/internal/service"
	"github.com/poshan-ai/backend/internal/types"
)

const defaultPlanDays = 7

// NutritionHandler exposes meal and plan generation endpoints.
type NutritionHandler struct {
	db      *gorm.DB
	planner *service.PlanGenerator
}

func NewNutritionHandler(db *gorm.DB, planner *service.PlanGenerator) *NutritionHandler {
	return &NutritionHandler{
		db:      db,
		planner: planner,
	}
}

func (h *NutritionHandler) RegisterRoutes(router *gin.RouterGroup) {
	nutrition := router.Group("/nutrition")
	{
		nutrition.GET("/meals", h.ListMeals)
		nutrition.POST("/meals/generate", h.GenerateMeal)
		nutrition.GET("/plans", h.ListPlans)
		nutrition.POST("/plans", h.CreatePlan)
		nutrition.GET("/plans/:id/meals", h.PlanMeals)
	}
}

func (h *NutritionHandler) ListMeals(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var meals []models.MealRecommendation
	err := h.db.WithContext(c.Request.Context()).
		Preload("Foods").
		Where("user_id = ?", userID).
		Order("date DESC, meal_type").
		Find(&meals).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch meals"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

func (h *NutritionHandler) GenerateMeal(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req types.GenerateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	meal, err := h.planner.GenerateMealRecommendation(c.Request.Context(), userID, req.MealType, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate meal recommendation"})
		return
	}

	c.JSON(http.StatusCreated, meal)
}

func (h *NutritionHandler) ListPlans(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var plans []models.NutritionPlan
	err := h.db.WithContext(c.Request.Context()).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&plans).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch plans"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

func (h *NutritionHandler) CreatePlan(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req types.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.DurationDays == 0 {
		req.DurationDays = defaultPlanDays
	}

	plan, err := h.planner.CreateNutritionPlan(c.Request.Context(), userID, req.DurationDays)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create nutrition plan"})
		return
	}

	c.JSON(http.StatusCreated, plan)
}

func (h *NutritionHandler) PlanMeals(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
		return
	}

	var plan models.NutritionPlan
	if err := h.db.WithContext(c.Request.Context()).First(&plan, "id = ? AND user_id = ?", planID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "plan not found"})
		return
	}

	meals, err := h.planner.PlanMeals(c.Request.Context(), &plan)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch plan meals"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"plan": plan, "meals": meals})
}
