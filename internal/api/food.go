package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/poshan-ai/backend/internal/models"
	"github.com/poshan-ai/backend/internal/service"
)

var validSeasons = map[string]bool{
	models.SeasonSpring: true,
	models.SeasonSummer: true,
	models.SeasonAutumn: true,
	models.SeasonWinter: true,
	models.SeasonAll:    true,
}

// FoodHandler exposes the read-only catalog endpoints.
type FoodHandler struct {
	foodService *service.FoodService
}

func NewFoodHandler(foodService *service.FoodService) *FoodHandler {
	return &FoodHandler{foodService: foodService}
}

func (h *FoodHandler) RegisterRoutes(router *gin.RouterGroup) {
	foods := router.Group("/foods")
	{
		foods.GET("", h.ListFoods)
		foods.GET("/:id", h.GetFood)
		foods.GET("/seasonal/:season", h.SeasonalFoods)
	}
}

func (h *FoodHandler) ListFoods(c *gin.Context) {
	foods, err := h.foodService.ListFoods(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch foods"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"foods": foods})
}

func (h *FoodHandler) GetFood(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food id"})
		return
	}

	food, err := h.foodService.GetFood(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
		return
	}

	c.JSON(http.StatusOK, food)
}

func (h *FoodHandler) SeasonalFoods(c *gin.Context) {
	season := c.Param("season")
	if !validSeasons[season] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown season"})
		return
	}

	foods, err := h.foodService.SeasonalFoods(c.Request.Context(), season)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch seasonal foods"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"season": season, "foods": foods})
}
