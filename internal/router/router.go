package router

import (
	"github.com/gin-gonic/gin"

	"github.com/poshan-ai/backend/internal/api"
	"github.com/poshan-ai/backend/internal/middleware"
	"github.com/poshan-ai/backend/internal/service"
)

// SetupRouter configures the application routes
func SetupRouter(
	authHandler *api.AuthHandler,
	profileHandler *api.ProfileHandler,
	foodHandler *api.FoodHandler,
	nutritionHandler *api.NutritionHandler,
	medicalHandler *api.MedicalHandler,
	authService service.IAuthService,
	allowedOrigins []string,
) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS(allowedOrigins))

	v1 := router.Group("/api/v1")

	authHandler.RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	{
		profileHandler.RegisterRoutes(protected)
		foodHandler.RegisterRoutes(protected)
		nutritionHandler.RegisterRoutes(protected)
		medicalHandler.RegisterRoutes(protected)
	}

	return router
}
