package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/poshan-ai/backend/config"
	"github.com/poshan-ai/backend/internal/api"
	"github.com/poshan-ai/backend/internal/router"
	"github.com/poshan-ai/backend/internal/service"
)

// Server wires the services and handlers behind an HTTP server.
type Server struct {
	cfg    *config.Config
	engine *gin.Engine
	http   *http.Server
}

// New builds the full service graph and router.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, files service.FileStore) *Server {
	authService := service.NewAuthService(db, cfg.JWTSecret)
	profileService := service.NewProfileService(db)
	foodService := service.NewFoodService(db, redisClient)

	calc := service.NewRequirementCalculator(nil)
	selector := service.NewFoodSelector(foodService, nil)
	planner := service.NewPlanGenerator(db, calc, selector, profileService, nil)

	scanner := service.NewReportScanner(nil, nil)
	medicalService := service.NewMedicalService(db, scanner, files)

	engine := router.SetupRouter(
		api.NewAuthHandler(authService),
		api.NewProfileHandler(profileService),
		api.NewFoodHandler(foodService),
		api.NewNutritionHandler(db, planner),
		api.NewMedicalHandler(medicalService),
		authService,
		cfg.AllowedOrigins,
	)

	return &Server{
		cfg:    cfg,
		engine: engine,
	}
}

// Start begins serving HTTP. It blocks until the server stops.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:    fmt.Sprintf("%s:%s", s.cfg.ServerHost, s.cfg.ServerPort),
		Handler: s.engine,
	}

	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}
