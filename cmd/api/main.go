package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/poshan-ai/backend/config"
	"github.com/poshan-ai/backend/internal/database"
	"github.com/poshan-ai/backend/internal/server"
	"github.com/poshan-ai/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		// Caching is optional; the catalog falls back to the database.
		log.Printf("Redis unavailable, continuing without cache: %v", err)
		redisClient = nil
	}

	var files service.FileStore
	if s3cfg, err := config.NewS3Config(context.Background(), cfg); err != nil {
		log.Printf("S3 unavailable, report file storage disabled: %v", err)
	} else {
		files = s3cfg
	}

	srv := server.New(cfg, db, redisClient, files)

	errChan := make(chan error, 1)
	go func() {
		log.Println("Starting server...")
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
