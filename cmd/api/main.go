package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/justsurfingit/jobboard-api/internal/auth"
	"github.com/justsurfingit/jobboard-api/internal/config"
	"github.com/justsurfingit/jobboard-api/internal/database"
	"github.com/justsurfingit/jobboard-api/internal/handlers"
	"github.com/justsurfingit/jobboard-api/internal/routes"
	"github.com/justsurfingit/jobboard-api/internal/services"
	"github.com/justsurfingit/jobboard-api/internal/store"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading config from environment")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}
	gin.SetMode(cfg.GinMode)

	// 2. Database Connection
	db, err := database.Connect(cfg.DatabaseDSN, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// 3. Initialize Core Services (Dependencies)
	jobStore := store.NewGormStore(db)
	jobService := services.NewJobService(jobStore, logger)
	jobHandler := handlers.NewJobHandler(logger, jobService)
	verifier := auth.NewIdentityClient(cfg.IdentityURL)

	// 4. Setup Router, CORS & Routes
	r := routes.SetupRouter(logger, jobHandler, verifier)

	logger.Info("Server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Server failed to start", zap.Error(err))
	}
}
