package main

import (
	"time"

	"ThreatLens/config/environment"
	"ThreatLens/controllers"
	"ThreatLens/logging"
	"ThreatLens/middleware"
	v1 "ThreatLens/routes/v1"
	"ThreatLens/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	logging.InitLogger(logrus.InfoLevel)
	log := logging.GetLogger()

	// Load environment variables
	cfg, err := environment.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Model client is built once and read-only afterwards
	modelClient, err := services.NewModelClient(cfg)
	if err != nil {
		log.Fatalf("Failed to create model client: %v", err)
	}
	log.Infof("Using model provider %s (%s)", modelClient.GetName(), modelClient.GetModel())
	if cfg.GCPProjectID != "" {
		log.Infof("GCP project %s, location %s", cfg.GCPProjectID, cfg.GCPLocation)
	}

	threatService := services.NewThreatService(modelClient)
	threatController := controllers.NewThreatController(threatService)

	// Setup Gin router
	r := gin.Default()

	r.Use(middleware.ErrorHandlerMiddleware())

	// CORS Middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Allow all origins
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Register all routes
	v1.RegisterRoutes(r, threatController)

	log.Infof("Server running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
