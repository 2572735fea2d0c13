package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/leadradar/leadradar-api/internal/api/middleware"
	"github.com/leadradar/leadradar-api/internal/api/routes"
	"github.com/leadradar/leadradar-api/internal/config"
	"github.com/leadradar/leadradar-api/internal/config/db"
	"github.com/leadradar/leadradar-api/pkg/metrics"
	"github.com/leadradar/leadradar-api/pkg/storage"

	_ "github.com/leadradar/leadradar-api/docs"
)

// @title LeadRadar API
// @version 1.0
// @description Lead capture backend for trade fairs: forms, leads and exports.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection
	conn, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto migrate database schemas
	if err := db.Migrate(conn); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Export archival is optional and disabled without a MinIO endpoint
	archive, err := storage.NewFromConfig()
	if err != nil {
		log.Printf("Warning: export archival disabled: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	m := metrics.New()
	router.Use(middleware.CORSMiddleware())
	router.Use(m.Middleware())

	routes.RegisterRoutes(router, conn, archive, m)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
