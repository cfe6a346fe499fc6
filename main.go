// File: /main.go
package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"eventfdr-api/config"
	"eventfdr-api/database"
	"eventfdr-api/jobs"
	"eventfdr-api/middleware"
	"eventfdr-api/routes"
	"eventfdr-api/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Build the stores: MySQL by default, in-memory for demo runs
	var stores routes.Stores
	if cfg.Store == "memory" {
		log.Println("Running with in-memory stores")
		stores = routes.MemoryStores(database.SeedEvents())
	} else {
		db, err := database.Initialize(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}

		if err := database.Migrate(db); err != nil {
			log.Fatal("Failed to migrate database:", err)
		}

		if err := database.SeedData(db); err != nil {
			log.Printf("Warning: Failed to seed database: %v", err)
		}

		stores = routes.GormStores(db)
	}

	// Email is optional; without SMTP credentials no mail goes out
	var emailService *services.EmailService
	if cfg.EmailEnabled {
		emailService = services.NewEmailService(cfg)
	}

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RateLimit(120, 30))

	bookingService := routes.SetupRoutes(router, stores, cfg, emailService)

	// Expire bookings stuck in pending after the payment step stalled
	cleanupJob := jobs.NewBookingCleanupJob(bookingService, 5*time.Minute, cfg.BookingTTL)
	cleanupJob.Start()
	defer cleanupJob.Stop()

	log.Printf("Starting EventFDR API server on port %s", cfg.Port)
	log.Printf("Health check available at: http://localhost:%s/ping", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
