package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/warblerapp/warbler/internal/router"
	"github.com/warblerapp/warbler/pkg/config"
	"github.com/warblerapp/warbler/validators"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer config.CloseDB(db)

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Validator
	e.Validator = validators.NewValidator()

	// Setup routes and dependencies
	router.SetupRoutes(e, db)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
