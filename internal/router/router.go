package router

import (
	"log"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/warblerapp/warbler/internal/handlers"
	"github.com/warblerapp/warbler/internal/middleware"
	"github.com/warblerapp/warbler/internal/models"
	"github.com/warblerapp/warbler/internal/repositories"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
}

// SetupRoutes migrates the schema, wires dependencies and registers all
// application routes
func SetupRoutes(e *echo.Echo, db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Message{},
		&models.Follow{},
		&models.Like{},
		&models.Session{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewGormUserRepository(db)
	followRepo := repositories.NewGormFollowRepository(db)
	messageRepo := repositories.NewGormMessageRepository(db)
	likeRepo := repositories.NewGormLikeRepository(db)
	sessionRepo := repositories.NewGormSessionRepository(db)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(userRepo, sessionRepo)
	userHandler := handlers.NewUserHandler(userRepo, followRepo)
	followHandler := handlers.NewFollowHandler(followRepo, userRepo)
	messageHandler := handlers.NewMessageHandler(messageRepo, likeRepo, userRepo)
	likeHandler := handlers.NewLikeHandler(likeRepo, userRepo)

	// --- Unprotected routes ---
	public := e.Group("/api/v1")
	authHandler.RegisterAuthRoutes(public.Group("/auth"))
	userHandler.RegisterPublicRoutes(public)
	followHandler.RegisterPublicRoutes(public)
	messageHandler.RegisterPublicRoutes(public)
	likeHandler.RegisterPublicRoutes(public)

	// --- Protected routes (require a valid session token) ---
	api := e.Group("/api/v1")
	api.Use(middleware.SessionAuth(sessionRepo))

	authHandler.RegisterSessionRoutes(api)
	userHandler.RegisterProfileRoutes(api)
	followHandler.RegisterFollowRoutes(api)
	messageHandler.RegisterMessageRoutes(api)
	likeHandler.RegisterLikeRoutes(api)

	log.Println("All routes configured.")
}
