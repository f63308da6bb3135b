package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/zeelpatel7113/bytewave-sub001/internal/api"
	"github.com/zeelpatel7113/bytewave-sub001/internal/auth"
	"github.com/zeelpatel7113/bytewave-sub001/internal/config"
	"github.com/zeelpatel7113/bytewave-sub001/internal/database"
	"github.com/zeelpatel7113/bytewave-sub001/internal/draft"
	"github.com/zeelpatel7113/bytewave-sub001/internal/models"
	"github.com/zeelpatel7113/bytewave-sub001/internal/token"
)

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	cfg := config.Load()

	log.Printf("Initializing database at %s", cfg.DBPath)
	if err := database.Open(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	if err := createDefaultAdminIfNeeded(cfg); err != nil {
		log.Printf("Warning: failed to create default admin: %v", err)
	}

	if cfg.JWTSecret == "" {
		log.Fatal("BYTEWAVE_JWT_SECRET must be set")
	}
	tokens := token.NewService(cfg.JWTSecret, cfg.TokenTTL)
	authSvc := auth.NewService(tokens)

	// Aggregator drafts flush into the same create path a direct
	// submission uses, seeded with "partial" status.
	serviceRequests := database.NewServiceRequestRepo()
	drafts := draft.New(draft.DefaultDelay, func(key string, req *models.ServiceRequest) error {
		return serviceRequests.Create(req)
	})

	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	// Access gate: one policy checkpoint ahead of every handler
	e.Use(auth.NewGate().Middleware())

	// API routes
	apiGroup := e.Group("/api")
	api.RegisterRoutes(apiGroup, authSvc, drafts, auth.DefaultRateLimiter(), api.Options{
		CookieSecure: cfg.IsProduction(),
	})

	// Public site and dashboard pages
	e.Static("/", cfg.StaticDir)

	log.Printf("Starting Bytewave backend on port %s", cfg.Port)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}

// createDefaultAdminIfNeeded creates a bootstrap admin when the admins
// table is empty. Accounts are otherwise created out-of-band.
func createDefaultAdminIfNeeded(cfg *config.Config) error {
	adminRepo := database.NewAdminRepo()

	count, err := adminRepo.Count()
	if err != nil {
		return err
	}

	if count > 0 {
		return nil // Admins already exist
	}

	log.Printf("Creating default admin %s - CHANGE THIS PASSWORD!", cfg.AdminEmail)

	passwordHash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	return adminRepo.Create(&models.Admin{
		Email:        cfg.AdminEmail,
		Name:         cfg.AdminName,
		PasswordHash: passwordHash,
		IsAdmin:      true,
	})
}
