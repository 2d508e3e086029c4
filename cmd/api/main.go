package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/middlegroundapp/middleground/pkg/validator"

	"github.com/middlegroundapp/middleground/internal/adapter/handler"
	"github.com/middlegroundapp/middleground/internal/adapter/repository"
	"github.com/middlegroundapp/middleground/internal/infrastructure/cache"
	"github.com/middlegroundapp/middleground/internal/infrastructure/database"
	"github.com/middlegroundapp/middleground/internal/infrastructure/external/mailer"
	"github.com/middlegroundapp/middleground/internal/infrastructure/external/places"
	meetinguse "github.com/middlegroundapp/middleground/internal/usecase/meeting"
	"github.com/middlegroundapp/middleground/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Initialize dependencies
	log.Println("Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Database
	log.Println("Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Apply migrations only when explicitly enabled in config.
	// Production deployments should manage schema via sql-migrate directly.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("DB_AUTO_MIGRATE is enabled in production. Disable it and manage schema with sql-migrate.")
		}
		log.Println("Applying migrations (development only)...")
		if err := database.Migrate(db); err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}
	} else {
		log.Println("Skipping migrations; use sql-migrate for schema changes in CI/CD/production")
	}

	// Initialize repositories
	log.Println("Initializing repositories...")
	meetingRepo := repository.NewMeetingRepository(db)
	invitationRepo := repository.NewInvitationRepository(db)
	locationRepo := repository.NewLocationRepository(db)

	// Initialize places client
	log.Println("Initializing places client...")
	placesClient := places.NewClient(&cfg.Places, logger)

	// Initialize mailer
	var mail mailer.Mailer
	if cfg.Mail.SendGridAPIKey != "" {
		log.Println("Initializing SendGrid mailer...")
		mail = mailer.NewSendGridMailer(&cfg.Mail, logger)
	} else {
		log.Println("No SendGrid key configured, emails will be logged only")
		mail = mailer.NewLogMailer(logger)
	}

	// Initialize meeting service
	log.Println("Initializing meeting service...")
	meetingService := meetinguse.NewMeetingService(
		meetingRepo,
		invitationRepo,
		locationRepo,
		placesClient,
		mail,
		cfg.Server.BaseURL,
		logger,
	)

	// Initialize meeting handler
	meetingHandler := handler.NewMeetingHandler(meetingService, logger)

	// Rate limiter store for meeting creation
	limiterStore := cache.NewMemoryStore()

	// Setup router with handlers
	log.Println("Setting up routes...")
	router := handler.NewRouter(cfg, meetingHandler, limiterStore)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("Starting server on %s", addr)
		log.Printf("Environment: %s", cfg.Server.Environment)
		log.Printf("Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}
