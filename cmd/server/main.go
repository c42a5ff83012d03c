package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	httpapi "github.com/liaa-aa/Project-API/internal/api/http"
	"github.com/liaa-aa/Project-API/internal/config"
	"github.com/liaa-aa/Project-API/internal/logger"
	"github.com/liaa-aa/Project-API/internal/repository/postgres"
	"github.com/liaa-aa/Project-API/internal/security"
	"github.com/liaa-aa/Project-API/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load .env if present, environment overrides config file values
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting volunteer API server...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TokenExpiryDuration())

	var googleVerifier security.GoogleVerifier
	if cfg.Firebase.Enabled {
		googleVerifier, err = security.NewFirebaseVerifier(context.Background(), cfg.Firebase.CredentialsFile)
		if err != nil {
			logger.Error("Failed to initialize Google sign-in verifier", "error", err)
			log.Fatalf("Failed to initialize Google sign-in verifier: %v", err)
		}
		logger.Info("Google sign-in enabled")
	} else {
		logger.Info("Google sign-in disabled, no Firebase credentials configured")
	}

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.From, cfg.Email.FromName)
	authSvc := service.NewAuthService(store.UserRepository, tokenManager, googleVerifier)
	userSvc := service.NewUserService(store.UserRepository)
	eventSvc := service.NewEventService(store.EventRepository)
	registrationSvc := service.NewRegistrationService(
		store.RegistrationRepository,
		store.EventRepository,
		store.UserRepository,
		emailSvc,
	)
	weatherSvc := service.NewWeatherService(cfg.Weather.APIKey, cfg.Weather.BaseURL, store.EventRepository)

	// Initialize HTTP handlers and routes
	middleware := httpapi.NewMiddleware(tokenManager)
	router := httpapi.NewRouter(httpapi.Handlers{
		Auth:         httpapi.NewAuthHandler(authSvc),
		Events:       httpapi.NewEventHandler(eventSvc),
		Registration: httpapi.NewRegistrationHandler(registrationSvc),
		Users:        httpapi.NewUserHandler(userSvc),
		Weather:      httpapi.NewWeatherHandler(weatherSvc),
	}, middleware)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
