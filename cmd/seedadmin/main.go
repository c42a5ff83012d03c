package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"github.com/liaa-aa/Project-API/internal/config"
	"github.com/liaa-aa/Project-API/internal/domain"
	"github.com/liaa-aa/Project-API/internal/logger"
	"github.com/liaa-aa/Project-API/internal/repository/postgres"
)

// Seeds the initial admin account. Safe to run repeatedly, it exits
// without changes when the account already exists.
func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	name := flag.String("name", "Administrator", "Admin display name")
	email := flag.String("email", "", "Admin email (or ADMIN_EMAIL)")
	password := flag.String("password", "", "Admin password (or ADMIN_PASSWORD)")
	flag.Parse()

	_ = godotenv.Load()

	if *email == "" {
		*email = os.Getenv("ADMIN_EMAIL")
	}
	if *password == "" {
		*password = os.Getenv("ADMIN_PASSWORD")
	}
	if *email == "" || *password == "" {
		log.Fatal("admin email and password are required (flags or ADMIN_EMAIL/ADMIN_PASSWORD)")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	store := postgres.NewStore(db)
	ctx := context.Background()

	existing, err := store.UserRepository.GetByEmail(ctx, *email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		log.Fatalf("Failed to look up admin account: %v", err)
	}
	if existing != nil {
		logger.Info("Admin account already exists, nothing to do", "email", *email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin := &domain.User{
		Name:         *name,
		Email:        *email,
		PasswordHash: string(hash),
		Role:         domain.UserRoleAdmin,
	}
	if err := store.UserRepository.Create(ctx, admin); err != nil {
		log.Fatalf("Failed to create admin account: %v", err)
	}

	logger.Info("Admin account created", "id", admin.ID, "email", admin.Email)
}
