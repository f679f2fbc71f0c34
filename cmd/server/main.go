package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"it-short.backend/internal/config"
	"it-short.backend/internal/infrastructure/repositories"
	"it-short.backend/internal/infrastructure/storage"
	"it-short.backend/internal/interfaces/http/handlers"
	"it-short.backend/internal/interfaces/http/middleware"
	"it-short.backend/internal/usecases"
	"it-short.backend/pkg/crypto"
	"it-short.backend/pkg/logger"
	"it-short.backend/pkg/token"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newFileStore = func(dir string) (storage.FileStore, error) { return storage.NewLocalStore(dir) }
	runServer    = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB     = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("connected to PostgreSQL via GORM")
	}

	// Token service (sign-then-encrypt, single shared key)
	tokenService, err := token.NewService(cfg.Security.TokenKey, cfg.Security.TokenTTL)
	if err != nil {
		return fmt.Errorf("failed to initialize token service: %w", err)
	}

	// Profile image storage
	fileStore, err := newFileStore(cfg.Uploads.Dir)
	if err != nil {
		return fmt.Errorf("failed to initialize upload storage: %w", err)
	}

	// Wire repository, usecase and handlers
	hasher := crypto.NewHasher(cfg.Security.BcryptCost)
	userRepo := repositories.NewSystemUserRepository(db)
	userUsecase := usecases.NewSystemUserUsecase(userRepo, hasher, tokenService, fileStore)
	userHandler := handlers.NewSystemUserHandler(userUsecase)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAdminRoutes(r, routeDeps{
		systemUserHandler: userHandler,
		authMiddleware:    middleware.AuthMiddleware(userUsecase),
	})

	log.Println("registered routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	log.Printf("admin backend starting on port %s", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
