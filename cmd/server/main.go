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

	"fitpulse.backend/internal/config"
	"fitpulse.backend/internal/infrastructure/models"
	"fitpulse.backend/internal/infrastructure/repositories"
	"fitpulse.backend/internal/interfaces/http/handlers"
	"fitpulse.backend/internal/interfaces/http/middleware"
	"fitpulse.backend/internal/interfaces/http/validators"
	"fitpulse.backend/internal/usecases"
	"fitpulse.backend/pkg/crypto"
	"fitpulse.backend/pkg/jwt"
	"fitpulse.backend/pkg/logger"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := validators.Register(); err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		logger.Warn(context.Background(), "Database not available, endpoints will return errors", zap.Error(err))
	} else if err := db.AutoMigrate(&models.User{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
		cfg.JWT.Leeway,
	)
	hasher := crypto.NewHasher(cfg.Security.BcryptCost)

	userRepo := repositories.NewUserRepository(db)
	authUsecase := usecases.NewAuthUsecase(userRepo, hasher, jwtService)

	deps := routeDeps{
		authHandler:    handlers.NewAuthHandler(authUsecase),
		userHandler:    handlers.NewUserHandler(authUsecase),
		authMiddleware: middleware.AuthMiddleware(jwtService),
	}
	r := newRouter(cfg.Server.Env, cfg.Server.CORSOrigins, deps)

	logger.Info(context.Background(), "Server starting", zap.String("port", cfg.Server.Port))
	return runServer(r, cfg.Server.Port)
}
