package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"artist-hub.backend/internal/config"
	"artist-hub.backend/internal/infrastructure/email"
	"artist-hub.backend/internal/infrastructure/google"
	"artist-hub.backend/internal/infrastructure/media"
	"artist-hub.backend/internal/infrastructure/repositories"
	"artist-hub.backend/internal/interfaces/http/handlers"
	"artist-hub.backend/internal/interfaces/http/middleware"
	"artist-hub.backend/internal/usecases"
	"artist-hub.backend/pkg/jwt"
	"artist-hub.backend/pkg/logger"
	"artist-hub.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }

	metricsRegisterer prometheus.Registerer = prometheus.DefaultRegisterer
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

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

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
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiry)

	// Initialize repositories and gateways
	userRepo := repositories.NewUserRepository(db)
	artistRepo := repositories.NewArtistRepository(db)
	otpStore := redis.NewOTPStore(redis.DefaultOTPTTL)
	otpMailer := email.NewSMTPMailer(cfg.SMTP)
	googleVerifier := google.NewVerifier(cfg.Google.ClientID)
	imageUploader := media.NewCloudinaryUploader(cfg.Cloudinary)

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, otpStore, otpMailer, googleVerifier, jwtService)
	artistUsecase := usecases.NewArtistUsecase(artistRepo, imageUploader)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	artistHandler := handlers.NewArtistHandler(artistUsecase)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	metrics := middleware.NewMetrics(metricsRegisterer)
	r.Use(metrics.Handler())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerRoutes(r, routeDeps{
		authHandler:    authHandler,
		artistHandler:  artistHandler,
		authMiddleware: middleware.AuthMiddleware(jwtService),
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Start server
	log.Printf("🚀 Artist Hub Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
