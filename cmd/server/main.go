package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"cleanfee.backend/internal/config"
	domainrepos "cleanfee.backend/internal/domain/repositories"
	"cleanfee.backend/internal/infrastructure/facebook"
	"cleanfee.backend/internal/infrastructure/models"
	"cleanfee.backend/internal/infrastructure/repositories"
	"cleanfee.backend/internal/interfaces/http/handlers"
	"cleanfee.backend/internal/usecases"
	"cleanfee.backend/pkg/logger"
	"cleanfee.backend/pkg/oauthstate"
	"cleanfee.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(cfg config.DatabaseConfig) (*gorm.DB, error) {
		switch cfg.Driver {
		case "sqlite":
			return gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
		case "postgres":
			return gorm.Open(postgres.Open(cfg.URL()), &gorm.Config{})
		default:
			return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
		}
	}
	newSessionStore = redis.NewSessionStore
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
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

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Storage backend: in-memory by default, gorm when configured
	bookingRepo, applicationRepo, err := buildStores(cfg)
	if err != nil {
		return err
	}
	cleanerRepo := repositories.NewCleanerRepository()

	// Wizard sessions: Redis when configured, else process memory
	sessionRepo, err := buildSessionStore(cfg)
	if err != nil {
		return err
	}

	fbClient := facebook.NewClient(facebook.Config{
		GraphURL:    cfg.Facebook.GraphURL,
		AppID:       cfg.Facebook.AppID,
		AppSecret:   cfg.Facebook.AppSecret,
		RedirectURI: cfg.Facebook.RedirectURI,
		PageID:      cfg.Facebook.PageID,
		PageToken:   cfg.Facebook.PageToken,
		Timeout:     cfg.Facebook.Timeout,
	})
	stateService := oauthstate.NewService(cfg.OAuth.StateSecret, cfg.OAuth.StateExpiry)

	// Usecases
	cleanerUsecase := usecases.NewCleanerUsecase(cleanerRepo)
	bookingUsecase := usecases.NewBookingUsecase(bookingRepo, cleanerRepo)
	applicationUsecase := usecases.NewApplicationUsecase(applicationRepo)
	wizardUsecase := usecases.NewWizardUsecase(sessionRepo, applicationRepo)
	oauthUsecase := usecases.NewOAuthUsecase(fbClient, stateService, wizardUsecase)
	socialUsecase := usecases.NewSocialUsecase(fbClient)

	// HTTP
	r := gin.New()
	r.Use(gin.Recovery())

	registerRoutes(r, cfg, routeDeps{
		cleanerHandler:     handlers.NewCleanerHandler(cleanerUsecase),
		bookingHandler:     handlers.NewBookingHandler(bookingUsecase),
		applicationHandler: handlers.NewApplicationHandler(applicationUsecase),
		wizardHandler:      handlers.NewWizardHandler(wizardUsecase),
		oauthHandler:       handlers.NewOAuthHandler(oauthUsecase),
		socialHandler:      handlers.NewSocialHandler(socialUsecase),
	})

	logger.Info(context.Background(), "Server starting", zap.String("port", cfg.Server.Port))
	return runServer(r, cfg.Server.Port)
}

func buildStores(cfg *config.Config) (domainrepos.BookingRepository, domainrepos.ApplicationRepository, error) {
	if cfg.Database.Driver == "" || cfg.Database.Driver == "memory" {
		return repositories.NewMemoryBookingRepository(), repositories.NewMemoryApplicationRepository(), nil
	}

	db, err := openDB(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&models.Booking{}, &models.Application{}); err != nil {
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info(context.Background(), "Database connected", zap.String("driver", cfg.Database.Driver))
	return repositories.NewBookingRepository(db), repositories.NewApplicationRepository(db), nil
}

func buildSessionStore(cfg *config.Config) (domainrepos.WizardSessionRepository, error) {
	if cfg.Redis.URL == "" {
		return repositories.NewMemoryWizardSessionRepository(), nil
	}

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}
	store, err := newSessionStore(cfg.Session.EncryptionKey)
	if err != nil {
		return nil, err
	}

	logger.Info(context.Background(), "Redis session store initialized")
	return repositories.NewRedisWizardSessionRepository(store, cfg.Session.TTL), nil
}
