package app

import (
	"fmt"

	"joblink_backend/internal/config"
	"joblink_backend/internal/database"
	"joblink_backend/internal/email"
	"joblink_backend/internal/handlers"
	"joblink_backend/internal/logger"
	"joblink_backend/internal/middleware"
	"joblink_backend/internal/repositories"
	"joblink_backend/internal/routes"
	"joblink_backend/internal/services"
	"joblink_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := openDatabase(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}
	logger.Info("Migrations applied")

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// openDatabase dials the configured driver. TranslateError turns driver
// duplicate-key failures into gorm.ErrDuplicatedKey so the repositories can
// rely on the unique indexes for conflict detection.
func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{TranslateError: true}

	switch cfg.Database.Driver {
	case "mysql":
		return gorm.Open(mysql.Open(cfg.Database.DSN), gormCfg)
	case "postgres", "":
		return gorm.Open(postgres.Open(cfg.Database.DSN), gormCfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg, gormDB)
	appHandlers := initializeHandlers(serviceContainer)
	ginRouter := initializeGinRouter(cfg)

	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.SMTPHost != "" {
		smtpProvider, err := email.NewSMTPProvider(email.Config{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
		if err != nil {
			logger.Fatal("Failed to initialize SMTP provider", "error", err)
		}
		emailProvider = smtpProvider
		logger.Info("SMTP email provider initialized", "host", cfg.Email.SMTPHost)
	} else {
		logger.Warn("SMTP is not configured, reset emails will only be logged")
		emailProvider = &MockEmailProvider{}
	}

	userRepo := repositories.NewUserRepository(gormDB)
	profileRepo := repositories.NewProfileRepository(gormDB)
	jobRepo := repositories.NewJobRepository(gormDB)
	applicationRepo := repositories.NewApplicationRepository(gormDB)
	savedJobRepo := repositories.NewSavedJobRepository(gormDB)

	return &services.ServiceContainer{
		AuthService:        services.NewAuthService(userRepo, emailProvider, cfg),
		ProfileService:     services.NewProfileService(profileRepo, userRepo),
		JobService:         services.NewJobService(jobRepo, userRepo),
		ApplicationService: services.NewApplicationService(applicationRepo, jobRepo),
		SavedJobService:    services.NewSavedJobService(savedJobRepo, jobRepo),
		EmailProvider:      emailProvider,
	}
}

func initializeHandlers(serviceContainer *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:        handlers.NewAuthHandler(baseHandler, serviceContainer.AuthService),
		ProfileHandler:     handlers.NewProfileHandler(baseHandler, serviceContainer.ProfileService),
		JobHandler:         handlers.NewJobHandler(baseHandler, serviceContainer.JobService),
		ApplicationHandler: handlers.NewApplicationHandler(baseHandler, serviceContainer.ApplicationService),
		SavedJobHandler:    handlers.NewSavedJobHandler(baseHandler, serviceContainer.SavedJobService),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}
