package app

import (
	"fmt"

	"alumni_backend/database"
	"alumni_backend/internal/config"
	"alumni_backend/internal/email"
	"alumni_backend/internal/handlers"
	"alumni_backend/internal/logger"
	"alumni_backend/internal/metrics"
	"alumni_backend/internal/middleware"
	"alumni_backend/internal/repositories"
	"alumni_backend/internal/routes"
	"alumni_backend/internal/services"
	"alumni_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter собирает полный gin.Engine. Тесты вызывают его напрямую,
// подменяя БД и email-провайдера.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	// 1. Инициализируем сервисы
	serviceContainer := initializeServices(cfg)

	// 2. Инициализируем хэндлеры
	appHandlers := initializeHandlers(serviceContainer)

	// 3. Инициализируем Gin
	ginRouter := initializeGinRouter(cfg, gormDB)

	// 4. Делегируем регистрацию маршрутов пакету 'routes'
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config) *services.ServiceContainer {
	var emailService email.Provider
	if cfg.Email.SMTPHost != "" {
		emailService = email.NewGomailSender(cfg)
	} else {
		logger.Warn("SMTP is not configured. Using MOCK email provider.")
		emailService = &MockEmailProvider{}
	}

	// --- Инициализация репозиториев ---
	userRepo := repositories.NewUserRepository()
	resetTokenRepo := repositories.NewResetTokenRepository()
	clientRepo := repositories.NewClientRepository()
	educationRepo := repositories.NewEducationRepository()

	// --- Инициализация сервисов ---
	authService := services.NewAuthService(userRepo, resetTokenRepo, emailService)
	clientService := services.NewClientService(clientRepo, educationRepo)

	return &services.ServiceContainer{
		AuthService:   authService,
		ClientService: clientService,
		EmailService:  emailService,
	}
}

func initializeHandlers(sc *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	return handlers.NewAppHandlers(sc, customValidator)
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(metrics.GinMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.Email.FrontendURL))
	router.Use(middleware.DBMiddleware(db))
	return router
}
