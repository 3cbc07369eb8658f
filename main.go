package main

import (
	"log"
	"maxios-backend/config"
	"maxios-backend/internal/api"
	"maxios-backend/internal/database"
	"maxios-backend/internal/models"
	"maxios-backend/internal/services"
	"maxios-backend/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// @title maxios-backend API
// @version 1.0
// @description Mining pool customer portal and back office API.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	}); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	router, err := api.NewRouter()
	if err != nil {
		log.Fatalf("failed to create router: %v", err)
	}

	// Migrate the schema
	err = database.DB.AutoMigrate(
		&models.User{},
		&models.Transaction{},
		&models.Withdrawal{},
		&models.Miner{},
		&models.Payment{},
		&models.ContactRequest{},
		&models.News{},
		&models.ArbitragePool{},
		&models.Setting{},
	)
	if err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	initAdminUser(cfg)

	scheduler, err := services.StartPayoutScheduler(cfg.PayoutSchedule)
	if err != nil {
		log.Fatalf("failed to start payout scheduler: %v", err)
	}
	defer scheduler.Stop()

	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}

// initAdminUser makes sure the back office has an operator account. The
// password comes from the environment; without one no account is created.
func initAdminUser(cfg *config.Config) {
	if cfg.AdminPassword == "" {
		zap.L().Warn("ADMIN_PASSWORD not set, skipping admin bootstrap")
		return
	}

	var adminUser models.User
	result := database.DB.Where("email = ?", cfg.AdminEmail).First(&adminUser)
	if result.Error == nil {
		zap.L().Info("admin user already exists", zap.String("email", cfg.AdminEmail))
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash admin password: %v", err)
	}

	adminUser = models.User{
		Email:    cfg.AdminEmail,
		Password: string(hashedPassword),
		Role:     "admin",
	}
	if err := database.DB.Create(&adminUser).Error; err != nil {
		log.Fatalf("failed to create admin user: %v", err)
	}
	zap.L().Info("admin user created", zap.String("email", cfg.AdminEmail))
}
