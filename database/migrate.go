package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"alumni_backend/internal/config"
	"alumni_backend/internal/logger"
	"alumni_backend/internal/models"
)

var gormDB *gorm.DB

// ConnectGorm инициализирует GORM с DSN из конфигурации
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()
	dsn := cfg.Database.DSN

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate выполняет миграцию всех моделей и сидирует справочники
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.PasswordResetToken{},
		&models.Education{},
		&models.Client{},
		&models.Recruited{},
		&models.Further{},
		&models.SelfEmployed{},
		&models.Searching{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}

	if err := SeedEducations(db); err != nil {
		return err
	}

	logger.Info("AutoMigrate completed")
	return nil
}

// SeedEducations наполняет справочник направлений обучения.
// FirstOrCreate делает повторный запуск безопасным.
func SeedEducations(db *gorm.DB) error {
	educations := []models.Education{
		{ID: "EDU001", Name: models.EducationSoftwareDevelopment},
		{ID: "EDU002", Name: models.EducationDataScience},
		{ID: "EDU003", Name: models.EducationCreativeTechnologies},
	}

	for _, edu := range educations {
		if err := db.Where("id = ?", edu.ID).FirstOrCreate(&edu).Error; err != nil {
			return fmt.Errorf("failed to seed education %s: %w", edu.ID, err)
		}
	}

	return nil
}
