package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"careerpilot_backend/internal/config"
	"careerpilot_backend/internal/logger"
	"careerpilot_backend/internal/models"
)

var gormDB *gorm.DB

// ConnectGorm opens the connection configured in config.yaml. The handle is
// cached so repeated calls share one pool.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	gormDB = db
	return db, nil
}

// Migrate runs AutoMigrate for every model. IndustryInsight goes first so
// the users.industry foreign key has its target table.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.IndustryInsight{},
		&models.User{},
		&models.Assessment{},
		&models.Resume{},
		&models.CoverLetter{},
		&models.TokenTransaction{},
		&models.FeatureCost{},
		&models.Payment{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}

	logger.Info("Database migration completed")
	return nil
}
