package database

import (
	"github.com/yeremiapane/cafe-api/models"
	"github.com/yeremiapane/cafe-api/utils"
	"gorm.io/gorm"
)

// Migrate creates or updates the cafe table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Cafe{}); err != nil {
		return err
	}

	var count int64
	if err := db.Model(&models.Cafe{}).Count(&count).Error; err != nil {
		return err
	}
	utils.InfoLogger.WithField("cafes", count).Info("AutoMigrate completed.")
	return nil
}
