package migrations

import (
	"dugun.link/configs/configslog"
	"dugun.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateGuestsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating guests table...")
	err := db.AutoMigrate(&models.Guest{})
	if err != nil {
		configslog.Log.Error("Failed to migrate guests table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("guests table migrated successfully")
	return nil
}
