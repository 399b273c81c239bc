package migrations

import (
	"dugun.link/configs/configslog"
	"dugun.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateGuestGroupsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating guest_groups table...")
	err := db.AutoMigrate(&models.GuestGroup{})
	if err != nil {
		configslog.Log.Error("Failed to migrate guest_groups table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("guest_groups table migrated successfully")
	return nil
}
