package migrations

import (
	"dugun.link/configs/configslog"
	"dugun.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateAdminUsersTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating admin_users table...")
	err := db.AutoMigrate(&models.AdminUser{})
	if err != nil {
		configslog.Log.Error("Failed to migrate admin_users table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("admin_users table migrated successfully")
	return nil
}
