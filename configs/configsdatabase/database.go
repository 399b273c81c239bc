package configsdatabase

import (
	"time"

	"dugun.link/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect verilen DSN ile PostgreSQL bağlantısı açar ve havuz ayarlarını yapar.
func Connect(dsn string, env string) (*gorm.DB, error) {
	gormLogLevel := logger.Warn
	if env != "prod" && env != "production" {
		gormLogLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel),
	})
	if err != nil {
		configslog.Log.Error("Veritabanı bağlantısı açılamadı", zap.Error(err))
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(time.Hour)

	configslog.SLog.Info("Veritabanı bağlantısı kuruldu.")
	return db, nil
}
