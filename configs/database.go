package configs

import (
	"dugun.link/configs/configsdatabase"
	"dugun.link/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var db *gorm.DB

// InitDB konfigürasyondaki DSN ile bağlantıyı açar ve global örneği ayarlar.
// Bağlantı kurulamazsa uygulama başlatılmaz.
func InitDB(cfg *Config) *gorm.DB {
	conn, err := configsdatabase.Connect(cfg.DSN(), cfg.Env)
	if err != nil {
		configslog.Log.Fatal("Veritabanına bağlanılamadı", zap.Error(err))
	}
	db = conn
	return db
}

// GetDB global veritabanı örneğini döndürür.
// Repository'ler ve servisler bu erişimciyi kullanır.
func GetDB() *gorm.DB {
	return db
}

// SetDB testlerde global örneği değiştirmek için kullanılır (örn. SQLite).
func SetDB(conn *gorm.DB) {
	db = conn
}
