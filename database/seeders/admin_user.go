package seeders

import (
	"errors"

	"dugun.link/configs"
	"dugun.link/configs/configslog"
	"dugun.link/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedSystemAdmin sistem yöneticisini oluşturur veya şifresini günceller.
// E-posta ve şifre konfigürasyondan okunur.
func SeedSystemAdmin(db *gorm.DB) error {
	cfg := configs.GetConfig()
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		configslog.SLog.Warn("ADMIN_EMAIL/ADMIN_PASSWORD tanımlı değil, sistem yöneticisi seed edilmeyecek.")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		configslog.Log.Error("Yönetici şifresi hashlenemedi", zap.Error(err))
		return err
	}

	var existing models.AdminUser
	result := db.Where("email = ?", cfg.AdminEmail).First(&existing)
	if result.Error == nil {
		configslog.SLog.Infof("Sistem yöneticisi '%s' mevcut, şifre güncelleniyor.", cfg.AdminEmail)
		return db.Model(&existing).Updates(map[string]interface{}{
			"password_hash": string(hash),
			"is_system":     true,
		}).Error
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		configslog.Log.Error("Sistem yöneticisi kontrol edilirken veritabanı hatası", zap.Error(result.Error))
		return result.Error
	}

	admin := models.AdminUser{
		Name:         "Sistem Yöneticisi",
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
		IsSystem:     true,
	}
	if err := db.Create(&admin).Error; err != nil {
		configslog.Log.Error("Sistem yöneticisi oluşturulamadı", zap.Error(err))
		return err
	}

	configslog.SLog.Infof("Sistem yöneticisi '%s' başarıyla oluşturuldu (ID: %d).", admin.Email, admin.ID)
	return nil
}
