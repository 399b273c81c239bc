package services_test

import (
	"context"
	"testing"

	"dugun.link/configs"
	"dugun.link/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB her test için taze bir in-memory SQLite açar ve global
// veritabanı örneğini ona çevirir. Servisler kurucularında global örneği
// okuduğu için servisler bu çağrıdan SONRA oluşturulmalıdır.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("test veritabanı açılamadı: %v", err)
	}
	if err := db.AutoMigrate(&models.AdminUser{}, &models.GuestGroup{}, &models.Guest{}); err != nil {
		t.Fatalf("test migrasyonu başarısız: %v", err)
	}

	configs.SetDB(db)
	configs.SetConfig(&configs.Config{
		Env:         "test",
		CoupleNames: "Elif & Mert",
		WeddingDate: "11 Ekim 2025, Cumartesi 14:00",
		SiteBaseURL: "http://localhost:3000",
		MailFrom:    "test@example.com",
	})
	return db
}

func createGroup(t *testing.T, db *gorm.DB, group models.GuestGroup) *models.GuestGroup {
	t.Helper()
	if err := db.Create(&group).Error; err != nil {
		t.Fatalf("test grubu oluşturulamadı: %v", err)
	}
	return &group
}

func createGuest(t *testing.T, db *gorm.DB, guest models.Guest) *models.Guest {
	t.Helper()
	if guest.MaxCount == 0 {
		guest.MaxCount = 1
	}
	if err := db.Create(&guest).Error; err != nil {
		t.Fatalf("test davetlisi oluşturulamadı: %v", err)
	}
	return &guest
}

func countGuestsInGroup(t *testing.T, db *gorm.DB, groupID uint) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&models.Guest{}).Where("group_id = ?", groupID).Count(&n).Error; err != nil {
		t.Fatalf("davetli sayılamadı: %v", err)
	}
	return n
}

func boolPtr(b bool) *bool { return &b }

func uintPtr(u uint) *uint { return &u }

func testCtx() context.Context { return context.Background() }
