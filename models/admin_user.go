package models

// AdminUser yönetim paneline giriş yapabilen kullanıcı.
type AdminUser struct {
	BaseModel
	Name         string `gorm:"type:varchar(100);not null" json:"name"`
	Email        string `gorm:"type:varchar(150);uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
	IsSystem     bool   `gorm:"not null;default:false" json:"is_system"`
}
