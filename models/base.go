package models

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// BaseModel tüm tablolara gömülen ortak alanlar.
// Soft delete ve audit (kim oluşturdu/güncelledi/sildi) bilgisi içerir.
type BaseModel struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	CreatedBy *uint          `json:"-"`
	UpdatedBy *uint          `json:"-"`
	DeletedBy *uint          `json:"-"`
}

// contextKey context value çakışmalarını önlemek için özel tip.
type contextKey string

const contextUserIDKey contextKey = "audit_user_id"

// WithUserID işlemi yapan kullanıcıyı context'e koyar; hook'lar buradan okur.
func WithUserID(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, contextUserIDKey, userID)
}

// UserIDFromContext context'teki kullanıcı ID'sini döndürür (yoksa 0, false).
func UserIDFromContext(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(contextUserIDKey).(uint)
	return id, ok
}

// BeforeCreate CreatedBy alanını context'teki kullanıcıdan doldurur.
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if id, ok := UserIDFromContext(tx.Statement.Context); ok && id != 0 {
		b.CreatedBy = &id
	}
	return nil
}

// BeforeUpdate UpdatedBy alanını context'teki kullanıcıdan doldurur.
func (b *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	if id, ok := UserIDFromContext(tx.Statement.Context); ok && id != 0 {
		b.UpdatedBy = &id
	}
	return nil
}
