package repositories

import (
	"context"
	"errors"
	"strings"

	"dugun.link/configs"
	"dugun.link/configs/configslog"
	"dugun.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IAdminUserRepository yönetici kullanıcı veritabanı işlemleri için arayüz.
type IAdminUserRepository interface {
	Create(ctx context.Context, user *models.AdminUser) error
	FindByID(ctx context.Context, id uint) (*models.AdminUser, error)
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
}

// AdminUserRepository IAdminUserRepository arayüzünü uygular.
type AdminUserRepository struct {
	db *gorm.DB
}

// NewAdminUserRepository yeni bir AdminUserRepository örneği oluşturur.
func NewAdminUserRepository() IAdminUserRepository {
	return &AdminUserRepository{db: configs.GetDB()}
}

func (r *AdminUserRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

func (r *AdminUserRepository) Create(ctx context.Context, user *models.AdminUser) error {
	if user == nil || user.Email == "" {
		return errors.New("geçersiz kullanıcı verisi")
	}
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	return r.getDB(ctx).Create(user).Error
}

func (r *AdminUserRepository) FindByID(ctx context.Context, id uint) (*models.AdminUser, error) {
	if id == 0 {
		return nil, errors.New("geçersiz ID")
	}
	var user models.AdminUser
	err := r.getDB(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("AdminUserRepository.FindByID error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *AdminUserRepository) FindByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, ErrNotFound
	}
	var user models.AdminUser
	err := r.getDB(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("AdminUserRepository.FindByEmail error", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

var _ IAdminUserRepository = (*AdminUserRepository)(nil)
