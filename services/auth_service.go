package services

import (
	"context"
	"errors"

	"dugun.link/configs/configslog"
	"dugun.link/models"
	"dugun.link/repositories"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthServiceError özel servis hataları
type AuthServiceError string

func (e AuthServiceError) Error() string { return string(e) }

const (
	ErrAuthInvalidCredentials AuthServiceError = "e-posta veya şifre hatalı"
	ErrAuthUserNotFound       AuthServiceError = "kullanıcı bulunamadı"
)

// IAuthService yönetici kimlik doğrulama işlemleri için arayüz.
type IAuthService interface {
	Authenticate(ctx context.Context, email, password string) (*models.AdminUser, error)
	GetUserByID(ctx context.Context, id uint) (*models.AdminUser, error)
}

// AuthService IAuthService arayüzünü uygular.
type AuthService struct {
	repo repositories.IAdminUserRepository
}

// NewAuthService yeni bir AuthService örneği oluşturur.
func NewAuthService() IAuthService {
	return &AuthService{repo: repositories.NewAdminUserRepository()}
}

// Authenticate e-posta ve şifre ile yönetici girişini doğrular.
// Kullanıcının var olup olmadığı dışarı sızdırılmaz; her iki durumda da aynı
// hata döner.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.AdminUser, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAuthInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		configslog.Log.Warn("Başarısız giriş denemesi", zap.String("email", email))
		return nil, ErrAuthInvalidCredentials
	}
	return user, nil
}

func (s *AuthService) GetUserByID(ctx context.Context, id uint) (*models.AdminUser, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAuthUserNotFound
		}
		return nil, err
	}
	return user, nil
}

var _ IAuthService = (*AuthService)(nil)
