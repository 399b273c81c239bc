package auth

import (
	"errors"

	"dugun.link/configs/configslog"
	"dugun.link/services"
	"dugun.link/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler yönetici giriş/çıkış işlemleri için handler.
type AuthHandler struct {
	authService services.IAuthService
}

// NewAuthHandler yeni bir AuthHandler örneği oluşturur.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{authService: services.NewAuthService()}
}

type loginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// Login e-posta ve şifre ile oturum açar (POST /auth/login).
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz veri."})
	}
	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "E-posta ve şifre zorunludur."})
	}

	user, err := h.authService.Authenticate(c.UserContext(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrAuthInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("Login Error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Giriş yapılamadı."})
	}

	sess, err := utils.SessionStart(c)
	if err != nil {
		configslog.Log.Error("Login: oturum başlatılamadı", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Oturum başlatılamadı."})
	}
	if err := utils.SetUserSession(sess, user.ID, user.Name, user.IsSystem); err != nil {
		configslog.Log.Error("Login: oturum kaydedilemedi", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Oturum kaydedilemedi."})
	}

	configslog.SLog.Infof("Yönetici girişi: %s (ID %d)", user.Email, user.ID)
	return c.JSON(fiber.Map{"message": "Giriş başarılı.", "user": user})
}

// Logout oturumu sonlandırır (POST /auth/logout).
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := utils.SessionStart(c)
	if err == nil {
		_ = utils.DestroySession(sess)
	}
	return c.JSON(fiber.Map{"message": "Çıkış yapıldı."})
}
