package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// SessionStart istek için oturumu başlatır. Store, router tarafından
// c.Locals("session_store") içine konur.
func SessionStart(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals("session_store").(*session.Store)
	if !ok || store == nil {
		return nil, errors.New("session store bulunamadı")
	}
	return store.Get(c)
}

// GetUserIDFromSession oturumdaki yönetici ID'sini döndürür.
func GetUserIDFromSession(sess *session.Session) (uint, error) {
	id, ok := sess.Get("user_id").(uint)
	if !ok || id == 0 {
		return 0, errors.New("oturumda kullanıcı yok")
	}
	return id, nil
}

// SetUserSession giriş sonrası oturum değerlerini yazar.
func SetUserSession(sess *session.Session, userID uint, name string, isSystem bool) error {
	sess.Set("user_id", userID)
	sess.Set("user_name", name)
	sess.Set("is_system", isSystem)
	return sess.Save()
}

// DestroySession oturumu sonlandırır (çıkış).
func DestroySession(sess *session.Session) error {
	return sess.Destroy()
}
