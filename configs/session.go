package configs

import (
	"crypto/sha256"
	"encoding/base64"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/fiber/v2/middleware/session"
)

var sessionStore *session.Store

// SetupSession yönetim paneli oturumları için cookie tabanlı session store kurar.
func SetupSession() *session.Store {
	if sessionStore != nil {
		return sessionStore
	}
	sessionStore = session.New(session.Config{
		Expiration:     24 * time.Hour,
		KeyLookup:      "cookie:dugun_session",
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
	return sessionStore
}

// CookieEncryptionKey SESSION_SECRET'tan encryptcookie'nin beklediği base64
// kodlu 32 baytlık anahtarı türetir. Sır serbest metin olabilir; SHA-256 ile
// her zaman geçerli uzunlukta anahtar elde edilir.
func CookieEncryptionKey(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return base64.StdEncoding.EncodeToString(sum[:])
}

// SetupCookieEncryption oturum çerezini SESSION_SECRET'tan türetilen anahtarla
// şifreler. Session middleware'inden ÖNCE eklenmelidir.
func SetupCookieEncryption() fiber.Handler {
	return encryptcookie.New(encryptcookie.Config{
		Key: CookieEncryptionKey(GetConfig().SessionSecret),
	})
}
