package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// RequireAdmin yönetim paneli uçlarını korur. Oturum bilgisi router'daki
// session middleware'i tarafından c.Locals'a konur; burada yalnızca varlığı
// kontrol edilir.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userID").(uint)
		if !ok || userID == 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Giriş yapmanız gerekiyor."})
		}
		return c.Next()
	}
}
