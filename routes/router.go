package routes

import (
	"dugun.link/configs"
	"dugun.link/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupRoutes tüm uygulama rotalarını ve genel middleware'leri ayarlar.
func SetupRoutes(app *fiber.App) {
	// --- Genel Middleware'ler ---
	app.Use(recoverMiddleware.New()) // Panic yakalama
	app.Use(logger.New())            // İstek loglama
	// Oturum çerezi SESSION_SECRET'tan türetilen anahtarla şifrelenir;
	// session middleware'inden önce gelmelidir.
	app.Use(configs.SetupCookieEncryption())
	app.Use(initializeSessionAndLocals())

	// --- Rota Grupları ---
	registerAuthRoutes(app)      // /auth rotaları
	registerDashboardRoutes(app) // /dashboard rotaları (yalnızca yönetici)
	registerPublicRoutes(app)    // Public davetiye ve LCV rotaları

	// --- 404 Handler ---
	// En sonda, eşleşmeyen tüm rotaları yakalar.
	app.Use(notFoundHandler)
}

// initializeSessionAndLocals session store'u locals'a koyar ve oturum
// varsa kullanıcı bilgilerini locals'a taşır.
func initializeSessionAndLocals() fiber.Handler {
	sessionStore := configs.SetupSession()
	return func(c *fiber.Ctx) error {
		c.Locals("session_store", sessionStore)
		sess, err := utils.SessionStart(c)
		if err != nil {
			return c.Next()
		}
		if userID, idErr := utils.GetUserIDFromSession(sess); idErr == nil {
			c.Locals("userID", userID)
		}
		if userName, ok := sess.Get("user_name").(string); ok {
			c.Locals("userName", userName)
		}
		if isSystem, ok := sess.Get("is_system").(bool); ok {
			c.Locals("isSystem", isSystem)
		}
		return c.Next()
	}
}

func notFoundHandler(c *fiber.Ctx) error {
	accepts := c.Accepts("application/json", "text/html")
	switch accepts {
	case "application/json":
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Kaynak bulunamadı"})
	default:
		return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{"Title": "Sayfa Bulunamadı"}, "layouts/main")
	}
}
