package routes

import (
	auth_handlers "dugun.link/handlers/auth" // İsim çakışmasını önlemek için alias

	"github.com/gofiber/fiber/v2"
)

func registerAuthRoutes(app *fiber.App) {
	authHandler := auth_handlers.NewAuthHandler()
	authGroup := app.Group("/auth")

	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
}
