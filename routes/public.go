package routes

import (
	public_handlers "dugun.link/handlers/public"

	"github.com/gofiber/fiber/v2"
)

// registerPublicRoutes davetiye sayfalarını ve LCV API'sini tanımlar.
// Oturum gerektirmez.
func registerPublicRoutes(app *fiber.App) {
	inviteHandler := public_handlers.NewInviteHandler()
	rsvpHandler := public_handlers.NewRSVPHandler()

	// --- Sayfalar ---
	app.Get("/", inviteHandler.Home)                 // GET /
	app.Get("/davet/:key", inviteHandler.ShowInvite) // GET /davet/{key}

	// --- LCV API ---
	api := app.Group("/api/rsvp")
	api.Get("/groups", rsvpHandler.ListGroups)     // GET /api/rsvp/groups
	api.Get("/groups/:id", rsvpHandler.GroupState) // GET /api/rsvp/groups/{id}
	api.Post("/", rsvpHandler.SubmitRSVP)          // POST /api/rsvp
}
