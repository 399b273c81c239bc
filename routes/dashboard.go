package routes

import (
	handlers "dugun.link/handlers/dashboard"
	"dugun.link/middlewares"

	"github.com/gofiber/fiber/v2"
)

// registerDashboardRoutes /dashboard altındaki rotaları tanımlar.
// Yalnızca giriş yapmış yöneticiler erişebilir.
func registerDashboardRoutes(app *fiber.App) {
	groupHandler := handlers.NewGroupHandler()
	guestHandler := handlers.NewGuestHandler()
	statsHandler := handlers.NewStatsHandler()
	invitationHandler := handlers.NewInvitationHandler()
	exportHandler := handlers.NewExportHandler()

	dashboardGroup := app.Group("/dashboard")
	dashboardGroup.Use(middlewares.RequireAdmin())

	// --- İstatistikler ---
	dashboardGroup.Get("/stats", statsHandler.Summary) // GET /dashboard/stats

	// --- Grup Yönetimi ---
	dashboardGroup.Get("/groups", groupHandler.ListGroups)            // GET /dashboard/groups
	dashboardGroup.Get("/groups/combined", groupHandler.ListCombined) // GET /dashboard/groups/combined
	dashboardGroup.Post("/groups", groupHandler.CreateGroup)          // POST /dashboard/groups
	dashboardGroup.Get("/groups/:id", groupHandler.GetGroup)          // GET /dashboard/groups/{id}
	dashboardGroup.Put("/groups/:id", groupHandler.UpdateGroup)       // PUT /dashboard/groups/{id}
	dashboardGroup.Delete("/groups/:id", groupHandler.DeleteGroup)    // DELETE /dashboard/groups/{id}

	// --- Davetli Yönetimi ---
	dashboardGroup.Get("/guests", guestHandler.ListGuests)                // GET /dashboard/guests
	dashboardGroup.Post("/guests", guestHandler.CreateGuest)              // POST /dashboard/guests
	dashboardGroup.Get("/guests/:id", guestHandler.GetGuest)              // GET /dashboard/guests/{id}
	dashboardGroup.Put("/guests/:id", guestHandler.UpdateGuest)           // PUT /dashboard/guests/{id}
	dashboardGroup.Post("/guests/:id/reset", guestHandler.ResetToPending) // POST /dashboard/guests/{id}/reset
	dashboardGroup.Delete("/guests/:id", guestHandler.DeleteGuest)        // DELETE /dashboard/guests/{id}

	// --- Davetiye Gönderimi ---
	dashboardGroup.Post("/invitations/bulk", invitationHandler.SendBulkInvitations) // POST /dashboard/invitations/bulk
	dashboardGroup.Post("/invitations/:guestId", invitationHandler.SendInvitation)  // POST /dashboard/invitations/{guestId}

	// --- Dışa Aktarma ---
	dashboardGroup.Get("/export/attending", exportHandler.ExportAttending) // GET /dashboard/export/attending
}
