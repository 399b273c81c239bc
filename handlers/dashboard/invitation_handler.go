package dashboard

import (
	"errors"

	"dugun.link/configs/configslog"
	"dugun.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// InvitationHandler davetiye e-postası gönderimi için handler.
type InvitationHandler struct {
	service services.IMailerService
}

// NewInvitationHandler yeni bir InvitationHandler örneği oluşturur.
func NewInvitationHandler() *InvitationHandler {
	return &InvitationHandler{service: services.NewMailerService()}
}

// SendInvitation tek bir davetliye manuel davetiye gönderir
// (POST /dashboard/invitations/:guestId).
func (h *InvitationHandler) SendInvitation(c *fiber.Ctx) error {
	id, err := c.ParamsInt("guestId")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz davetli ID."})
	}

	email, err := h.service.SendInvitation(c.UserContext(), uint(id))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMailGuestNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, services.ErrMailNoEmail):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			configslog.Log.Error("Dashboard - SendInvitation Error", zap.Int("guestId", id), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": services.ErrMailSendFailed.Error()})
		}
	}
	return c.JSON(fiber.Map{"message": "Davetiye gönderildi.", "email": email})
}

// SendBulkInvitations bekleyen tüm davetiyeleri toplu gönderir
// (POST /dashboard/invitations/bulk). Tekil hatalar gönderimi durdurmaz,
// rapor içinde döner.
func (h *InvitationHandler) SendBulkInvitations(c *fiber.Ctx) error {
	report, err := h.service.SendBulkInvitations(c.UserContext())
	if err != nil {
		configslog.Log.Error("Dashboard - SendBulkInvitations Error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Toplu gönderim başlatılamadı."})
	}
	return c.JSON(fiber.Map{"data": report})
}
