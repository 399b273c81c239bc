package public

import (
	"errors"

	"dugun.link/configs"
	"dugun.link/configs/configslog"
	"dugun.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// InviteHandler public davet sayfaları için handler (sunucu tarafı render).
type InviteHandler struct {
	rsvpService services.IRSVPService
}

// NewInviteHandler yeni bir InviteHandler örneği oluşturur.
func NewInviteHandler() *InviteHandler {
	return &InviteHandler{rsvpService: services.NewRSVPService()}
}

// Home ana davet sayfasını gösterir (GET /).
// Grup listesi sayfadaki script tarafından /api/rsvp/groups üzerinden çekilir.
func (h *InviteHandler) Home(c *fiber.Ctx) error {
	cfg := configs.GetConfig()
	return c.Render("public/home", fiber.Map{
		"Title":          cfg.CoupleNames,
		"CoupleNames":    cfg.CoupleNames,
		"WeddingDate":    cfg.WeddingDate,
		"CeremonyVenue":  cfg.CeremonyVenue,
		"ReceptionVenue": cfg.ReceptionVenue,
	}, "layouts/main")
}

// ShowInvite gruba özel davet linkini açar (GET /davet/:key).
// LCV formu grup durumuna göre açık veya kilitli gösterilir.
func (h *InviteHandler) ShowInvite(c *fiber.Ctx) error {
	key := c.Params("key")

	state, err := h.rsvpService.GetGroupStateByKey(c.UserContext(), key)
	if err != nil {
		if errors.Is(err, services.ErrRSVPGroupNotFound) {
			return c.Status(fiber.StatusNotFound).Render("errors/404",
				fiber.Map{"Title": "Davetiye Bulunamadı"}, "layouts/main")
		}
		configslog.Log.Error("Public - ShowInvite Error", zap.String("key", key), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).Render("errors/404",
			fiber.Map{"Title": "Bir Hata Oluştu"}, "layouts/main")
	}

	cfg := configs.GetConfig()
	return c.Render("public/invite", fiber.Map{
		"Title":          state.Group.GroupName + " — " + cfg.CoupleNames,
		"CoupleNames":    cfg.CoupleNames,
		"WeddingDate":    cfg.WeddingDate,
		"CeremonyVenue":  cfg.CeremonyVenue,
		"ReceptionVenue": cfg.ReceptionVenue,
		"Group":          state.Group,
		"Guests":         state.Guests,
		"Locked":         state.Locked,
		"Remaining":      state.RemainingCapacity,
	}, "layouts/main")
}
