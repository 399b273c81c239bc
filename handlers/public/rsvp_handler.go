package public

import (
	"errors"

	"dugun.link/configs/configslog"
	"dugun.link/models"
	"dugun.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RSVPHandler public LCV uçları için handler.
type RSVPHandler struct {
	rsvpService  services.IRSVPService
	groupService services.IGroupService
}

// NewRSVPHandler yeni bir RSVPHandler örneği oluşturur.
// LCV onayı davetiye e-postası tetiklediği için servis notifier ile kurulur.
func NewRSVPHandler() *RSVPHandler {
	return &RSVPHandler{
		rsvpService:  services.NewRSVPServiceWithNotifier(services.NewMailerService()),
		groupService: services.NewGroupService(),
	}
}

// publicListItem public sayfanın grup seçiminde gösterilen satır.
type publicListItem struct {
	Kind            services.GroupListItemKind `json:"kind"`
	GroupID         uint                       `json:"group_id,omitempty"`
	GuestID         uint                       `json:"guest_id,omitempty"`
	Name            string                     `json:"name"`
	IsPredetermined bool                       `json:"is_predetermined"`
	GuestType       models.GuestType           `json:"guest_type"`
	Role            models.GuestRole           `json:"role"`
	Locked          bool                       `json:"locked"`
	Remaining       int                        `json:"remaining_capacity"`
	MaxCount        int                        `json:"max_count,omitempty"`
}

// ListGroups tüm grupları ve bireysel davetlileri kilit durumlarıyla listeler.
// (GET /api/rsvp/groups)
func (h *RSVPHandler) ListGroups(c *fiber.Ctx) error {
	items, err := h.groupService.ListCombined(c.UserContext())
	if err != nil {
		configslog.Log.Error("Public - ListGroups Error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Davetli listesi yüklenemedi."})
	}

	out := make([]publicListItem, 0, len(items))
	for _, item := range items {
		switch item.Kind {
		case services.ListItemGroup:
			state, err := h.rsvpService.GetGroupState(c.UserContext(), item.Group.ID)
			if err != nil {
				configslog.Log.Error("Public - ListGroups: grup durumu alınamadı",
					zap.Uint("groupID", item.Group.ID), zap.Error(err))
				continue
			}
			out = append(out, publicListItem{
				Kind:            item.Kind,
				GroupID:         item.Group.ID,
				Name:            item.Group.GroupName,
				IsPredetermined: item.Group.IsPredetermined,
				GuestType:       item.Group.GuestType,
				Role:            item.Group.Role,
				Locked:          state.Locked,
				Remaining:       state.RemainingCapacity,
			})
		case services.ListItemIndividual:
			out = append(out, publicListItem{
				Kind:      item.Kind,
				GuestID:   item.Guest.ID,
				Name:      item.Guest.Name,
				GuestType: item.Guest.GuestType,
				Role:      item.Guest.Role,
				Locked:    item.Guest.IsLocked(),
				MaxCount:  item.Guest.MaxCount,
			})
		}
	}
	return c.JSON(fiber.Map{"data": out})
}

// GroupState bir grubun LCV durumunu döndürür (GET /api/rsvp/groups/:id).
// Önceden belirlenmiş gruplarda cevaplayan kişi üyesini buradan seçer.
func (h *RSVPHandler) GroupState(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz grup ID."})
	}

	state, err := h.rsvpService.GetGroupState(c.UserContext(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrRSVPGroupNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("Public - GroupState Error", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Grup durumu alınamadı."})
	}
	return c.JSON(fiber.Map{"data": state})
}

// SubmitRSVP LCV gönderimini işler (POST /api/rsvp).
func (h *RSVPHandler) SubmitRSVP(c *fiber.Ctx) error {
	var sub services.RSVPSubmission
	if err := c.BodyParser(&sub); err != nil {
		configslog.Log.Warn("Public - SubmitRSVP: gövde parse edilemedi", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz veri."})
	}

	if err := h.rsvpService.SubmitRSVP(c.UserContext(), sub); err != nil {
		status := fiber.StatusInternalServerError
		switch {
		case errors.Is(err, services.ErrRSVPGroupNotFound), errors.Is(err, services.ErrRSVPGuestNotFound):
			status = fiber.StatusNotFound
		case errors.Is(err, services.ErrRSVPGroupLocked), errors.Is(err, services.ErrRSVPGuestLocked):
			status = fiber.StatusConflict
		case errors.Is(err, services.ErrRSVPNamesRequired),
			errors.Is(err, services.ErrRSVPCapacityExceeded),
			errors.Is(err, services.ErrRSVPInvalidInput):
			status = fiber.StatusBadRequest
		}
		if status == fiber.StatusInternalServerError {
			configslog.Log.Error("Public - SubmitRSVP Error", zap.Error(err))
			return c.Status(status).JSON(fiber.Map{"error": "LCV kaydedilemedi, lütfen tekrar deneyin."})
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "LCV yanıtınız başarıyla alındı."})
}
