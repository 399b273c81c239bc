package dashboard

import (
	"errors"

	"dugun.link/configs/configslog"
	"dugun.link/models"
	"dugun.link/pkg/queryparams"
	"dugun.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GroupHandler davetli grubu yönetimi için handler (yönetim paneli).
type GroupHandler struct {
	service      services.IGroupService
	guestService services.IGuestService
}

// NewGroupHandler yeni bir GroupHandler örneği oluşturur.
func NewGroupHandler() *GroupHandler {
	return &GroupHandler{
		service:      services.NewGroupService(),
		guestService: services.NewGuestService(),
	}
}

// adminID oturumdaki yönetici ID'sini döndürür. RequireAdmin middleware'i
// geçildiyse her zaman doludur.
func adminID(c *fiber.Ctx) uint {
	id, _ := c.Locals("userID").(uint)
	return id
}

// groupErrorStatus servis hatalarını HTTP durum koduna çevirir.
func groupErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrGroupNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrGroupNameRequired), errors.Is(err, services.ErrGroupInvalidInput):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// ListGroups tüm grupları sayfalayarak listeler (GET /dashboard/groups).
func (h *GroupHandler) ListGroups(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("group_name")
	}
	params.Validate()

	result, err := h.service.GetAllGroupsPaginated(c.UserContext(), params)
	if err != nil {
		configslog.Log.Error("Dashboard - ListGroups Error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gruplar listelenemedi."})
	}
	return c.JSON(result)
}

// ListCombined grupları ve bireysel davetlileri tek listede döndürür
// (GET /dashboard/groups/combined).
func (h *GroupHandler) ListCombined(c *fiber.Ctx) error {
	items, err := h.service.ListCombined(c.UserContext())
	if err != nil {
		configslog.Log.Error("Dashboard - ListCombined Error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Liste yüklenemedi."})
	}
	return c.JSON(fiber.Map{"data": items})
}

// CreateGroup yeni grup oluşturur (POST /dashboard/groups).
func (h *GroupHandler) CreateGroup(c *fiber.Ctx) error {
	var group models.GuestGroup
	if err := c.BodyParser(&group); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz veri."})
	}

	created, err := h.service.CreateGroup(c.UserContext(), adminID(c), group)
	if err != nil {
		status := groupErrorStatus(err)
		if status == fiber.StatusInternalServerError {
			configslog.Log.Error("Dashboard - CreateGroup Error", zap.Error(err))
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": created})
}

// GetGroup bir grubu davetlileriyle birlikte getirir (GET /dashboard/groups/:id).
func (h *GroupHandler) GetGroup(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz ID."})
	}

	group, err := h.service.GetGroupByID(c.UserContext(), uint(id))
	if err != nil {
		return c.Status(groupErrorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	guests, err := h.guestService.GetGuestsByGroup(c.UserContext(), group.ID)
	if err != nil {
		configslog.Log.Error("Dashboard - GetGroup: davetliler alınamadı", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Davetliler alınamadı."})
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"group": group, "guests": guests}})
}

// UpdateGroup grubu günceller (PUT /dashboard/groups/:id).
func (h *GroupHandler) UpdateGroup(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz ID."})
	}

	var updates models.GuestGroup
	if err := c.BodyParser(&updates); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz veri."})
	}

	if err := h.service.UpdateGroup(c.UserContext(), uint(id), adminID(c), updates); err != nil {
		status := groupErrorStatus(err)
		if status == fiber.StatusInternalServerError {
			configslog.Log.Error("Dashboard - UpdateGroup Error", zap.Int("id", id), zap.Error(err))
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Grup güncellendi."})
}

// DeleteGroup grubu ve tüm davetlilerini siler (DELETE /dashboard/groups/:id).
func (h *GroupHandler) DeleteGroup(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz ID."})
	}

	if err := h.service.DeleteGroup(c.UserContext(), uint(id), adminID(c)); err != nil {
		status := groupErrorStatus(err)
		if status == fiber.StatusInternalServerError {
			configslog.Log.Error("Dashboard - DeleteGroup Error", zap.Int("id", id), zap.Error(err))
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Grup ve davetlileri silindi."})
}
