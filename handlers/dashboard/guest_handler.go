package dashboard

import (
	"errors"

	"dugun.link/configs/configslog"
	"dugun.link/models"
	"dugun.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GuestHandler davetli yönetimi için handler (yönetim paneli).
type GuestHandler struct {
	service services.IGuestService
}

// NewGuestHandler yeni bir GuestHandler örneği oluşturur.
func NewGuestHandler() *GuestHandler {
	return &GuestHandler{service: services.NewGuestService()}
}

func guestErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrGuestNotFound), errors.Is(err, services.ErrGroupNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrGuestNameRequired), errors.Is(err, services.ErrGuestInvalidInput):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// ListGuests tüm davetlileri listeler (GET /dashboard/guests).
// ?standalone=true yalnızca bireysel (grupsuz) davetlileri döndürür.
func (h *GuestHandler) ListGuests(c *fiber.Ctx) error {
	var (
		guests []models.Guest
		err    error
	)
	if c.QueryBool("standalone") {
		guests, err = h.service.GetStandaloneGuests(c.UserContext())
	} else {
		guests, err = h.service.GetAllGuests(c.UserContext())
	}
	if err != nil {
		configslog.Log.Error("Dashboard - ListGuests Error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Davetliler listelenemedi."})
	}
	return c.JSON(fiber.Map{"data": guests})
}

// CreateGuest yeni davetli oluşturur (POST /dashboard/guests).
func (h *GuestHandler) CreateGuest(c *fiber.Ctx) error {
	var guest models.Guest
	if err := c.BodyParser(&guest); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz veri."})
	}

	created, err := h.service.CreateGuest(c.UserContext(), adminID(c), guest)
	if err != nil {
		status := guestErrorStatus(err)
		if status == fiber.StatusInternalServerError {
			configslog.Log.Error("Dashboard - CreateGuest Error", zap.Error(err))
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": created})
}

// GetGuest tek bir davetliyi getirir (GET /dashboard/guests/:id).
func (h *GuestHandler) GetGuest(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz ID."})
	}

	guest, err := h.service.GetGuestByID(c.UserContext(), uint(id))
	if err != nil {
		return c.Status(guestErrorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": guest})
}

// UpdateGuest davetliyi günceller (PUT /dashboard/guests/:id).
func (h *GuestHandler) UpdateGuest(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz ID."})
	}

	var updates models.Guest
	if err := c.BodyParser(&updates); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz veri."})
	}

	if err := h.service.UpdateGuest(c.UserContext(), uint(id), adminID(c), updates); err != nil {
		status := guestErrorStatus(err)
		if status == fiber.StatusInternalServerError {
			configslog.Log.Error("Dashboard - UpdateGuest Error", zap.Int("id", id), zap.Error(err))
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Davetli güncellendi."})
}

// ResetToPending davetlinin LCV durumunu sıfırlar, böylece tekrar yanıt
// verebilir (POST /dashboard/guests/:id/reset).
func (h *GuestHandler) ResetToPending(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz ID."})
	}

	if err := h.service.ResetToPending(c.UserContext(), uint(id), adminID(c)); err != nil {
		status := guestErrorStatus(err)
		if status == fiber.StatusInternalServerError {
			configslog.Log.Error("Dashboard - ResetToPending Error", zap.Int("id", id), zap.Error(err))
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "LCV durumu sıfırlandı."})
}

// DeleteGuest davetliyi siler (DELETE /dashboard/guests/:id).
func (h *GuestHandler) DeleteGuest(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Geçersiz ID."})
	}

	if err := h.service.DeleteGuest(c.UserContext(), uint(id), adminID(c)); err != nil {
		status := guestErrorStatus(err)
		if status == fiber.StatusInternalServerError {
			configslog.Log.Error("Dashboard - DeleteGuest Error", zap.Int("id", id), zap.Error(err))
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Davetli silindi."})
}
