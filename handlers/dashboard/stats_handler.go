package dashboard

import (
	"dugun.link/configs/configslog"
	"dugun.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// StatsHandler katılım istatistikleri için handler.
type StatsHandler struct {
	service services.IStatsService
}

// NewStatsHandler yeni bir StatsHandler örneği oluşturur.
func NewStatsHandler() *StatsHandler {
	return &StatsHandler{service: services.NewStatsService()}
}

// Summary toplam, gelin ve damat tarafı istatistiklerini döndürür
// (GET /dashboard/stats).
func (h *StatsHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.service.Summary(c.UserContext())
	if err != nil {
		configslog.Log.Error("Dashboard - Stats Summary Error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "İstatistikler hesaplanamadı."})
	}
	return c.JSON(fiber.Map{"data": summary})
}
