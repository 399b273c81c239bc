package dashboard

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"dugun.link/configs/configslog"
	"dugun.link/models"
	"dugun.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ExportHandler katılacak davetlilerin CSV dökümü için handler.
type ExportHandler struct {
	guestService services.IGuestService
	groupService services.IGroupService
}

// NewExportHandler yeni bir ExportHandler örneği oluşturur.
func NewExportHandler() *ExportHandler {
	return &ExportHandler{
		guestService: services.NewGuestService(),
		groupService: services.NewGroupService(),
	}
}

func exportSideLabel(t models.GuestType) string {
	switch t {
	case models.GuestTypeBride:
		return "Gelin"
	case models.GuestTypeGroom:
		return "Damat"
	default:
		return ""
	}
}

// ExportAttending katılacağını bildiren davetlileri CSV olarak indirir
// (GET /dashboard/export/attending).
func (h *ExportHandler) ExportAttending(c *fiber.Ctx) error {
	guests, err := h.guestService.GetAllGuests(c.UserContext())
	if err != nil {
		configslog.Log.Error("Dashboard - ExportAttending Error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Dışa aktarma başarısız."})
	}

	groups, err := h.groupService.GetAllGroups(c.UserContext())
	if err != nil {
		configslog.Log.Error("Dashboard - ExportAttending: gruplar alınamadı", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Dışa aktarma başarısız."})
	}
	groupsByID := make(map[uint]models.GuestGroup, len(groups))
	for _, g := range groups {
		groupsByID[g.ID] = g
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"Ad Soyad", "Grup", "Taraf", "E-posta", "LCV Tarihi"})

	count := 0
	for _, guest := range guests {
		if guest.IsComing == nil || !*guest.IsComing {
			continue
		}
		groupName := ""
		side := exportSideLabel(guest.GuestType)
		if guest.GroupID != nil {
			if group, ok := groupsByID[*guest.GroupID]; ok {
				groupName = group.GroupName
				side = exportSideLabel(group.GuestType)
			}
		}
		rsvpDate := ""
		if guest.RSVPDate != nil {
			rsvpDate = guest.RSVPDate.Format("2006-01-02 15:04")
		}
		_ = w.Write([]string{guest.Name, groupName, side, guest.Email, rsvpDate})
		count++
	}
	w.Flush()
	if err := w.Error(); err != nil {
		configslog.Log.Error("Dashboard - ExportAttending: CSV yazılamadı", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Dışa aktarma başarısız."})
	}

	configslog.SLog.Infof("Katılımcı listesi dışa aktarıldı: %d kayıt", count)

	filename := fmt.Sprintf("attending-guests-%s.csv", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, "attachment; filename="+strconv.Quote(filename))
	return c.Send(buf.Bytes())
}
