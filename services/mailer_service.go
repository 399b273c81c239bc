package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dugun.link/configs"
	"dugun.link/configs/configslog"
	"dugun.link/models"
	"dugun.link/repositories"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// MailerServiceError özel servis hataları
type MailerServiceError string

func (e MailerServiceError) Error() string { return string(e) }

const (
	ErrMailGuestNotFound MailerServiceError = "davetli bulunamadı"
	ErrMailNoEmail       MailerServiceError = "davetlinin e-posta adresi yok"
	ErrMailSendFailed    MailerServiceError = "davetiye e-postası gönderilemedi"
)

// DispatchStatus tek bir alıcı için gönderim sonucu.
type DispatchStatus string

const (
	DispatchSent    DispatchStatus = "sent"
	DispatchSkipped DispatchStatus = "skipped"
	DispatchError   DispatchStatus = "error"
)

// DispatchResult toplu gönderimde davetli başına sonuç satırı.
type DispatchResult struct {
	GuestID uint           `json:"guest_id"`
	Name    string         `json:"name"`
	Email   string         `json:"email,omitempty"`
	Status  DispatchStatus `json:"status"`
	Reason  string         `json:"reason,omitempty"` // skipped için
	Error   string         `json:"error,omitempty"`  // error için
}

// BulkDispatchReport toplu gönderimin özeti.
type BulkDispatchReport struct {
	Success        bool             `json:"success"`
	TotalProcessed int              `json:"total_processed"`
	Results        []DispatchResult `json:"results"`
}

// bulkSendDelay art arda gönderimler arasındaki sabit bekleme.
// Üçüncü taraf SMTP sağlayıcısının oran limitine takılmamak için.
const bulkSendDelay = time.Second

// IInvitationNotifier LCV onayı sonrası davetiye tetikleyicisi.
// RSVPService yalnızca bu dar arayüzü görür.
type IInvitationNotifier interface {
	NotifyGuestConfirmed(ctx context.Context, guestID uint)
}

// IMailerService davetiye e-postası işlemleri için arayüz.
type IMailerService interface {
	IInvitationNotifier
	SendInvitation(ctx context.Context, guestID uint) (string, error)
	SendBulkInvitations(ctx context.Context) (*BulkDispatchReport, error)
}

// MailSender dışa giden posta taşıyıcısı. Testlerde sahte uygulamayla
// değiştirilir; production'da gomail/SMTP kullanılır.
type MailSender interface {
	Send(to, subject, htmlBody, embedPath string) error
}

// gomailSender MailSender'ı gomail + SMTP ile uygular.
type gomailSender struct {
	cfg *configs.Config
}

func (s *gomailSender) Send(to, subject, htmlBody, embedPath string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.MailFrom)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)
	if embedPath != "" {
		m.Embed(embedPath)
	}
	d := gomail.NewDialer(s.cfg.SMTPHost, s.cfg.SMTPPort, s.cfg.SMTPUser, s.cfg.SMTPPass)
	return d.DialAndSend(m)
}

// MailerService IMailerService arayüzünü uygular.
// Teslimat garantisi "en az bir kez, en iyi çaba"dır: başarı ve hata davetli
// kaydına işlenir, kuyruk veya tekrar deneme mekanizması yoktur.
type MailerService struct {
	guestRepo repositories.IGuestRepository
	sender    MailSender
	cfg       *configs.Config
}

// NewMailerService SMTP ile gönderen servis oluşturur.
func NewMailerService() IMailerService {
	cfg := configs.GetConfig()
	return &MailerService{
		guestRepo: repositories.NewGuestRepository(),
		sender:    &gomailSender{cfg: cfg},
		cfg:       cfg,
	}
}

// NewMailerServiceWithSender testler için taşıyıcısı dışarıdan verilen servis.
func NewMailerServiceWithSender(sender MailSender) IMailerService {
	return &MailerService{
		guestRepo: repositories.NewGuestRepository(),
		sender:    sender,
		cfg:       configs.GetConfig(),
	}
}

// embedImagePath konfigüre edilmiş davetiye görseli varsa yolunu döndürür.
func (s *MailerService) embedImagePath() string {
	p := s.cfg.InvitationImagePath
	if p == "" {
		return ""
	}
	if _, err := os.Stat(p); err != nil {
		configslog.SLog.Warnf("Davetiye görseli okunamadı, görselsiz gönderilecek: %s", p)
		return ""
	}
	return p
}

// sendTo şablonu doldurur, gönderir ve sonucu davetli kaydına işler.
func (s *MailerService) sendTo(ctx context.Context, guest *models.Guest, extraFields map[string]interface{}) error {
	embedPath := s.embedImagePath()

	data := invitationEmailData{
		GuestName:   guest.Name,
		CoupleNames: s.cfg.CoupleNames,
		WeddingDate: s.cfg.WeddingDate,
		Ceremony:    s.cfg.CeremonyVenue,
		Reception:   s.cfg.ReceptionVenue,
		SiteBaseURL: s.cfg.SiteBaseURL,
		SideLabel:   sideLabel(guest.GuestType),
		HasImage:    embedPath != "",
	}
	if embedPath != "" {
		data.ImageCID = filepath.Base(embedPath)
	}
	if guest.Group != nil {
		data.GroupName = guest.Group.GroupName
	}

	subject := fmt.Sprintf("Düğünümüze Davetlisiniz — %s", s.cfg.CoupleNames)
	html, err := buildInvitationHTML(data)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if err := s.sender.Send(guest.Email, subject, html, embedPath); err != nil {
		// Gönderim hatası davetli kaydına yazılır; çağırana sade hata döner.
		recordErr := s.guestRepo.UpdateFields(ctx, guest.ID, map[string]interface{}{
			"invitation_email_error":    err.Error(),
			"invitation_email_error_at": now,
		})
		if recordErr != nil {
			configslog.Log.Error("Gönderim hatası davetli kaydına yazılamadı",
				zap.Uint("guestID", guest.ID), zap.Error(recordErr))
		}
		configslog.Log.Error("Davetiye e-postası gönderilemedi",
			zap.Uint("guestID", guest.ID), zap.String("email", guest.Email), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrMailSendFailed, err)
	}

	fields := map[string]interface{}{
		"invitation_email_sent":    true,
		"invitation_email_sent_at": now,
		"invitation_email_error":   "",
	}
	for k, v := range extraFields {
		fields[k] = v
	}
	if err := s.guestRepo.UpdateFields(ctx, guest.ID, fields); err != nil {
		configslog.Log.Error("Gönderim durumu davetli kaydına yazılamadı",
			zap.Uint("guestID", guest.ID), zap.Error(err))
	}

	configslog.SLog.Infof("Davetiye e-postası gönderildi: %s <%s>", guest.Name, guest.Email)
	return nil
}

// SendInvitation tek bir davetliye davetiye gönderir (yönetici panelinden).
func (s *MailerService) SendInvitation(ctx context.Context, guestID uint) (string, error) {
	if guestID == 0 {
		return "", fmt.Errorf("%w: guest_id gerekli", ErrMailGuestNotFound)
	}
	guest, err := s.guestRepo.FindByID(ctx, guestID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", ErrMailGuestNotFound
		}
		return "", err
	}
	if guest.Email == "" {
		return "", ErrMailNoEmail
	}

	if err := s.sendTo(ctx, guest, map[string]interface{}{"manual_invitation_sent": true}); err != nil {
		return "", err
	}
	return fmt.Sprintf("Davetiye gönderildi: %s", guest.Email), nil
}

// SendBulkInvitations "geliyor" deyip henüz davetiye almamış tüm davetlilere
// gönderim yapar. Alıcı başına sonuç satırı döner; bir alıcıdaki hata
// diğerlerini durdurmaz.
func (s *MailerService) SendBulkInvitations(ctx context.Context) (*BulkDispatchReport, error) {
	pending, err := s.guestRepo.FindPendingInvitations(ctx)
	if err != nil {
		return nil, err
	}

	report := &BulkDispatchReport{Success: true, Results: make([]DispatchResult, 0, len(pending))}
	for i := range pending {
		guest := &pending[i]

		if guest.Email == "" {
			report.Results = append(report.Results, DispatchResult{
				GuestID: guest.ID, Name: guest.Name,
				Status: DispatchSkipped, Reason: "e-posta adresi yok",
			})
			continue
		}

		if err := s.sendTo(ctx, guest, map[string]interface{}{"bulk_invitation_sent": true}); err != nil {
			report.Results = append(report.Results, DispatchResult{
				GuestID: guest.ID, Name: guest.Name, Email: guest.Email,
				Status: DispatchError, Error: err.Error(),
			})
		} else {
			report.Results = append(report.Results, DispatchResult{
				GuestID: guest.ID, Name: guest.Name, Email: guest.Email,
				Status: DispatchSent,
			})
		}

		if i < len(pending)-1 {
			time.Sleep(bulkSendDelay)
		}
	}

	report.TotalProcessed = len(report.Results)
	configslog.SLog.Infof("Toplu davetiye gönderimi tamamlandı: %d kayıt işlendi", report.TotalProcessed)
	return report, nil
}

// NotifyGuestConfirmed LCV onayı sonrası tetiklenir: davetli "geliyor" ise,
// e-postası varsa ve daha önce gönderilmemişse davetiye yollar. Hatalar
// davetli kaydına işlenir ama LCV akışını asla bozmaz.
func (s *MailerService) NotifyGuestConfirmed(ctx context.Context, guestID uint) {
	guest, err := s.guestRepo.FindByID(ctx, guestID)
	if err != nil {
		configslog.Log.Warn("NotifyGuestConfirmed: davetli okunamadı",
			zap.Uint("guestID", guestID), zap.Error(err))
		return
	}
	if guest.IsComing == nil || !*guest.IsComing || guest.Email == "" || guest.InvitationEmailSent {
		return
	}
	// sendTo hatayı kayda işler; burada yutmak yeterli.
	_ = s.sendTo(ctx, guest, nil)
}

func sideLabel(t models.GuestType) string {
	if t == models.GuestTypeBride {
		return "Gelin Tarafı"
	}
	return "Damat Tarafı"
}

var _ IMailerService = (*MailerService)(nil)
