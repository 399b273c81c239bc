package services_test

import (
	"errors"
	"testing"

	"dugun.link/models"
	"dugun.link/services"
)

// stubSender testlerde SMTP yerine geçer; gönderimleri kaydeder ve
// istenirse belirli adreslerde hata döndürür.
type stubSender struct {
	sent    []string
	failFor map[string]error
}

func (s *stubSender) Send(to, subject, htmlBody, embedPath string) error {
	if err, ok := s.failFor[to]; ok {
		return err
	}
	s.sent = append(s.sent, to)
	return nil
}

func TestSendInvitation(t *testing.T) {
	db := setupTestDB(t)
	guest := createGuest(t, db, models.Guest{
		Name: "Elif", Email: "elif@example.com",
		IsComing: boolPtr(true), RSVPSubmitted: true,
		GuestType: models.GuestTypeBride, Role: models.GuestRoleIndividual,
	})

	sender := &stubSender{}
	svc := services.NewMailerServiceWithSender(sender)

	if _, err := svc.SendInvitation(testCtx(), guest.ID); err != nil {
		t.Fatalf("SendInvitation başarısız: %v", err)
	}
	if len(sender.sent) != 1 || sender.sent[0] != "elif@example.com" {
		t.Fatalf("tek gönderim bekleniyordu, %v bulundu", sender.sent)
	}

	var updated models.Guest
	if err := db.First(&updated, guest.ID).Error; err != nil {
		t.Fatalf("davetli okunamadı: %v", err)
	}
	if !updated.InvitationEmailSent || updated.InvitationEmailSentAt == nil {
		t.Error("gönderim davetli kaydına işlenmeliydi")
	}
	if !updated.ManualInvitationSent {
		t.Error("manuel gönderim bayrağı işaretlenmeliydi")
	}
}

func TestSendInvitationNoEmail(t *testing.T) {
	db := setupTestDB(t)
	guest := createGuest(t, db, models.Guest{
		Name: "E-postasız", IsComing: boolPtr(true),
		GuestType: models.GuestTypeGroom, Role: models.GuestRoleIndividual,
	})

	svc := services.NewMailerServiceWithSender(&stubSender{})
	_, err := svc.SendInvitation(testCtx(), guest.ID)
	if !errors.Is(err, services.ErrMailNoEmail) {
		t.Fatalf("ErrMailNoEmail bekleniyordu, %v döndü", err)
	}

	if _, err := svc.SendInvitation(testCtx(), 9999); !errors.Is(err, services.ErrMailGuestNotFound) {
		t.Errorf("olmayan davetlide ErrMailGuestNotFound bekleniyordu, %v döndü", err)
	}
}

func TestSendInvitationFailureRecordedOnGuest(t *testing.T) {
	db := setupTestDB(t)
	guest := createGuest(t, db, models.Guest{
		Name: "Hatalı", Email: "bozuk@example.com",
		IsComing: boolPtr(true), RSVPSubmitted: true,
		GuestType: models.GuestTypeBride, Role: models.GuestRoleIndividual,
	})

	sender := &stubSender{failFor: map[string]error{
		"bozuk@example.com": errors.New("smtp: bağlantı reddedildi"),
	}}
	svc := services.NewMailerServiceWithSender(sender)

	_, err := svc.SendInvitation(testCtx(), guest.ID)
	if !errors.Is(err, services.ErrMailSendFailed) {
		t.Fatalf("ErrMailSendFailed bekleniyordu, %v döndü", err)
	}

	var updated models.Guest
	if err := db.First(&updated, guest.ID).Error; err != nil {
		t.Fatalf("davetli okunamadı: %v", err)
	}
	if updated.InvitationEmailSent {
		t.Error("başarısız gönderim sent olarak işaretlenmemeli")
	}
	if updated.InvitationEmailError == "" || updated.InvitationEmailErrorAt == nil {
		t.Error("gönderim hatası davetli kaydına yazılmalıydı")
	}
}

func TestSendBulkInvitations(t *testing.T) {
	db := setupTestDB(t)

	// Gönderilecek: geliyor + e-posta var.
	ok := createGuest(t, db, models.Guest{
		Name: "Gidecek", Email: "ok@example.com",
		IsComing: boolPtr(true), RSVPSubmitted: true,
		GuestType: models.GuestTypeBride, Role: models.GuestRoleIndividual,
	})
	// Atlanacak: e-postası yok.
	createGuest(t, db, models.Guest{
		Name: "E-postasız", IsComing: boolPtr(true), RSVPSubmitted: true,
		GuestType: models.GuestTypeBride, Role: models.GuestRoleIndividual,
	})
	// Hata verecek.
	createGuest(t, db, models.Guest{
		Name: "Bozuk", Email: "fail@example.com",
		IsComing: boolPtr(true), RSVPSubmitted: true,
		GuestType: models.GuestTypeGroom, Role: models.GuestRoleIndividual,
	})
	// Kapsam dışı: gelmiyor.
	createGuest(t, db, models.Guest{
		Name: "Gelmiyor", Email: "no@example.com",
		IsComing: boolPtr(false), RSVPSubmitted: true,
		GuestType: models.GuestTypeGroom, Role: models.GuestRoleIndividual,
	})
	// Kapsam dışı: davetiye zaten gönderilmiş.
	createGuest(t, db, models.Guest{
		Name: "Zaten Aldı", Email: "done@example.com",
		IsComing: boolPtr(true), RSVPSubmitted: true, InvitationEmailSent: true,
		GuestType: models.GuestTypeBride, Role: models.GuestRoleIndividual,
	})

	sender := &stubSender{failFor: map[string]error{
		"fail@example.com": errors.New("smtp: zaman aşımı"),
	}}
	svc := services.NewMailerServiceWithSender(sender)

	report, err := svc.SendBulkInvitations(testCtx())
	if err != nil {
		t.Fatalf("SendBulkInvitations başarısız: %v", err)
	}
	if report.TotalProcessed != 3 {
		t.Fatalf("3 kayıt işlenmeliydi, %d işlendi", report.TotalProcessed)
	}

	byStatus := map[services.DispatchStatus]int{}
	for _, r := range report.Results {
		byStatus[r.Status]++
	}
	if byStatus[services.DispatchSent] != 1 ||
		byStatus[services.DispatchSkipped] != 1 ||
		byStatus[services.DispatchError] != 1 {
		t.Errorf("beklenmeyen sonuç dağılımı: %v", byStatus)
	}

	// Başarılı gönderim toplu bayrağıyla işlenir.
	var updated models.Guest
	if err := db.First(&updated, ok.ID).Error; err != nil {
		t.Fatalf("davetli okunamadı: %v", err)
	}
	if !updated.InvitationEmailSent || !updated.BulkInvitationSent {
		t.Error("başarılı toplu gönderim davetli kaydına işlenmeliydi")
	}
}

func TestNotifyGuestConfirmed(t *testing.T) {
	db := setupTestDB(t)
	guest := createGuest(t, db, models.Guest{
		Name: "Onaylı", Email: "onay@example.com",
		IsComing: boolPtr(true), RSVPSubmitted: true,
		GuestType: models.GuestTypeBride, Role: models.GuestRoleIndividual,
	})

	sender := &stubSender{}
	svc := services.NewMailerServiceWithSender(sender)

	svc.NotifyGuestConfirmed(testCtx(), guest.ID)
	if len(sender.sent) != 1 {
		t.Fatalf("onay sonrası tek gönderim bekleniyordu, %d bulundu", len(sender.sent))
	}

	// Davetiye zaten gönderildiyse tekrar gönderilmez.
	svc.NotifyGuestConfirmed(testCtx(), guest.ID)
	if len(sender.sent) != 1 {
		t.Errorf("davetiyesi gönderilmiş davetliye tekrar gönderim yapılmamalı")
	}

	// Gelmiyor diyen davetliye gönderilmez.
	declined := createGuest(t, db, models.Guest{
		Name: "Retli", Email: "ret@example.com",
		IsComing: boolPtr(false), RSVPSubmitted: true,
		GuestType: models.GuestTypeGroom, Role: models.GuestRoleIndividual,
	})
	svc.NotifyGuestConfirmed(testCtx(), declined.ID)
	if len(sender.sent) != 1 {
		t.Errorf("gelmeyen davetliye davetiye gönderilmemeli")
	}
}
