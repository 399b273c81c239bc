package services_test

import (
	"testing"

	"dugun.link/models"
	"dugun.link/services"
)

func TestComputeStatsExpected(t *testing.T) {
	// Gelin tarafı: kontenjanlı grup (5 kişi).
	// Damat tarafı: önceden belirlenmiş grup (2 üye) + bireysel davetli (1 kişi).
	groups := []models.GuestGroup{
		{BaseModel: models.BaseModel{ID: 1}, GroupName: "Gelinin Arkadaşları",
			GroupCountMax: 5, GuestType: models.GuestTypeBride},
		{BaseModel: models.BaseModel{ID: 2}, GroupName: "Damat Ailesi",
			IsPredetermined: true, GuestType: models.GuestTypeGroom},
	}
	guests := []models.Guest{
		{BaseModel: models.BaseModel{ID: 10}, GroupID: uintPtr(2), Name: "Fatma", MaxCount: 1,
			GuestType: models.GuestTypeGroom},
		{BaseModel: models.BaseModel{ID: 11}, GroupID: uintPtr(2), Name: "Ali", MaxCount: 1,
			GuestType: models.GuestTypeGroom},
		{BaseModel: models.BaseModel{ID: 12}, Name: "Deniz", MaxCount: 1,
			GuestType: models.GuestTypeGroom, Role: models.GuestRoleIndividual},
	}

	summary := services.ComputeStats(groups, guests)

	if summary.Bride.Expected != 5 {
		t.Errorf("gelin tarafı beklenen 5 olmalı, %d döndü", summary.Bride.Expected)
	}
	if summary.Groom.Expected != 3 {
		t.Errorf("damat tarafı beklenen 3 olmalı, %d döndü", summary.Groom.Expected)
	}
	if summary.Total.Expected != 8 {
		t.Errorf("toplam beklenen 8 olmalı, %d döndü", summary.Total.Expected)
	}
}

func TestComputeStatsRespondedStrict(t *testing.T) {
	groups := []models.GuestGroup{
		{BaseModel: models.BaseModel{ID: 1}, GroupName: "Aile",
			IsPredetermined: true, GuestType: models.GuestTypeBride},
	}
	guests := []models.Guest{
		// Tam cevap: gönderilmiş + e-posta + kesin cevap.
		{BaseModel: models.BaseModel{ID: 1}, GroupID: uintPtr(1), Name: "Tam", MaxCount: 1,
			RSVPSubmitted: true, Email: "tam@example.com", IsComing: boolPtr(true)},
		// E-postasız "geliyor" ne cevapladı ne de gelen sayılır.
		{BaseModel: models.BaseModel{ID: 2}, GroupID: uintPtr(1), Name: "E-postasız", MaxCount: 1,
			RSVPSubmitted: true, IsComing: boolPtr(true)},
		// Beklemede.
		{BaseModel: models.BaseModel{ID: 3}, GroupID: uintPtr(1), Name: "Beklemede", MaxCount: 1},
		// Gelmiyor: LCV gönderilmişse e-postasız da sayılır.
		{BaseModel: models.BaseModel{ID: 4}, GroupID: uintPtr(1), Name: "Gelmiyor", MaxCount: 1,
			RSVPSubmitted: true, IsComing: boolPtr(false)},
		// Gönderilmemiş ret (yönetici eliyle işaretlenmiş): gelmiyor sayılmaz.
		{BaseModel: models.BaseModel{ID: 5}, GroupID: uintPtr(1), Name: "Gönderilmemiş Ret", MaxCount: 1,
			IsComing: boolPtr(false)},
	}

	summary := services.ComputeStats(groups, guests)

	if summary.Total.Expected != 5 {
		t.Errorf("beklenen 5 olmalı, %d döndü", summary.Total.Expected)
	}
	if summary.Total.Responded != 1 {
		t.Errorf("cevaplayan 1 olmalı (e-postasızlar sayılmaz), %d döndü", summary.Total.Responded)
	}
	if summary.Total.Going != 1 {
		t.Errorf("gelen 1 olmalı (e-postasız geliyor sayılmaz), %d döndü", summary.Total.Going)
	}
	if summary.Total.NotGoing != 1 {
		t.Errorf("gelmeyen 1 olmalı (gönderilmemiş ret sayılmaz), %d döndü", summary.Total.NotGoing)
	}
	if summary.Total.Pending != 4 {
		t.Errorf("beklemede 4 olmalı (5 beklenen - 1 cevap), %d döndü", summary.Total.Pending)
	}

	// Tüm sayılar gelin tarafına yazılmalı; taraf gruptan çözülür.
	if summary.Bride.Responded != 1 || summary.Groom.Responded != 0 {
		t.Errorf("taraf dağılımı hatalı: gelin=%d damat=%d",
			summary.Bride.Responded, summary.Groom.Responded)
	}
	if summary.Bride.Going != 1 || summary.Bride.NotGoing != 1 {
		t.Errorf("taraf dağılımı hatalı: geliyor=%d gelmiyor=%d",
			summary.Bride.Going, summary.Bride.NotGoing)
	}
}

func TestStatsSummaryFromDatabase(t *testing.T) {
	db := setupTestDB(t)
	group := createGroup(t, db, models.GuestGroup{
		GroupName: "Arkadaşlar", GroupCountMax: 4,
		GuestType: models.GuestTypeBride, Role: models.GuestRoleFriends,
	})
	createGuest(t, db, models.Guest{
		GroupID: &group.ID, Name: "Cevaplı", Email: "c@example.com",
		RSVPSubmitted: true, IsComing: boolPtr(true),
		GuestType: models.GuestTypeBride, Role: models.GuestRoleFriends,
	})

	svc := services.NewStatsService()
	summary, err := svc.Summary(testCtx())
	if err != nil {
		t.Fatalf("Summary başarısız: %v", err)
	}
	if summary.Total.Expected != 4 || summary.Total.Responded != 1 || summary.Total.Pending != 3 {
		t.Errorf("beklenmeyen özet: %+v", summary.Total)
	}
}
