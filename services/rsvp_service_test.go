package services_test

import (
	"errors"
	"testing"

	"dugun.link/models"
	"dugun.link/services"
)

func TestSubmitUnknownGroupComing(t *testing.T) {
	db := setupTestDB(t)
	group := createGroup(t, db, models.GuestGroup{
		GroupName: "Gelinin Arkadaşları", GroupCountMax: 5,
		GuestType: models.GuestTypeBride, Role: models.GuestRoleFriends,
	})

	svc := services.NewRSVPService()
	err := svc.SubmitRSVP(testCtx(), services.RSVPSubmission{
		GroupID:  group.ID,
		Email:    "zeynep@example.com",
		IsComing: true,
		Names:    []string{"Zeynep Kaya", " Ece Kaya ", ""},
	})
	if err != nil {
		t.Fatalf("SubmitRSVP başarısız: %v", err)
	}

	var guests []models.Guest
	if err := db.Where("group_id = ?", group.ID).Order("id").Find(&guests).Error; err != nil {
		t.Fatalf("davetliler okunamadı: %v", err)
	}
	// Boş isim ayıklanır, 2 kayıt kalır.
	if len(guests) != 2 {
		t.Fatalf("2 davetli bekleniyordu, %d bulundu", len(guests))
	}
	if guests[1].Name != "Ece Kaya" {
		t.Errorf("isimler kırpılmalı, %q bulundu", guests[1].Name)
	}
	for _, g := range guests {
		if g.IsComing == nil || !*g.IsComing {
			t.Errorf("%s için is_coming=true bekleniyordu", g.Name)
		}
		if !g.RSVPSubmitted || g.RSVPDate == nil {
			t.Errorf("%s için LCV alanları doldurulmalıydı", g.Name)
		}
		if g.Email != "zeynep@example.com" {
			t.Errorf("e-posta tüm kayıtlara yazılmalı, %q bulundu", g.Email)
		}
	}

	// Gönderimden sonra grup kilitlenir.
	state, err := svc.GetGroupState(testCtx(), group.ID)
	if err != nil {
		t.Fatalf("GetGroupState başarısız: %v", err)
	}
	if !state.Locked {
		t.Error("gönderim yapılmış grup kilitli olmalı")
	}
}

func TestSubmitUnknownGroupCapacityAtomic(t *testing.T) {
	db := setupTestDB(t)
	group := createGroup(t, db, models.GuestGroup{
		GroupName: "Küçük Grup", GroupCountMax: 2,
		GuestType: models.GuestTypeGroom, Role: models.GuestRoleFriends,
	})

	svc := services.NewRSVPService()
	err := svc.SubmitRSVP(testCtx(), services.RSVPSubmission{
		GroupID:  group.ID,
		IsComing: true,
		Names:    []string{"A", "B", "C"},
	})
	if !errors.Is(err, services.ErrRSVPCapacityExceeded) {
		t.Fatalf("ErrRSVPCapacityExceeded bekleniyordu, %v döndü", err)
	}

	// Reddedilen gönderimden geriye hiçbir kayıt kalmamalı.
	if n := countGuestsInGroup(t, db, group.ID); n != 0 {
		t.Errorf("kontenjan aşımında hiç kayıt oluşmamalı, %d bulundu", n)
	}
}

func TestSubmitUnknownGroupDecline(t *testing.T) {
	db := setupTestDB(t)
	group := createGroup(t, db, models.GuestGroup{
		GroupName: "Uzak Akrabalar", GroupCountMax: 4,
		GuestType: models.GuestTypeBride, Role: models.GuestRoleFriends,
	})

	svc := services.NewRSVPService()
	err := svc.SubmitRSVP(testCtx(), services.RSVPSubmission{
		GroupID:  group.ID,
		IsComing: false,
		Names:    []string{"Bu", "İsimler", "Yoksayılır"},
	})
	if err != nil {
		t.Fatalf("ret gönderimi başarısız: %v", err)
	}

	var guests []models.Guest
	if err := db.Where("group_id = ?", group.ID).Find(&guests).Error; err != nil {
		t.Fatalf("davetliler okunamadı: %v", err)
	}
	if len(guests) != 1 {
		t.Fatalf("ret yolunda tek işaretçi kayıt bekleniyordu, %d bulundu", len(guests))
	}
	sentinel := guests[0]
	if sentinel.Name != models.DeclineSentinelName {
		t.Errorf("işaretçi kaydın adı %q olmalı, %q bulundu", models.DeclineSentinelName, sentinel.Name)
	}
	if sentinel.IsComing == nil || *sentinel.IsComing {
		t.Error("işaretçi kayıt is_coming=false olmalı")
	}

	state, err := svc.GetGroupState(testCtx(), group.ID)
	if err != nil {
		t.Fatalf("GetGroupState başarısız: %v", err)
	}
	if !state.Locked {
		t.Error("ret göndermiş grup kilitli olmalı")
	}
}

func TestSubmitUnknownGroupValidation(t *testing.T) {
	db := setupTestDB(t)
	group := createGroup(t, db, models.GuestGroup{
		GroupName: "Boş Liste", GroupCountMax: 3,
		GuestType: models.GuestTypeBride, Role: models.GuestRoleFriends,
	})

	svc := services.NewRSVPService()

	err := svc.SubmitRSVP(testCtx(), services.RSVPSubmission{
		GroupID: group.ID, IsComing: true, Names: []string{"  ", ""},
	})
	if !errors.Is(err, services.ErrRSVPNamesRequired) {
		t.Errorf("boş isim listesinde ErrRSVPNamesRequired bekleniyordu, %v döndü", err)
	}

	err = svc.SubmitRSVP(testCtx(), services.RSVPSubmission{})
	if !errors.Is(err, services.ErrRSVPInvalidInput) {
		t.Errorf("boş gönderimlerde ErrRSVPInvalidInput bekleniyordu, %v döndü", err)
	}

	err = svc.SubmitRSVP(testCtx(), services.RSVPSubmission{GroupID: 9999, IsComing: true, Names: []string{"A"}})
	if !errors.Is(err, services.ErrRSVPGroupNotFound) {
		t.Errorf("olmayan grupta ErrRSVPGroupNotFound bekleniyordu, %v döndü", err)
	}
}

func TestSubmitUnknownGroupAlreadyLocked(t *testing.T) {
	db := setupTestDB(t)
	group := createGroup(t, db, models.GuestGroup{
		GroupName: "Tek Seferlik", GroupCountMax: 5,
		GuestType: models.GuestTypeGroom, Role: models.GuestRoleFriends,
	})

	svc := services.NewRSVPService()
	if err := svc.SubmitRSVP(testCtx(), services.RSVPSubmission{
		GroupID: group.ID, IsComing: true, Names: []string{"İlk"},
	}); err != nil {
		t.Fatalf("ilk gönderim başarısız: %v", err)
	}

	err := svc.SubmitRSVP(testCtx(), services.RSVPSubmission{
		GroupID: group.ID, IsComing: true, Names: []string{"İkinci"},
	})
	if !errors.Is(err, services.ErrRSVPGroupLocked) {
		t.Fatalf("ikinci gönderimde ErrRSVPGroupLocked bekleniyordu, %v döndü", err)
	}
	if n := countGuestsInGroup(t, db, group.ID); n != 1 {
		t.Errorf("kilitli grupta yeni kayıt oluşmamalı, %d bulundu", n)
	}
}

func TestSubmitPredetermined(t *testing.T) {
	db := setupTestDB(t)
	group := createGroup(t, db, models.GuestGroup{
		GroupName: "Gelin Ailesi", IsPredetermined: true,
		GuestType: models.GuestTypeBride, Role: models.GuestRoleFamily,
	})
	ayse := createGuest(t, db, models.Guest{
		GroupID: &group.ID, Name: "Ayşe", GuestType: models.GuestTypeBride, Role: models.GuestRoleFamily,
	})
	mehmet := createGuest(t, db, models.Guest{
		GroupID: &group.ID, Name: "Mehmet", GuestType: models.GuestTypeBride, Role: models.GuestRoleFamily,
	})

	svc := services.NewRSVPService()

	// İlk üye cevaplar; diğeri beklemede olduğu için grup açık kalır.
	if err := svc.SubmitRSVP(testCtx(), services.RSVPSubmission{
		GroupID: group.ID, GuestID: ayse.ID, Email: "ayse@example.com", IsComing: true,
	}); err != nil {
		t.Fatalf("ilk üye gönderimi başarısız: %v", err)
	}

	state, err := svc.GetGroupState(testCtx(), group.ID)
	if err != nil {
		t.Fatalf("GetGroupState başarısız: %v", err)
	}
	if state.Locked {
		t.Error("beklemede üyesi olan grup açık kalmalı")
	}

	// Aynı üye tekrar cevaplayamaz.
	err = svc.SubmitRSVP(testCtx(), services.RSVPSubmission{
		GroupID: group.ID, GuestID: ayse.ID, IsComing: false,
	})
	if !errors.Is(err, services.ErrRSVPGuestLocked) {
		t.Errorf("cevaplamış üyede ErrRSVPGuestLocked bekleniyordu, %v döndü", err)
	}

	// Son üye de cevaplayınca grup kilitlenir.
	if err := svc.SubmitRSVP(testCtx(), services.RSVPSubmission{
		GroupID: group.ID, GuestID: mehmet.ID, IsComing: false,
	}); err != nil {
		t.Fatalf("ikinci üye gönderimi başarısız: %v", err)
	}

	state, err = svc.GetGroupState(testCtx(), group.ID)
	if err != nil {
		t.Fatalf("GetGroupState başarısız: %v", err)
	}
	if !state.Locked {
		t.Error("tüm üyeleri cevaplamış grup kilitli olmalı")
	}

	// guest_id verilmezse gönderim reddedilir.
	err = svc.SubmitRSVP(testCtx(), services.RSVPSubmission{GroupID: group.ID, IsComing: true})
	if !errors.Is(err, services.ErrRSVPInvalidInput) {
		t.Errorf("guest_id eksikken ErrRSVPInvalidInput bekleniyordu, %v döndü", err)
	}
}

func TestSubmitStandaloneWithCompanions(t *testing.T) {
	db := setupTestDB(t)
	guest := createGuest(t, db, models.Guest{
		Name: "Deniz", MaxCount: 3,
		GuestType: models.GuestTypeGroom, Role: models.GuestRoleIndividual,
	})

	svc := services.NewRSVPService()
	if err := svc.SubmitRSVP(testCtx(), services.RSVPSubmission{
		GuestID: guest.ID, Email: "deniz@example.com", IsComing: true,
		Names: []string{"Derya", "Doruk"},
	}); err != nil {
		t.Fatalf("bireysel gönderim başarısız: %v", err)
	}

	var updated models.Guest
	if err := db.First(&updated, guest.ID).Error; err != nil {
		t.Fatalf("davetli okunamadı: %v", err)
	}
	if updated.IsComing == nil || !*updated.IsComing || !updated.RSVPSubmitted {
		t.Error("bireysel davetlinin LCV alanları doldurulmalıydı")
	}

	var companions []models.Guest
	if err := db.Where("companion_of = ?", guest.ID).Find(&companions).Error; err != nil {
		t.Fatalf("refakatçiler okunamadı: %v", err)
	}
	if len(companions) != 2 {
		t.Fatalf("2 refakatçi bekleniyordu, %d bulundu", len(companions))
	}

	// Kilitli davetli tekrar cevaplayamaz.
	err := svc.SubmitRSVP(testCtx(), services.RSVPSubmission{GuestID: guest.ID, IsComing: false})
	if !errors.Is(err, services.ErrRSVPGuestLocked) {
		t.Errorf("ErrRSVPGuestLocked bekleniyordu, %v döndü", err)
	}
}

func TestSubmitStandaloneCapacity(t *testing.T) {
	db := setupTestDB(t)
	guest := createGuest(t, db, models.Guest{
		Name: "Tek Kişilik", MaxCount: 1,
		GuestType: models.GuestTypeBride, Role: models.GuestRoleIndividual,
	})

	svc := services.NewRSVPService()
	err := svc.SubmitRSVP(testCtx(), services.RSVPSubmission{
		GuestID: guest.ID, IsComing: true, Names: []string{"Fazla Kişi"},
	})
	if !errors.Is(err, services.ErrRSVPCapacityExceeded) {
		t.Fatalf("refakatçi hakkı olmayan davetlide ErrRSVPCapacityExceeded bekleniyordu, %v döndü", err)
	}
}

func TestResetToPendingReopensGroup(t *testing.T) {
	db := setupTestDB(t)
	group := createGroup(t, db, models.GuestGroup{
		GroupName: "Açılacak Grup", GroupCountMax: 4,
		GuestType: models.GuestTypeBride, Role: models.GuestRoleFriends,
	})

	rsvpSvc := services.NewRSVPService()
	if err := rsvpSvc.SubmitRSVP(testCtx(), services.RSVPSubmission{
		GroupID: group.ID, IsComing: true, Names: []string{"Bir", "İki"},
	}); err != nil {
		t.Fatalf("gönderim başarısız: %v", err)
	}

	state, err := rsvpSvc.GetGroupState(testCtx(), group.ID)
	if err != nil {
		t.Fatalf("GetGroupState başarısız: %v", err)
	}
	if !state.Locked {
		t.Fatal("gönderim sonrası grup kilitli olmalı")
	}

	// Yönetici tüm kayıtları beklemeye çeker, grup tekrar açılır.
	guestSvc := services.NewGuestService()
	for _, g := range state.Guests {
		if err := guestSvc.ResetToPending(testCtx(), g.ID, 1); err != nil {
			t.Fatalf("ResetToPending başarısız: %v", err)
		}
	}

	state, err = rsvpSvc.GetGroupState(testCtx(), group.ID)
	if err != nil {
		t.Fatalf("GetGroupState başarısız: %v", err)
	}
	if state.Locked {
		t.Error("tüm kayıtları beklemeye çekilmiş grup açık olmalı")
	}
	for _, g := range state.Guests {
		if g.IsComing != nil || g.RSVPSubmitted || g.RSVPDate != nil {
			t.Errorf("%s beklemeye çekilmiş olmalıydı", g.Name)
		}
	}
}

func TestResetDeclineSentinelFreesGroup(t *testing.T) {
	db := setupTestDB(t)
	group := createGroup(t, db, models.GuestGroup{
		GroupName: "Ret Sonrası Açılacak Grup", GroupCountMax: 5,
		GuestType: models.GuestTypeGroom, Role: models.GuestRoleFriends,
	})

	rsvpSvc := services.NewRSVPService()
	if err := rsvpSvc.SubmitRSVP(testCtx(), services.RSVPSubmission{
		GroupID: group.ID, IsComing: false,
	}); err != nil {
		t.Fatalf("ret gönderimi başarısız: %v", err)
	}

	state, err := rsvpSvc.GetGroupState(testCtx(), group.ID)
	if err != nil {
		t.Fatalf("GetGroupState başarısız: %v", err)
	}
	if !state.Locked {
		t.Fatal("ret sonrası grup kilitli olmalı")
	}
	if len(state.Guests) != 1 || state.Guests[0].Name != models.DeclineSentinelName {
		t.Fatalf("grupta yalnızca işaretçi kayıt beklenirdi, %d kayıt bulundu", len(state.Guests))
	}

	// Yönetici işaretçi kaydı beklemeye çeker: kayıt silinir, grup tekrar
	// boş ve açık hale gelir.
	guestSvc := services.NewGuestService()
	if err := guestSvc.ResetToPending(testCtx(), state.Guests[0].ID, 1); err != nil {
		t.Fatalf("ResetToPending başarısız: %v", err)
	}

	state, err = rsvpSvc.GetGroupState(testCtx(), group.ID)
	if err != nil {
		t.Fatalf("GetGroupState başarısız: %v", err)
	}
	if state.Locked {
		t.Error("işaretçi kayıt silindikten sonra grup açık olmalı")
	}
	if len(state.Guests) != 0 {
		t.Errorf("işaretçi kayıt listede kalmamalı, %d kayıt bulundu", len(state.Guests))
	}
	if state.RemainingCapacity != group.GroupCountMax {
		t.Errorf("kontenjan %d'e dönmeliydi, %d bulundu", group.GroupCountMax, state.RemainingCapacity)
	}
}

func TestGetGroupStateByKey(t *testing.T) {
	db := setupTestDB(t)
	group := createGroup(t, db, models.GuestGroup{
		GroupName: "Anahtarlı Grup", GroupCountMax: 3,
		GuestType: models.GuestTypeGroom, Role: models.GuestRoleFriends,
	})
	if group.RSVPKey == "" {
		t.Fatal("grup oluşturulurken LCV anahtarı üretilmeliydi")
	}

	svc := services.NewRSVPService()
	state, err := svc.GetGroupStateByKey(testCtx(), group.RSVPKey)
	if err != nil {
		t.Fatalf("GetGroupStateByKey başarısız: %v", err)
	}
	if state.Group.ID != group.ID {
		t.Errorf("anahtar yanlış grubu getirdi: %d != %d", state.Group.ID, group.ID)
	}
	if state.RemainingCapacity != 3 {
		t.Errorf("boş grupta kalan kontenjan 3 olmalı, %d döndü", state.RemainingCapacity)
	}

	if _, err := svc.GetGroupStateByKey(testCtx(), "yok-boyle-anahtar"); !errors.Is(err, services.ErrRSVPGroupNotFound) {
		t.Errorf("olmayan anahtarda ErrRSVPGroupNotFound bekleniyordu, %v döndü", err)
	}
}
