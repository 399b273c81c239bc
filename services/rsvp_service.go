package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dugun.link/configs"
	"dugun.link/configs/configslog"
	"dugun.link/models"
	"dugun.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RSVPServiceError özel servis hataları
type RSVPServiceError string

func (e RSVPServiceError) Error() string { return string(e) }

const (
	ErrRSVPGroupNotFound    RSVPServiceError = "davetli grubu bulunamadı"
	ErrRSVPGuestNotFound    RSVPServiceError = "davetli bulunamadı"
	ErrRSVPGroupLocked      RSVPServiceError = "bu grup için LCV zaten gönderilmiş"
	ErrRSVPGuestLocked      RSVPServiceError = "bu davetli için LCV zaten gönderilmiş"
	ErrRSVPNamesRequired    RSVPServiceError = "katılacak kişilerin isimleri zorunludur"
	ErrRSVPCapacityExceeded RSVPServiceError = "grup kontenjanı aşıldı"
	ErrRSVPInvalidInput     RSVPServiceError = "geçersiz LCV verisi"
	ErrRSVPSubmitFailed     RSVPServiceError = "LCV kaydedilemedi"
)

// RSVPSubmission public LCV formundan gelen veri.
//
// İki yol vardır:
//   - GroupID dolu: grup LCV'si. Önceden belirlenmiş gruplarda GuestID de
//     zorunludur (hangi üyenin cevap verdiği); bilinmeyen gruplarda Names
//     cevaplayanın getireceği kişilerdir.
//   - GroupID boş, GuestID dolu: bağımsız bireysel davetli LCV'si. Names
//     (varsa) refakatçi isimleridir; kendisi dahil MaxCount kişiyi geçemez.
type RSVPSubmission struct {
	GroupID  uint     `json:"group_id"`
	GuestID  uint     `json:"guest_id"`
	Email    string   `json:"email"`
	IsComing bool     `json:"is_coming"`
	Names    []string `json:"names"`
}

// GroupState public LCV sayfasının ihtiyaç duyduğu grup durumu.
type GroupState struct {
	Group             *models.GuestGroup `json:"group"`
	Guests            []models.Guest     `json:"guests"`
	Locked            bool               `json:"locked"`
	RemainingCapacity int                `json:"remaining_capacity"` // yalnızca bilinmeyen gruplar için anlamlı
}

// IRSVPService public LCV işlemleri için arayüz.
type IRSVPService interface {
	GetGroupStateByKey(ctx context.Context, key string) (*GroupState, error)
	GetGroupState(ctx context.Context, groupID uint) (*GroupState, error)
	SubmitRSVP(ctx context.Context, sub RSVPSubmission) error
}

// RSVPService IRSVPService arayüzünü uygular.
type RSVPService struct {
	groupRepo repositories.IGroupRepository
	guestRepo repositories.IGuestRepository
	notifier  IInvitationNotifier // nil olabilir; LCV sonrası davetiye e-postası tetikler
	db        *gorm.DB
}

// NewRSVPService bildirimsiz (e-posta tetiklemeyen) servis oluşturur.
func NewRSVPService() *RSVPService {
	return &RSVPService{
		groupRepo: repositories.NewGroupRepository(),
		guestRepo: repositories.NewGuestRepository(),
		db:        configs.GetDB(),
	}
}

// NewRSVPServiceWithNotifier LCV onayı sonrası davetiye e-postası tetikleyen
// servis oluşturur. Production kablolaması bunu kullanır.
func NewRSVPServiceWithNotifier(notifier IInvitationNotifier) *RSVPService {
	s := NewRSVPService()
	s.notifier = notifier
	return s
}

// --- Kilit Değerlendirici ---

// EvaluateGroupLock bir grubun public LCV girişinin kilitli olup olmadığına
// karar verir.
//
// Kural asimetriktir ve bilerek böyledir:
//   - Önceden belirlenmiş grup: üye listesi bellidir ve üye üye cevaplanır.
//     Grup ancak TÜM üyeler kesin cevap verdiyse kilitlenir; tek bir üye bile
//     beklemedeyse kalanlar cevap verebilsin diye açık kalır. Hiç üyesi
//     olmayan grup açıktır (kilitlenecek bir şey yok).
//   - Bilinmeyen grup: üyeler tek bir LCV gönderimiyle oluşturulur; HERHANGİ
//     bir üyenin kesin cevabı "grup zaten gönderdi" demektir ve grubu kilitler.
//     Yönetici ilgili kayıtları beklemeye çekerse kilit kalkar.
func EvaluateGroupLock(group *models.GuestGroup, guests []models.Guest) bool {
	if group.IsPredetermined {
		if len(guests) == 0 {
			return false
		}
		for _, g := range guests {
			if g.IsComing == nil {
				return false
			}
		}
		return true
	}
	for _, g := range guests {
		if g.IsComing != nil {
			return true
		}
	}
	return false
}

// RemainingCapacity bilinmeyen grubun kalan kontenjanını hesaplar.
// Önceden belirlenmiş gruplar için 0 döner (kontenjan kavramı yoktur).
func RemainingCapacity(group *models.GuestGroup, memberCount int) int {
	if group.IsPredetermined {
		return 0
	}
	remaining := group.GroupCountMax - memberCount
	if remaining < 0 {
		return 0
	}
	return remaining
}

// --- Durum Sorguları ---

// GetGroupStateByKey public davet linki anahtarı ile grup durumunu getirir.
func (s *RSVPService) GetGroupStateByKey(ctx context.Context, key string) (*GroupState, error) {
	group, err := s.groupRepo.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRSVPGroupNotFound
		}
		return nil, err
	}
	return s.buildGroupState(ctx, group)
}

// GetGroupState grup ID'si ile grup durumunu getirir.
func (s *RSVPService) GetGroupState(ctx context.Context, groupID uint) (*GroupState, error) {
	group, err := s.groupRepo.FindByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRSVPGroupNotFound
		}
		return nil, err
	}
	return s.buildGroupState(ctx, group)
}

func (s *RSVPService) buildGroupState(ctx context.Context, group *models.GuestGroup) (*GroupState, error) {
	guests, err := s.guestRepo.FindByGroupID(ctx, group.ID)
	if err != nil {
		return nil, err
	}
	return &GroupState{
		Group:             group,
		Guests:            guests,
		Locked:            EvaluateGroupLock(group, guests),
		RemainingCapacity: RemainingCapacity(group, len(guests)),
	}, nil
}

// --- LCV Gönderimi ---

// SubmitRSVP public LCV gönderimini işler ve doğru yola yönlendirir.
func (s *RSVPService) SubmitRSVP(ctx context.Context, sub RSVPSubmission) error {
	var confirmedIDs []uint
	var err error

	switch {
	case sub.GroupID != 0:
		group, findErr := s.groupRepo.FindByID(ctx, sub.GroupID)
		if findErr != nil {
			if errors.Is(findErr, repositories.ErrNotFound) {
				return ErrRSVPGroupNotFound
			}
			return findErr
		}
		if group.IsPredetermined {
			confirmedIDs, err = s.submitPredetermined(ctx, group, sub)
		} else {
			confirmedIDs, err = s.submitUnknownGroup(ctx, group, sub)
		}
	case sub.GuestID != 0:
		confirmedIDs, err = s.submitStandalone(ctx, sub)
	default:
		// Grup LCV'sinde group_id zorunludur.
		return fmt.Errorf("%w: group_id veya guest_id gerekli", ErrRSVPInvalidInput)
	}

	if err != nil {
		return err
	}

	// Onaylanan davetliler için davetiye e-postası tetikle. En iyi çaba:
	// gönderim hatası LCV'yi geçersiz kılmaz, hata davetli kaydına yazılır.
	if s.notifier != nil {
		for _, id := range confirmedIDs {
			s.notifier.NotifyGuestConfirmed(ctx, id)
		}
	}
	return nil
}

// submitPredetermined önceden belirlenmiş gruptaki tek bir üyenin cevabını
// işler. Yeni kayıt oluşturulmaz.
func (s *RSVPService) submitPredetermined(ctx context.Context, group *models.GuestGroup, sub RSVPSubmission) ([]uint, error) {
	if sub.GuestID == 0 {
		return nil, fmt.Errorf("%w: önceden belirlenmiş grupta guest_id zorunludur", ErrRSVPInvalidInput)
	}

	guest, err := s.guestRepo.FindByID(ctx, sub.GuestID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRSVPGuestNotFound
		}
		return nil, err
	}
	if guest.GroupID == nil || *guest.GroupID != group.ID {
		return nil, ErrRSVPGuestNotFound
	}
	if guest.IsLocked() {
		return nil, ErrRSVPGuestLocked
	}

	now := time.Now().UTC()
	isComing := sub.IsComing
	guest.Email = strings.TrimSpace(sub.Email)
	guest.IsComing = &isComing
	guest.RSVPSubmitted = true
	guest.RSVPDate = &now

	if err := s.guestRepo.Update(ctx, guest); err != nil {
		configslog.Log.Error("submitPredetermined: güncelleme başarısız",
			zap.Uint("guestID", guest.ID), zap.Error(err))
		return nil, ErrRSVPSubmitFailed
	}

	configslog.SLog.Infof("LCV alındı (önceden belirlenmiş): %s, grup %q, geliyor=%t",
		guest.Name, group.GroupName, isComing)

	if isComing && guest.Email != "" {
		return []uint{guest.ID}, nil
	}
	return nil, nil
}

// submitUnknownGroup bilinmeyen grubun tek seferlik LCV gönderimini işler.
//
// Gelme durumunda isim listesi kalan kontenjana sığmalıdır; tüm kayıtlar tek
// transaction'da oluşturulur (ya hepsi ya hiçbiri). Kontenjan sayımı da aynı
// transaction içinde, grup satırı kilitlenerek yapılır; böylece iki eşzamanlı
// gönderim birlikte kontenjanı aşamaz.
func (s *RSVPService) submitUnknownGroup(ctx context.Context, group *models.GuestGroup, sub RSVPSubmission) ([]uint, error) {
	email := strings.TrimSpace(sub.Email)
	now := time.Now().UTC()

	var created []*models.Guest
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		guestRepoTx := repositories.NewGuestRepositoryTx(tx)

		// a. Grup satırını kilitle (SQLite FOR UPDATE desteklemez; orada
		//    transaction'ın kendisi yazmaları serileştirir).
		lockTx := tx
		if tx.Dialector.Name() == "postgres" {
			lockTx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var lockedGroup models.GuestGroup
		if err := lockTx.First(&lockedGroup, group.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRSVPGroupNotFound
			}
			return err
		}

		// b. Mevcut üyeleri yeniden oku; kilit kontrolü güncel veriyle yapılır.
		members, err := guestRepoTx.FindByGroupID(ctx, lockedGroup.ID)
		if err != nil {
			return err
		}
		if EvaluateGroupLock(&lockedGroup, members) {
			return ErrRSVPGroupLocked
		}

		// c. Ret yolu: isim listesi ne olursa olsun tek bir işaretçi kayıt.
		if !sub.IsComing {
			declined := false
			sentinel := &models.Guest{
				GroupID:       &lockedGroup.ID,
				Name:          models.DeclineSentinelName,
				Email:         email,
				IsComing:      &declined,
				RSVPSubmitted: true,
				RSVPDate:      &now,
				MaxCount:      1,
				GuestType:     lockedGroup.GuestType,
				Role:          lockedGroup.Role,
			}
			return guestRepoTx.Create(ctx, sentinel)
		}

		// d. Gelme yolu: boş olmayan isimler zorunlu ve kontenjana sığmalı.
		names := trimNames(sub.Names)
		if len(names) == 0 {
			return ErrRSVPNamesRequired
		}
		if len(names) > RemainingCapacity(&lockedGroup, len(members)) {
			return ErrRSVPCapacityExceeded
		}

		coming := true
		for _, name := range names {
			created = append(created, &models.Guest{
				GroupID:       &lockedGroup.ID,
				Name:          name,
				Email:         email,
				IsComing:      &coming,
				RSVPSubmitted: true,
				RSVPDate:      &now,
				MaxCount:      1,
				GuestType:     lockedGroup.GuestType,
				Role:          lockedGroup.Role,
			})
		}
		return guestRepoTx.CreateBatch(ctx, created)
	})

	if txErr != nil {
		var svcErr RSVPServiceError
		if errors.As(txErr, &svcErr) {
			return nil, svcErr
		}
		configslog.Log.Error("submitUnknownGroup transaction failed",
			zap.Uint("groupID", group.ID), zap.Error(txErr))
		return nil, ErrRSVPSubmitFailed
	}

	configslog.SLog.Infof("LCV alındı (bilinmeyen grup): grup %q, geliyor=%t, kişi=%d",
		group.GroupName, sub.IsComing, len(created))

	if email == "" {
		return nil, nil
	}
	ids := make([]uint, 0, len(created))
	for _, g := range created {
		ids = append(ids, g.ID)
	}
	return ids, nil
}

// submitStandalone bağımsız bireysel davetlinin cevabını işler.
// Gelme durumunda verilen isimler refakatçi olarak kaydedilir; kendisi dahil
// MaxCount kişi sınırı uygulanır. Refakatçi kayıtları asıl davetliyle aynı
// transaction'da oluşturulur.
func (s *RSVPService) submitStandalone(ctx context.Context, sub RSVPSubmission) ([]uint, error) {
	guest, err := s.guestRepo.FindByID(ctx, sub.GuestID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRSVPGuestNotFound
		}
		return nil, err
	}
	if !guest.IsStandalone() {
		return nil, fmt.Errorf("%w: davetli bir gruba bağlı, grup LCV'si kullanılmalı", ErrRSVPInvalidInput)
	}
	if guest.IsLocked() {
		return nil, ErrRSVPGuestLocked
	}

	companionNames := trimNames(sub.Names)
	if sub.IsComing && len(companionNames) > guest.MaxCount-1 {
		return nil, ErrRSVPCapacityExceeded
	}

	now := time.Now().UTC()
	email := strings.TrimSpace(sub.Email)
	isComing := sub.IsComing
	var confirmed []uint

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		guestRepoTx := repositories.NewGuestRepositoryTx(tx)

		guest.Email = email
		guest.IsComing = &isComing
		guest.RSVPSubmitted = true
		guest.RSVPDate = &now
		if err := guestRepoTx.Update(ctx, guest); err != nil {
			return err
		}

		if !isComing {
			return nil
		}
		coming := true
		for _, name := range companionNames {
			companion := &models.Guest{
				Name:          name,
				Email:         email,
				IsComing:      &coming,
				RSVPSubmitted: true,
				RSVPDate:      &now,
				MaxCount:      1,
				GuestType:     guest.GuestType,
				Role:          guest.Role,
				CompanionOf:   &guest.ID,
			}
			if err := guestRepoTx.Create(ctx, companion); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		configslog.Log.Error("submitStandalone transaction failed",
			zap.Uint("guestID", guest.ID), zap.Error(txErr))
		return nil, ErrRSVPSubmitFailed
	}

	configslog.SLog.Infof("LCV alındı (bireysel): %s, geliyor=%t, refakatçi=%d",
		guest.Name, isComing, len(companionNames))

	if isComing && email != "" {
		confirmed = append(confirmed, guest.ID)
	}
	return confirmed, nil
}

// trimNames boş ve yalnızca boşluktan oluşan isimleri ayıklar.
func trimNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if t := strings.TrimSpace(n); t != "" {
			out = append(out, t)
		}
	}
	return out
}

var _ IRSVPService = (*RSVPService)(nil)
