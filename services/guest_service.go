package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dugun.link/configs"
	"dugun.link/configs/configslog"
	"dugun.link/models"
	"dugun.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GuestServiceError özel servis hataları
type GuestServiceError string

func (e GuestServiceError) Error() string { return string(e) }

const (
	ErrGuestNotFound       GuestServiceError = "davetli bulunamadı"
	ErrGuestNameRequired   GuestServiceError = "davetli adı zorunludur"
	ErrGuestInvalidInput   GuestServiceError = "geçersiz davetli verisi"
	ErrGuestCreationFailed GuestServiceError = "davetli oluşturulamadı"
	ErrGuestUpdateFailed   GuestServiceError = "davetli güncellenemedi"
	ErrGuestDeletionFailed GuestServiceError = "davetli silinemedi"
)

// IGuestService davetli işlemleri için arayüz (yönetici tarafı).
type IGuestService interface {
	CreateGuest(ctx context.Context, adminUserID uint, guest models.Guest) (*models.Guest, error)
	GetGuestByID(ctx context.Context, id uint) (*models.Guest, error)
	GetGuestsByGroup(ctx context.Context, groupID uint) ([]models.Guest, error)
	GetAllGuests(ctx context.Context) ([]models.Guest, error)
	GetStandaloneGuests(ctx context.Context) ([]models.Guest, error)
	UpdateGuest(ctx context.Context, id uint, adminUserID uint, updates models.Guest) error
	ResetToPending(ctx context.Context, id uint, adminUserID uint) error
	DeleteGuest(ctx context.Context, id uint, adminUserID uint) error
}

// GuestService IGuestService arayüzünü uygular.
type GuestService struct {
	repo      repositories.IGuestRepository
	groupRepo repositories.IGroupRepository
	db        *gorm.DB
}

// NewGuestService yeni bir GuestService örneği oluşturur.
func NewGuestService() IGuestService {
	return &GuestService{
		repo:      repositories.NewGuestRepository(),
		groupRepo: repositories.NewGroupRepository(),
		db:        configs.GetDB(),
	}
}

// ValidateGuest temel validasyonları yapar.
func ValidateGuest(guest models.Guest) error {
	if strings.TrimSpace(guest.Name) == "" {
		return ErrGuestNameRequired
	}
	if guest.MaxCount < 1 {
		return fmt.Errorf("%w: max_count en az 1 olmalı", ErrGuestInvalidInput)
	}
	if guest.GuestType != models.GuestTypeBride && guest.GuestType != models.GuestTypeGroom {
		return fmt.Errorf("%w: guest_type 'bride' veya 'groom' olmalı", ErrGuestInvalidInput)
	}
	return nil
}

// CreateGuest yönetici tarafından yeni davetli oluşturur. Gruba bağlıysa grup
// var olmalıdır; önceden belirlenmiş grupların listesi yalnızca bu yolla büyür.
func (s *GuestService) CreateGuest(ctx context.Context, adminUserID uint, guest models.Guest) (*models.Guest, error) {
	if err := ValidateGuest(guest); err != nil {
		return nil, err
	}
	guest.Name = strings.TrimSpace(guest.Name)

	if guest.GroupID != nil {
		if _, err := s.groupRepo.FindByID(ctx, *guest.GroupID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, fmt.Errorf("%w: grup bulunamadı", ErrGuestInvalidInput)
			}
			return nil, err
		}
	}

	ctxWithUser := models.WithUserID(ctx, adminUserID)
	if err := s.repo.Create(ctxWithUser, &guest); err != nil {
		configslog.Log.Error("CreateGuest failed", zap.String("name", guest.Name), zap.Error(err))
		return nil, ErrGuestCreationFailed
	}
	configslog.SLog.Infof("Davetli oluşturuldu: ID %d, %q", guest.ID, guest.Name)
	return &guest, nil
}

func (s *GuestService) GetGuestByID(ctx context.Context, id uint) (*models.Guest, error) {
	guest, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, err
	}
	return guest, nil
}

func (s *GuestService) GetGuestsByGroup(ctx context.Context, groupID uint) ([]models.Guest, error) {
	if groupID == 0 {
		return nil, fmt.Errorf("%w: geçersiz grup ID", ErrGuestInvalidInput)
	}
	return s.repo.FindByGroupID(ctx, groupID)
}

func (s *GuestService) GetAllGuests(ctx context.Context) ([]models.Guest, error) {
	return s.repo.FindAll(ctx)
}

func (s *GuestService) GetStandaloneGuests(ctx context.Context) ([]models.Guest, error) {
	return s.repo.FindStandalone(ctx)
}

// UpdateGuest davetlinin düzenlenebilir alanlarını günceller (yönetici).
func (s *GuestService) UpdateGuest(ctx context.Context, id uint, adminUserID uint, updates models.Guest) error {
	if id == 0 {
		return fmt.Errorf("%w: geçersiz ID", ErrGuestInvalidInput)
	}
	if err := ValidateGuest(updates); err != nil {
		return err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrGuestNotFound
		}
		return err
	}

	existing.Name = strings.TrimSpace(updates.Name)
	existing.Email = strings.TrimSpace(updates.Email)
	existing.MaxCount = updates.MaxCount
	existing.GuestType = updates.GuestType
	existing.Role = updates.Role
	existing.IsComing = updates.IsComing
	existing.RSVPSubmitted = updates.RSVPSubmitted

	ctxWithUser := models.WithUserID(ctx, adminUserID)
	if err := s.repo.Update(ctxWithUser, existing); err != nil {
		configslog.Log.Error("UpdateGuest failed", zap.Uint("id", id), zap.Error(err))
		return ErrGuestUpdateFailed
	}
	configslog.SLog.Infof("Davetli güncellendi: ID %d (güncelleyen: %d)", id, adminUserID)
	return nil
}

// ResetToPending davetliyi beklemeye çeker: IsComing = null, RSVPSubmitted =
// false. Kesin cevapla oluşan kilit böylece kalkar ve public LCV yeniden
// gönderim kabul eder. Ret işaretçi kaydı ("(katılamıyor)") gerçek bir davetli
// değildir; beklemeye çekmek yerine silinir, yoksa grupta kontenjan işgal eder
// ve beklemede bir davetli gibi görünür.
func (s *GuestService) ResetToPending(ctx context.Context, id uint, adminUserID uint) error {
	if id == 0 {
		return fmt.Errorf("%w: geçersiz ID", ErrGuestInvalidInput)
	}

	guest, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrGuestNotFound
		}
		return err
	}
	if guest.Name == models.DeclineSentinelName && guest.GroupID != nil {
		if err := s.repo.Delete(ctx, guest, adminUserID); err != nil {
			configslog.Log.Error("ResetToPending sentinel delete failed", zap.Uint("id", id), zap.Error(err))
			return ErrGuestUpdateFailed
		}
		configslog.SLog.Infof("Ret işaretçi kaydı silindi, grup yeniden açıldı: ID %d (yönetici: %d)", id, adminUserID)
		return nil
	}

	ctxWithUser := models.WithUserID(ctx, adminUserID)
	err = s.repo.UpdateFields(ctxWithUser, id, map[string]interface{}{
		"is_coming":      nil,
		"rsvp_submitted": false,
		"rsvp_date":      nil,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrGuestNotFound
		}
		configslog.Log.Error("ResetToPending failed", zap.Uint("id", id), zap.Error(err))
		return ErrGuestUpdateFailed
	}
	configslog.SLog.Infof("Davetli beklemeye çekildi: ID %d (yönetici: %d)", id, adminUserID)
	return nil
}

// DeleteGuest davetliyi siler; bireysel davetliyse refakatçileri de aynı
// transaction'da silinir.
func (s *GuestService) DeleteGuest(ctx context.Context, id uint, adminUserID uint) error {
	if id == 0 {
		return fmt.Errorf("%w: geçersiz ID", ErrGuestInvalidInput)
	}

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		guestRepoTx := repositories.NewGuestRepositoryTx(tx)

		guest, err := guestRepoTx.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrGuestNotFound
			}
			return err
		}

		// Refakatçileri de sil.
		if err := tx.Model(&models.Guest{}).
			Where("companion_of = ? AND deleted_at IS NULL", guest.ID).
			Updates(map[string]interface{}{"deleted_at": tx.NowFunc(), "deleted_by": &adminUserID}).Error; err != nil {
			return err
		}
		return guestRepoTx.Delete(ctx, guest, adminUserID)
	})

	if txErr != nil {
		var svcErr GuestServiceError
		if errors.As(txErr, &svcErr) {
			return svcErr
		}
		configslog.Log.Error("DeleteGuest transaction failed", zap.Uint("id", id), zap.Error(txErr))
		return ErrGuestDeletionFailed
	}
	configslog.SLog.Infof("Davetli silindi: ID %d (silen: %d)", id, adminUserID)
	return nil
}

var _ IGuestService = (*GuestService)(nil)
