package repositories

import (
	"context"
	"errors"

	"dugun.link/configs"
	"dugun.link/configs/configslog"
	"dugun.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IGuestRepository davetli veritabanı işlemleri için arayüz.
type IGuestRepository interface {
	Create(ctx context.Context, guest *models.Guest) error
	CreateBatch(ctx context.Context, guests []*models.Guest) error
	FindByID(ctx context.Context, id uint) (*models.Guest, error)
	FindByGroupID(ctx context.Context, groupID uint) ([]models.Guest, error)
	FindAll(ctx context.Context) ([]models.Guest, error)
	FindStandalone(ctx context.Context) ([]models.Guest, error)
	FindPendingInvitations(ctx context.Context) ([]models.Guest, error)
	Update(ctx context.Context, guest *models.Guest) error
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, guest *models.Guest, deletedByUserID uint) error
	DeleteByGroupID(ctx context.Context, groupID uint, deletedByUserID uint) error
	CountByGroupID(ctx context.Context, groupID uint) (int64, error)
}

// GuestRepository IGuestRepository arayüzünü uygular.
type GuestRepository struct {
	db *gorm.DB
}

// NewGuestRepository yeni bir GuestRepository örneği oluşturur.
func NewGuestRepository() IGuestRepository {
	return &GuestRepository{db: configs.GetDB()}
}

// NewGuestRepositoryTx transaction içinde çalışan repository oluşturur.
func NewGuestRepositoryTx(tx *gorm.DB) IGuestRepository {
	return &GuestRepository{db: tx}
}

func (r *GuestRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

func (r *GuestRepository) Create(ctx context.Context, guest *models.Guest) error {
	if guest == nil {
		return errors.New("geçersiz davetli verisi")
	}
	return r.getDB(ctx).Create(guest).Error
}

// CreateBatch birden fazla davetliyi tek insert ile oluşturur.
// Bilinmeyen grup LCV'sinde "ya hepsi ya hiçbiri" garantisi çağıranın
// transaction'ı ile sağlanır.
func (r *GuestRepository) CreateBatch(ctx context.Context, guests []*models.Guest) error {
	if len(guests) == 0 {
		return errors.New("oluşturulacak davetli yok")
	}
	return r.getDB(ctx).Create(guests).Error
}

func (r *GuestRepository) FindByID(ctx context.Context, id uint) (*models.Guest, error) {
	if id == 0 {
		return nil, errors.New("geçersiz ID")
	}
	var guest models.Guest
	err := r.getDB(ctx).Preload("Group").First(&guest, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("GuestRepository.FindByID error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &guest, nil
}

func (r *GuestRepository) FindByGroupID(ctx context.Context, groupID uint) ([]models.Guest, error) {
	if groupID == 0 {
		return nil, errors.New("geçersiz grup ID")
	}
	var guests []models.Guest
	err := r.getDB(ctx).Where("group_id = ?", groupID).Order("created_at asc").Find(&guests).Error
	if err != nil {
		configslog.Log.Error("GuestRepository.FindByGroupID error", zap.Uint("groupID", groupID), zap.Error(err))
		return nil, err
	}
	return guests, nil
}

func (r *GuestRepository) FindAll(ctx context.Context) ([]models.Guest, error) {
	var guests []models.Guest
	err := r.getDB(ctx).Order("created_at asc").Find(&guests).Error
	if err != nil {
		configslog.Log.Error("GuestRepository.FindAll error", zap.Error(err))
		return nil, err
	}
	return guests, nil
}

// FindStandalone hiçbir gruba bağlı olmayan bireysel davetlileri getirir.
// Refakatçi kayıtları dahil değildir.
func (r *GuestRepository) FindStandalone(ctx context.Context) ([]models.Guest, error) {
	var guests []models.Guest
	err := r.getDB(ctx).
		Where("group_id IS NULL AND companion_of IS NULL").
		Order("name asc").Find(&guests).Error
	if err != nil {
		configslog.Log.Error("GuestRepository.FindStandalone error", zap.Error(err))
		return nil, err
	}
	return guests, nil
}

// FindPendingInvitations "geliyor" deyip henüz davetiye e-postası
// gönderilmemiş davetlileri getirir (toplu gönderim için).
func (r *GuestRepository) FindPendingInvitations(ctx context.Context) ([]models.Guest, error) {
	var guests []models.Guest
	err := r.getDB(ctx).
		Where("is_coming = ? AND invitation_email_sent = ?", true, false).
		Order("created_at asc").Find(&guests).Error
	if err != nil {
		configslog.Log.Error("GuestRepository.FindPendingInvitations error", zap.Error(err))
		return nil, err
	}
	return guests, nil
}

func (r *GuestRepository) Update(ctx context.Context, guest *models.Guest) error {
	if guest == nil || guest.ID == 0 {
		return errors.New("geçersiz davetli")
	}
	return r.getDB(ctx).Save(guest).Error
}

// UpdateFields yalnızca verilen kolonları günceller. IsComing'in nil'e
// (beklemeye) çekilmesi gibi kısmi güncellemeler için Save yerine bu kullanılır.
func (r *GuestRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	if id == 0 || len(fields) == 0 {
		return errors.New("geçersiz güncelleme isteği")
	}
	result := r.getDB(ctx).Model(&models.Guest{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		configslog.Log.Error("GuestRepository.UpdateFields error", zap.Uint("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GuestRepository) Delete(ctx context.Context, guest *models.Guest, deletedByUserID uint) error {
	if guest == nil || guest.ID == 0 {
		return errors.New("geçersiz davetli")
	}
	db := r.getDB(ctx)
	result := db.Model(&models.Guest{}).
		Where("id = ? AND deleted_at IS NULL", guest.ID).
		Updates(map[string]interface{}{"deleted_at": db.NowFunc(), "deleted_by": &deletedByUserID})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByGroupID bir grubun tüm davetlilerini soft delete eder.
// Grup silme cascade'inin parçasıdır; çağıranın transaction'ında çalışmalıdır.
func (r *GuestRepository) DeleteByGroupID(ctx context.Context, groupID uint, deletedByUserID uint) error {
	if groupID == 0 {
		return errors.New("geçersiz grup ID")
	}
	db := r.getDB(ctx)
	return db.Model(&models.Guest{}).
		Where("group_id = ? AND deleted_at IS NULL", groupID).
		Updates(map[string]interface{}{"deleted_at": db.NowFunc(), "deleted_by": &deletedByUserID}).Error
}

func (r *GuestRepository) CountByGroupID(ctx context.Context, groupID uint) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Guest{}).Where("group_id = ?", groupID).Count(&count).Error
	return count, err
}

var _ IGuestRepository = (*GuestRepository)(nil)
