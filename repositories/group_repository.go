package repositories

import (
	"context"
	"errors"

	"dugun.link/configs"
	"dugun.link/configs/configslog"
	"dugun.link/models"
	"dugun.link/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IGroupRepository davetli grubu veritabanı işlemleri için arayüz.
type IGroupRepository interface {
	Create(ctx context.Context, group *models.GuestGroup) error
	FindByID(ctx context.Context, id uint) (*models.GuestGroup, error)
	FindByKey(ctx context.Context, key string) (*models.GuestGroup, error)
	FindAll(ctx context.Context) ([]models.GuestGroup, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.GuestGroup, int64, error)
	Update(ctx context.Context, group *models.GuestGroup) error
	Delete(ctx context.Context, group *models.GuestGroup, deletedByUserID uint) error
	CountAll(ctx context.Context) (int64, error)
}

// GroupRepository IGroupRepository arayüzünü uygular.
type GroupRepository struct {
	db *gorm.DB
}

// NewGroupRepository yeni bir GroupRepository örneği oluşturur.
func NewGroupRepository() IGroupRepository {
	return &GroupRepository{db: configs.GetDB()}
}

// NewGroupRepositoryTx transaction içinde çalışan repository oluşturur.
func NewGroupRepositoryTx(tx *gorm.DB) IGroupRepository {
	return &GroupRepository{db: tx}
}

func (r *GroupRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

func (r *GroupRepository) Create(ctx context.Context, group *models.GuestGroup) error {
	if group == nil {
		return errors.New("geçersiz grup verisi")
	}
	return r.getDB(ctx).Create(group).Error
}

func (r *GroupRepository) FindByID(ctx context.Context, id uint) (*models.GuestGroup, error) {
	if id == 0 {
		return nil, errors.New("geçersiz ID")
	}
	var group models.GuestGroup
	err := r.getDB(ctx).First(&group, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("GroupRepository.FindByID error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &group, nil
}

// FindByKey public LCV anahtarı ile grubu bulur.
func (r *GroupRepository) FindByKey(ctx context.Context, key string) (*models.GuestGroup, error) {
	if key == "" {
		return nil, ErrNotFound
	}
	var group models.GuestGroup
	err := r.getDB(ctx).Where("rsvp_key = ?", key).First(&group).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("GroupRepository.FindByKey error", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	return &group, nil
}

func (r *GroupRepository) FindAll(ctx context.Context) ([]models.GuestGroup, error) {
	var groups []models.GuestGroup
	err := r.getDB(ctx).Order("group_name asc").Find(&groups).Error
	if err != nil {
		configslog.Log.Error("GroupRepository.FindAll error", zap.Error(err))
		return nil, err
	}
	return groups, nil
}

func (r *GroupRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.GuestGroup, int64, error) {
	var (
		groups []models.GuestGroup
		total  int64
	)
	db := r.getDB(ctx).Model(&models.GuestGroup{})
	if params.Search != "" {
		// LOWER + LIKE hem PostgreSQL hem SQLite'ta çalışır.
		db = db.Where("LOWER(group_name) LIKE LOWER(?)", "%"+params.Search+"%")
	}
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := "group_name"
	if params.SortBy == "created_at" || params.SortBy == "group_name" || params.SortBy == "guest_type" {
		sortBy = params.SortBy
	}
	err := db.Order(sortBy + " " + params.OrderBy).
		Offset(params.Offset()).Limit(params.PerPage).
		Find(&groups).Error
	if err != nil {
		configslog.Log.Error("GroupRepository.FindAllPaginated error", zap.Error(err))
		return nil, 0, err
	}
	return groups, total, nil
}

func (r *GroupRepository) Update(ctx context.Context, group *models.GuestGroup) error {
	if group == nil || group.ID == 0 {
		return errors.New("geçersiz grup")
	}
	return r.getDB(ctx).Save(group).Error
}

// Delete grubu soft delete eder. Davetlilerin silinmesi servis katmanındaki
// transaction'da yapılır (cascade).
func (r *GroupRepository) Delete(ctx context.Context, group *models.GuestGroup, deletedByUserID uint) error {
	if group == nil || group.ID == 0 {
		return errors.New("geçersiz grup")
	}
	db := r.getDB(ctx)
	result := db.Model(&models.GuestGroup{}).
		Where("id = ? AND deleted_at IS NULL", group.ID).
		Updates(map[string]interface{}{"deleted_at": db.NowFunc(), "deleted_by": &deletedByUserID})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GroupRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.GuestGroup{}).Count(&count).Error
	return count, err
}

var _ IGroupRepository = (*GroupRepository)(nil)
