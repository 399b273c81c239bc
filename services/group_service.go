package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dugun.link/configs"
	"dugun.link/configs/configslog"
	"dugun.link/models"
	"dugun.link/pkg/queryparams"
	"dugun.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GroupServiceError özel servis hataları
type GroupServiceError string

func (e GroupServiceError) Error() string { return string(e) }

const (
	ErrGroupNotFound       GroupServiceError = "davetli grubu bulunamadı"
	ErrGroupNameRequired   GroupServiceError = "grup adı zorunludur"
	ErrGroupInvalidInput   GroupServiceError = "geçersiz grup verisi"
	ErrGroupCreationFailed GroupServiceError = "grup oluşturulamadı"
	ErrGroupUpdateFailed   GroupServiceError = "grup güncellenemedi"
	ErrGroupDeletionFailed GroupServiceError = "grup silinemedi"
)

// GroupListItemKind yönetici liste görünümündeki öğe türü.
type GroupListItemKind string

const (
	ListItemGroup      GroupListItemKind = "group"
	ListItemIndividual GroupListItemKind = "individual"
)

// GroupListItem yönetici listesindeki bir satır: ya gerçek bir grup ya da
// bağımsız bireysel davetliyi saran sözde-grup. Alan yoklamak yerine Kind
// ayrımıyla çalışılır; Kind'a göre yalnızca ilgili alan doludur.
type GroupListItem struct {
	Kind  GroupListItemKind  `json:"kind"`
	Group *models.GuestGroup `json:"group,omitempty"`
	Guest *models.Guest      `json:"guest,omitempty"`
}

// IGroupService davetli grubu işlemleri için arayüz.
type IGroupService interface {
	CreateGroup(ctx context.Context, adminUserID uint, group models.GuestGroup) (*models.GuestGroup, error)
	GetGroupByID(ctx context.Context, id uint) (*models.GuestGroup, error)
	GetGroupByKey(ctx context.Context, key string) (*models.GuestGroup, error)
	GetAllGroups(ctx context.Context) ([]models.GuestGroup, error)
	GetAllGroupsPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	ListCombined(ctx context.Context) ([]GroupListItem, error)
	UpdateGroup(ctx context.Context, id uint, adminUserID uint, updates models.GuestGroup) error
	DeleteGroup(ctx context.Context, id uint, adminUserID uint) error
}

// GroupService IGroupService arayüzünü uygular.
type GroupService struct {
	repo      repositories.IGroupRepository
	guestRepo repositories.IGuestRepository
	db        *gorm.DB
}

// NewGroupService yeni bir GroupService örneği oluşturur.
func NewGroupService() IGroupService {
	return &GroupService{
		repo:      repositories.NewGroupRepository(),
		guestRepo: repositories.NewGuestRepository(),
		db:        configs.GetDB(),
	}
}

// ValidateGroup temel validasyonları yapar.
func ValidateGroup(group models.GuestGroup) error {
	if strings.TrimSpace(group.GroupName) == "" {
		return ErrGroupNameRequired
	}
	if group.GroupCountMax < 0 {
		return fmt.Errorf("%w: kontenjan negatif olamaz", ErrGroupInvalidInput)
	}
	if group.GuestType != models.GuestTypeBride && group.GuestType != models.GuestTypeGroom {
		return fmt.Errorf("%w: guest_type 'bride' veya 'groom' olmalı", ErrGroupInvalidInput)
	}
	switch group.Role {
	case models.GuestRoleFamily, models.GuestRoleFriends, models.GuestRoleIndividual:
	default:
		return fmt.Errorf("%w: geçersiz role", ErrGroupInvalidInput)
	}
	return nil
}

// CreateGroup yeni bir davetli grubu oluşturur.
func (s *GroupService) CreateGroup(ctx context.Context, adminUserID uint, group models.GuestGroup) (*models.GuestGroup, error) {
	if err := ValidateGroup(group); err != nil {
		return nil, err
	}
	group.GroupName = strings.TrimSpace(group.GroupName)

	ctxWithUser := models.WithUserID(ctx, adminUserID)
	if err := s.repo.Create(ctxWithUser, &group); err != nil {
		configslog.Log.Error("CreateGroup failed", zap.String("name", group.GroupName), zap.Error(err))
		return nil, ErrGroupCreationFailed
	}

	configslog.SLog.Infof("Grup oluşturuldu: ID %d, %q (anahtar: %s)", group.ID, group.GroupName, group.RSVPKey)
	return &group, nil
}

func (s *GroupService) GetGroupByID(ctx context.Context, id uint) (*models.GuestGroup, error) {
	group, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}
	return group, nil
}

func (s *GroupService) GetGroupByKey(ctx context.Context, key string) (*models.GuestGroup, error) {
	group, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}
	return group, nil
}

// GetAllGroups tüm grupları getirir.
func (s *GroupService) GetAllGroups(ctx context.Context) ([]models.GuestGroup, error) {
	return s.repo.FindAll(ctx)
}

// GetAllGroupsPaginated tüm grupları sayfalayarak getirir (yönetici listesi).
func (s *GroupService) GetAllGroupsPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	groups, totalCount, err := s.repo.FindAllPaginated(ctx, params)
	if err != nil {
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data: groups,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page, PerPage: params.PerPage,
			TotalItems: totalCount, TotalPages: queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

// ListCombined grupları ve bağımsız bireysel davetlileri tek listede döndürür.
// Public sayfa ve yönetici listesi bu birleşik görünümü kullanır; her yenileme
// sıfırdan hesaplanır, türetilmiş durum tutulmaz.
func (s *GroupService) ListCombined(ctx context.Context) ([]GroupListItem, error) {
	groups, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	standalone, err := s.guestRepo.FindStandalone(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]GroupListItem, 0, len(groups)+len(standalone))
	for i := range groups {
		items = append(items, GroupListItem{Kind: ListItemGroup, Group: &groups[i]})
	}
	for i := range standalone {
		items = append(items, GroupListItem{Kind: ListItemIndividual, Guest: &standalone[i]})
	}
	return items, nil
}

// UpdateGroup grubun düzenlenebilir alanlarını günceller.
func (s *GroupService) UpdateGroup(ctx context.Context, id uint, adminUserID uint, updates models.GuestGroup) error {
	if id == 0 {
		return fmt.Errorf("%w: geçersiz ID", ErrGroupInvalidInput)
	}
	if err := ValidateGroup(updates); err != nil {
		return err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrGroupNotFound
		}
		return err
	}

	existing.GroupName = strings.TrimSpace(updates.GroupName)
	existing.GroupCountMax = updates.GroupCountMax
	existing.IsPredetermined = updates.IsPredetermined
	existing.GuestType = updates.GuestType
	existing.Role = updates.Role

	ctxWithUser := models.WithUserID(ctx, adminUserID)
	if err := s.repo.Update(ctxWithUser, existing); err != nil {
		configslog.Log.Error("UpdateGroup failed", zap.Uint("id", id), zap.Error(err))
		return ErrGroupUpdateFailed
	}
	configslog.SLog.Infof("Grup güncellendi: ID %d (güncelleyen: %d)", id, adminUserID)
	return nil
}

// DeleteGroup grubu ve tüm davetlilerini tek transaction'da siler (cascade).
func (s *GroupService) DeleteGroup(ctx context.Context, id uint, adminUserID uint) error {
	if id == 0 {
		return fmt.Errorf("%w: geçersiz ID", ErrGroupInvalidInput)
	}

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		groupRepoTx := repositories.NewGroupRepositoryTx(tx)
		guestRepoTx := repositories.NewGuestRepositoryTx(tx)

		group, err := groupRepoTx.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrGroupNotFound
			}
			return err
		}

		// Önce davetliler, sonra grup.
		if err := guestRepoTx.DeleteByGroupID(ctx, group.ID, adminUserID); err != nil {
			return err
		}
		return groupRepoTx.Delete(ctx, group, adminUserID)
	})

	if txErr != nil {
		var svcErr GroupServiceError
		if errors.As(txErr, &svcErr) {
			return svcErr
		}
		configslog.Log.Error("DeleteGroup transaction failed", zap.Uint("id", id), zap.Error(txErr))
		return ErrGroupDeletionFailed
	}
	configslog.SLog.Infof("Grup ve davetlileri silindi: ID %d (silen: %d)", id, adminUserID)
	return nil
}

var _ IGroupService = (*GroupService)(nil)
