package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/epitechproject1/time-manager-staging/internal/model"
)

// PermissionRepository 授权数据访问接口
type PermissionRepository interface {
	Create(ctx context.Context, perm *model.Permission) error
	GetByID(ctx context.Context, id string) (*model.Permission, error)
	ListByGrantedTo(ctx context.Context, userID string) ([]model.Permission, error)
	Update(ctx context.Context, perm *model.Permission) error
	Delete(ctx context.Context, id string) error
}

type permissionRepo struct {
	db *gorm.DB
}

// NewPermissionRepo 创建 PermissionRepository 实例
func NewPermissionRepo(db *gorm.DB) PermissionRepository {
	return &permissionRepo{db: db}
}

func (r *permissionRepo) Create(ctx context.Context, perm *model.Permission) error {
	return r.db.WithContext(ctx).Create(perm).Error
}

func (r *permissionRepo) GetByID(ctx context.Context, id string) (*model.Permission, error) {
	var perm model.Permission
	err := r.db.WithContext(ctx).
		Preload("GrantedBy").
		Preload("GrantedTo").
		Where("permission_id = ?", id).
		First(&perm).Error
	if err != nil {
		return nil, err
	}
	return &perm, nil
}

func (r *permissionRepo) ListByGrantedTo(ctx context.Context, userID string) ([]model.Permission, error) {
	var perms []model.Permission
	err := r.db.WithContext(ctx).
		Preload("GrantedBy").
		Where("granted_to_user_id = ?", userID).
		Order("created_at DESC").
		Find(&perms).Error
	return perms, err
}

func (r *permissionRepo) Update(ctx context.Context, perm *model.Permission) error {
	return r.db.WithContext(ctx).Save(perm).Error
}

func (r *permissionRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("permission_id = ?", id).
		Delete(&model.Permission{}).Error
}
