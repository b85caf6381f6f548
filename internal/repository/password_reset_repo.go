package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/epitechproject1/time-manager-staging/internal/model"
)

// PasswordResetRepository 密码重置码数据访问接口
type PasswordResetRepository interface {
	Create(ctx context.Context, code *model.PasswordResetCode) error
	// InvalidateActiveByUser 将用户所有未使用的重置码标记为已使用，
	// 申请新码前调用，保证同一时刻只有一条可用
	InvalidateActiveByUser(ctx context.Context, userID string) error
	// GetActiveByUserAndCode 按用户与码值查询未使用的重置码，过期判断在业务层
	GetActiveByUserAndCode(ctx context.Context, userID, code string) (*model.PasswordResetCode, error)
	MarkUsed(ctx context.Context, code *model.PasswordResetCode) error
}

type passwordResetRepo struct {
	db *gorm.DB
}

// NewPasswordResetRepo 创建 PasswordResetRepository 实例
func NewPasswordResetRepo(db *gorm.DB) PasswordResetRepository {
	return &passwordResetRepo{db: db}
}

func (r *passwordResetRepo) Create(ctx context.Context, code *model.PasswordResetCode) error {
	return r.db.WithContext(ctx).Create(code).Error
}

func (r *passwordResetRepo) InvalidateActiveByUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Model(&model.PasswordResetCode{}).
		Where("user_id = ? AND is_used = ?", userID, false).
		Update("is_used", true).Error
}

func (r *passwordResetRepo) GetActiveByUserAndCode(ctx context.Context, userID, code string) (*model.PasswordResetCode, error) {
	var reset model.PasswordResetCode
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND code = ? AND is_used = ?", userID, code, false).
		First(&reset).Error
	if err != nil {
		return nil, err
	}
	return &reset, nil
}

func (r *passwordResetRepo) MarkUsed(ctx context.Context, code *model.PasswordResetCode) error {
	return r.db.WithContext(ctx).
		Model(&model.PasswordResetCode{}).
		Where("reset_code_id = ?", code.ResetCodeID).
		Update("is_used", true).Error
}
