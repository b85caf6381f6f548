package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/epitechproject1/time-manager-staging/internal/model"
)

// ValidationCodeRepository 打卡验证码数据访问接口
type ValidationCodeRepository interface {
	Create(ctx context.Context, code *model.ClockValidationCode) error
	GetByID(ctx context.Context, id string) (*model.ClockValidationCode, error)
	// GetLatestPendingByUserForUpdate 查询用户最近创建的 PENDING 验证码并对该行加
	// SELECT ... FOR UPDATE 锁，防止并发提交同时观察到 PENDING。
	// 必须在事务连接上调用（Repository.Transaction 传入的事务级聚合）。
	// 查找刻意不按班次/事件类型过滤：同一用户同时存在多个待验证码时取最新一条
	GetLatestPendingByUserForUpdate(ctx context.Context, userID string) (*model.ClockValidationCode, error)
	// UpdateStatus 持久化验证流程对状态的修改
	UpdateStatus(ctx context.Context, code *model.ClockValidationCode) error
}

type validationCodeRepo struct {
	db *gorm.DB
}

// NewValidationCodeRepo 创建 ValidationCodeRepository 实例
func NewValidationCodeRepo(db *gorm.DB) ValidationCodeRepository {
	return &validationCodeRepo{db: db}
}

func (r *validationCodeRepo) Create(ctx context.Context, code *model.ClockValidationCode) error {
	return r.db.WithContext(ctx).Create(code).Error
}

func (r *validationCodeRepo) GetByID(ctx context.Context, id string) (*model.ClockValidationCode, error) {
	var code model.ClockValidationCode
	err := r.db.WithContext(ctx).
		Preload("ClockEvent").
		Preload("ClockEvent.Shift").
		Where("validation_code_id = ?", id).
		First(&code).Error
	if err != nil {
		return nil, err
	}
	return &code, nil
}

func (r *validationCodeRepo) GetLatestPendingByUserForUpdate(ctx context.Context, userID string) (*model.ClockValidationCode, error) {
	var code model.ClockValidationCode
	err := r.db.WithContext(ctx).
		Joins("JOIN clock_events ON clock_events.clock_event_id = clock_validation_codes.clock_event_id").
		Where("clock_events.user_id = ? AND clock_validation_codes.status = ?",
			userID, model.ValidationCodeStatusPending).
		Order("clock_validation_codes.created_at DESC").
		Clauses(clause.Locking{
			Strength: "UPDATE",
			Table:    clause.Table{Name: "clock_validation_codes"},
		}).
		First(&code).Error
	if err != nil {
		return nil, err
	}

	// FOR UPDATE OF 只锁验证码行；关联事件单独加载
	var event model.ClockEvent
	err = r.db.WithContext(ctx).
		Preload("Shift").
		Where("clock_event_id = ?", code.ClockEventID).
		First(&event).Error
	if err != nil {
		return nil, err
	}
	code.ClockEvent = &event

	return &code, nil
}

func (r *validationCodeRepo) UpdateStatus(ctx context.Context, code *model.ClockValidationCode) error {
	return r.db.WithContext(ctx).
		Model(&model.ClockValidationCode{}).
		Where("validation_code_id = ?", code.ValidationCodeID).
		Update("status", code.Status).Error
}
