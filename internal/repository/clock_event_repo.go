package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/epitechproject1/time-manager-staging/internal/model"
)

// ClockEventRepository 打卡事件数据访问接口
type ClockEventRepository interface {
	Create(ctx context.Context, event *model.ClockEvent) error
	GetByID(ctx context.Context, id string) (*model.ClockEvent, error)
	// ExistsByShiftAndType 判断某班次是否已有指定类型的打卡事件
	ExistsByShiftAndType(ctx context.Context, shiftID, eventType string) (bool, error)
	// GetByShiftAndType 查询某班次指定类型的打卡事件
	GetByShiftAndType(ctx context.Context, shiftID, eventType string) (*model.ClockEvent, error)
	ListByUser(ctx context.Context, userID string, page, pageSize int) ([]model.ClockEvent, int64, error)
	// UpdateStatus 持久化验证流程对状态与备注的修改，其他字段不可经此变更
	UpdateStatus(ctx context.Context, event *model.ClockEvent) error
}

type clockEventRepo struct {
	db *gorm.DB
}

// NewClockEventRepo 创建 ClockEventRepository 实例
func NewClockEventRepo(db *gorm.DB) ClockEventRepository {
	return &clockEventRepo{db: db}
}

func (r *clockEventRepo) Create(ctx context.Context, event *model.ClockEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *clockEventRepo) GetByID(ctx context.Context, id string) (*model.ClockEvent, error) {
	var event model.ClockEvent
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Shift").
		Where("clock_event_id = ?", id).
		First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *clockEventRepo) ExistsByShiftAndType(ctx context.Context, shiftID, eventType string) (bool, error) {
	_, err := r.GetByShiftAndType(ctx, shiftID, eventType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *clockEventRepo) GetByShiftAndType(ctx context.Context, shiftID, eventType string) (*model.ClockEvent, error) {
	var event model.ClockEvent
	err := r.db.WithContext(ctx).
		Where("shift_id = ? AND event_type = ?", shiftID, eventType).
		First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *clockEventRepo) ListByUser(ctx context.Context, userID string, page, pageSize int) ([]model.ClockEvent, int64, error) {
	var events []model.ClockEvent
	var total int64

	db := r.db.WithContext(ctx).Model(&model.ClockEvent{}).Where("user_id = ?", userID)
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("Shift").
		Order("timestamp DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&events).Error
	return events, total, err
}

func (r *clockEventRepo) UpdateStatus(ctx context.Context, event *model.ClockEvent) error {
	return r.db.WithContext(ctx).
		Model(&model.ClockEvent{}).
		Where("clock_event_id = ?", event.ClockEventID).
		Updates(map[string]interface{}{
			"status": event.Status,
			"note":   event.Note,
		}).Error
}
