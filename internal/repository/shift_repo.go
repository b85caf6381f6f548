package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/epitechproject1/time-manager-staging/internal/model"
)

// ShiftRepository 班次数据访问接口
type ShiftRepository interface {
	Create(ctx context.Context, shift *model.Shift) error
	// FindOrCreate 以 (user_id, date, start_time, end_time) 为自然键幂等创建班次
	// 返回的 created 表示本次调用是否真正插入了新行；
	// 并发插入触发唯一约束冲突时按"已存在"处理，不作为错误返回
	FindOrCreate(ctx context.Context, shift *model.Shift) (*model.Shift, bool, error)
	GetByID(ctx context.Context, id string) (*model.Shift, error)
	ListByUser(ctx context.Context, userID string, from, to *time.Time) ([]model.Shift, error)
	List(ctx context.Context, userID string, page, pageSize int) ([]model.Shift, int64, error)
	Update(ctx context.Context, shift *model.Shift) error
	Delete(ctx context.Context, id string) error
}

type shiftRepo struct {
	db *gorm.DB
}

// NewShiftRepo 创建 ShiftRepository 实例
func NewShiftRepo(db *gorm.DB) ShiftRepository {
	return &shiftRepo{db: db}
}

func (r *shiftRepo) Create(ctx context.Context, shift *model.Shift) error {
	return r.db.WithContext(ctx).Create(shift).Error
}

// naturalKeyQuery 按自然键过滤；HOLIDAY/OFF 班次的时间为 NULL，需区分匹配
func (r *shiftRepo) naturalKeyQuery(ctx context.Context, shift *model.Shift) *gorm.DB {
	db := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", shift.UserID, shift.Date)

	if shift.StartTime != nil {
		db = db.Where("start_time = ?", *shift.StartTime)
	} else {
		db = db.Where("start_time IS NULL")
	}
	if shift.EndTime != nil {
		db = db.Where("end_time = ?", *shift.EndTime)
	} else {
		db = db.Where("end_time IS NULL")
	}
	return db
}

func (r *shiftRepo) FindOrCreate(ctx context.Context, shift *model.Shift) (*model.Shift, bool, error) {
	var existing model.Shift
	err := r.naturalKeyQuery(ctx, shift).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	if err := r.db.WithContext(ctx).Create(shift).Error; err != nil {
		// 并发 generate 同时插入同一自然键：唯一约束兜底，回读已有行
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err := r.naturalKeyQuery(ctx, shift).First(&existing).Error; err != nil {
				return nil, false, err
			}
			return &existing, false, nil
		}
		return nil, false, err
	}

	return shift, true, nil
}

func (r *shiftRepo) GetByID(ctx context.Context, id string) (*model.Shift, error) {
	var shift model.Shift
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Assignment").
		Where("shift_id = ?", id).
		First(&shift).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

func (r *shiftRepo) ListByUser(ctx context.Context, userID string, from, to *time.Time) ([]model.Shift, error) {
	var shifts []model.Shift
	db := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if from != nil {
		db = db.Where("date >= ?", *from)
	}
	if to != nil {
		db = db.Where("date <= ?", *to)
	}
	err := db.Order("date ASC, start_time ASC").Find(&shifts).Error
	return shifts, err
}

func (r *shiftRepo) List(ctx context.Context, userID string, page, pageSize int) ([]model.Shift, int64, error) {
	var shifts []model.Shift
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Shift{})
	if userID != "" {
		db = db.Where("user_id = ?", userID)
	}
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("User").
		Order("date ASC, start_time ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&shifts).Error
	return shifts, total, err
}

func (r *shiftRepo) Update(ctx context.Context, shift *model.Shift) error {
	return r.db.WithContext(ctx).Save(shift).Error
}

func (r *shiftRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("shift_id = ?", id).
		Delete(&model.Shift{}).Error
}
