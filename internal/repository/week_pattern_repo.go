package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/epitechproject1/time-manager-staging/internal/model"
)

// WeekPatternRepository 周模板数据访问接口
type WeekPatternRepository interface {
	Create(ctx context.Context, pattern *model.WeekPattern) error
	GetByID(ctx context.Context, id string) (*model.WeekPattern, error)
	List(ctx context.Context) ([]model.WeekPattern, error)
	Update(ctx context.Context, pattern *model.WeekPattern) error
	Delete(ctx context.Context, id string) error
}

type weekPatternRepo struct {
	db *gorm.DB
}

// NewWeekPatternRepo 创建 WeekPatternRepository 实例
func NewWeekPatternRepo(db *gorm.DB) WeekPatternRepository {
	return &weekPatternRepo{db: db}
}

func (r *weekPatternRepo) Create(ctx context.Context, pattern *model.WeekPattern) error {
	return r.db.WithContext(ctx).Create(pattern).Error
}

func (r *weekPatternRepo) GetByID(ctx context.Context, id string) (*model.WeekPattern, error) {
	var pattern model.WeekPattern
	err := r.db.WithContext(ctx).
		Preload("TimeSlots").
		Where("week_pattern_id = ?", id).
		First(&pattern).Error
	if err != nil {
		return nil, err
	}
	return &pattern, nil
}

func (r *weekPatternRepo) List(ctx context.Context) ([]model.WeekPattern, error) {
	var patterns []model.WeekPattern
	err := r.db.WithContext(ctx).
		Preload("TimeSlots").
		Order("name ASC").
		Find(&patterns).Error
	return patterns, err
}

func (r *weekPatternRepo) Update(ctx context.Context, pattern *model.WeekPattern) error {
	return r.db.WithContext(ctx).Save(pattern).Error
}

func (r *weekPatternRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("week_pattern_id = ?", id).
		Delete(&model.WeekPattern{}).Error
}

// TimeSlotPatternRepository 周模板时段数据访问接口
type TimeSlotPatternRepository interface {
	Create(ctx context.Context, slot *model.TimeSlotPattern) error
	GetByID(ctx context.Context, id string) (*model.TimeSlotPattern, error)
	ListByPattern(ctx context.Context, weekPatternID string) ([]model.TimeSlotPattern, error)
	Update(ctx context.Context, slot *model.TimeSlotPattern) error
	Delete(ctx context.Context, id string) error
}

type timeSlotPatternRepo struct {
	db *gorm.DB
}

// NewTimeSlotPatternRepo 创建 TimeSlotPatternRepository 实例
func NewTimeSlotPatternRepo(db *gorm.DB) TimeSlotPatternRepository {
	return &timeSlotPatternRepo{db: db}
}

func (r *timeSlotPatternRepo) Create(ctx context.Context, slot *model.TimeSlotPattern) error {
	return r.db.WithContext(ctx).Create(slot).Error
}

func (r *timeSlotPatternRepo) GetByID(ctx context.Context, id string) (*model.TimeSlotPattern, error) {
	var slot model.TimeSlotPattern
	err := r.db.WithContext(ctx).
		Where("time_slot_pattern_id = ?", id).
		First(&slot).Error
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *timeSlotPatternRepo) ListByPattern(ctx context.Context, weekPatternID string) ([]model.TimeSlotPattern, error) {
	var slots []model.TimeSlotPattern
	err := r.db.WithContext(ctx).
		Where("week_pattern_id = ?", weekPatternID).
		Order("weekday ASC, start_time ASC").
		Find(&slots).Error
	return slots, err
}

func (r *timeSlotPatternRepo) Update(ctx context.Context, slot *model.TimeSlotPattern) error {
	return r.db.WithContext(ctx).Save(slot).Error
}

func (r *timeSlotPatternRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("time_slot_pattern_id = ?", id).
		Delete(&model.TimeSlotPattern{}).Error
}
