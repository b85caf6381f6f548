package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/epitechproject1/time-manager-staging/internal/model"
)

// AssignmentRepository 排班指派数据访问接口
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *model.ScheduleAssignment) error
	// GetByID 加载指派及生成班次所需的全部关联（合同、用户、周模板及其时段）
	GetByID(ctx context.Context, id string) (*model.ScheduleAssignment, error)
	List(ctx context.Context, contractID string) ([]model.ScheduleAssignment, error)
	Update(ctx context.Context, assignment *model.ScheduleAssignment) error
	Delete(ctx context.Context, id string) error
}

type assignmentRepo struct {
	db *gorm.DB
}

// NewAssignmentRepo 创建 AssignmentRepository 实例
func NewAssignmentRepo(db *gorm.DB) AssignmentRepository {
	return &assignmentRepo{db: db}
}

func (r *assignmentRepo) Create(ctx context.Context, assignment *model.ScheduleAssignment) error {
	return r.db.WithContext(ctx).Create(assignment).Error
}

func (r *assignmentRepo) GetByID(ctx context.Context, id string) (*model.ScheduleAssignment, error) {
	var assignment model.ScheduleAssignment
	err := r.db.WithContext(ctx).
		Preload("Contract").
		Preload("Contract.User").
		Preload("Contract.ContractType").
		Preload("WeekPattern").
		Preload("WeekPattern.TimeSlots").
		Where("assignment_id = ?", id).
		First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepo) List(ctx context.Context, contractID string) ([]model.ScheduleAssignment, error) {
	var assignments []model.ScheduleAssignment
	db := r.db.WithContext(ctx)
	if contractID != "" {
		db = db.Where("contract_id = ?", contractID)
	}
	err := db.Preload("Contract").
		Preload("WeekPattern").
		Order("start_date DESC").
		Find(&assignments).Error
	return assignments, err
}

func (r *assignmentRepo) Update(ctx context.Context, assignment *model.ScheduleAssignment) error {
	return r.db.WithContext(ctx).Save(assignment).Error
}

func (r *assignmentRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("assignment_id = ?", id).
		Delete(&model.ScheduleAssignment{}).Error
}
