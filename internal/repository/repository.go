package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	db *gorm.DB

	User           UserRepository
	Department     DepartmentRepository
	Team           TeamRepository
	ContractType   ContractTypeRepository
	Contract       ContractRepository
	WeekPattern    WeekPatternRepository
	TimeSlot       TimeSlotPatternRepository
	Assignment     AssignmentRepository
	Shift          ShiftRepository
	ClockEvent     ClockEventRepository
	ValidationCode ValidationCodeRepository
	PasswordReset  PasswordResetRepository
	Permission     PermissionRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:             db,
		User:           NewUserRepo(db),
		Department:     NewDepartmentRepo(db),
		Team:           NewTeamRepo(db),
		ContractType:   NewContractTypeRepo(db),
		Contract:       NewContractRepo(db),
		WeekPattern:    NewWeekPatternRepo(db),
		TimeSlot:       NewTimeSlotPatternRepo(db),
		Assignment:     NewAssignmentRepo(db),
		Shift:          NewShiftRepo(db),
		ClockEvent:     NewClockEventRepo(db),
		ValidationCode: NewValidationCodeRepo(db),
		PasswordReset:  NewPasswordResetRepo(db),
		Permission:     NewPermissionRepo(db),
	}
}

// Transaction 在单个数据库事务内执行 fn
// fn 内的读写（含 SELECT ... FOR UPDATE）都必须经由传入的事务级聚合执行；
// fn 返回 error 时整体回滚。无底层连接（内存实现）时直接执行 fn。
func (r *Repository) Transaction(ctx context.Context, fn func(txRepo *Repository) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}
