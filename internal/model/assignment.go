package model

import (
	"errors"
	"time"
)

// ── 排班指派校验错误 ──

var (
	ErrAssignmentEndBeforeStart   = errors.New("排班结束日期必须晚于开始日期")
	ErrAssignmentBeforeContract   = errors.New("排班周期不能早于合同开始日期")
	ErrAssignmentEndDateRequired  = errors.New("合同有结束日期时排班必须填写结束日期")
	ErrAssignmentBeyondContract   = errors.New("排班周期不能超出合同结束日期")
)

// ScheduleAssignment 排班指派表 — 对应 schedule_assignments
// 将一份合同与一个周模板绑定到一段日期区间
type ScheduleAssignment struct {
	AssignmentID  string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"assignment_id"`
	ContractID    string     `gorm:"type:uuid;not null;index"                       json:"contract_id"`
	WeekPatternID string     `gorm:"type:uuid;not null;index"                       json:"week_pattern_id"`
	StartDate     time.Time  `gorm:"type:date;not null"                             json:"start_date"`
	EndDate       *time.Time `gorm:"type:date"                                      json:"end_date,omitempty"`
	IsActive      bool       `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel

	// 关联
	Contract    *Contract    `gorm:"foreignKey:ContractID;references:ContractID"           json:"contract,omitempty"`
	WeekPattern *WeekPattern `gorm:"foreignKey:WeekPatternID;references:WeekPatternID"     json:"week_pattern,omitempty"`
}

// TableName 指定表名
func (ScheduleAssignment) TableName() string { return "schedule_assignments" }

// Validate 排班指派业务校验：自身日期顺序 + 与合同周期的一致性
func (a *ScheduleAssignment) Validate(contract *Contract) error {
	if a.EndDate != nil && a.EndDate.Before(a.StartDate) {
		return ErrAssignmentEndBeforeStart
	}

	if contract == nil {
		return nil
	}

	if a.StartDate.Before(contract.StartDate) {
		return ErrAssignmentBeforeContract
	}
	if contract.EndDate != nil {
		if a.EndDate == nil {
			return ErrAssignmentEndDateRequired
		}
		if a.EndDate.After(*contract.EndDate) {
			return ErrAssignmentBeyondContract
		}
	}

	return nil
}
