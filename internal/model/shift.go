package model

import (
	"errors"
	"time"
)

// ── 班次类型 ──

const (
	ShiftTypeWork    = "WORK"
	ShiftTypeBreak   = "BREAK"
	ShiftTypeHoliday = "HOLIDAY"
	ShiftTypeOff     = "OFF"
)

// ── 班次校验错误 ──

var (
	ErrShiftTimesRequired    = errors.New("WORK/BREAK 班次必须填写开始与结束时间")
	ErrShiftEndNotAfterStart = errors.New("班次结束时间必须晚于开始时间")
	ErrShiftTimesForbidden   = errors.New("HOLIDAY/OFF 班次不能填写时间")
)

// Shift 班次表 — 对应 shifts
// 日历中的一个具体工作单元，由排班生成或手工创建
// 唯一约束 (user_id, date, start_time, end_time) 保证幂等生成不产生重复
type Shift struct {
	ShiftID      string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"shift_id"`
	UserID       string    `gorm:"type:uuid;not null;index:idx_shifts_user_date"  json:"user_id"`
	AssignmentID string    `gorm:"type:uuid;not null;index"                       json:"assignment_id"`
	Date         time.Time `gorm:"type:date;not null;index:idx_shifts_user_date"  json:"date"`
	StartTime    *string   `gorm:"type:time"                                      json:"start_time,omitempty"`
	EndTime      *string   `gorm:"type:time"                                      json:"end_time,omitempty"`
	ShiftType    string    `gorm:"type:varchar(10);not null;default:'WORK'"       json:"shift_type"`
	Overridden   bool      `gorm:"not null;default:false"                         json:"overridden"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`

	// 关联
	User       *User               `gorm:"foreignKey:UserID;references:UserID"                 json:"user,omitempty"`
	Assignment *ScheduleAssignment `gorm:"foreignKey:AssignmentID;references:AssignmentID"     json:"assignment,omitempty"`
}

// TableName 指定表名
func (Shift) TableName() string { return "shifts" }

// Validate 班次业务校验
// WORK/BREAK 必须有时间且结束晚于开始；HOLIDAY/OFF 不得有时间
func (s *Shift) Validate() error {
	switch s.ShiftType {
	case ShiftTypeWork, ShiftTypeBreak:
		if s.StartTime == nil || s.EndTime == nil {
			return ErrShiftTimesRequired
		}
		if *s.EndTime <= *s.StartTime {
			return ErrShiftEndNotAfterStart
		}
	case ShiftTypeHoliday, ShiftTypeOff:
		if s.StartTime != nil || s.EndTime != nil {
			return ErrShiftTimesForbidden
		}
	}
	return nil
}

// IsPunchable 是否允许打卡（只有 WORK/BREAK 班次可打卡）
func (s *Shift) IsPunchable() bool {
	return s.ShiftType == ShiftTypeWork || s.ShiftType == ShiftTypeBreak
}
