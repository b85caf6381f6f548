package model

import "time"

// ── 打卡事件类型 ──

const (
	ClockEventTypeIn  = "CLOCK_IN"
	ClockEventTypeOut = "CLOCK_OUT"
)

// ── 打卡事件状态 ──

const (
	ClockEventStatusPending  = "PENDING"
	ClockEventStatusApproved = "APPROVED"
	ClockEventStatusRejected = "REJECTED"
)

// ClockEvent 打卡事件表 — 对应 clock_events
// 每次上下班打卡各生成一条记录，状态只由验证码校验流程修改，
// 任何 API 输入都不能直接设置 status
type ClockEvent struct {
	ClockEventID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"  json:"clock_event_id"`
	UserID       string    `gorm:"type:uuid;not null;index:idx_clock_events_user"  json:"user_id"`
	ShiftID      *string   `gorm:"type:uuid;index:idx_clock_events_shift"          json:"shift_id,omitempty"`
	EventType    string    `gorm:"type:varchar(10);not null;index:idx_clock_events_shift" json:"event_type"`
	Timestamp    time.Time `gorm:"not null;index:idx_clock_events_user"            json:"timestamp"`
	Status       string    `gorm:"type:varchar(10);not null;default:'PENDING'"     json:"status"`
	Note         string    `gorm:"type:varchar(255)"                               json:"note,omitempty"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"              json:"created_at"`

	// 关联（shift 删除后事件保留，shift_id 置空）
	User  *User  `gorm:"foreignKey:UserID;references:UserID"    json:"user,omitempty"`
	Shift *Shift `gorm:"foreignKey:ShiftID;references:ShiftID"  json:"shift,omitempty"`
}

// TableName 指定表名
func (ClockEvent) TableName() string { return "clock_events" }

// IsPending 事件是否待验证
func (e *ClockEvent) IsPending() bool { return e.Status == ClockEventStatusPending }

// IsApproved 事件是否已通过
func (e *ClockEvent) IsApproved() bool { return e.Status == ClockEventStatusApproved }

// IsRejected 事件是否已拒绝
func (e *ClockEvent) IsRejected() bool { return e.Status == ClockEventStatusRejected }
