package model

import "errors"

// ── 周模板时段类型 ──

const (
	SlotTypeWork  = "WORK"
	SlotTypeBreak = "BREAK"
)

var ErrSlotEndNotAfterStart = errors.New("时段结束时间必须晚于开始时间")

// WeekPattern 周模板表 — 对应 week_patterns
// 可复用的"标准周"，由若干按星期定义的时段组成
type WeekPattern struct {
	WeekPatternID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"week_pattern_id"`
	Name          string `gorm:"type:varchar(200);not null;uniqueIndex"         json:"name"`
	Description   string `gorm:"type:text"                                      json:"description,omitempty"`
	BaseModel

	// 关联
	TimeSlots []TimeSlotPattern `gorm:"foreignKey:WeekPatternID" json:"time_slots,omitempty"`
}

// TableName 指定表名
func (WeekPattern) TableName() string { return "week_patterns" }

// TimeSlotPattern 周模板时段表 — 对应 time_slot_patterns
// weekday: 0=周一 … 6=周日；时间存储为 HH:MM 字符串
type TimeSlotPattern struct {
	TimeSlotPatternID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"time_slot_pattern_id"`
	WeekPatternID     string `gorm:"type:uuid;not null;index"                       json:"week_pattern_id"`
	Weekday           int    `gorm:"type:smallint;not null"                         json:"weekday"`
	StartTime         string `gorm:"type:time;not null"                             json:"start_time"`
	EndTime           string `gorm:"type:time;not null"                             json:"end_time"`
	SlotType          string `gorm:"type:varchar(10);not null;default:'WORK'"       json:"slot_type"`
	BaseModel
}

// TableName 指定表名
func (TimeSlotPattern) TableName() string { return "time_slot_patterns" }

// Validate 时段业务校验
// HH:MM 固定宽度零填充，字符串比较即时间比较
func (t *TimeSlotPattern) Validate() error {
	if t.EndTime <= t.StartTime {
		return ErrSlotEndNotAfterStart
	}
	return nil
}
