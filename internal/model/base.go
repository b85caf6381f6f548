package model

import "time"

// BaseModel 通用审计字段（所有业务模型嵌入）
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// Weekday 返回 0=周一 … 6=周日 的星期下标
// 周模板的 weekday 字段与之对齐（Go 原生 time.Weekday 以周日为 0）
func Weekday(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}
