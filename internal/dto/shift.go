package dto

// ── 班次模块 DTO ──

// CreateShiftRequest 手工创建班次请求
type CreateShiftRequest struct {
	UserID       string  `json:"user_id"       binding:"required,uuid"`
	AssignmentID string  `json:"assignment_id" binding:"required,uuid"`
	Date         string  `json:"date"          binding:"required,datetime=2006-01-02"`
	StartTime    *string `json:"start_time"    binding:"omitempty,hhmm"`
	EndTime      *string `json:"end_time"      binding:"omitempty,hhmm"`
	ShiftType    string  `json:"shift_type"    binding:"omitempty,oneof=WORK BREAK HOLIDAY OFF"`
}

// UpdateShiftRequest 更新班次请求（管理员改班）
type UpdateShiftRequest struct {
	Date       *string `json:"date"       binding:"omitempty,datetime=2006-01-02"`
	StartTime  *string `json:"start_time" binding:"omitempty,hhmm"`
	EndTime    *string `json:"end_time"   binding:"omitempty,hhmm"`
	ShiftType  *string `json:"shift_type" binding:"omitempty,oneof=WORK BREAK HOLIDAY OFF"`
	Overridden *bool   `json:"overridden"`
}

// ShiftListRequest 班次列表查询参数
type ShiftListRequest struct {
	UserID   string `form:"user_id" binding:"omitempty,uuid"`
	Page     int    `form:"page,default=1"       binding:"omitempty,min=1"`
	PageSize int    `form:"page_size,default=10" binding:"omitempty,min=1,max=100"`
}

// MyShiftsRequest 个人班次查询参数
type MyShiftsRequest struct {
	From string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"to"   binding:"omitempty,datetime=2006-01-02"`
}

// ShiftResponse 班次信息响应
type ShiftResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	AssignmentID string  `json:"assignment_id"`
	Date         string  `json:"date"`
	StartTime    *string `json:"start_time,omitempty"`
	EndTime      *string `json:"end_time,omitempty"`
	ShiftType    string  `json:"shift_type"`
	Overridden   bool    `json:"overridden"`
	CreatedAt    string  `json:"created_at"`
}
