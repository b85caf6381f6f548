package dto

// ── 排班指派模块 DTO ──

// CreateAssignmentRequest 创建排班指派请求
type CreateAssignmentRequest struct {
	ContractID    string  `json:"contract_id"     binding:"required,uuid"`
	WeekPatternID string  `json:"week_pattern_id" binding:"required,uuid"`
	StartDate     string  `json:"start_date"      binding:"required,datetime=2006-01-02"`
	EndDate       *string `json:"end_date"        binding:"omitempty,datetime=2006-01-02"`
}

// UpdateAssignmentRequest 更新排班指派请求
type UpdateAssignmentRequest struct {
	StartDate *string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"end_date"   binding:"omitempty,datetime=2006-01-02"`
	IsActive  *bool   `json:"is_active"`
}

// AssignmentListRequest 排班指派列表查询参数
type AssignmentListRequest struct {
	ContractID string `form:"contract_id" binding:"omitempty,uuid"`
}

// AssignmentResponse 排班指派响应
type AssignmentResponse struct {
	ID          string               `json:"id"`
	Contract    *ContractResponse    `json:"contract,omitempty"`
	WeekPattern *WeekPatternResponse `json:"week_pattern,omitempty"`
	StartDate   string               `json:"start_date"`
	EndDate     *string              `json:"end_date,omitempty"`
	IsActive    bool                 `json:"is_active"`
	CreatedAt   string               `json:"created_at"`
}

// GenerateShiftsRequest 生成班次查询参数
type GenerateShiftsRequest struct {
	IncludeHolidays bool `form:"include_holidays"`
}

// GenerateShiftsResponse 生成班次响应
// 只包含本次调用真正新建的班次（幂等重跑时为空）
type GenerateShiftsResponse struct {
	CreatedCount int             `json:"created_count"`
	Shifts       []ShiftResponse `json:"shifts"`
}
