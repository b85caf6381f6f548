package dto

// ── 周模板模块 DTO ──

// CreateWeekPatternRequest 创建周模板请求
type CreateWeekPatternRequest struct {
	Name        string `json:"name"        binding:"required,min=2,max=200"`
	Description string `json:"description" binding:"omitempty,max=2000"`
}

// UpdateWeekPatternRequest 更新周模板请求
type UpdateWeekPatternRequest struct {
	Name        *string `json:"name"        binding:"omitempty,min=2,max=200"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
}

// WeekPatternResponse 周模板响应
type WeekPatternResponse struct {
	ID          string                    `json:"id"`
	Name        string                    `json:"name"`
	Description string                    `json:"description,omitempty"`
	TimeSlots   []TimeSlotPatternResponse `json:"time_slots,omitempty"`
	CreatedAt   string                    `json:"created_at"`
}

// CreateTimeSlotPatternRequest 创建周模板时段请求
// weekday: 0=周一 … 6=周日；时间格式 HH:MM
type CreateTimeSlotPatternRequest struct {
	WeekPatternID string `json:"week_pattern_id" binding:"required,uuid"`
	Weekday       int    `json:"weekday"         binding:"min=0,max=6"`
	StartTime     string `json:"start_time"      binding:"required,hhmm"`
	EndTime       string `json:"end_time"        binding:"required,hhmm"`
	SlotType      string `json:"slot_type"       binding:"omitempty,oneof=WORK BREAK"`
}

// UpdateTimeSlotPatternRequest 更新周模板时段请求
type UpdateTimeSlotPatternRequest struct {
	Weekday   *int    `json:"weekday"    binding:"omitempty,min=0,max=6"`
	StartTime *string `json:"start_time" binding:"omitempty,hhmm"`
	EndTime   *string `json:"end_time"   binding:"omitempty,hhmm"`
	SlotType  *string `json:"slot_type"  binding:"omitempty,oneof=WORK BREAK"`
}

// TimeSlotPatternResponse 周模板时段响应
type TimeSlotPatternResponse struct {
	ID            string `json:"id"`
	WeekPatternID string `json:"week_pattern_id"`
	Weekday       int    `json:"weekday"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	SlotType      string `json:"slot_type"`
}
