package dto

// ── 打卡模块 DTO ──

// ClockInRequest 上班打卡请求
type ClockInRequest struct {
	ShiftID string `json:"shift_id" binding:"required,uuid"`
}

// ClockOutRequest 下班打卡请求
type ClockOutRequest struct {
	ShiftID string `json:"shift_id" binding:"required,uuid"`
}

// SubmitCodeRequest 提交验证码请求
type SubmitCodeRequest struct {
	Code string `json:"code" binding:"required,len=6,numeric"`
}

// ClockEventResponse 打卡事件响应
type ClockEventResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	ShiftID   *string `json:"shift_id,omitempty"`
	EventType string  `json:"event_type"`
	Status    string  `json:"status"`
	Note      string  `json:"note,omitempty"`
	Timestamp string  `json:"timestamp"`
}

// ValidationCodeResponse 验证码响应（打卡发起后返回给客户端）
type ValidationCodeResponse struct {
	ID               string             `json:"id"`
	Code             string             `json:"code"`
	Status           string             `json:"status"`
	ExpiresAt        string             `json:"expires_at"`
	SecondsRemaining int                `json:"seconds_remaining"`
	ClockEvent       ClockEventResponse `json:"clock_event"`
}

// SubmitResultResponse 验证码核销结果
type SubmitResultResponse struct {
	Success bool                `json:"success"`
	Detail  string              `json:"detail,omitempty"`
	Event   *ClockEventResponse `json:"event,omitempty"`
}

// ClockEventListRequest 打卡事件列表查询参数
type ClockEventListRequest struct {
	UserID   string `form:"user_id" binding:"omitempty,uuid"`
	Status   string `form:"status"  binding:"omitempty,oneof=PENDING APPROVED REJECTED"`
	Page     int    `form:"page,default=1"       binding:"omitempty,min=1"`
	PageSize int    `form:"page_size,default=10" binding:"omitempty,min=1,max=100"`
}
