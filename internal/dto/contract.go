package dto

// ── 合同模块 DTO ──

// CreateContractTypeRequest 创建合同类型请求
type CreateContractTypeRequest struct {
	Name            string `json:"name"              binding:"required,min=2,max=50"`
	Code            string `json:"code"              binding:"required,min=2,max=10"`
	Description     string `json:"description"       binding:"omitempty,max=2000"`
	RequiresEndDate bool   `json:"requires_end_date"`
}

// UpdateContractTypeRequest 更新合同类型请求
type UpdateContractTypeRequest struct {
	Name            *string `json:"name"              binding:"omitempty,min=2,max=50"`
	Description     *string `json:"description"       binding:"omitempty,max=2000"`
	RequiresEndDate *bool   `json:"requires_end_date"`
}

// ContractTypeResponse 合同类型响应
type ContractTypeResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Code            string `json:"code"`
	Description     string `json:"description,omitempty"`
	RequiresEndDate bool   `json:"requires_end_date"`
}

// CreateContractRequest 创建合同请求
// 日期格式 YYYY-MM-DD
type CreateContractRequest struct {
	UserID            string  `json:"user_id"             binding:"required,uuid"`
	ContractTypeID    string  `json:"contract_type_id"    binding:"required,uuid"`
	StartDate         string  `json:"start_date"          binding:"required,datetime=2006-01-02"`
	EndDate           *string `json:"end_date"            binding:"omitempty,datetime=2006-01-02"`
	WeeklyHoursTarget float64 `json:"weekly_hours_target" binding:"required,gt=0,lte=80"`
}

// UpdateContractRequest 更新合同请求
type UpdateContractRequest struct {
	StartDate         *string  `json:"start_date"          binding:"omitempty,datetime=2006-01-02"`
	EndDate           *string  `json:"end_date"            binding:"omitempty,datetime=2006-01-02"`
	WeeklyHoursTarget *float64 `json:"weekly_hours_target" binding:"omitempty,gt=0,lte=80"`
}

// ContractResponse 合同信息响应
type ContractResponse struct {
	ID                string                `json:"id"`
	User              *UserBrief            `json:"user,omitempty"`
	ContractType      *ContractTypeResponse `json:"contract_type,omitempty"`
	StartDate         string                `json:"start_date"`
	EndDate           *string               `json:"end_date,omitempty"`
	WeeklyHoursTarget float64               `json:"weekly_hours_target"`
	CreatedAt         string                `json:"created_at"`
}
