package dto

// ── 团队模块 DTO ──

// CreateTeamRequest 创建团队请求
type CreateTeamRequest struct {
	Name         string  `json:"name"          binding:"required,min=2,max=150"`
	Description  string  `json:"description"   binding:"omitempty,max=2000"`
	OwnerID      *string `json:"owner_id"      binding:"omitempty,uuid"`
	DepartmentID *string `json:"department_id" binding:"omitempty,uuid"`
}

// UpdateTeamRequest 更新团队请求
type UpdateTeamRequest struct {
	Name         *string `json:"name"          binding:"omitempty,min=2,max=150"`
	Description  *string `json:"description"   binding:"omitempty,max=2000"`
	OwnerID      *string `json:"owner_id"      binding:"omitempty,uuid"`
	DepartmentID *string `json:"department_id" binding:"omitempty,uuid"`
}

// TeamListRequest 团队列表查询参数
type TeamListRequest struct {
	DepartmentID string `form:"department_id" binding:"omitempty,uuid"`
}

// TeamResponse 团队信息响应
type TeamResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Owner       *UserBrief       `json:"owner,omitempty"`
	Department  *DepartmentBrief `json:"department,omitempty"`
	CreatedAt   string           `json:"created_at"`
}

// DepartmentBrief 部门简要信息（嵌入其他响应）
type DepartmentBrief struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
