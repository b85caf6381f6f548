package dto

// ── 部门模块 DTO ──

// CreateDepartmentRequest 创建部门请求
type CreateDepartmentRequest struct {
	Name        string  `json:"name"        binding:"required,min=2,max=255"`
	Description string  `json:"description" binding:"omitempty,max=2000"`
	DirectorID  *string `json:"director_id" binding:"omitempty,uuid"`
}

// UpdateDepartmentRequest 更新部门请求
type UpdateDepartmentRequest struct {
	Name        *string `json:"name"        binding:"omitempty,min=2,max=255"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	DirectorID  *string `json:"director_id" binding:"omitempty,uuid"`
	IsActive    *bool   `json:"is_active"`
}

// DepartmentResponse 部门信息响应
type DepartmentResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Director    *UserBrief `json:"director,omitempty"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   string     `json:"created_at"`
}

// UserBrief 用户简要信息（嵌入其他响应）
type UserBrief struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
