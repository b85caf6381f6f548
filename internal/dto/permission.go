package dto

// ── 权限模块 DTO ──

// GrantPermissionRequest 授权请求
type GrantPermissionRequest struct {
	GrantedToUserID string  `json:"granted_to_user_id" binding:"required,uuid"`
	PermissionType  string  `json:"permission_type"    binding:"required,oneof=VIEW_SCHEDULE MANAGE_SCHEDULE MANAGE_TEAM APPROVE_CLOCKS"`
	StartDate       string  `json:"start_date"         binding:"required,datetime=2006-01-02"`
	EndDate         *string `json:"end_date"           binding:"omitempty,datetime=2006-01-02"`
}

// PermissionResponse 权限信息响应
type PermissionResponse struct {
	PermissionID    string  `json:"permission_id"`
	PermissionType  string  `json:"permission_type"`
	StartDate       string  `json:"start_date"`
	EndDate         *string `json:"end_date,omitempty"`
	GrantedByUserID string  `json:"granted_by_user_id"`
	GrantedToUserID string  `json:"granted_to_user_id"`
	CreatedAt       string  `json:"created_at"`
}

// PermissionListRequest 权限列表查询参数
type PermissionListRequest struct {
	GrantedToUserID string `form:"granted_to_user_id" binding:"omitempty,uuid"`
	PermissionType  string `form:"permission_type"    binding:"omitempty,oneof=VIEW_SCHEDULE MANAGE_SCHEDULE MANAGE_TEAM APPROVE_CLOCKS"`
}
