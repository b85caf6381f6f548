package dto

// ── 认证模块 DTO ──

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// RefreshTokenRequest 刷新 Token 请求
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenResponse 登录/刷新成功响应
type TokenResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	ExpiresIn    int           `json:"expires_in"` // Access Token 有效期（秒）
	User         *UserResponse `json:"user,omitempty"`
}

// RegisterRequest 创建用户请求（仅管理员）
type RegisterRequest struct {
	Email       string `json:"email"        binding:"required,email,max=150"`
	Password    string `json:"password"     binding:"required,min=8,max=72"`
	FirstName   string `json:"first_name"   binding:"required,max=100"`
	LastName    string `json:"last_name"    binding:"required,max=100"`
	PhoneNumber string `json:"phone_number" binding:"omitempty,max=20"`
	Role        string `json:"role"         binding:"omitempty,oneof=admin manager user"`
}

// ChangePasswordRequest 修改密码请求
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=72"`
}

// PasswordResetRequestRequest 申请密码重置码
type PasswordResetRequestRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// PasswordResetVerifyRequest 校验密码重置码
type PasswordResetVerifyRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code"  binding:"required,len=6,numeric"`
}

// PasswordResetVerifyResponse 重置码校验结果
type PasswordResetVerifyResponse struct {
	Valid bool `json:"valid"`
}

// PasswordResetConfirmRequest 用重置码设置新密码
type PasswordResetConfirmRequest struct {
	Email       string `json:"email"        binding:"required,email"`
	Code        string `json:"code"         binding:"required,len=6,numeric"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=72"`
}
