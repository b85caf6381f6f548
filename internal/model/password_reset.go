package model

import (
	"time"
)

// PasswordResetCode 密码重置码表 — 对应 password_reset_codes
// 一个用户同一时刻只有最新一条处于可用状态，申请新码时旧码全部作废
type PasswordResetCode struct {
	ResetCodeID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"reset_code_id"`
	UserID      string    `gorm:"type:uuid;not null;index:idx_reset_codes_user_code" json:"user_id"`
	Code        string    `gorm:"type:char(6);not null;index:idx_reset_codes_user_code" json:"-"`
	IsUsed      bool      `gorm:"not null;default:false"                         json:"is_used"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
	ExpiresAt   time.Time `gorm:"not null;index"                                 json:"expires_at"`

	// 关联
	User *User `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
}

// TableName 指定表名
func (PasswordResetCode) TableName() string { return "password_reset_codes" }

// NewPasswordResetCode 为用户构造密码重置码
func NewPasswordResetCode(userID string, now time.Time, window time.Duration) (*PasswordResetCode, error) {
	code, err := GenerateCode()
	if err != nil {
		return nil, err
	}
	return &PasswordResetCode{
		UserID:    userID,
		Code:      code,
		IsUsed:    false,
		CreatedAt: now,
		ExpiresAt: now.Add(window),
	}, nil
}

// IsValid 未使用且未过期才可核销
func (p *PasswordResetCode) IsValid(now time.Time) bool {
	return !p.IsUsed && p.ExpiresAt.After(now)
}
