package model

import (
	"errors"
	"time"
)

// ── 授权类型 ──

const (
	PermissionTypeViewSchedule   = "VIEW_SCHEDULE"
	PermissionTypeManageSchedule = "MANAGE_SCHEDULE"
	PermissionTypeManageTeam     = "MANAGE_TEAM"
	PermissionTypeApproveClocks  = "APPROVE_CLOCKS"
)

var ErrPermissionEndBeforeStart = errors.New("授权结束日期必须晚于开始日期")

// Permission 用户间授权表 — 对应 permissions
// 由一个用户授予另一个用户的限期权限
type Permission struct {
	PermissionID    string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"permission_id"`
	PermissionType  string     `gorm:"type:varchar(20);not null;index"                json:"permission_type"`
	StartDate       time.Time  `gorm:"type:date;not null"                             json:"start_date"`
	EndDate         *time.Time `gorm:"type:date"                                      json:"end_date,omitempty"`
	GrantedByUserID string     `gorm:"type:uuid;not null"                             json:"granted_by_user_id"`
	GrantedToUserID string     `gorm:"type:uuid;not null;index"                       json:"granted_to_user_id"`
	BaseModel

	// 关联
	GrantedBy *User `gorm:"foreignKey:GrantedByUserID;references:UserID" json:"granted_by,omitempty"`
	GrantedTo *User `gorm:"foreignKey:GrantedToUserID;references:UserID" json:"granted_to,omitempty"`
}

// TableName 指定表名
func (Permission) TableName() string { return "permissions" }

// Validate 授权业务校验
func (p *Permission) Validate() error {
	if p.EndDate != nil && p.EndDate.Before(p.StartDate) {
		return ErrPermissionEndBeforeStart
	}
	return nil
}
