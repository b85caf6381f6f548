package model

// Team 团队表 — 对应 teams
type Team struct {
	TeamID       string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"team_id"`
	Name         string  `gorm:"type:varchar(150);not null"                     json:"name"`
	Description  string  `gorm:"type:text"                                      json:"description,omitempty"`
	OwnerID      *string `gorm:"type:uuid"                                      json:"owner_id,omitempty"`
	DepartmentID *string `gorm:"type:uuid"                                      json:"department_id,omitempty"`
	BaseModel

	// 关联
	Owner      *User       `gorm:"foreignKey:OwnerID;references:UserID"               json:"owner,omitempty"`
	Department *Department `gorm:"foreignKey:DepartmentID;references:DepartmentID"    json:"department,omitempty"`
}

// TableName 指定表名
func (Team) TableName() string { return "teams" }
