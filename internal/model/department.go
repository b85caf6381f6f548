package model

// Department 部门表 — 对应 departments
type Department struct {
	DepartmentID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"department_id"`
	Name         string  `gorm:"type:varchar(255);not null"                     json:"name"`
	Description  string  `gorm:"type:text"                                      json:"description,omitempty"`
	DirectorID   *string `gorm:"type:uuid"                                      json:"director_id,omitempty"`
	IsActive     bool    `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel

	// 关联
	Director *User `gorm:"foreignKey:DirectorID;references:UserID" json:"director,omitempty"`
}

// TableName 指定表名
func (Department) TableName() string { return "departments" }
