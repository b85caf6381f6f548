package model

import (
	"errors"
	"time"
)

// ── 合同模块校验错误 ──

var (
	ErrContractEndBeforeStart  = errors.New("合同结束日期必须晚于开始日期")
	ErrContractEndDateRequired = errors.New("该合同类型必须填写结束日期")
)

// ContractType 合同类型表 — 对应 contract_types（CDI、CDD、实习等）
type ContractType struct {
	ContractTypeID  string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"contract_type_id"`
	Name            string `gorm:"type:varchar(50);not null;uniqueIndex"          json:"name"`
	Code            string `gorm:"type:varchar(10);not null;uniqueIndex"          json:"code"`
	Description     string `gorm:"type:text"                                      json:"description,omitempty"`
	RequiresEndDate bool   `gorm:"not null;default:false"                         json:"requires_end_date"`
	BaseModel
}

// TableName 指定表名
func (ContractType) TableName() string { return "contract_types" }

// Contract 劳动合同表 — 对应 contracts
// 定义用户的法定工作周期与周工时目标
type Contract struct {
	ContractID        string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"contract_id"`
	UserID            string     `gorm:"type:uuid;not null;index"                       json:"user_id"`
	ContractTypeID    string     `gorm:"type:uuid;not null;index"                       json:"contract_type_id"`
	StartDate         time.Time  `gorm:"type:date;not null"                             json:"start_date"`
	EndDate           *time.Time `gorm:"type:date"                                      json:"end_date,omitempty"`
	WeeklyHoursTarget float64    `gorm:"type:numeric(5,2);not null"                     json:"weekly_hours_target"`
	BaseModel

	// 关联
	User         *User         `gorm:"foreignKey:UserID;references:UserID"                     json:"user,omitempty"`
	ContractType *ContractType `gorm:"foreignKey:ContractTypeID;references:ContractTypeID"     json:"contract_type,omitempty"`
}

// TableName 指定表名
func (Contract) TableName() string { return "contracts" }

// Validate 合同业务校验：日期顺序与合同类型对结束日期的要求
func (c *Contract) Validate(contractType *ContractType) error {
	if contractType != nil && contractType.RequiresEndDate && c.EndDate == nil {
		return ErrContractEndDateRequired
	}
	if c.EndDate != nil && c.EndDate.Before(c.StartDate) {
		return ErrContractEndBeforeStart
	}
	return nil
}
