package handler

import "github.com/epitechproject1/time-manager-staging/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth        *AuthHandler
	User        *UserHandler
	Department  *DepartmentHandler
	Team        *TeamHandler
	Contract    *ContractHandler
	WeekPattern *WeekPatternHandler
	Assignment  *AssignmentHandler
	Shift       *ShiftHandler
	Clock       *ClockHandler
	Permission  *PermissionHandler
	Export      *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(svc.Auth),
		User:        NewUserHandler(svc.User),
		Department:  NewDepartmentHandler(svc.Department),
		Team:        NewTeamHandler(svc.Team),
		Contract:    NewContractHandler(svc.Contract),
		WeekPattern: NewWeekPatternHandler(svc.WeekPattern),
		Assignment:  NewAssignmentHandler(svc.Assignment),
		Shift:       NewShiftHandler(svc.Shift),
		Clock:       NewClockHandler(svc.Clock),
		Permission:  NewPermissionHandler(svc.Permission),
		Export:      NewExportHandler(svc.Export),
	}
}
