package service

import (
	"go.uber.org/zap"

	"github.com/epitechproject1/time-manager-staging/config"
	"github.com/epitechproject1/time-manager-staging/internal/repository"
	"github.com/epitechproject1/time-manager-staging/pkg/holiday"
	"github.com/epitechproject1/time-manager-staging/pkg/jwt"
	"github.com/epitechproject1/time-manager-staging/pkg/mailer"
	"github.com/epitechproject1/time-manager-staging/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth        AuthService
	User        UserService
	Department  DepartmentService
	Team        TeamService
	Contract    ContractService
	WeekPattern WeekPatternService
	Assignment  AssignmentService
	Shift       ShiftService
	Clock       ClockService
	Permission  PermissionService
	Export      ExportService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	sender mailer.Sender,
	holidays holiday.Calendar,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:        NewAuthService(cfg, repo, jwtMgr, rdb, sender, logger),
		User:        NewUserService(repo, logger),
		Department:  NewDepartmentService(repo, logger),
		Team:        NewTeamService(repo, logger),
		Contract:    NewContractService(repo, logger),
		WeekPattern: NewWeekPatternService(repo, logger),
		Assignment:  NewAssignmentService(repo, holidays, logger),
		Shift:       NewShiftService(repo, logger),
		Clock:       NewClockService(cfg, repo, sender, logger),
		Permission:  NewPermissionService(repo, logger),
		Export:      NewExportService(repo, logger),
	}
}
