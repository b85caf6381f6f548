package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/epitechproject1/time-manager-staging/internal/dto"
	"github.com/epitechproject1/time-manager-staging/internal/model"
	"github.com/epitechproject1/time-manager-staging/internal/repository"
)

var ErrPermissionNotFound = errors.New("授权不存在")

// PermissionService 用户间授权业务接口
type PermissionService interface {
	Grant(ctx context.Context, grantedBy string, req *dto.GrantPermissionRequest) (*dto.PermissionResponse, error)
	ListByUser(ctx context.Context, userID string) ([]dto.PermissionResponse, error)
	// HasActive 判断用户当前是否持有某类有效授权（起止日期包含今天）
	HasActive(ctx context.Context, userID, permissionType string) (bool, error)
	Revoke(ctx context.Context, id string) error
}

type permissionService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPermissionService 创建 PermissionService 实例
func NewPermissionService(repo *repository.Repository, logger *zap.Logger) PermissionService {
	return &permissionService{repo: repo, logger: logger}
}

func (s *permissionService) Grant(ctx context.Context, grantedBy string, req *dto.GrantPermissionRequest) (*dto.PermissionResponse, error) {
	if _, err := s.repo.User.GetByID(ctx, req.GrantedToUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, err
	}
	var endDate *time.Time
	if req.EndDate != nil {
		d, err := time.Parse(dateLayout, *req.EndDate)
		if err != nil {
			return nil, err
		}
		endDate = &d
	}

	perm := &model.Permission{
		PermissionType:  req.PermissionType,
		StartDate:       startDate,
		EndDate:         endDate,
		GrantedByUserID: grantedBy,
		GrantedToUserID: req.GrantedToUserID,
	}
	if err := perm.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Permission.Create(ctx, perm); err != nil {
		s.logger.Error("创建授权失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("授权创建",
		zap.String("granted_by", grantedBy),
		zap.String("granted_to", req.GrantedToUserID),
		zap.String("type", req.PermissionType))

	resp := toPermissionResponse(perm)
	return &resp, nil
}

func (s *permissionService) ListByUser(ctx context.Context, userID string) ([]dto.PermissionResponse, error) {
	perms, err := s.repo.Permission.ListByGrantedTo(ctx, userID)
	if err != nil {
		s.logger.Error("查询授权列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.PermissionResponse, 0, len(perms))
	for i := range perms {
		result = append(result, toPermissionResponse(&perms[i]))
	}
	return result, nil
}

func (s *permissionService) HasActive(ctx context.Context, userID, permissionType string) (bool, error) {
	perms, err := s.repo.Permission.ListByGrantedTo(ctx, userID)
	if err != nil {
		s.logger.Error("查询授权列表失败", zap.Error(err))
		return false, err
	}

	today := dateOnly(time.Now())
	for i := range perms {
		p := &perms[i]
		if p.PermissionType != permissionType {
			continue
		}
		if dateOnly(p.StartDate).After(today) {
			continue
		}
		if p.EndDate != nil && dateOnly(*p.EndDate).Before(today) {
			continue
		}
		return true, nil
	}
	return false, nil
}

func (s *permissionService) Revoke(ctx context.Context, id string) error {
	if _, err := s.repo.Permission.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPermissionNotFound
		}
		s.logger.Error("查询授权失败", zap.Error(err))
		return err
	}
	if err := s.repo.Permission.Delete(ctx, id); err != nil {
		s.logger.Error("删除授权失败", zap.Error(err))
		return err
	}
	return nil
}
