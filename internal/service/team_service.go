package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/epitechproject1/time-manager-staging/internal/dto"
	"github.com/epitechproject1/time-manager-staging/internal/model"
	"github.com/epitechproject1/time-manager-staging/internal/repository"
)

var ErrTeamNotFound = errors.New("团队不存在")

// TeamService 团队业务接口
type TeamService interface {
	Create(ctx context.Context, req *dto.CreateTeamRequest) (*dto.TeamResponse, error)
	Get(ctx context.Context, id string) (*dto.TeamResponse, error)
	List(ctx context.Context, req *dto.TeamListRequest) ([]dto.TeamResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateTeamRequest) (*dto.TeamResponse, error)
	Delete(ctx context.Context, id string) error
}

type teamService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTeamService 创建 TeamService 实例
func NewTeamService(repo *repository.Repository, logger *zap.Logger) TeamService {
	return &teamService{repo: repo, logger: logger}
}

func (s *teamService) Create(ctx context.Context, req *dto.CreateTeamRequest) (*dto.TeamResponse, error) {
	if req.OwnerID != nil {
		if _, err := s.repo.User.GetByID(ctx, *req.OwnerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}
	}
	if req.DepartmentID != nil {
		if _, err := s.repo.Department.GetByID(ctx, *req.DepartmentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrDepartmentNotFound
			}
			return nil, err
		}
	}

	team := &model.Team{
		Name:         req.Name,
		Description:  req.Description,
		OwnerID:      req.OwnerID,
		DepartmentID: req.DepartmentID,
	}
	if err := s.repo.Team.Create(ctx, team); err != nil {
		s.logger.Error("创建团队失败", zap.Error(err))
		return nil, err
	}

	return s.Get(ctx, team.TeamID)
}

func (s *teamService) Get(ctx context.Context, id string) (*dto.TeamResponse, error) {
	team, err := s.repo.Team.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		s.logger.Error("查询团队失败", zap.Error(err))
		return nil, err
	}
	resp := s.toResponse(team)
	return &resp, nil
}

func (s *teamService) List(ctx context.Context, req *dto.TeamListRequest) ([]dto.TeamResponse, error) {
	teams, err := s.repo.Team.List(ctx, req.DepartmentID)
	if err != nil {
		s.logger.Error("查询团队列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.TeamResponse, 0, len(teams))
	for i := range teams {
		result = append(result, s.toResponse(&teams[i]))
	}
	return result, nil
}

func (s *teamService) Update(ctx context.Context, id string, req *dto.UpdateTeamRequest) (*dto.TeamResponse, error) {
	team, err := s.repo.Team.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		s.logger.Error("查询团队失败", zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.Description != nil {
		team.Description = *req.Description
	}
	if req.OwnerID != nil {
		if _, err := s.repo.User.GetByID(ctx, *req.OwnerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}
		team.OwnerID = req.OwnerID
	}
	if req.DepartmentID != nil {
		if _, err := s.repo.Department.GetByID(ctx, *req.DepartmentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrDepartmentNotFound
			}
			return nil, err
		}
		team.DepartmentID = req.DepartmentID
	}

	if err := s.repo.Team.Update(ctx, team); err != nil {
		s.logger.Error("更新团队失败", zap.Error(err))
		return nil, err
	}

	return s.Get(ctx, id)
}

func (s *teamService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Team.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTeamNotFound
		}
		s.logger.Error("查询团队失败", zap.Error(err))
		return err
	}
	if err := s.repo.Team.Delete(ctx, id); err != nil {
		s.logger.Error("删除团队失败", zap.Error(err))
		return err
	}
	return nil
}

func (s *teamService) toResponse(team *model.Team) dto.TeamResponse {
	resp := dto.TeamResponse{
		ID:          team.TeamID,
		Name:        team.Name,
		Description: team.Description,
		Owner:       toUserBrief(team.Owner),
		CreatedAt:   team.CreatedAt.Format(timestampLayout),
	}
	if team.Department != nil {
		resp.Department = &dto.DepartmentBrief{
			ID:   team.Department.DepartmentID,
			Name: team.Department.Name,
		}
	}
	return resp
}
