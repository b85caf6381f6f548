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

// ── 合同模块业务错误 ──

var (
	ErrContractTypeNotFound = errors.New("合同类型不存在")
	ErrContractTypeTaken    = errors.New("合同类型名称或编码已存在")
	ErrContractNotFound     = errors.New("合同不存在")
)

// ContractService 合同业务接口（含合同类型管理）
type ContractService interface {
	CreateType(ctx context.Context, req *dto.CreateContractTypeRequest) (*dto.ContractTypeResponse, error)
	ListTypes(ctx context.Context) ([]dto.ContractTypeResponse, error)
	UpdateType(ctx context.Context, id string, req *dto.UpdateContractTypeRequest) (*dto.ContractTypeResponse, error)
	DeleteType(ctx context.Context, id string) error

	Create(ctx context.Context, req *dto.CreateContractRequest) (*dto.ContractResponse, error)
	Get(ctx context.Context, id string) (*dto.ContractResponse, error)
	List(ctx context.Context, req *dto.PageRequest) ([]dto.ContractResponse, int64, error)
	ListByUser(ctx context.Context, userID string) ([]dto.ContractResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateContractRequest) (*dto.ContractResponse, error)
	Delete(ctx context.Context, id string) error
}

type contractService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewContractService 创建 ContractService 实例
func NewContractService(repo *repository.Repository, logger *zap.Logger) ContractService {
	return &contractService{repo: repo, logger: logger}
}

// ── 合同类型 ──

func (s *contractService) CreateType(ctx context.Context, req *dto.CreateContractTypeRequest) (*dto.ContractTypeResponse, error) {
	ct := &model.ContractType{
		Name:            req.Name,
		Code:            req.Code,
		Description:     req.Description,
		RequiresEndDate: req.RequiresEndDate,
	}
	if err := s.repo.ContractType.Create(ctx, ct); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrContractTypeTaken
		}
		s.logger.Error("创建合同类型失败", zap.Error(err))
		return nil, err
	}

	resp := toContractTypeResponse(ct)
	return &resp, nil
}

func (s *contractService) ListTypes(ctx context.Context) ([]dto.ContractTypeResponse, error) {
	cts, err := s.repo.ContractType.List(ctx)
	if err != nil {
		s.logger.Error("查询合同类型列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ContractTypeResponse, 0, len(cts))
	for i := range cts {
		result = append(result, toContractTypeResponse(&cts[i]))
	}
	return result, nil
}

func (s *contractService) UpdateType(ctx context.Context, id string, req *dto.UpdateContractTypeRequest) (*dto.ContractTypeResponse, error) {
	ct, err := s.repo.ContractType.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContractTypeNotFound
		}
		s.logger.Error("查询合同类型失败", zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		ct.Name = *req.Name
	}
	if req.Description != nil {
		ct.Description = *req.Description
	}
	if req.RequiresEndDate != nil {
		ct.RequiresEndDate = *req.RequiresEndDate
	}

	if err := s.repo.ContractType.Update(ctx, ct); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrContractTypeTaken
		}
		s.logger.Error("更新合同类型失败", zap.Error(err))
		return nil, err
	}

	resp := toContractTypeResponse(ct)
	return &resp, nil
}

func (s *contractService) DeleteType(ctx context.Context, id string) error {
	if _, err := s.repo.ContractType.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContractTypeNotFound
		}
		s.logger.Error("查询合同类型失败", zap.Error(err))
		return err
	}
	if err := s.repo.ContractType.Delete(ctx, id); err != nil {
		s.logger.Error("删除合同类型失败", zap.Error(err))
		return err
	}
	return nil
}

// ── 合同 ──

func (s *contractService) Create(ctx context.Context, req *dto.CreateContractRequest) (*dto.ContractResponse, error) {
	if _, err := s.repo.User.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}

	ct, err := s.repo.ContractType.GetByID(ctx, req.ContractTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContractTypeNotFound
		}
		s.logger.Error("查询合同类型失败", zap.Error(err))
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

	contract := &model.Contract{
		UserID:            req.UserID,
		ContractTypeID:    req.ContractTypeID,
		StartDate:         startDate,
		EndDate:           endDate,
		WeeklyHoursTarget: req.WeeklyHoursTarget,
	}
	if err := contract.Validate(ct); err != nil {
		return nil, err
	}

	if err := s.repo.Contract.Create(ctx, contract); err != nil {
		s.logger.Error("创建合同失败", zap.Error(err))
		return nil, err
	}

	return s.Get(ctx, contract.ContractID)
}

func (s *contractService) Get(ctx context.Context, id string) (*dto.ContractResponse, error) {
	contract, err := s.repo.Contract.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContractNotFound
		}
		s.logger.Error("查询合同失败", zap.Error(err))
		return nil, err
	}
	resp := toContractResponse(contract)
	return &resp, nil
}

func (s *contractService) List(ctx context.Context, req *dto.PageRequest) ([]dto.ContractResponse, int64, error) {
	contracts, total, err := s.repo.Contract.List(ctx, req.Page, req.PageSize)
	if err != nil {
		s.logger.Error("查询合同列表失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.ContractResponse, 0, len(contracts))
	for i := range contracts {
		result = append(result, toContractResponse(&contracts[i]))
	}
	return result, total, nil
}

func (s *contractService) ListByUser(ctx context.Context, userID string) ([]dto.ContractResponse, error) {
	contracts, err := s.repo.Contract.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("查询用户合同失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ContractResponse, 0, len(contracts))
	for i := range contracts {
		result = append(result, toContractResponse(&contracts[i]))
	}
	return result, nil
}

func (s *contractService) Update(ctx context.Context, id string, req *dto.UpdateContractRequest) (*dto.ContractResponse, error) {
	contract, err := s.repo.Contract.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContractNotFound
		}
		s.logger.Error("查询合同失败", zap.Error(err))
		return nil, err
	}

	if req.StartDate != nil {
		d, err := time.Parse(dateLayout, *req.StartDate)
		if err != nil {
			return nil, err
		}
		contract.StartDate = d
	}
	if req.EndDate != nil {
		d, err := time.Parse(dateLayout, *req.EndDate)
		if err != nil {
			return nil, err
		}
		contract.EndDate = &d
	}
	if req.WeeklyHoursTarget != nil {
		contract.WeeklyHoursTarget = *req.WeeklyHoursTarget
	}

	if err := contract.Validate(contract.ContractType); err != nil {
		return nil, err
	}

	if err := s.repo.Contract.Update(ctx, contract); err != nil {
		s.logger.Error("更新合同失败", zap.Error(err))
		return nil, err
	}

	return s.Get(ctx, id)
}

func (s *contractService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Contract.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContractNotFound
		}
		s.logger.Error("查询合同失败", zap.Error(err))
		return err
	}
	if err := s.repo.Contract.Delete(ctx, id); err != nil {
		s.logger.Error("删除合同失败", zap.Error(err))
		return err
	}
	return nil
}
