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

// ── 周模板模块业务错误 ──

var (
	ErrWeekPatternNotFound  = errors.New("周模板不存在")
	ErrWeekPatternNameTaken = errors.New("周模板名称已存在")
	ErrTimeSlotNotFound     = errors.New("周模板时段不存在")
)

// WeekPatternService 周模板业务接口（含时段管理）
type WeekPatternService interface {
	Create(ctx context.Context, req *dto.CreateWeekPatternRequest) (*dto.WeekPatternResponse, error)
	Get(ctx context.Context, id string) (*dto.WeekPatternResponse, error)
	List(ctx context.Context) ([]dto.WeekPatternResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateWeekPatternRequest) (*dto.WeekPatternResponse, error)
	Delete(ctx context.Context, id string) error

	CreateSlot(ctx context.Context, req *dto.CreateTimeSlotPatternRequest) (*dto.TimeSlotPatternResponse, error)
	UpdateSlot(ctx context.Context, id string, req *dto.UpdateTimeSlotPatternRequest) (*dto.TimeSlotPatternResponse, error)
	DeleteSlot(ctx context.Context, id string) error
}

type weekPatternService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewWeekPatternService 创建 WeekPatternService 实例
func NewWeekPatternService(repo *repository.Repository, logger *zap.Logger) WeekPatternService {
	return &weekPatternService{repo: repo, logger: logger}
}

// ── 周模板 ──

func (s *weekPatternService) Create(ctx context.Context, req *dto.CreateWeekPatternRequest) (*dto.WeekPatternResponse, error) {
	pattern := &model.WeekPattern{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.WeekPattern.Create(ctx, pattern); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrWeekPatternNameTaken
		}
		s.logger.Error("创建周模板失败", zap.Error(err))
		return nil, err
	}

	resp := toWeekPatternResponse(pattern)
	return &resp, nil
}

func (s *weekPatternService) Get(ctx context.Context, id string) (*dto.WeekPatternResponse, error) {
	pattern, err := s.repo.WeekPattern.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWeekPatternNotFound
		}
		s.logger.Error("查询周模板失败", zap.Error(err))
		return nil, err
	}
	resp := toWeekPatternResponse(pattern)
	return &resp, nil
}

func (s *weekPatternService) List(ctx context.Context) ([]dto.WeekPatternResponse, error) {
	patterns, err := s.repo.WeekPattern.List(ctx)
	if err != nil {
		s.logger.Error("查询周模板列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.WeekPatternResponse, 0, len(patterns))
	for i := range patterns {
		result = append(result, toWeekPatternResponse(&patterns[i]))
	}
	return result, nil
}

func (s *weekPatternService) Update(ctx context.Context, id string, req *dto.UpdateWeekPatternRequest) (*dto.WeekPatternResponse, error) {
	pattern, err := s.repo.WeekPattern.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWeekPatternNotFound
		}
		s.logger.Error("查询周模板失败", zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		pattern.Name = *req.Name
	}
	if req.Description != nil {
		pattern.Description = *req.Description
	}

	if err := s.repo.WeekPattern.Update(ctx, pattern); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrWeekPatternNameTaken
		}
		s.logger.Error("更新周模板失败", zap.Error(err))
		return nil, err
	}

	return s.Get(ctx, id)
}

func (s *weekPatternService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.WeekPattern.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWeekPatternNotFound
		}
		s.logger.Error("查询周模板失败", zap.Error(err))
		return err
	}
	if err := s.repo.WeekPattern.Delete(ctx, id); err != nil {
		s.logger.Error("删除周模板失败", zap.Error(err))
		return err
	}
	return nil
}

// ── 时段 ──

func (s *weekPatternService) CreateSlot(ctx context.Context, req *dto.CreateTimeSlotPatternRequest) (*dto.TimeSlotPatternResponse, error) {
	if _, err := s.repo.WeekPattern.GetByID(ctx, req.WeekPatternID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWeekPatternNotFound
		}
		s.logger.Error("查询周模板失败", zap.Error(err))
		return nil, err
	}

	slotType := req.SlotType
	if slotType == "" {
		slotType = model.SlotTypeWork
	}

	slot := &model.TimeSlotPattern{
		WeekPatternID: req.WeekPatternID,
		Weekday:       req.Weekday,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		SlotType:      slotType,
	}
	if err := slot.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.TimeSlot.Create(ctx, slot); err != nil {
		s.logger.Error("创建时段失败", zap.Error(err))
		return nil, err
	}

	resp := toTimeSlotPatternResponse(slot)
	return &resp, nil
}

func (s *weekPatternService) UpdateSlot(ctx context.Context, id string, req *dto.UpdateTimeSlotPatternRequest) (*dto.TimeSlotPatternResponse, error) {
	slot, err := s.repo.TimeSlot.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTimeSlotNotFound
		}
		s.logger.Error("查询时段失败", zap.Error(err))
		return nil, err
	}

	if req.Weekday != nil {
		slot.Weekday = *req.Weekday
	}
	if req.StartTime != nil {
		slot.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		slot.EndTime = *req.EndTime
	}
	if req.SlotType != nil {
		slot.SlotType = *req.SlotType
	}

	if err := slot.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.TimeSlot.Update(ctx, slot); err != nil {
		s.logger.Error("更新时段失败", zap.Error(err))
		return nil, err
	}

	resp := toTimeSlotPatternResponse(slot)
	return &resp, nil
}

func (s *weekPatternService) DeleteSlot(ctx context.Context, id string) error {
	if _, err := s.repo.TimeSlot.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTimeSlotNotFound
		}
		s.logger.Error("查询时段失败", zap.Error(err))
		return err
	}
	if err := s.repo.TimeSlot.Delete(ctx, id); err != nil {
		s.logger.Error("删除时段失败", zap.Error(err))
		return err
	}
	return nil
}
