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
	"github.com/epitechproject1/time-manager-staging/pkg/holiday"
)

// ── 排班指派模块业务错误 ──

var (
	ErrAssignmentNotFound = errors.New("排班指派不存在")
	ErrAssignmentNoUser   = errors.New("排班指派缺少合同或用户信息")
)

// AssignmentService 排班指派业务接口
type AssignmentService interface {
	Create(ctx context.Context, req *dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error)
	Get(ctx context.Context, id string) (*dto.AssignmentResponse, error)
	List(ctx context.Context, req *dto.AssignmentListRequest) ([]dto.AssignmentResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateAssignmentRequest) (*dto.AssignmentResponse, error)
	Delete(ctx context.Context, id string) error
	// GenerateShifts 将指派展开为具体日期的班次，幂等：
	// 已存在的班次不重复创建，返回值只包含本次新建的班次
	GenerateShifts(ctx context.Context, id string, includeHolidays bool) (*dto.GenerateShiftsResponse, error)
}

type assignmentService struct {
	repo     *repository.Repository
	holidays holiday.Calendar
	logger   *zap.Logger
}

// NewAssignmentService 创建 AssignmentService 实例
func NewAssignmentService(repo *repository.Repository, holidays holiday.Calendar, logger *zap.Logger) AssignmentService {
	return &assignmentService{repo: repo, holidays: holidays, logger: logger}
}

func (s *assignmentService) Create(ctx context.Context, req *dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error) {
	contract, err := s.repo.Contract.GetByID(ctx, req.ContractID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContractNotFound
		}
		s.logger.Error("查询合同失败", zap.Error(err))
		return nil, err
	}

	if _, err := s.repo.WeekPattern.GetByID(ctx, req.WeekPatternID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWeekPatternNotFound
		}
		s.logger.Error("查询周模板失败", zap.Error(err))
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

	assignment := &model.ScheduleAssignment{
		ContractID:    req.ContractID,
		WeekPatternID: req.WeekPatternID,
		StartDate:     startDate,
		EndDate:       endDate,
		IsActive:      true,
	}
	if err := assignment.Validate(contract); err != nil {
		return nil, err
	}

	if err := s.repo.Assignment.Create(ctx, assignment); err != nil {
		s.logger.Error("创建排班指派失败", zap.Error(err))
		return nil, err
	}

	return s.Get(ctx, assignment.AssignmentID)
}

func (s *assignmentService) Get(ctx context.Context, id string) (*dto.AssignmentResponse, error) {
	assignment, err := s.repo.Assignment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		s.logger.Error("查询排班指派失败", zap.Error(err))
		return nil, err
	}
	resp := toAssignmentResponse(assignment)
	return &resp, nil
}

func (s *assignmentService) List(ctx context.Context, req *dto.AssignmentListRequest) ([]dto.AssignmentResponse, error) {
	assignments, err := s.repo.Assignment.List(ctx, req.ContractID)
	if err != nil {
		s.logger.Error("查询排班指派列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.AssignmentResponse, 0, len(assignments))
	for i := range assignments {
		result = append(result, toAssignmentResponse(&assignments[i]))
	}
	return result, nil
}

func (s *assignmentService) Update(ctx context.Context, id string, req *dto.UpdateAssignmentRequest) (*dto.AssignmentResponse, error) {
	assignment, err := s.repo.Assignment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		s.logger.Error("查询排班指派失败", zap.Error(err))
		return nil, err
	}

	if req.StartDate != nil {
		d, err := time.Parse(dateLayout, *req.StartDate)
		if err != nil {
			return nil, err
		}
		assignment.StartDate = d
	}
	if req.EndDate != nil {
		d, err := time.Parse(dateLayout, *req.EndDate)
		if err != nil {
			return nil, err
		}
		assignment.EndDate = &d
	}
	if req.IsActive != nil {
		assignment.IsActive = *req.IsActive
	}

	if err := assignment.Validate(assignment.Contract); err != nil {
		return nil, err
	}

	if err := s.repo.Assignment.Update(ctx, assignment); err != nil {
		s.logger.Error("更新排班指派失败", zap.Error(err))
		return nil, err
	}

	return s.Get(ctx, id)
}

func (s *assignmentService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Assignment.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAssignmentNotFound
		}
		s.logger.Error("查询排班指派失败", zap.Error(err))
		return err
	}
	if err := s.repo.Assignment.Delete(ctx, id); err != nil {
		s.logger.Error("删除排班指派失败", zap.Error(err))
		return err
	}
	return nil
}

// ════════════════════════════════════════════════════════════
// GenerateShifts — 指派展开为班次
// ════════════════════════════════════════════════════════════
//
// 生成规则：
//   - 非激活指派不生成（返回空结果，非错误）
//   - 生成窗口 [start_date, end_date]；end_date 为空时到当天为止
//   - 每个日期按星期下标取周模板时段，逐一 FindOrCreate
//   - 法定节假日生成单条无时间 HOLIDAY 班次，替代当日全部时段；
//     include_holidays=true 时节假日照常按模板生成
//   - 全程单事务：任一插入失败则整体回滚
//   - 返回只含本次真正新建的班次，重跑得到空列表

func (s *assignmentService) GenerateShifts(ctx context.Context, id string, includeHolidays bool) (*dto.GenerateShiftsResponse, error) {
	// 1. 加载指派及关联（合同、用户、周模板时段）
	assignment, err := s.repo.Assignment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		s.logger.Error("查询排班指派失败", zap.Error(err))
		return nil, err
	}

	if !assignment.IsActive {
		return &dto.GenerateShiftsResponse{Shifts: []dto.ShiftResponse{}}, nil
	}

	if assignment.Contract == nil || assignment.Contract.User == nil {
		return nil, ErrAssignmentNoUser
	}
	userID := assignment.Contract.UserID

	// 2. 计算窗口
	start := dateOnly(assignment.StartDate)
	var end time.Time
	if assignment.EndDate != nil {
		end = dateOnly(*assignment.EndDate)
	} else {
		end = dateOnly(time.Now())
	}
	if end.Before(start) {
		return &dto.GenerateShiftsResponse{Shifts: []dto.ShiftResponse{}}, nil
	}

	// 3. WORK 时段按星期下标分桶，BREAK 等其他类型不参与展开
	slotsByWeekday := make(map[int][]model.TimeSlotPattern)
	if assignment.WeekPattern != nil {
		for _, slot := range assignment.WeekPattern.TimeSlots {
			if slot.SlotType != model.SlotTypeWork {
				continue
			}
			slotsByWeekday[slot.Weekday] = append(slotsByWeekday[slot.Weekday], slot)
		}
	}

	// 4. 单事务展开
	var created []model.Shift
	err = s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
			// 节假日当天永远不展开工作时段：
			// includeHolidays 为真时生成单条无时间 HOLIDAY 班次，否则整日跳过
			if s.holidays != nil && s.holidays.IsHoliday(date) {
				if includeHolidays {
					shift := &model.Shift{
						UserID:       userID,
						AssignmentID: assignment.AssignmentID,
						Date:         date,
						ShiftType:    model.ShiftTypeHoliday,
					}
					saved, isNew, err := txRepo.Shift.FindOrCreate(ctx, shift)
					if err != nil {
						return err
					}
					if isNew {
						created = append(created, *saved)
					}
				}
				continue
			}

			for _, slot := range slotsByWeekday[model.Weekday(date)] {
				startTime, endTime := slot.StartTime, slot.EndTime
				shift := &model.Shift{
					UserID:       userID,
					AssignmentID: assignment.AssignmentID,
					Date:         date,
					StartTime:    &startTime,
					EndTime:      &endTime,
					ShiftType:    model.ShiftTypeWork,
				}
				saved, isNew, err := txRepo.Shift.FindOrCreate(ctx, shift)
				if err != nil {
					return err
				}
				if isNew {
					created = append(created, *saved)
				}
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("班次生成事务失败", zap.Error(err), zap.String("assignment_id", assignment.AssignmentID))
		return nil, err
	}

	s.logger.Info("班次生成完成",
		zap.String("assignment_id", assignment.AssignmentID),
		zap.Int("created", len(created)))

	// 5. 构建响应
	shifts := make([]dto.ShiftResponse, 0, len(created))
	for i := range created {
		shifts = append(shifts, toShiftResponse(&created[i]))
	}
	return &dto.GenerateShiftsResponse{
		CreatedCount: len(shifts),
		Shifts:       shifts,
	}, nil
}

// dateOnly 去掉时间部分，统一为 UTC 零点日期
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
