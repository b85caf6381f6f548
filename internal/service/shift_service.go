package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/epitechproject1/time-manager-staging/internal/dto"
	"github.com/epitechproject1/time-manager-staging/internal/model"
	"github.com/epitechproject1/time-manager-staging/internal/repository"
)

// ── 班次模块业务错误 ──

var (
	ErrShiftNotFound = errors.New("班次不存在")
)

// ShiftService 班次业务接口
type ShiftService interface {
	// Create 手工创建班次（管理员补班），创建即标记 overridden
	Create(ctx context.Context, req *dto.CreateShiftRequest) (*dto.ShiftResponse, error)
	Get(ctx context.Context, id string) (*dto.ShiftResponse, error)
	List(ctx context.Context, req *dto.ShiftListRequest) ([]dto.ShiftResponse, int64, error)
	MyShifts(ctx context.Context, userID string, req *dto.MyShiftsRequest) ([]dto.ShiftResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateShiftRequest) (*dto.ShiftResponse, error)
	Delete(ctx context.Context, id string) error
	// ICalFeed 导出用户班次为 iCalendar 订阅内容
	ICalFeed(ctx context.Context, userID string) (string, error)
}

type shiftService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewShiftService 创建 ShiftService 实例
func NewShiftService(repo *repository.Repository, logger *zap.Logger) ShiftService {
	return &shiftService{repo: repo, logger: logger}
}

func (s *shiftService) Create(ctx context.Context, req *dto.CreateShiftRequest) (*dto.ShiftResponse, error) {
	if _, err := s.repo.User.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}
	if _, err := s.repo.Assignment.GetByID(ctx, req.AssignmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		s.logger.Error("查询排班指派失败", zap.Error(err))
		return nil, err
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, err
	}

	shiftType := req.ShiftType
	if shiftType == "" {
		shiftType = model.ShiftTypeWork
	}

	shift := &model.Shift{
		UserID:       req.UserID,
		AssignmentID: req.AssignmentID,
		Date:         date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		ShiftType:    shiftType,
		Overridden:   true,
	}
	if err := shift.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Shift.Create(ctx, shift); err != nil {
		s.logger.Error("创建班次失败", zap.Error(err))
		return nil, err
	}

	resp := toShiftResponse(shift)
	return &resp, nil
}

func (s *shiftService) Get(ctx context.Context, id string) (*dto.ShiftResponse, error) {
	shift, err := s.repo.Shift.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShiftNotFound
		}
		s.logger.Error("查询班次失败", zap.Error(err))
		return nil, err
	}
	resp := toShiftResponse(shift)
	return &resp, nil
}

func (s *shiftService) List(ctx context.Context, req *dto.ShiftListRequest) ([]dto.ShiftResponse, int64, error) {
	shifts, total, err := s.repo.Shift.List(ctx, req.UserID, req.Page, req.PageSize)
	if err != nil {
		s.logger.Error("查询班次列表失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.ShiftResponse, 0, len(shifts))
	for i := range shifts {
		result = append(result, toShiftResponse(&shifts[i]))
	}
	return result, total, nil
}

func (s *shiftService) MyShifts(ctx context.Context, userID string, req *dto.MyShiftsRequest) ([]dto.ShiftResponse, error) {
	var from, to *time.Time
	if req.From != "" {
		d, err := time.Parse(dateLayout, req.From)
		if err != nil {
			return nil, err
		}
		from = &d
	}
	if req.To != "" {
		d, err := time.Parse(dateLayout, req.To)
		if err != nil {
			return nil, err
		}
		to = &d
	}

	shifts, err := s.repo.Shift.ListByUser(ctx, userID, from, to)
	if err != nil {
		s.logger.Error("查询个人班次失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ShiftResponse, 0, len(shifts))
	for i := range shifts {
		result = append(result, toShiftResponse(&shifts[i]))
	}
	return result, nil
}

func (s *shiftService) Update(ctx context.Context, id string, req *dto.UpdateShiftRequest) (*dto.ShiftResponse, error) {
	shift, err := s.repo.Shift.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShiftNotFound
		}
		s.logger.Error("查询班次失败", zap.Error(err))
		return nil, err
	}

	if req.Date != nil {
		d, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			return nil, err
		}
		shift.Date = d
	}
	if req.StartTime != nil {
		shift.StartTime = req.StartTime
	}
	if req.EndTime != nil {
		shift.EndTime = req.EndTime
	}
	if req.ShiftType != nil {
		shift.ShiftType = *req.ShiftType
		// 切到无时间班型时清空时间
		if shift.ShiftType == model.ShiftTypeHoliday || shift.ShiftType == model.ShiftTypeOff {
			shift.StartTime = nil
			shift.EndTime = nil
		}
	}
	if req.Overridden != nil {
		shift.Overridden = *req.Overridden
	} else {
		shift.Overridden = true
	}

	if err := shift.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Shift.Update(ctx, shift); err != nil {
		s.logger.Error("更新班次失败", zap.Error(err))
		return nil, err
	}

	resp := toShiftResponse(shift)
	return &resp, nil
}

func (s *shiftService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Shift.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrShiftNotFound
		}
		s.logger.Error("查询班次失败", zap.Error(err))
		return err
	}
	if err := s.repo.Shift.Delete(ctx, id); err != nil {
		s.logger.Error("删除班次失败", zap.Error(err))
		return err
	}
	return nil
}

// ════════════════════════════════════════════════════════════
// ICalFeed — 班次日历订阅
// ════════════════════════════════════════════════════════════

func (s *shiftService) ICalFeed(ctx context.Context, userID string) (string, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return "", err
	}

	shifts, err := s.repo.Shift.ListByUser(ctx, userID, nil, nil)
	if err != nil {
		s.logger.Error("查询个人班次失败", zap.Error(err))
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//time-manager//shifts//FR")
	cal.SetName(fmt.Sprintf("Shifts — %s %s", user.FirstName, user.LastName))

	now := time.Now()
	for i := range shifts {
		shift := &shifts[i]

		event := cal.AddEvent(fmt.Sprintf("%s@time-manager", shift.ShiftID))
		event.SetDtStampTime(now)
		event.SetSummary(icalSummary(shift))

		if shift.StartTime != nil && shift.EndTime != nil {
			start, err := combineDateTime(shift.Date, *shift.StartTime)
			if err != nil {
				continue
			}
			end, err := combineDateTime(shift.Date, *shift.EndTime)
			if err != nil {
				continue
			}
			event.SetStartAt(start)
			event.SetEndAt(end)
		} else {
			// 无时间班次（HOLIDAY/OFF）导出为全天事件
			event.SetAllDayStartAt(shift.Date)
			event.SetAllDayEndAt(shift.Date.AddDate(0, 0, 1))
		}
	}

	return cal.Serialize(), nil
}

func icalSummary(shift *model.Shift) string {
	switch shift.ShiftType {
	case model.ShiftTypeHoliday:
		return "Jour férié"
	case model.ShiftTypeOff:
		return "Repos"
	case model.ShiftTypeBreak:
		return "Pause"
	default:
		return "Shift"
	}
}

// combineDateTime 将日期与 HH:MM 组合为具体时间点
func combineDateTime(date time.Time, hhmm string) (time.Time, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location()), nil
}
