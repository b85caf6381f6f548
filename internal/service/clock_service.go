package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/epitechproject1/time-manager-staging/config"
	"github.com/epitechproject1/time-manager-staging/internal/dto"
	"github.com/epitechproject1/time-manager-staging/internal/model"
	"github.com/epitechproject1/time-manager-staging/internal/repository"
	"github.com/epitechproject1/time-manager-staging/pkg/mailer"
)

// ── 打卡模块业务错误 ──

var (
	ErrShiftNotPunchable  = errors.New("该班次类型不可打卡")
	ErrShiftNotOwned      = errors.New("只能在自己的班次上打卡")
	ErrAlreadyClockedIn   = errors.New("该班次已有上班打卡记录")
	ErrAlreadyClockedOut  = errors.New("该班次已有下班打卡记录")
	ErrClockInNotApproved = errors.New("上班打卡尚未验证通过，不能下班打卡")
	ErrNoPendingCode      = errors.New("没有待验证的打卡验证码")
)

// ClockService 打卡业务接口
type ClockService interface {
	// ClockIn 发起上班打卡：创建 PENDING 事件与一次性验证码（同一事务），
	// 提交成功后异步意义上的邮件通知失败只记日志不回滚
	ClockIn(ctx context.Context, userID string, req *dto.ClockInRequest) (*dto.ValidationCodeResponse, error)
	// ClockOut 发起下班打卡：要求同班次的上班打卡已验证通过
	ClockOut(ctx context.Context, userID string, req *dto.ClockOutRequest) (*dto.ValidationCodeResponse, error)
	// Submit 提交验证码：取该用户最近的 PENDING 验证码（行锁）并推进状态机
	Submit(ctx context.Context, userID string, req *dto.SubmitCodeRequest) (*dto.SubmitResultResponse, error)
	ListMyEvents(ctx context.Context, userID string, req *dto.ClockEventListRequest) ([]dto.ClockEventResponse, int64, error)
}

type clockService struct {
	cfg    *config.Config
	repo   *repository.Repository
	sender mailer.Sender
	logger *zap.Logger

	// 可注入时钟，便于测试过期分支
	now func() time.Time
}

// NewClockService 创建 ClockService 实例
func NewClockService(cfg *config.Config, repo *repository.Repository, sender mailer.Sender, logger *zap.Logger) ClockService {
	return &clockService{
		cfg:    cfg,
		repo:   repo,
		sender: sender,
		logger: logger,
		now:    time.Now,
	}
}

func (s *clockService) ClockIn(ctx context.Context, userID string, req *dto.ClockInRequest) (*dto.ValidationCodeResponse, error) {
	return s.punch(ctx, userID, req.ShiftID, model.ClockEventTypeIn)
}

func (s *clockService) ClockOut(ctx context.Context, userID string, req *dto.ClockOutRequest) (*dto.ValidationCodeResponse, error) {
	return s.punch(ctx, userID, req.ShiftID, model.ClockEventTypeOut)
}

// punch 上下班打卡的公共流程
func (s *clockService) punch(ctx context.Context, userID, shiftID, eventType string) (*dto.ValidationCodeResponse, error) {
	// 1. 前置检查：班次存在、归属、可打卡
	shift, err := s.repo.Shift.GetByID(ctx, shiftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShiftNotFound
		}
		s.logger.Error("查询班次失败", zap.Error(err))
		return nil, err
	}
	if shift.UserID != userID {
		return nil, ErrShiftNotOwned
	}
	if !shift.IsPunchable() {
		return nil, ErrShiftNotPunchable
	}

	// 2. 重复打卡检查
	exists, err := s.repo.ClockEvent.ExistsByShiftAndType(ctx, shiftID, eventType)
	if err != nil {
		s.logger.Error("查询打卡事件失败", zap.Error(err))
		return nil, err
	}
	if exists {
		if eventType == model.ClockEventTypeIn {
			return nil, ErrAlreadyClockedIn
		}
		return nil, ErrAlreadyClockedOut
	}

	// 3. 下班打卡要求上班打卡已通过验证
	if eventType == model.ClockEventTypeOut {
		clockIn, err := s.repo.ClockEvent.GetByShiftAndType(ctx, shiftID, model.ClockEventTypeIn)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrClockInNotApproved
			}
			s.logger.Error("查询上班打卡失败", zap.Error(err))
			return nil, err
		}
		if !clockIn.IsApproved() {
			return nil, ErrClockInNotApproved
		}
	}

	now := s.now()
	event := &model.ClockEvent{
		UserID:    userID,
		ShiftID:   &shiftID,
		EventType: eventType,
		Timestamp: now,
		Status:    model.ClockEventStatusPending,
		CreatedAt: now,
	}

	// 4. 事件 + 验证码同一事务落库
	var code *model.ClockValidationCode
	err = s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		if err := txRepo.ClockEvent.Create(ctx, event); err != nil {
			return err
		}
		code, err = model.NewClockValidationCode(event, now, s.cfg.Clock.ExpiryWindow())
		if err != nil {
			return err
		}
		return txRepo.ValidationCode.Create(ctx, code)
	})
	if err != nil {
		s.logger.Error("创建打卡事件与验证码失败", zap.Error(err))
		return nil, err
	}

	// 5. 提交后发送邮件；失败只记日志，打卡流程不受影响
	s.notifyByMail(ctx, userID, code)

	resp := s.toValidationCodeResponse(code, now)
	return &resp, nil
}

// notifyByMail 邮件通知验证码
func (s *clockService) notifyByMail(ctx context.Context, userID string, code *model.ClockValidationCode) {
	if s.sender == nil {
		return
	}

	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		s.logger.Warn("查询用户失败，跳过验证码邮件", zap.Error(err))
		return
	}

	if err := s.sender.SendClockValidationCode(
		user.Email, user.FirstName, code.Code, code.ClockEvent.EventType, code.ExpiresAt,
	); err != nil {
		s.logger.Warn("验证码邮件发送失败",
			zap.String("user_id", userID),
			zap.Error(err))
	}
}

// ════════════════════════════════════════════════════════════
// Submit — 验证码核销
// ════════════════════════════════════════════════════════════
//
// 查找刻意取"该用户最近的 PENDING 验证码"，不按班次或事件类型过滤；
// 行锁 + 单事务保证并发提交只有一次生效。
// 核销失败分两类：
//   - 无 PENDING 验证码 → ErrNoPendingCode（404）
//   - 过期 / 码错误     → 正常返回 Success=false，事件被拒并记录原因

func (s *clockService) Submit(ctx context.Context, userID string, req *dto.SubmitCodeRequest) (*dto.SubmitResultResponse, error) {
	var (
		code *model.ClockValidationCode
		ok   bool
	)
	err := s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		var err error
		code, err = txRepo.ValidationCode.GetLatestPendingByUserForUpdate(ctx, userID)
		if err != nil {
			return err
		}

		ok = code.Verify(req.Code, s.now())

		if err := txRepo.ValidationCode.UpdateStatus(ctx, code); err != nil {
			return err
		}
		return txRepo.ClockEvent.UpdateStatus(ctx, code.ClockEvent)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoPendingCode
		}
		s.logger.Error("验证码核销事务失败", zap.Error(err))
		return nil, err
	}

	event := toClockEventResponse(code.ClockEvent)
	result := &dto.SubmitResultResponse{
		Success: ok,
		Event:   &event,
	}
	if !ok {
		result.Detail = code.ClockEvent.Note
	}

	s.logger.Info("验证码核销",
		zap.String("user_id", userID),
		zap.String("validation_code_id", code.ValidationCodeID),
		zap.Bool("success", ok))

	return result, nil
}

func (s *clockService) ListMyEvents(ctx context.Context, userID string, req *dto.ClockEventListRequest) ([]dto.ClockEventResponse, int64, error) {
	events, total, err := s.repo.ClockEvent.ListByUser(ctx, userID, req.Page, req.PageSize)
	if err != nil {
		s.logger.Error("查询打卡事件列表失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.ClockEventResponse, 0, len(events))
	for i := range events {
		result = append(result, toClockEventResponse(&events[i]))
	}
	return result, total, nil
}

func (s *clockService) toValidationCodeResponse(code *model.ClockValidationCode, now time.Time) dto.ValidationCodeResponse {
	return dto.ValidationCodeResponse{
		ID:               code.ValidationCodeID,
		Code:             code.Code,
		Status:           code.Status,
		ExpiresAt:        code.ExpiresAt.Format(timestampLayout),
		SecondsRemaining: code.SecondsRemaining(now),
		ClockEvent:       toClockEventResponse(code.ClockEvent),
	}
}
