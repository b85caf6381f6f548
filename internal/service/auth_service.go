package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/epitechproject1/time-manager-staging/config"
	"github.com/epitechproject1/time-manager-staging/internal/dto"
	"github.com/epitechproject1/time-manager-staging/internal/model"
	"github.com/epitechproject1/time-manager-staging/internal/repository"
	"github.com/epitechproject1/time-manager-staging/pkg/jwt"
	"github.com/epitechproject1/time-manager-staging/pkg/mailer"
	"github.com/epitechproject1/time-manager-staging/pkg/redis"
)

// ── 认证模块业务错误 ──

var (
	ErrInvalidCredentials = errors.New("邮箱或密码错误")
	ErrUserNotFound       = errors.New("用户不存在")
	ErrUserDisabled       = errors.New("账号已停用")
	ErrEmailTaken         = errors.New("邮箱已被注册")
	ErrInvalidRefresh     = errors.New("refresh token 无效")
	ErrWrongOldPassword   = errors.New("原密码错误")
	ErrResetCodeInvalid   = errors.New("重置码无效或已过期")
)

// 密码重置码有效期
const passwordResetWindow = 10 * time.Minute

// AuthService 认证业务接口
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	// Logout 将当前 access token 的 jti 加入黑名单，剩余有效期内不可再用
	Logout(ctx context.Context, claims *jwt.Claims) error
	// Register 创建新用户（仅管理员可调用，角色限制在 Handler 层）
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Me(ctx context.Context, userID string) (*dto.UserResponse, error)
	ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error
	// RequestPasswordReset 为邮箱对应用户生成重置码并邮件发送。
	// 邮箱不存在时同样静默返回，避免用户枚举
	RequestPasswordReset(ctx context.Context, req *dto.PasswordResetRequestRequest) error
	// VerifyPasswordReset 预检重置码是否可用，不消耗码
	VerifyPasswordReset(ctx context.Context, req *dto.PasswordResetVerifyRequest) (bool, error)
	// ConfirmPasswordReset 核销重置码并设置新密码
	ConfirmPasswordReset(ctx context.Context, req *dto.PasswordResetConfirmRequest) error
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	sender mailer.Sender
	logger *zap.Logger

	now func() time.Time
}

// NewAuthService 创建 AuthService 实例
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	sender mailer.Sender,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:    cfg,
		repo:   repo,
		jwtMgr: jwtMgr,
		rdb:    rdb,
		sender: sender,
		logger: logger,
		now:    time.Now,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	// 1. 查询用户
	user, err := s.repo.User.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}

	if !user.IsActive {
		return nil, ErrUserDisabled
	}

	// 2. 验证密码 (bcrypt)
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// 3. 生成 Token 对
	return s.issueTokens(user)
}

func (s *authService) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := s.jwtMgr.ParseToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidRefresh
	}
	if claims.TokenType != "refresh" {
		return nil, ErrInvalidRefresh
	}

	// 黑名单检查（Redis 不可用时放行，由 token 有效期兜底）
	if s.rdb != nil {
		blacklisted, err := s.rdb.IsBlacklisted(ctx, claims.ID)
		if err != nil {
			s.logger.Warn("黑名单检查失败", zap.Error(err))
		} else if blacklisted {
			return nil, ErrInvalidRefresh
		}
	}

	user, err := s.repo.User.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrUserDisabled
	}

	return s.issueTokens(user)
}

func (s *authService) Logout(ctx context.Context, claims *jwt.Claims) error {
	if s.rdb == nil {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.rdb.BlacklistToken(ctx, claims.ID, ttl); err != nil {
		s.logger.Error("加入 Token 黑名单失败", zap.Error(err))
		return err
	}
	return nil
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	// 邮箱查重
	if _, err := s.repo.User.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("密码哈希失败", zap.Error(err))
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = model.RoleUser
	}

	user := &model.User{
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		s.logger.Error("创建用户失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("用户创建成功",
		zap.String("user_id", user.UserID),
		zap.String("email", user.Email))

	resp := toUserResponse(user)
	return &resp, nil
}

func (s *authService) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *authService) ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		return ErrWrongOldPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("密码哈希失败", zap.Error(err))
		return err
	}

	user.PasswordHash = string(hash)
	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("更新密码失败", zap.Error(err))
		return err
	}
	return nil
}

func (s *authService) RequestPasswordReset(ctx context.Context, req *dto.PasswordResetRequestRequest) error {
	user, err := s.repo.User.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 邮箱不存在不暴露给调用方
			return nil
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return err
	}

	var reset *model.PasswordResetCode
	err = s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		// 旧码全部作废，保证同一时刻只有最新一条可用
		if err := txRepo.PasswordReset.InvalidateActiveByUser(ctx, user.UserID); err != nil {
			return err
		}
		reset, err = model.NewPasswordResetCode(user.UserID, s.now(), passwordResetWindow)
		if err != nil {
			return err
		}
		return txRepo.PasswordReset.Create(ctx, reset)
	})
	if err != nil {
		s.logger.Error("创建密码重置码失败", zap.Error(err), zap.String("user_id", user.UserID))
		return err
	}

	if err := s.sender.SendPasswordResetCode(user.Email, user.FirstName, reset.Code, reset.ExpiresAt); err != nil {
		// 发送失败只记日志，重置码已落库，用户可重新申请
		s.logger.Error("重置码邮件发送失败",
			zap.Error(err),
			zap.String("user_id", user.UserID))
	}
	return nil
}

func (s *authService) VerifyPasswordReset(ctx context.Context, req *dto.PasswordResetVerifyRequest) (bool, error) {
	_, err := s.lookupResetCode(ctx, req.Email, req.Code)
	if err != nil {
		if errors.Is(err, ErrResetCodeInvalid) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *authService) ConfirmPasswordReset(ctx context.Context, req *dto.PasswordResetConfirmRequest) error {
	user, err := s.repo.User.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrResetCodeInvalid
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return err
	}

	reset, err := s.lookupResetCode(ctx, req.Email, req.Code)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("密码哈希失败", zap.Error(err))
		return err
	}

	err = s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		user.PasswordHash = string(hash)
		if err := txRepo.User.Update(ctx, user); err != nil {
			return err
		}
		return txRepo.PasswordReset.MarkUsed(ctx, reset)
	})
	if err != nil {
		s.logger.Error("密码重置失败", zap.Error(err), zap.String("user_id", user.UserID))
		return err
	}

	s.logger.Info("密码重置成功", zap.String("user_id", user.UserID))
	return nil
}

// lookupResetCode 按邮箱与码值查找可用重置码；任何不可用情形统一返回 ErrResetCodeInvalid
func (s *authService) lookupResetCode(ctx context.Context, email, code string) (*model.PasswordResetCode, error) {
	user, err := s.repo.User.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResetCodeInvalid
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}

	reset, err := s.repo.PasswordReset.GetActiveByUserAndCode(ctx, user.UserID, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResetCodeInvalid
		}
		s.logger.Error("查询重置码失败", zap.Error(err))
		return nil, err
	}
	if !reset.IsValid(s.now()) {
		return nil, ErrResetCodeInvalid
	}
	return reset, nil
}

// issueTokens 为用户签发 access/refresh Token 对
func (s *authService) issueTokens(user *model.User) (*dto.TokenResponse, error) {
	accessToken, err := s.jwtMgr.GenerateAccessToken(user.UserID, user.Role)
	if err != nil {
		s.logger.Error("生成 AccessToken 失败", zap.Error(err))
		return nil, err
	}

	refreshToken, err := s.jwtMgr.GenerateRefreshToken(user.UserID, user.Role)
	if err != nil {
		s.logger.Error("生成 RefreshToken 失败", zap.Error(err))
		return nil, err
	}

	userResp := toUserResponse(user)
	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.cfg.Auth.AccessTokenTTL.Seconds()),
		User:         &userResp,
	}, nil
}
