package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/epitechproject1/time-manager-staging/config"
	"github.com/epitechproject1/time-manager-staging/internal/dto"
	"github.com/epitechproject1/time-manager-staging/internal/model"
	"github.com/epitechproject1/time-manager-staging/internal/repository"
	"github.com/epitechproject1/time-manager-staging/pkg/jwt"
)

// ── 测试辅助 ──

type authTestEnv struct {
	svc    *authService
	users  *mockUserRepo
	resets *mockPasswordResetRepo
	sender *recordingSender
}

var authTestBase = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func setupTestAuthService() *authTestEnv {
	users := newMockUserRepo()
	resets := newMockPasswordResetRepo()
	sender := &recordingSender{}

	hash, _ := bcrypt.GenerateFromPassword([]byte("ancien-mdp"), bcrypt.MinCost)
	users.users["user-001"] = &model.User{
		UserID:       "user-001",
		Email:        "marie.dupont@example.com",
		FirstName:    "Marie",
		LastName:     "Dupont",
		PasswordHash: string(hash),
		Role:         model.RoleUser,
		IsActive:     true,
	}

	repo := &repository.Repository{
		User:          users,
		PasswordReset: resets,
	}

	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.AccessTokenTTL = 15 * time.Minute
	cfg.Auth.RefreshTokenTTL = 7 * 24 * time.Hour

	svc := NewAuthService(cfg, repo, jwt.NewManager(&cfg.Auth), nil, sender, zap.NewNop()).(*authService)
	svc.now = func() time.Time { return authTestBase }
	return &authTestEnv{svc: svc, users: users, resets: resets, sender: sender}
}

// requestResetCode 走一遍申请流程并取出落库的码值
func requestResetCode(t *testing.T, env *authTestEnv) string {
	t.Helper()
	err := env.svc.RequestPasswordReset(context.Background(), &dto.PasswordResetRequestRequest{
		Email: "marie.dupont@example.com",
	})
	if err != nil {
		t.Fatalf("申请重置码应成功: %v", err)
	}
	for _, c := range env.resets.codes {
		if !c.IsUsed {
			return c.Code
		}
	}
	t.Fatal("未找到可用重置码")
	return ""
}

// ── 密码重置 ──

func TestAuthService_RequestPasswordReset_CreatesAndSends(t *testing.T) {
	env := setupTestAuthService()

	code := requestResetCode(t, env)
	if len(code) != 6 {
		t.Errorf("重置码应为 6 位，实际=%q", code)
	}
	if env.sender.sent != 1 {
		t.Errorf("期望发送 1 封邮件，实际=%d", env.sender.sent)
	}
	if env.sender.lastTo != "marie.dupont@example.com" {
		t.Errorf("邮件应发给申请用户，实际=%s", env.sender.lastTo)
	}
}

func TestAuthService_RequestPasswordReset_UnknownEmailSilent(t *testing.T) {
	env := setupTestAuthService()

	err := env.svc.RequestPasswordReset(context.Background(), &dto.PasswordResetRequestRequest{
		Email: "inconnu@example.com",
	})
	if err != nil {
		t.Fatalf("未知邮箱应静默返回，实际=%v", err)
	}
	if env.sender.sent != 0 {
		t.Errorf("未知邮箱不应发送邮件，实际=%d", env.sender.sent)
	}
	if len(env.resets.codes) != 0 {
		t.Errorf("未知邮箱不应落库重置码，实际=%d", len(env.resets.codes))
	}
}

func TestAuthService_RequestPasswordReset_InvalidatesOldCodes(t *testing.T) {
	env := setupTestAuthService()

	first := requestResetCode(t, env)
	second := requestResetCode(t, env)

	valid, err := env.svc.VerifyPasswordReset(context.Background(), &dto.PasswordResetVerifyRequest{
		Email: "marie.dupont@example.com",
		Code:  first,
	})
	if err != nil {
		t.Fatalf("校验不应出错: %v", err)
	}
	if valid && first != second {
		t.Error("旧重置码在新码签发后应失效")
	}

	valid, err = env.svc.VerifyPasswordReset(context.Background(), &dto.PasswordResetVerifyRequest{
		Email: "marie.dupont@example.com",
		Code:  second,
	})
	if err != nil || !valid {
		t.Errorf("最新重置码应有效: valid=%v err=%v", valid, err)
	}
}

func TestAuthService_VerifyPasswordReset_Expired(t *testing.T) {
	env := setupTestAuthService()
	code := requestResetCode(t, env)

	env.svc.now = func() time.Time { return authTestBase.Add(11 * time.Minute) }

	valid, err := env.svc.VerifyPasswordReset(context.Background(), &dto.PasswordResetVerifyRequest{
		Email: "marie.dupont@example.com",
		Code:  code,
	})
	if err != nil {
		t.Fatalf("校验不应出错: %v", err)
	}
	if valid {
		t.Error("过期重置码不应通过校验")
	}
}

func TestAuthService_ConfirmPasswordReset_Success(t *testing.T) {
	env := setupTestAuthService()
	code := requestResetCode(t, env)

	err := env.svc.ConfirmPasswordReset(context.Background(), &dto.PasswordResetConfirmRequest{
		Email:       "marie.dupont@example.com",
		Code:        code,
		NewPassword: "nouveau-mdp-123",
	})
	if err != nil {
		t.Fatalf("重置应成功: %v", err)
	}

	user := env.users.users["user-001"]
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("nouveau-mdp-123")) != nil {
		t.Error("新密码未生效")
	}

	// 码核销后不可再用
	err = env.svc.ConfirmPasswordReset(context.Background(), &dto.PasswordResetConfirmRequest{
		Email:       "marie.dupont@example.com",
		Code:        code,
		NewPassword: "encore-un-autre",
	})
	if !errors.Is(err, ErrResetCodeInvalid) {
		t.Errorf("已使用的重置码应拒绝，实际=%v", err)
	}
}

func TestAuthService_ConfirmPasswordReset_WrongCode(t *testing.T) {
	env := setupTestAuthService()
	requestResetCode(t, env)

	err := env.svc.ConfirmPasswordReset(context.Background(), &dto.PasswordResetConfirmRequest{
		Email:       "marie.dupont@example.com",
		Code:        "000000",
		NewPassword: "nouveau-mdp-123",
	})
	if !errors.Is(err, ErrResetCodeInvalid) {
		t.Errorf("期望 ErrResetCodeInvalid，实际=%v", err)
	}
}

func TestAuthService_ConfirmPasswordReset_UnknownEmail(t *testing.T) {
	env := setupTestAuthService()

	err := env.svc.ConfirmPasswordReset(context.Background(), &dto.PasswordResetConfirmRequest{
		Email:       "inconnu@example.com",
		Code:        "123456",
		NewPassword: "nouveau-mdp-123",
	})
	if !errors.Is(err, ErrResetCodeInvalid) {
		t.Errorf("未知邮箱应与错码同样返回 ErrResetCodeInvalid，实际=%v", err)
	}
}
