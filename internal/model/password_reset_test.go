package model

import (
	"testing"
	"time"
)

func TestNewPasswordResetCode(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	reset, err := NewPasswordResetCode("user-001", base, 10*time.Minute)
	if err != nil {
		t.Fatalf("构造重置码失败: %v", err)
	}
	if len(reset.Code) != 6 {
		t.Errorf("重置码应为 6 位，实际=%q", reset.Code)
	}
	if reset.IsUsed {
		t.Error("新重置码不应是已使用状态")
	}
	if !reset.ExpiresAt.Equal(base.Add(10 * time.Minute)) {
		t.Errorf("过期时间应为创建时间 +10 分钟，实际=%v", reset.ExpiresAt)
	}
}

func TestPasswordResetCode_IsValid(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	reset, err := NewPasswordResetCode("user-001", base, 10*time.Minute)
	if err != nil {
		t.Fatalf("构造重置码失败: %v", err)
	}

	if !reset.IsValid(base) {
		t.Error("刚创建的重置码应有效")
	}
	if !reset.IsValid(base.Add(9 * time.Minute)) {
		t.Error("窗口内的重置码应有效")
	}
	// 过期判断为严格大于：恰好到期即失效
	if reset.IsValid(base.Add(10 * time.Minute)) {
		t.Error("恰好到期的重置码应无效")
	}

	reset.IsUsed = true
	if reset.IsValid(base) {
		t.Error("已使用的重置码应无效")
	}
}
