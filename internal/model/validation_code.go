package model

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// ── 验证码状态 ──
//
// 状态机单向且不可逆：
//   PENDING → USED    （提交正确且未过期，终态）
//   PENDING → EXPIRED （过期或提交错误，终态）
// 终态之后的任何校验都是无副作用的失败

const (
	ValidationCodeStatusPending = "PENDING"
	ValidationCodeStatusUsed    = "USED"
	ValidationCodeStatusExpired = "EXPIRED"
)

// ── 拒绝原因（写入 ClockEvent.Note 并透出给客户端） ──

const (
	RejectNoteExpired       = "Expired"
	RejectNoteIncorrectCode = "Incorrect code"
)

// ClockValidationCode 打卡验证码表 — 对应 clock_validation_codes
// 6 位数字一次性验证码，与 ClockEvent 一一对应（事件删除时级联删除）
type ClockValidationCode struct {
	ValidationCodeID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"validation_code_id"`
	ClockEventID     string    `gorm:"type:uuid;not null;uniqueIndex"                 json:"clock_event_id"`
	Code             string    `gorm:"type:char(6);not null;index:idx_codes_status"   json:"code"`
	Status           string    `gorm:"type:varchar(10);not null;default:'PENDING';index:idx_codes_status" json:"status"`
	CreatedAt        time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
	ExpiresAt        time.Time `gorm:"not null"                                       json:"expires_at"`

	// 关联
	ClockEvent *ClockEvent `gorm:"foreignKey:ClockEventID;references:ClockEventID" json:"clock_event,omitempty"`
}

// TableName 指定表名
func (ClockValidationCode) TableName() string { return "clock_validation_codes" }

// GenerateCode 生成 6 位数字验证码
// 使用 crypto/rand 在 [0, 1000000) 上均匀取值并零填充，不可使用普通伪随机源
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", fmt.Errorf("生成验证码失败: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// NewClockValidationCode 为打卡事件构造验证码（工厂，唯一入口）
func NewClockValidationCode(event *ClockEvent, now time.Time, window time.Duration) (*ClockValidationCode, error) {
	code, err := GenerateCode()
	if err != nil {
		return nil, err
	}
	return &ClockValidationCode{
		ClockEventID: event.ClockEventID,
		Code:         code,
		Status:       ValidationCodeStatusPending,
		CreatedAt:    now,
		ExpiresAt:    now.Add(window),
		ClockEvent:   event,
	}, nil
}

// ── 派生查询（只读，不改状态） ──

// IsExpired 是否已过有效期
func (v *ClockValidationCode) IsExpired(now time.Time) bool {
	return now.After(v.ExpiresAt)
}

// IsValid 是否仍可提交（PENDING 且未过期）
func (v *ClockValidationCode) IsValid(now time.Time) bool {
	return v.Status == ValidationCodeStatusPending && !v.IsExpired(now)
}

// SecondsRemaining 剩余有效秒数（过期后为 0）
func (v *ClockValidationCode) SecondsRemaining(now time.Time) int {
	d := v.ExpiresAt.Sub(now)
	if d < 0 {
		return 0
	}
	return int(d.Seconds())
}

// ── 校验 ──

// Verify 校验员工提交的验证码，按固定优先级推进状态机：
//
//  1. 已出终态           → false，不再产生任何变更（重复提交为幂等空操作）
//  2. 已过期             → 验证码 EXPIRED，事件 REJECTED（note=Expired），false
//  3. 码不匹配（精确比较）→ 验证码 EXPIRED，事件 REJECTED（note=Incorrect code），false
//  4. 正确且在期限内     → 验证码 USED，事件 APPROVED，true
//
// 只修改内存状态；验证码与关联事件必须由调用方在同一事务内持久化，
// 并在读取时对验证码行加锁，保证并发提交只有一次生效
func (v *ClockValidationCode) Verify(submitted string, now time.Time) bool {
	if v.Status != ValidationCodeStatusPending {
		return false
	}

	if v.IsExpired(now) {
		v.reject(RejectNoteExpired)
		return false
	}

	if v.Code != submitted {
		v.reject(RejectNoteIncorrectCode)
		return false
	}

	v.Status = ValidationCodeStatusUsed
	v.ClockEvent.Status = ClockEventStatusApproved
	return true
}

// reject 验证码置 EXPIRED，关联事件置 REJECTED 并记录原因
func (v *ClockValidationCode) reject(reason string) {
	v.Status = ValidationCodeStatusExpired
	v.ClockEvent.Status = ClockEventStatusRejected
	v.ClockEvent.Note = reason
}
