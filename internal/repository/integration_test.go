//go:build integration

package repository_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/epitechproject1/time-manager-staging/internal/model"
	"github.com/epitechproject1/time-manager-staging/internal/repository"
)

// ═══════════════════════════════════════════════════════════
// Test Setup
// ═══════════════════════════════════════════════════════════

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost port=5433 user=time_manager password=time_manager_password dbname=time_manager_test sslmode=disable TimeZone=UTC"
	}

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "无法连接测试数据库: %v\n", err)
		os.Exit(1)
	}

	// 自动迁移测试表结构
	err = testDB.AutoMigrate(
		&model.Department{},
		&model.Team{},
		&model.User{},
		&model.ContractType{},
		&model.Contract{},
		&model.WeekPattern{},
		&model.TimeSlotPattern{},
		&model.ScheduleAssignment{},
		&model.Shift{},
		&model.ClockEvent{},
		&model.ClockValidationCode{},
		&model.PasswordResetCode{},
		&model.Permission{},
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "AutoMigrate 失败: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()
	os.Exit(code)
}

// setupTestData 创建基础测试数据并返回清理函数
func setupTestData(t *testing.T) (user *model.User, assignment *model.ScheduleAssignment, cleanup func()) {
	t.Helper()
	ctx := context.Background()
	nano := time.Now().UnixNano()

	user = &model.User{
		Email:        fmt.Sprintf("test%d@example.com", nano),
		FirstName:    "测试",
		LastName:     "用户",
		PasswordHash: "$2a$10$placeholder",
		Role:         "user",
		IsActive:     true,
	}
	if err := testDB.WithContext(ctx).Create(user).Error; err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}

	ct := &model.ContractType{
		Name:            fmt.Sprintf("测试合同-%d", nano),
		Code:            fmt.Sprintf("T%d", nano%100000),
		RequiresEndDate: false,
	}
	if err := testDB.WithContext(ctx).Create(ct).Error; err != nil {
		t.Fatalf("创建合同类型失败: %v", err)
	}

	contract := &model.Contract{
		UserID:            user.UserID,
		ContractTypeID:    ct.ContractTypeID,
		StartDate:         time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		WeeklyHoursTarget: 35,
	}
	if err := testDB.WithContext(ctx).Create(contract).Error; err != nil {
		t.Fatalf("创建合同失败: %v", err)
	}

	wp := &model.WeekPattern{Name: fmt.Sprintf("测试模板-%d", nano)}
	if err := testDB.WithContext(ctx).Create(wp).Error; err != nil {
		t.Fatalf("创建周模板失败: %v", err)
	}

	assignment = &model.ScheduleAssignment{
		ContractID:    contract.ContractID,
		WeekPatternID: wp.WeekPatternID,
		StartDate:     time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		IsActive:      true,
	}
	if err := testDB.WithContext(ctx).Create(assignment).Error; err != nil {
		t.Fatalf("创建排班指派失败: %v", err)
	}

	cleanup = func() {
		testDB.Unscoped().Where("assignment_id = ?", assignment.AssignmentID).Delete(&model.ScheduleAssignment{})
		testDB.Unscoped().Where("week_pattern_id = ?", wp.WeekPatternID).Delete(&model.WeekPattern{})
		testDB.Unscoped().Where("contract_id = ?", contract.ContractID).Delete(&model.Contract{})
		testDB.Unscoped().Where("contract_type_id = ?", ct.ContractTypeID).Delete(&model.ContractType{})
		testDB.Unscoped().Where("user_id = ?", user.UserID).Delete(&model.User{})
	}
	return
}

func strPtr(s string) *string { return &s }

// ═══════════════════════════════════════════════════════════
// Test: Transaction
// ═══════════════════════════════════════════════════════════

func TestTransaction_Rollback(t *testing.T) {
	user, assignment, cleanup := setupTestData(t)
	defer cleanup()

	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	var shiftID string
	errBoom := errors.New("boom")
	err := repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		shift := &model.Shift{
			UserID:       user.UserID,
			AssignmentID: assignment.AssignmentID,
			Date:         time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
			StartTime:    strPtr("09:00"),
			EndTime:      strPtr("17:00"),
			ShiftType:    model.ShiftTypeWork,
		}
		if err := txRepo.Shift.Create(ctx, shift); err != nil {
			return err
		}
		shiftID = shift.ShiftID
		return errBoom
	})
	if !errors.Is(err, errBoom) {
		t.Fatalf("期望事务返回 boom，实际=%v", err)
	}

	// 验证数据未持久化
	if _, err := repo.Shift.GetByID(ctx, shiftID); err == nil {
		testDB.Unscoped().Where("shift_id = ?", shiftID).Delete(&model.Shift{})
		t.Fatal("期望回滚后查不到班次，但实际查到了")
	}
}

func TestTransaction_Commit(t *testing.T) {
	user, assignment, cleanup := setupTestData(t)
	defer cleanup()

	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	var shiftID string
	err := repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		shift := &model.Shift{
			UserID:       user.UserID,
			AssignmentID: assignment.AssignmentID,
			Date:         time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC),
			StartTime:    strPtr("09:00"),
			EndTime:      strPtr("17:00"),
			ShiftType:    model.ShiftTypeWork,
		}
		if err := txRepo.Shift.Create(ctx, shift); err != nil {
			return err
		}
		shiftID = shift.ShiftID
		return nil
	})
	if err != nil {
		t.Fatalf("事务提交失败: %v", err)
	}
	defer testDB.Unscoped().Where("shift_id = ?", shiftID).Delete(&model.Shift{})

	found, err := repo.Shift.GetByID(ctx, shiftID)
	if err != nil {
		t.Fatalf("提交后查询班次失败: %v", err)
	}
	if found.ShiftID != shiftID {
		t.Errorf("ID 不匹配: expected %s, got %s", shiftID, found.ShiftID)
	}
}

// ═══════════════════════════════════════════════════════════
// Test: Shift FindOrCreate 幂等
// ═══════════════════════════════════════════════════════════

func TestShiftFindOrCreate_Idempotent(t *testing.T) {
	user, assignment, cleanup := setupTestData(t)
	defer cleanup()

	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	makeShift := func() *model.Shift {
		return &model.Shift{
			UserID:       user.UserID,
			AssignmentID: assignment.AssignmentID,
			Date:         time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC),
			StartTime:    strPtr("09:00"),
			EndTime:      strPtr("17:00"),
			ShiftType:    model.ShiftTypeWork,
		}
	}

	first, created, err := repo.Shift.FindOrCreate(ctx, makeShift())
	if err != nil {
		t.Fatalf("首次 FindOrCreate 失败: %v", err)
	}
	if !created {
		t.Fatal("首次调用应创建新班次")
	}
	defer testDB.Unscoped().Where("shift_id = ?", first.ShiftID).Delete(&model.Shift{})

	second, created, err := repo.Shift.FindOrCreate(ctx, makeShift())
	if err != nil {
		t.Fatalf("二次 FindOrCreate 失败: %v", err)
	}
	if created {
		t.Error("相同自然键的二次调用不应创建新班次")
	}
	if second.ShiftID != first.ShiftID {
		t.Errorf("期望返回已存在的班次 %s，实际=%s", first.ShiftID, second.ShiftID)
	}
}

func TestShiftFindOrCreate_NullTimesDistinct(t *testing.T) {
	user, assignment, cleanup := setupTestData(t)
	defer cleanup()

	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	day := time.Date(2026, 1, 8, 0, 0, 0, 0, time.UTC)

	holiday := &model.Shift{
		UserID:       user.UserID,
		AssignmentID: assignment.AssignmentID,
		Date:         day,
		ShiftType:    model.ShiftTypeHoliday,
	}
	h, created, err := repo.Shift.FindOrCreate(ctx, holiday)
	if err != nil || !created {
		t.Fatalf("创建全天假日班次失败: created=%v err=%v", created, err)
	}
	defer testDB.Unscoped().Where("shift_id = ?", h.ShiftID).Delete(&model.Shift{})

	// 同日带时间的班次是不同的自然键
	work := &model.Shift{
		UserID:       user.UserID,
		AssignmentID: assignment.AssignmentID,
		Date:         day,
		StartTime:    strPtr("09:00"),
		EndTime:      strPtr("12:00"),
		ShiftType:    model.ShiftTypeWork,
	}
	w, created, err := repo.Shift.FindOrCreate(ctx, work)
	if err != nil {
		t.Fatalf("创建同日工作班次失败: %v", err)
	}
	if !created {
		t.Error("带时间的班次与全天班次自然键不同，应新建")
	}
	defer testDB.Unscoped().Where("shift_id = ?", w.ShiftID).Delete(&model.Shift{})
}

// ═══════════════════════════════════════════════════════════
// Test: 验证码行锁查询
// ═══════════════════════════════════════════════════════════

func TestValidationCode_GetLatestPending(t *testing.T) {
	user, assignment, cleanup := setupTestData(t)
	defer cleanup()

	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	shift := &model.Shift{
		UserID:       user.UserID,
		AssignmentID: assignment.AssignmentID,
		Date:         time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC),
		StartTime:    strPtr("09:00"),
		EndTime:      strPtr("17:00"),
		ShiftType:    model.ShiftTypeWork,
	}
	if err := repo.Shift.Create(ctx, shift); err != nil {
		t.Fatalf("创建班次失败: %v", err)
	}
	defer testDB.Unscoped().Where("shift_id = ?", shift.ShiftID).Delete(&model.Shift{})

	base := time.Now().UTC().Truncate(time.Second)

	makeEventWithCode := func(offset time.Duration) *model.ClockValidationCode {
		event := &model.ClockEvent{
			UserID:    user.UserID,
			ShiftID:   &shift.ShiftID,
			EventType: model.ClockEventTypeIn,
			Timestamp: base.Add(offset),
			Status:    model.ClockEventStatusPending,
		}
		if err := repo.ClockEvent.Create(ctx, event); err != nil {
			t.Fatalf("创建打卡事件失败: %v", err)
		}
		code, err := model.NewClockValidationCode(event, base.Add(offset), 3*time.Minute)
		if err != nil {
			t.Fatalf("构造验证码失败: %v", err)
		}
		if err := repo.ValidationCode.Create(ctx, code); err != nil {
			t.Fatalf("创建验证码失败: %v", err)
		}
		return code
	}

	// 同一班次只允许一种类型各一次，第二个事件挂在 CLOCK_OUT 上
	early := makeEventWithCode(0)
	lateEvent := &model.ClockEvent{
		UserID:    user.UserID,
		ShiftID:   &shift.ShiftID,
		EventType: model.ClockEventTypeOut,
		Timestamp: base.Add(time.Minute),
		Status:    model.ClockEventStatusPending,
	}
	if err := repo.ClockEvent.Create(ctx, lateEvent); err != nil {
		t.Fatalf("创建第二个打卡事件失败: %v", err)
	}
	late, err := model.NewClockValidationCode(lateEvent, base.Add(time.Minute), 3*time.Minute)
	if err != nil {
		t.Fatalf("构造第二个验证码失败: %v", err)
	}
	if err := repo.ValidationCode.Create(ctx, late); err != nil {
		t.Fatalf("创建第二个验证码失败: %v", err)
	}
	defer func() {
		testDB.Unscoped().Where("validation_code_id IN ?", []string{early.ValidationCodeID, late.ValidationCodeID}).Delete(&model.ClockValidationCode{})
		testDB.Unscoped().Where("user_id = ?", user.UserID).Delete(&model.ClockEvent{})
	}()

	err = repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		got, err := txRepo.ValidationCode.GetLatestPendingByUserForUpdate(ctx, user.UserID)
		if err != nil {
			return err
		}
		if got.ValidationCodeID != late.ValidationCodeID {
			t.Errorf("期望取到最新的验证码 %s，实际=%s", late.ValidationCodeID, got.ValidationCodeID)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("行锁查询失败: %v", err)
	}
}
