package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/epitechproject1/time-manager-staging/internal/dto"
	"github.com/epitechproject1/time-manager-staging/internal/model"
	"github.com/epitechproject1/time-manager-staging/internal/repository"
)

// ── 测试辅助 ──

// stubCalendar 以日期集合模拟节假日日历
type stubCalendar struct {
	holidays map[string]bool
}

func (s *stubCalendar) IsHoliday(date time.Time) bool {
	return s.holidays[date.Format("2006-01-02")]
}

type assignmentTestEnv struct {
	svc         AssignmentService
	assignments *mockAssignmentRepo
	shifts      *mockShiftRepo
	calendar    *stubCalendar
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// setupTestAssignmentService 预置一条指派：
// 2024-01-01（周一）到 2024-01-07（周日），周模板为周一/周三 09:00-17:00 工作时段
func setupTestAssignmentService() *assignmentTestEnv {
	assignments := newMockAssignmentRepo()
	shifts := newMockShiftRepo()
	contracts := newMockContractRepo()
	patterns := newMockWeekPatternRepo()
	calendar := &stubCalendar{holidays: make(map[string]bool)}

	user := &model.User{UserID: "user-001", Email: "jean.martin@example.com", FirstName: "Jean", LastName: "Martin"}
	contract := &model.Contract{
		ContractID: "contract-1",
		UserID:     "user-001",
		StartDate:  date(2024, 1, 1),
		User:       user,
	}
	contracts.contracts["contract-1"] = contract

	pattern := &model.WeekPattern{
		WeekPatternID: "wp-standard",
		Name:          "标准周",
		TimeSlots: []model.TimeSlotPattern{
			{TimeSlotPatternID: "slot-1", WeekPatternID: "wp-standard", Weekday: 0, StartTime: "09:00", EndTime: "17:00", SlotType: model.SlotTypeWork},
			{TimeSlotPatternID: "slot-2", WeekPatternID: "wp-standard", Weekday: 2, StartTime: "09:00", EndTime: "17:00", SlotType: model.SlotTypeWork},
		},
	}
	patterns.patterns["wp-standard"] = pattern

	end := date(2024, 1, 7)
	assignments.assignments["assign-1"] = &model.ScheduleAssignment{
		AssignmentID:  "assign-1",
		ContractID:    "contract-1",
		WeekPatternID: "wp-standard",
		StartDate:     date(2024, 1, 1),
		EndDate:       &end,
		IsActive:      true,
		Contract:      contract,
		WeekPattern:   pattern,
	}

	repo := &repository.Repository{
		Contract:    contracts,
		WeekPattern: patterns,
		Assignment:  assignments,
		Shift:       shifts,
	}

	svc := NewAssignmentService(repo, calendar, zap.NewNop())
	return &assignmentTestEnv{svc: svc, assignments: assignments, shifts: shifts, calendar: calendar}
}

// ── GenerateShifts ──

func TestAssignmentService_GenerateShifts_ExpandsPattern(t *testing.T) {
	env := setupTestAssignmentService()

	resp, err := env.svc.GenerateShifts(context.Background(), "assign-1", false)
	if err != nil {
		t.Fatalf("GenerateShifts 应成功: %v", err)
	}

	// 窗口内有一个周一（01-01）和一个周三（01-03）
	if resp.CreatedCount != 2 {
		t.Fatalf("期望生成 2 个班次，实际=%d", resp.CreatedCount)
	}
	dates := map[string]bool{}
	for _, s := range resp.Shifts {
		dates[s.Date] = true
		if s.ShiftType != model.ShiftTypeWork {
			t.Errorf("期望 WORK 班次，实际=%s", s.ShiftType)
		}
		if s.StartTime == nil || *s.StartTime != "09:00" {
			t.Errorf("期望 start_time=09:00，实际=%v", s.StartTime)
		}
		if s.UserID != "user-001" {
			t.Errorf("班次应归属合同用户，实际=%s", s.UserID)
		}
	}
	if !dates["2024-01-01"] || !dates["2024-01-03"] {
		t.Errorf("期望覆盖 01-01 与 01-03，实际=%v", dates)
	}
}

func TestAssignmentService_GenerateShifts_Idempotent(t *testing.T) {
	env := setupTestAssignmentService()

	first, err := env.svc.GenerateShifts(context.Background(), "assign-1", false)
	if err != nil {
		t.Fatalf("第一次生成应成功: %v", err)
	}
	if first.CreatedCount != 2 {
		t.Fatalf("期望第一次生成 2 个班次，实际=%d", first.CreatedCount)
	}

	second, err := env.svc.GenerateShifts(context.Background(), "assign-1", false)
	if err != nil {
		t.Fatalf("重跑应成功: %v", err)
	}
	if second.CreatedCount != 0 {
		t.Errorf("重跑不应新建班次，实际=%d", second.CreatedCount)
	}
	if len(second.Shifts) != 0 {
		t.Errorf("重跑返回应为空列表，实际=%d", len(second.Shifts))
	}
	if len(env.shifts.shifts) != 2 {
		t.Errorf("库中班次总数应保持 2，实际=%d", len(env.shifts.shifts))
	}
}

func TestAssignmentService_GenerateShifts_HolidaySkipped(t *testing.T) {
	env := setupTestAssignmentService()
	env.calendar.holidays["2024-01-01"] = true // 元旦

	resp, err := env.svc.GenerateShifts(context.Background(), "assign-1", false)
	if err != nil {
		t.Fatalf("GenerateShifts 应成功: %v", err)
	}

	// 节假日整日跳过：不生成 WORK 也不生成占位，只剩 01-03 一个班次
	if resp.CreatedCount != 1 {
		t.Fatalf("期望只生成 1 个班次，实际=%d", resp.CreatedCount)
	}
	shift := resp.Shifts[0]
	if shift.Date != "2024-01-03" {
		t.Errorf("期望只剩 01-03，实际=%s", shift.Date)
	}
	if shift.ShiftType != model.ShiftTypeWork {
		t.Errorf("非节假日仍按模板生成，实际=%s", shift.ShiftType)
	}
	for _, s := range env.shifts.shifts {
		if s.Date.Equal(date(2024, 1, 1)) {
			t.Errorf("节假日不应有任何班次落库，实际=%s %s", s.Date.Format("2006-01-02"), s.ShiftType)
		}
	}
}

func TestAssignmentService_GenerateShifts_IncludeHolidays(t *testing.T) {
	env := setupTestAssignmentService()
	env.calendar.holidays["2024-01-01"] = true

	resp, err := env.svc.GenerateShifts(context.Background(), "assign-1", true)
	if err != nil {
		t.Fatalf("GenerateShifts 应成功: %v", err)
	}
	if resp.CreatedCount != 2 {
		t.Fatalf("期望 1 个 HOLIDAY + 1 个 WORK，实际=%d", resp.CreatedCount)
	}

	byDate := map[string]dto.ShiftResponse{}
	for _, s := range resp.Shifts {
		byDate[s.Date] = s
	}
	// 节假日只生成单条无时间 HOLIDAY 班次，工作时段仍不展开
	holiday := byDate["2024-01-01"]
	if holiday.ShiftType != model.ShiftTypeHoliday {
		t.Errorf("节假日期望 HOLIDAY 班次，实际=%s", holiday.ShiftType)
	}
	if holiday.StartTime != nil || holiday.EndTime != nil {
		t.Error("HOLIDAY 班次不应有时间")
	}
	if byDate["2024-01-03"].ShiftType != model.ShiftTypeWork {
		t.Errorf("非节假日仍按模板生成，实际=%s", byDate["2024-01-03"].ShiftType)
	}
}

func TestAssignmentService_GenerateShifts_BreakSlotsNotExpanded(t *testing.T) {
	env := setupTestAssignmentService()
	pattern := env.assignments.assignments["assign-1"].WeekPattern
	pattern.TimeSlots = append(pattern.TimeSlots, model.TimeSlotPattern{
		TimeSlotPatternID: "slot-break",
		WeekPatternID:     "wp-standard",
		Weekday:           0,
		StartTime:         "12:00",
		EndTime:           "13:00",
		SlotType:          model.SlotTypeBreak,
	})

	resp, err := env.svc.GenerateShifts(context.Background(), "assign-1", false)
	if err != nil {
		t.Fatalf("GenerateShifts 应成功: %v", err)
	}
	if resp.CreatedCount != 2 {
		t.Fatalf("BREAK 时段不应生成班次，期望 2 个，实际=%d", resp.CreatedCount)
	}
	for _, s := range resp.Shifts {
		if s.ShiftType != model.ShiftTypeWork {
			t.Errorf("只应展开 WORK 时段，实际=%s", s.ShiftType)
		}
		if s.StartTime != nil && *s.StartTime == "12:00" {
			t.Errorf("BREAK 时段被展开为班次: %s", s.Date)
		}
	}
}

func TestAssignmentService_GenerateShifts_InactiveAssignment(t *testing.T) {
	env := setupTestAssignmentService()
	env.assignments.assignments["assign-1"].IsActive = false

	resp, err := env.svc.GenerateShifts(context.Background(), "assign-1", false)
	if err != nil {
		t.Fatalf("非激活指派应返回空结果而非错误: %v", err)
	}
	if resp.CreatedCount != 0 || len(resp.Shifts) != 0 {
		t.Errorf("非激活指派不应生成班次，实际=%d", resp.CreatedCount)
	}
}

func TestAssignmentService_GenerateShifts_NotFound(t *testing.T) {
	env := setupTestAssignmentService()

	_, err := env.svc.GenerateShifts(context.Background(), "missing", false)
	if !errors.Is(err, ErrAssignmentNotFound) {
		t.Errorf("期望 ErrAssignmentNotFound，实际: %v", err)
	}
}

func TestAssignmentService_GenerateShifts_MissingUser(t *testing.T) {
	env := setupTestAssignmentService()
	env.assignments.assignments["assign-1"].Contract = &model.Contract{ContractID: "contract-1", UserID: "user-001"}

	_, err := env.svc.GenerateShifts(context.Background(), "assign-1", false)
	if !errors.Is(err, ErrAssignmentNoUser) {
		t.Errorf("期望 ErrAssignmentNoUser，实际: %v", err)
	}
}

func TestAssignmentService_GenerateShifts_PartialExisting(t *testing.T) {
	env := setupTestAssignmentService()

	// 预置 01-01 的同时段班次，重生成只应补上 01-03
	start, end := "09:00", "17:00"
	env.shifts.shifts["pre"] = &model.Shift{
		ShiftID:      "pre",
		UserID:       "user-001",
		AssignmentID: "assign-1",
		Date:         date(2024, 1, 1),
		StartTime:    &start,
		EndTime:      &end,
		ShiftType:    model.ShiftTypeWork,
	}

	resp, err := env.svc.GenerateShifts(context.Background(), "assign-1", false)
	if err != nil {
		t.Fatalf("GenerateShifts 应成功: %v", err)
	}
	if resp.CreatedCount != 1 {
		t.Fatalf("期望只新建 1 个班次，实际=%d", resp.CreatedCount)
	}
	if resp.Shifts[0].Date != "2024-01-03" {
		t.Errorf("期望新建 01-03，实际=%s", resp.Shifts[0].Date)
	}
}

func TestAssignmentService_GenerateShifts_WriteFailure(t *testing.T) {
	env := setupTestAssignmentService()
	env.shifts.failNext = true

	_, err := env.svc.GenerateShifts(context.Background(), "assign-1", false)
	if err == nil {
		t.Fatal("写入失败时应返回错误")
	}
}

func TestAssignmentService_GenerateShifts_WindowBeforeStart(t *testing.T) {
	env := setupTestAssignmentService()
	end := date(2023, 12, 25)
	env.assignments.assignments["assign-1"].EndDate = &end

	resp, err := env.svc.GenerateShifts(context.Background(), "assign-1", false)
	if err != nil {
		t.Fatalf("空窗口应返回空结果而非错误: %v", err)
	}
	if resp.CreatedCount != 0 {
		t.Errorf("空窗口不应生成班次，实际=%d", resp.CreatedCount)
	}
}
