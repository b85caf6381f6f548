package model

import (
	"errors"
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(t time.Time) *time.Time { return &t }

// ── Contract.Validate ──

func TestContractValidate(t *testing.T) {
	cdd := &ContractType{Code: "CDD", RequiresEndDate: true}
	cdi := &ContractType{Code: "CDI", RequiresEndDate: false}

	c := &Contract{StartDate: day(2024, 1, 1)}
	if err := c.Validate(cdd); !errors.Is(err, ErrContractEndDateRequired) {
		t.Errorf("CDD 缺结束日期应报错，实际: %v", err)
	}
	if err := c.Validate(cdi); err != nil {
		t.Errorf("CDI 无结束日期应通过: %v", err)
	}

	c.EndDate = datePtr(day(2023, 12, 1))
	if err := c.Validate(cdd); !errors.Is(err, ErrContractEndBeforeStart) {
		t.Errorf("结束早于开始应报错，实际: %v", err)
	}

	c.EndDate = datePtr(day(2024, 6, 30))
	if err := c.Validate(cdd); err != nil {
		t.Errorf("合法合同应通过: %v", err)
	}
}

// ── ScheduleAssignment.Validate ──

func TestAssignmentValidate_DateOrder(t *testing.T) {
	a := &ScheduleAssignment{
		StartDate: day(2024, 1, 8),
		EndDate:   datePtr(day(2024, 1, 1)),
	}
	if err := a.Validate(nil); !errors.Is(err, ErrAssignmentEndBeforeStart) {
		t.Errorf("期望 ErrAssignmentEndBeforeStart，实际: %v", err)
	}
}

func TestAssignmentValidate_AgainstContract(t *testing.T) {
	contract := &Contract{
		StartDate: day(2024, 1, 1),
		EndDate:   datePtr(day(2024, 6, 30)),
	}

	// 早于合同开始
	a := &ScheduleAssignment{StartDate: day(2023, 12, 1), EndDate: datePtr(day(2024, 2, 1))}
	if err := a.Validate(contract); !errors.Is(err, ErrAssignmentBeforeContract) {
		t.Errorf("期望 ErrAssignmentBeforeContract，实际: %v", err)
	}

	// 合同有结束日期时排班必须有结束日期
	a = &ScheduleAssignment{StartDate: day(2024, 1, 1)}
	if err := a.Validate(contract); !errors.Is(err, ErrAssignmentEndDateRequired) {
		t.Errorf("期望 ErrAssignmentEndDateRequired，实际: %v", err)
	}

	// 超出合同结束日期
	a = &ScheduleAssignment{StartDate: day(2024, 1, 1), EndDate: datePtr(day(2024, 12, 31))}
	if err := a.Validate(contract); !errors.Is(err, ErrAssignmentBeyondContract) {
		t.Errorf("期望 ErrAssignmentBeyondContract，实际: %v", err)
	}

	// 完全落在合同周期内
	a = &ScheduleAssignment{StartDate: day(2024, 1, 1), EndDate: datePtr(day(2024, 6, 30))}
	if err := a.Validate(contract); err != nil {
		t.Errorf("合法指派应通过: %v", err)
	}

	// 无限期合同不限制排班结束日期
	open := &Contract{StartDate: day(2024, 1, 1)}
	a = &ScheduleAssignment{StartDate: day(2024, 2, 1)}
	if err := a.Validate(open); err != nil {
		t.Errorf("无限期合同下开放式指派应通过: %v", err)
	}
}

// ── TimeSlotPattern.Validate ──

func TestTimeSlotPatternValidate(t *testing.T) {
	slot := &TimeSlotPattern{Weekday: 0, StartTime: "09:00", EndTime: "09:00"}
	if err := slot.Validate(); !errors.Is(err, ErrSlotEndNotAfterStart) {
		t.Errorf("期望 ErrSlotEndNotAfterStart，实际: %v", err)
	}

	slot.EndTime = "17:00"
	if err := slot.Validate(); err != nil {
		t.Errorf("合法时段应通过: %v", err)
	}
}

// ── Permission.Validate ──

func TestPermissionValidate(t *testing.T) {
	p := &Permission{
		PermissionType: PermissionTypeViewSchedule,
		StartDate:      day(2024, 3, 1),
		EndDate:        datePtr(day(2024, 2, 1)),
	}
	if err := p.Validate(); !errors.Is(err, ErrPermissionEndBeforeStart) {
		t.Errorf("期望 ErrPermissionEndBeforeStart，实际: %v", err)
	}

	p.EndDate = nil
	if err := p.Validate(); err != nil {
		t.Errorf("开放式授权应通过: %v", err)
	}
}
