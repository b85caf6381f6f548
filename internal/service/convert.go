package service

import (
	"time"

	"github.com/epitechproject1/time-manager-staging/internal/dto"
	"github.com/epitechproject1/time-manager-staging/internal/model"
)

// ── 模型 → DTO 转换（跨服务复用） ──

const (
	timestampLayout = "2006-01-02T15:04:05Z"
	dateLayout      = "2006-01-02"
)

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func toUserResponse(user *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          user.UserID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		PhoneNumber: user.PhoneNumber,
		Role:        user.Role,
		IsActive:    user.IsActive,
		CreatedAt:   user.CreatedAt.Format(timestampLayout),
	}
}

func toUserBrief(user *model.User) *dto.UserBrief {
	if user == nil {
		return nil
	}
	return &dto.UserBrief{
		ID:        user.UserID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}

func toContractTypeResponse(ct *model.ContractType) dto.ContractTypeResponse {
	return dto.ContractTypeResponse{
		ID:              ct.ContractTypeID,
		Name:            ct.Name,
		Code:            ct.Code,
		Description:     ct.Description,
		RequiresEndDate: ct.RequiresEndDate,
	}
}

func toContractResponse(c *model.Contract) dto.ContractResponse {
	resp := dto.ContractResponse{
		ID:                c.ContractID,
		User:              toUserBrief(c.User),
		StartDate:         c.StartDate.Format(dateLayout),
		EndDate:           formatDatePtr(c.EndDate),
		WeeklyHoursTarget: c.WeeklyHoursTarget,
		CreatedAt:         c.CreatedAt.Format(timestampLayout),
	}
	if c.ContractType != nil {
		ct := toContractTypeResponse(c.ContractType)
		resp.ContractType = &ct
	}
	return resp
}

func toTimeSlotPatternResponse(slot *model.TimeSlotPattern) dto.TimeSlotPatternResponse {
	return dto.TimeSlotPatternResponse{
		ID:            slot.TimeSlotPatternID,
		WeekPatternID: slot.WeekPatternID,
		Weekday:       slot.Weekday,
		StartTime:     slot.StartTime,
		EndTime:       slot.EndTime,
		SlotType:      slot.SlotType,
	}
}

func toWeekPatternResponse(p *model.WeekPattern) dto.WeekPatternResponse {
	resp := dto.WeekPatternResponse{
		ID:          p.WeekPatternID,
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt.Format(timestampLayout),
	}
	if len(p.TimeSlots) > 0 {
		resp.TimeSlots = make([]dto.TimeSlotPatternResponse, 0, len(p.TimeSlots))
		for i := range p.TimeSlots {
			resp.TimeSlots = append(resp.TimeSlots, toTimeSlotPatternResponse(&p.TimeSlots[i]))
		}
	}
	return resp
}

func toAssignmentResponse(a *model.ScheduleAssignment) dto.AssignmentResponse {
	resp := dto.AssignmentResponse{
		ID:        a.AssignmentID,
		StartDate: a.StartDate.Format(dateLayout),
		EndDate:   formatDatePtr(a.EndDate),
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt.Format(timestampLayout),
	}
	if a.Contract != nil {
		c := toContractResponse(a.Contract)
		resp.Contract = &c
	}
	if a.WeekPattern != nil {
		p := toWeekPatternResponse(a.WeekPattern)
		resp.WeekPattern = &p
	}
	return resp
}

func toShiftResponse(s *model.Shift) dto.ShiftResponse {
	return dto.ShiftResponse{
		ID:           s.ShiftID,
		UserID:       s.UserID,
		AssignmentID: s.AssignmentID,
		Date:         s.Date.Format(dateLayout),
		StartTime:    s.StartTime,
		EndTime:      s.EndTime,
		ShiftType:    s.ShiftType,
		Overridden:   s.Overridden,
		CreatedAt:    s.CreatedAt.Format(timestampLayout),
	}
}

func toClockEventResponse(e *model.ClockEvent) dto.ClockEventResponse {
	return dto.ClockEventResponse{
		ID:        e.ClockEventID,
		UserID:    e.UserID,
		ShiftID:   e.ShiftID,
		EventType: e.EventType,
		Status:    e.Status,
		Note:      e.Note,
		Timestamp: e.Timestamp.Format(timestampLayout),
	}
}

func toPermissionResponse(p *model.Permission) dto.PermissionResponse {
	return dto.PermissionResponse{
		PermissionID:    p.PermissionID,
		PermissionType:  p.PermissionType,
		StartDate:       p.StartDate.Format(dateLayout),
		EndDate:         formatDatePtr(p.EndDate),
		GrantedByUserID: p.GrantedByUserID,
		GrantedToUserID: p.GrantedToUserID,
		CreatedAt:       p.CreatedAt.Format(timestampLayout),
	}
}
