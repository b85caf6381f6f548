package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/epitechproject1/time-manager-staging/internal/model"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = "user-" + user.Email
	}
	for _, u := range m.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List(_ context.Context, page, pageSize int) ([]model.User, int64, error) {
	var result []model.User
	for _, u := range m.users {
		result = append(result, *u)
	}
	return result, int64(len(result)), nil
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id string) error {
	delete(m.users, id)
	return nil
}

// ── Mock DepartmentRepository ──

type mockDepartmentRepo struct {
	departments map[string]*model.Department
}

func newMockDepartmentRepo() *mockDepartmentRepo {
	return &mockDepartmentRepo{departments: make(map[string]*model.Department)}
}

func (m *mockDepartmentRepo) Create(_ context.Context, dept *model.Department) error {
	if dept.DepartmentID == "" {
		dept.DepartmentID = "dept-" + dept.Name
	}
	m.departments[dept.DepartmentID] = dept
	return nil
}

func (m *mockDepartmentRepo) GetByID(_ context.Context, id string) (*model.Department, error) {
	if d, ok := m.departments[id]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDepartmentRepo) List(_ context.Context) ([]model.Department, error) {
	var result []model.Department
	for _, d := range m.departments {
		result = append(result, *d)
	}
	return result, nil
}

func (m *mockDepartmentRepo) Update(_ context.Context, dept *model.Department) error {
	m.departments[dept.DepartmentID] = dept
	return nil
}

func (m *mockDepartmentRepo) Delete(_ context.Context, id string) error {
	delete(m.departments, id)
	return nil
}

// ── Mock TeamRepository ──

type mockTeamRepo struct {
	teams map[string]*model.Team
}

func newMockTeamRepo() *mockTeamRepo {
	return &mockTeamRepo{teams: make(map[string]*model.Team)}
}

func (m *mockTeamRepo) Create(_ context.Context, team *model.Team) error {
	if team.TeamID == "" {
		team.TeamID = "team-" + team.Name
	}
	m.teams[team.TeamID] = team
	return nil
}

func (m *mockTeamRepo) GetByID(_ context.Context, id string) (*model.Team, error) {
	if t, ok := m.teams[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTeamRepo) List(_ context.Context, departmentID string) ([]model.Team, error) {
	var result []model.Team
	for _, t := range m.teams {
		if departmentID != "" && (t.DepartmentID == nil || *t.DepartmentID != departmentID) {
			continue
		}
		result = append(result, *t)
	}
	return result, nil
}

func (m *mockTeamRepo) Update(_ context.Context, team *model.Team) error {
	m.teams[team.TeamID] = team
	return nil
}

func (m *mockTeamRepo) Delete(_ context.Context, id string) error {
	delete(m.teams, id)
	return nil
}

// ── Mock ContractTypeRepository ──

type mockContractTypeRepo struct {
	types map[string]*model.ContractType
}

func newMockContractTypeRepo() *mockContractTypeRepo {
	return &mockContractTypeRepo{types: make(map[string]*model.ContractType)}
}

func (m *mockContractTypeRepo) Create(_ context.Context, ct *model.ContractType) error {
	for _, t := range m.types {
		if t.Name == ct.Name || t.Code == ct.Code {
			return gorm.ErrDuplicatedKey
		}
	}
	if ct.ContractTypeID == "" {
		ct.ContractTypeID = "ct-" + ct.Code
	}
	m.types[ct.ContractTypeID] = ct
	return nil
}

func (m *mockContractTypeRepo) GetByID(_ context.Context, id string) (*model.ContractType, error) {
	if t, ok := m.types[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockContractTypeRepo) List(_ context.Context) ([]model.ContractType, error) {
	var result []model.ContractType
	for _, t := range m.types {
		result = append(result, *t)
	}
	return result, nil
}

func (m *mockContractTypeRepo) Update(_ context.Context, ct *model.ContractType) error {
	m.types[ct.ContractTypeID] = ct
	return nil
}

func (m *mockContractTypeRepo) Delete(_ context.Context, id string) error {
	delete(m.types, id)
	return nil
}

// ── Mock ContractRepository ──

type mockContractRepo struct {
	contracts map[string]*model.Contract
	idCounter int
}

func newMockContractRepo() *mockContractRepo {
	return &mockContractRepo{contracts: make(map[string]*model.Contract)}
}

func (m *mockContractRepo) Create(_ context.Context, contract *model.Contract) error {
	if contract.ContractID == "" {
		m.idCounter++
		contract.ContractID = fmt.Sprintf("contract-%d", m.idCounter)
	}
	m.contracts[contract.ContractID] = contract
	return nil
}

func (m *mockContractRepo) GetByID(_ context.Context, id string) (*model.Contract, error) {
	if c, ok := m.contracts[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockContractRepo) ListByUser(_ context.Context, userID string) ([]model.Contract, error) {
	var result []model.Contract
	for _, c := range m.contracts {
		if c.UserID == userID {
			result = append(result, *c)
		}
	}
	return result, nil
}

func (m *mockContractRepo) List(_ context.Context, page, pageSize int) ([]model.Contract, int64, error) {
	var result []model.Contract
	for _, c := range m.contracts {
		result = append(result, *c)
	}
	return result, int64(len(result)), nil
}

func (m *mockContractRepo) Update(_ context.Context, contract *model.Contract) error {
	m.contracts[contract.ContractID] = contract
	return nil
}

func (m *mockContractRepo) Delete(_ context.Context, id string) error {
	delete(m.contracts, id)
	return nil
}

// ── Mock WeekPatternRepository ──

type mockWeekPatternRepo struct {
	patterns map[string]*model.WeekPattern
}

func newMockWeekPatternRepo() *mockWeekPatternRepo {
	return &mockWeekPatternRepo{patterns: make(map[string]*model.WeekPattern)}
}

func (m *mockWeekPatternRepo) Create(_ context.Context, pattern *model.WeekPattern) error {
	for _, p := range m.patterns {
		if p.Name == pattern.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	if pattern.WeekPatternID == "" {
		pattern.WeekPatternID = "wp-" + pattern.Name
	}
	m.patterns[pattern.WeekPatternID] = pattern
	return nil
}

func (m *mockWeekPatternRepo) GetByID(_ context.Context, id string) (*model.WeekPattern, error) {
	if p, ok := m.patterns[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockWeekPatternRepo) List(_ context.Context) ([]model.WeekPattern, error) {
	var result []model.WeekPattern
	for _, p := range m.patterns {
		result = append(result, *p)
	}
	return result, nil
}

func (m *mockWeekPatternRepo) Update(_ context.Context, pattern *model.WeekPattern) error {
	m.patterns[pattern.WeekPatternID] = pattern
	return nil
}

func (m *mockWeekPatternRepo) Delete(_ context.Context, id string) error {
	delete(m.patterns, id)
	return nil
}

// ── Mock TimeSlotPatternRepository ──

type mockTimeSlotPatternRepo struct {
	slots     map[string]*model.TimeSlotPattern
	idCounter int
}

func newMockTimeSlotPatternRepo() *mockTimeSlotPatternRepo {
	return &mockTimeSlotPatternRepo{slots: make(map[string]*model.TimeSlotPattern)}
}

func (m *mockTimeSlotPatternRepo) Create(_ context.Context, slot *model.TimeSlotPattern) error {
	if slot.TimeSlotPatternID == "" {
		m.idCounter++
		slot.TimeSlotPatternID = fmt.Sprintf("slot-%d", m.idCounter)
	}
	m.slots[slot.TimeSlotPatternID] = slot
	return nil
}

func (m *mockTimeSlotPatternRepo) GetByID(_ context.Context, id string) (*model.TimeSlotPattern, error) {
	if s, ok := m.slots[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTimeSlotPatternRepo) ListByPattern(_ context.Context, weekPatternID string) ([]model.TimeSlotPattern, error) {
	var result []model.TimeSlotPattern
	for _, s := range m.slots {
		if s.WeekPatternID == weekPatternID {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *mockTimeSlotPatternRepo) Update(_ context.Context, slot *model.TimeSlotPattern) error {
	m.slots[slot.TimeSlotPatternID] = slot
	return nil
}

func (m *mockTimeSlotPatternRepo) Delete(_ context.Context, id string) error {
	delete(m.slots, id)
	return nil
}

// ── Mock AssignmentRepository ──

type mockAssignmentRepo struct {
	assignments map[string]*model.ScheduleAssignment
	idCounter   int
}

func newMockAssignmentRepo() *mockAssignmentRepo {
	return &mockAssignmentRepo{assignments: make(map[string]*model.ScheduleAssignment)}
}

func (m *mockAssignmentRepo) Create(_ context.Context, assignment *model.ScheduleAssignment) error {
	if assignment.AssignmentID == "" {
		m.idCounter++
		assignment.AssignmentID = fmt.Sprintf("assign-%d", m.idCounter)
	}
	m.assignments[assignment.AssignmentID] = assignment
	return nil
}

func (m *mockAssignmentRepo) GetByID(_ context.Context, id string) (*model.ScheduleAssignment, error) {
	if a, ok := m.assignments[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAssignmentRepo) List(_ context.Context, contractID string) ([]model.ScheduleAssignment, error) {
	var result []model.ScheduleAssignment
	for _, a := range m.assignments {
		if contractID != "" && a.ContractID != contractID {
			continue
		}
		result = append(result, *a)
	}
	return result, nil
}

func (m *mockAssignmentRepo) Update(_ context.Context, assignment *model.ScheduleAssignment) error {
	m.assignments[assignment.AssignmentID] = assignment
	return nil
}

func (m *mockAssignmentRepo) Delete(_ context.Context, id string) error {
	delete(m.assignments, id)
	return nil
}

// ── Mock ShiftRepository ──

type mockShiftRepo struct {
	shifts    map[string]*model.Shift
	idCounter int
	failNext  bool // 下一次写入返回错误，用于回滚路径
}

func newMockShiftRepo() *mockShiftRepo {
	return &mockShiftRepo{shifts: make(map[string]*model.Shift)}
}

func sameTimePtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (m *mockShiftRepo) Create(_ context.Context, shift *model.Shift) error {
	if m.failNext {
		m.failNext = false
		return gorm.ErrInvalidData
	}
	if shift.ShiftID == "" {
		m.idCounter++
		shift.ShiftID = fmt.Sprintf("shift-%d", m.idCounter)
	}
	m.shifts[shift.ShiftID] = shift
	return nil
}

func (m *mockShiftRepo) FindOrCreate(_ context.Context, shift *model.Shift) (*model.Shift, bool, error) {
	if m.failNext {
		m.failNext = false
		return nil, false, gorm.ErrInvalidData
	}
	for _, s := range m.shifts {
		if s.UserID == shift.UserID && s.Date.Equal(shift.Date) &&
			sameTimePtr(s.StartTime, shift.StartTime) && sameTimePtr(s.EndTime, shift.EndTime) {
			return s, false, nil
		}
	}
	m.idCounter++
	shift.ShiftID = fmt.Sprintf("shift-%d", m.idCounter)
	m.shifts[shift.ShiftID] = shift
	return shift, true, nil
}

func (m *mockShiftRepo) GetByID(_ context.Context, id string) (*model.Shift, error) {
	if s, ok := m.shifts[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockShiftRepo) ListByUser(_ context.Context, userID string, from, to *time.Time) ([]model.Shift, error) {
	var result []model.Shift
	for _, s := range m.shifts {
		if s.UserID != userID {
			continue
		}
		if from != nil && s.Date.Before(*from) {
			continue
		}
		if to != nil && s.Date.After(*to) {
			continue
		}
		result = append(result, *s)
	}
	return result, nil
}

func (m *mockShiftRepo) List(_ context.Context, userID string, page, pageSize int) ([]model.Shift, int64, error) {
	var result []model.Shift
	for _, s := range m.shifts {
		if userID != "" && s.UserID != userID {
			continue
		}
		result = append(result, *s)
	}
	return result, int64(len(result)), nil
}

func (m *mockShiftRepo) Update(_ context.Context, shift *model.Shift) error {
	m.shifts[shift.ShiftID] = shift
	return nil
}

func (m *mockShiftRepo) Delete(_ context.Context, id string) error {
	delete(m.shifts, id)
	return nil
}

// ── Mock ClockEventRepository ──

type mockClockEventRepo struct {
	events    map[string]*model.ClockEvent
	idCounter int
}

func newMockClockEventRepo() *mockClockEventRepo {
	return &mockClockEventRepo{events: make(map[string]*model.ClockEvent)}
}

func (m *mockClockEventRepo) Create(_ context.Context, event *model.ClockEvent) error {
	if event.ClockEventID == "" {
		m.idCounter++
		event.ClockEventID = fmt.Sprintf("evt-%d", m.idCounter)
	}
	m.events[event.ClockEventID] = event
	return nil
}

func (m *mockClockEventRepo) GetByID(_ context.Context, id string) (*model.ClockEvent, error) {
	if e, ok := m.events[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockClockEventRepo) ExistsByShiftAndType(_ context.Context, shiftID, eventType string) (bool, error) {
	for _, e := range m.events {
		if e.ShiftID != nil && *e.ShiftID == shiftID && e.EventType == eventType {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockClockEventRepo) GetByShiftAndType(_ context.Context, shiftID, eventType string) (*model.ClockEvent, error) {
	for _, e := range m.events {
		if e.ShiftID != nil && *e.ShiftID == shiftID && e.EventType == eventType {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockClockEventRepo) ListByUser(_ context.Context, userID string, page, pageSize int) ([]model.ClockEvent, int64, error) {
	var result []model.ClockEvent
	for _, e := range m.events {
		if e.UserID == userID {
			result = append(result, *e)
		}
	}
	return result, int64(len(result)), nil
}

func (m *mockClockEventRepo) UpdateStatus(_ context.Context, event *model.ClockEvent) error {
	stored, ok := m.events[event.ClockEventID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Status = event.Status
	stored.Note = event.Note
	return nil
}

// ── Mock ValidationCodeRepository ──

type mockValidationCodeRepo struct {
	codes     map[string]*model.ClockValidationCode
	idCounter int
}

func newMockValidationCodeRepo() *mockValidationCodeRepo {
	return &mockValidationCodeRepo{codes: make(map[string]*model.ClockValidationCode)}
}

func (m *mockValidationCodeRepo) Create(_ context.Context, code *model.ClockValidationCode) error {
	if code.ValidationCodeID == "" {
		m.idCounter++
		code.ValidationCodeID = fmt.Sprintf("code-%d", m.idCounter)
	}
	m.codes[code.ValidationCodeID] = code
	return nil
}

func (m *mockValidationCodeRepo) GetByID(_ context.Context, id string) (*model.ClockValidationCode, error) {
	if c, ok := m.codes[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockValidationCodeRepo) GetLatestPendingByUserForUpdate(_ context.Context, userID string) (*model.ClockValidationCode, error) {
	var latest *model.ClockValidationCode
	for _, c := range m.codes {
		if c.Status != model.ValidationCodeStatusPending {
			continue
		}
		if c.ClockEvent == nil || c.ClockEvent.UserID != userID {
			continue
		}
		if latest == nil || c.CreatedAt.After(latest.CreatedAt) {
			latest = c
		}
	}
	if latest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return latest, nil
}

func (m *mockValidationCodeRepo) UpdateStatus(_ context.Context, code *model.ClockValidationCode) error {
	stored, ok := m.codes[code.ValidationCodeID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Status = code.Status
	return nil
}

// ── Mock PermissionRepository ──

type mockPermissionRepo struct {
	permissions map[string]*model.Permission
	idCounter   int
}

func newMockPermissionRepo() *mockPermissionRepo {
	return &mockPermissionRepo{permissions: make(map[string]*model.Permission)}
}

func (m *mockPermissionRepo) Create(_ context.Context, perm *model.Permission) error {
	if perm.PermissionID == "" {
		m.idCounter++
		perm.PermissionID = fmt.Sprintf("perm-%d", m.idCounter)
	}
	m.permissions[perm.PermissionID] = perm
	return nil
}

func (m *mockPermissionRepo) GetByID(_ context.Context, id string) (*model.Permission, error) {
	if p, ok := m.permissions[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPermissionRepo) ListByGrantedTo(_ context.Context, userID string) ([]model.Permission, error) {
	var result []model.Permission
	for _, p := range m.permissions {
		if p.GrantedToUserID == userID {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (m *mockPermissionRepo) Update(_ context.Context, perm *model.Permission) error {
	m.permissions[perm.PermissionID] = perm
	return nil
}

func (m *mockPermissionRepo) Delete(_ context.Context, id string) error {
	delete(m.permissions, id)
	return nil
}

// ── Mock PasswordResetRepository ──

type mockPasswordResetRepo struct {
	codes     map[string]*model.PasswordResetCode
	idCounter int
}

func newMockPasswordResetRepo() *mockPasswordResetRepo {
	return &mockPasswordResetRepo{codes: make(map[string]*model.PasswordResetCode)}
}

func (m *mockPasswordResetRepo) Create(_ context.Context, code *model.PasswordResetCode) error {
	if code.ResetCodeID == "" {
		m.idCounter++
		code.ResetCodeID = fmt.Sprintf("reset-%d", m.idCounter)
	}
	m.codes[code.ResetCodeID] = code
	return nil
}

func (m *mockPasswordResetRepo) InvalidateActiveByUser(_ context.Context, userID string) error {
	for _, c := range m.codes {
		if c.UserID == userID && !c.IsUsed {
			c.IsUsed = true
		}
	}
	return nil
}

func (m *mockPasswordResetRepo) GetActiveByUserAndCode(_ context.Context, userID, code string) (*model.PasswordResetCode, error) {
	for _, c := range m.codes {
		if c.UserID == userID && c.Code == code && !c.IsUsed {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPasswordResetRepo) MarkUsed(_ context.Context, code *model.PasswordResetCode) error {
	if c, ok := m.codes[code.ResetCodeID]; ok {
		c.IsUsed = true
	}
	return nil
}
