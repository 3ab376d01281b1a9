package get_schedule_grid

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/v-lavrov/RS-SchedulerService/internal/domain"
	employeeRepo "github.com/v-lavrov/RS-SchedulerService/internal/infra/storage/employee"
	scheduleRepo "github.com/v-lavrov/RS-SchedulerService/internal/infra/storage/schedule"
	"github.com/v-lavrov/RS-SchedulerService/internal/schedule"
	"github.com/v-lavrov/RS-SchedulerService/pkg/types"
)

type stubEmployeeRepo struct {
	employees map[string]*domain.Employee
	order     []string
}

func (s *stubEmployeeRepo) List(ctx context.Context, activeOnly bool) ([]*domain.Employee, error) {
	result := make([]*domain.Employee, 0, len(s.order))
	for _, id := range s.order {
		emp := s.employees[id]
		if activeOnly && !emp.IsActive {
			continue
		}
		result = append(result, emp)
	}
	return result, nil
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	emp, ok := s.employees[id]
	if !ok {
		return nil, employeeRepo.ErrEmployeeNotFound
	}
	return emp, nil
}

type stubScheduleRepo struct {
	templates map[string]*domain.ScheduleTemplate
}

func (s *stubScheduleRepo) GetByEmployee(ctx context.Context, employeeID string) (*domain.ScheduleTemplate, error) {
	tpl, ok := s.templates[employeeID]
	if !ok {
		return nil, scheduleRepo.ErrTemplateNotFound
	}
	return tpl, nil
}

type stubBookingRepo struct {
	bookings []*domain.Booking
}

func (s *stubBookingRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, onlyActive bool) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range s.bookings {
		if b.EmployeeID == employeeID && b.ScheduledDate.Equal(date) && (!onlyActive || b.IsActive()) {
			result = append(result, b)
		}
	}
	return result, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// 2026-04-15 - среда
var wednesday = time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)

func weeklyTemplate(employeeID string) *domain.ScheduleTemplate {
	return &domain.ScheduleTemplate{
		ID:         "sched_" + employeeID,
		EmployeeID: employeeID,
		Type:       domain.ScheduleTemplateTypeWeekly,
		IsActive:   true,
		Data: domain.TemplateData{
			QuickSchedule: domain.QuickSchedule{
				MondayToFriday: domain.DayRule{
					Working: true,
					Start:   "09:00",
					End:     "18:00",
					Break:   &domain.BreakRange{Start: "12:00", End: "13:00"},
				},
				Sunday: domain.DayRule{Working: false},
			},
		},
	}
}

func newFixture() *UseCase {
	employees := &stubEmployeeRepo{
		employees: map[string]*domain.Employee{
			"emp_001": {ID: "emp_001", FirstName: "Сергей", LastName: "Иванов", IsActive: true},
			"emp_002": {ID: "emp_002", FirstName: "Ольга", LastName: "Смирнова", IsActive: true},
			"emp_003": {ID: "emp_003", FirstName: "Борис", LastName: "Кузнецов", IsActive: false},
		},
		order: []string{"emp_001", "emp_002", "emp_003"},
	}

	schedules := &stubScheduleRepo{templates: map[string]*domain.ScheduleTemplate{
		"emp_001": weeklyTemplate("emp_001"),
		// У emp_002 шаблона нет: все ячейки not_working
	}}

	bookings := &stubBookingRepo{bookings: []*domain.Booking{
		{
			ID:                "book_001",
			EmployeeID:        "emp_001",
			ScheduledDate:     wednesday,
			ScheduledTime:     "10:00",
			EstimatedDuration: 60,
			Status:            domain.StatusScheduled,
		},
		{
			ID:                "book_002",
			EmployeeID:        "emp_001",
			ScheduledDate:     wednesday,
			ScheduledTime:     "14:00",
			EstimatedDuration: 120,
			Status:            domain.StatusConfirmed,
		},
	}}

	return NewUseCase(employees, schedules, bookings, schedule.DefaultGridConfig(), nopLogger{})
}

func cellAt(t *testing.T, resp *Response, row int, label types.TimeString) domain.GridCell {
	t.Helper()
	for i, l := range resp.Labels {
		if l == label {
			return resp.Rows[row].Cells[i]
		}
	}
	t.Fatalf("label %s is not on the grid", label)
	return domain.GridCell{}
}

func TestExecute_FullDayGrid(t *testing.T) {
	uc := newFixture()

	resp, err := uc.Execute(context.Background(), &Request{Date: wednesday})
	require.NoError(t, err)

	// Сетка по умолчанию: 36 меток с 06:00 до 23:30
	require.Len(t, resp.Labels, 36)
	assert.Equal(t, "06:00", resp.Labels[0].String())
	assert.Equal(t, "23:30", resp.Labels[35].String())

	// Без фильтра в сетке только активные сотрудники
	require.Len(t, resp.Rows, 2)
	assert.Equal(t, "emp_001", resp.Rows[0].EmployeeID)
	assert.Equal(t, "Сергей Иванов", resp.Rows[0].EmployeeName)
	assert.True(t, resp.Rows[0].Working)

	for _, row := range resp.Rows {
		assert.Len(t, row.Cells, 36)
	}

	tests := []struct {
		label     types.TimeString
		state     domain.SlotState
		bookingID string
	}{
		{label: "06:00", state: domain.SlotNotWorking},
		{label: "08:30", state: domain.SlotNotWorking},
		{label: "09:00", state: domain.SlotAvailable},
		{label: "10:00", state: domain.SlotBooked, bookingID: "book_001"},
		{label: "10:30", state: domain.SlotBooked, bookingID: "book_001"},
		{label: "11:00", state: domain.SlotAvailable},
		{label: "12:00", state: domain.SlotBreak},
		{label: "12:30", state: domain.SlotBreak},
		{label: "13:00", state: domain.SlotAvailable},
		{label: "14:00", state: domain.SlotBooked, bookingID: "book_002"},
		{label: "15:30", state: domain.SlotBooked, bookingID: "book_002"},
		{label: "16:00", state: domain.SlotAvailable},
		{label: "18:00", state: domain.SlotNotWorking},
		{label: "23:30", state: domain.SlotNotWorking},
	}

	for _, tt := range tests {
		t.Run(string(tt.label), func(t *testing.T) {
			cell := cellAt(t, resp, 0, tt.label)
			assert.Equal(t, tt.state, cell.State)
			if tt.bookingID != "" {
				require.NotNil(t, cell.BookingID)
				assert.Equal(t, tt.bookingID, *cell.BookingID)
			}
		})
	}
}

func TestExecute_EmployeeWithoutTemplate(t *testing.T) {
	uc := newFixture()

	resp, err := uc.Execute(context.Background(), &Request{Date: wednesday})
	require.NoError(t, err)

	require.Len(t, resp.Rows, 2)
	row := resp.Rows[1]
	assert.Equal(t, "emp_002", row.EmployeeID)
	assert.False(t, row.Working)
	for _, cell := range row.Cells {
		assert.Equal(t, domain.SlotNotWorking, cell.State)
	}
}

func TestExecute_ExplicitEmployeeFilter(t *testing.T) {
	uc := newFixture()

	t.Run("explicit list keeps order and includes inactive", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), &Request{
			Date:        wednesday,
			EmployeeIDs: []string{"emp_003", "emp_001"},
		})
		require.NoError(t, err)
		require.Len(t, resp.Rows, 2)
		assert.Equal(t, "emp_003", resp.Rows[0].EmployeeID)
		assert.Equal(t, "emp_001", resp.Rows[1].EmployeeID)
	})

	t.Run("unknown employee", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			Date:        wednesday,
			EmployeeIDs: []string{"emp_404"},
		})
		assert.ErrorIs(t, err, ErrEmployeeNotFound)
	})
}

func TestExecute_ZeroDate(t *testing.T) {
	uc := newFixture()

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
