package reassign_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/v-lavrov/RS-SchedulerService/internal/domain"
	bookingRepo "github.com/v-lavrov/RS-SchedulerService/internal/infra/storage/booking"
	employeeRepo "github.com/v-lavrov/RS-SchedulerService/internal/infra/storage/employee"
	scheduleRepo "github.com/v-lavrov/RS-SchedulerService/internal/infra/storage/schedule"
)

type stubEmployeeRepo struct {
	employees map[string]*domain.Employee
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
	bookings  map[string]*domain.Booking
	updateErr error
	updated   *domain.Booking
	prevEmp   string
}

func (s *stubBookingRepo) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	b, ok := s.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
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

func (s *stubBookingRepo) Update(ctx context.Context, booking *domain.Booking, prevEmployeeID string) (*domain.Booking, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	s.updated = booking
	s.prevEmp = prevEmployeeID
	return booking, nil
}

type passthroughTx struct{}

func (passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

// fixture: book_002 у emp_001 на 10:00, book_003 у emp_002 на 14:00 (2 часа)
func newFixture() (*UseCase, *stubBookingRepo) {
	employees := &stubEmployeeRepo{employees: map[string]*domain.Employee{
		"emp_001": {ID: "emp_001", FirstName: "Сергей", IsActive: true},
		"emp_002": {ID: "emp_002", FirstName: "Ольга", IsActive: true},
		"emp_003": {ID: "emp_003", FirstName: "Борис", IsActive: false},
	}}

	schedules := &stubScheduleRepo{templates: map[string]*domain.ScheduleTemplate{
		"emp_001": weeklyTemplate("emp_001"),
		"emp_002": weeklyTemplate("emp_002"),
	}}

	bookings := &stubBookingRepo{bookings: map[string]*domain.Booking{
		"book_002": {
			ID:                "book_002",
			EmployeeID:        "emp_001",
			ScheduledDate:     wednesday,
			ScheduledTime:     "10:00",
			EstimatedDuration: 60,
			Status:            domain.StatusScheduled,
		},
		"book_003": {
			ID:                "book_003",
			EmployeeID:        "emp_002",
			ScheduledDate:     wednesday,
			ScheduledTime:     "14:00",
			EstimatedDuration: 120,
			Status:            domain.StatusConfirmed,
		},
	}}

	return NewUseCase(employees, schedules, bookings, passthroughTx{}, nopLogger{}), bookings
}

func TestExecute_MoveToAnotherEmployee(t *testing.T) {
	uc, repo := newFixture()

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID:        "book_002",
		TargetEmployeeID: "emp_002",
		TargetDate:       wednesday,
		TargetTime:       "09:00",
	})
	require.NoError(t, err)

	assert.True(t, resp.Moved)
	assert.Equal(t, "emp_002", resp.EmployeeID)
	assert.Equal(t, "emp_001", resp.PrevEmployeeID)
	assert.Equal(t, "09:00", resp.ScheduledTime.String())

	require.NotNil(t, repo.updated)
	assert.Equal(t, "emp_001", repo.prevEmp)
	assert.Equal(t, "emp_002", repo.updated.EmployeeID)
}

func TestExecute_OwnCellIsNoop(t *testing.T) {
	uc, repo := newFixture()

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID:        "book_002",
		TargetEmployeeID: "emp_001",
		TargetDate:       wednesday,
		TargetTime:       "10:00",
	})
	require.NoError(t, err)

	assert.False(t, resp.Moved)
	assert.Equal(t, "emp_001", resp.EmployeeID)
	assert.Nil(t, repo.updated)
}

func TestExecute_TargetSlotConflict(t *testing.T) {
	uc, _ := newFixture()

	// 14:30-15:30 пересекается с book_003 (14:00-16:00)
	_, err := uc.Execute(context.Background(), &Request{
		BookingID:        "book_002",
		TargetEmployeeID: "emp_002",
		TargetDate:       wednesday,
		TargetTime:       "14:30",
	})
	assert.ErrorIs(t, err, ErrSlotOccupied)
}

func TestExecute_MoveWithinOwnDayExcludesSelf(t *testing.T) {
	uc, _ := newFixture()

	// Сдвиг своей же заявки на полчаса: пересечение с собственным
	// прежним окном не считается конфликтом
	resp, err := uc.Execute(context.Background(), &Request{
		BookingID:        "book_002",
		TargetEmployeeID: "emp_001",
		TargetDate:       wednesday,
		TargetTime:       "10:30",
	})
	require.NoError(t, err)
	assert.True(t, resp.Moved)
	assert.Equal(t, "10:30", resp.ScheduledTime.String())
}

func TestExecute_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{
			name: "booking not found",
			req: Request{
				BookingID:        "book_404",
				TargetEmployeeID: "emp_002",
				TargetDate:       wednesday,
				TargetTime:       "09:00",
			},
			wantErr: ErrBookingNotFound,
		},
		{
			name: "target employee not found",
			req: Request{
				BookingID:        "book_002",
				TargetEmployeeID: "emp_404",
				TargetDate:       wednesday,
				TargetTime:       "09:00",
			},
			wantErr: ErrEmployeeNotFound,
		},
		{
			name: "target employee inactive",
			req: Request{
				BookingID:        "book_002",
				TargetEmployeeID: "emp_003",
				TargetDate:       wednesday,
				TargetTime:       "09:00",
			},
			wantErr: ErrEmployeeInactive,
		},
		{
			name: "target day off",
			req: Request{
				BookingID:        "book_002",
				TargetEmployeeID: "emp_002",
				// 2026-04-19 - воскресенье
				TargetDate: time.Date(2026, 4, 19, 0, 0, 0, 0, time.UTC),
				TargetTime: "10:00",
			},
			wantErr: ErrEmployeeNotWorking,
		},
		{
			name: "target time outside window",
			req: Request{
				BookingID:        "book_002",
				TargetEmployeeID: "emp_002",
				TargetDate:       wednesday,
				TargetTime:       "08:00",
			},
			wantErr: ErrEmployeeNotWorking,
		},
		{
			name: "target time on break",
			req: Request{
				BookingID:        "book_002",
				TargetEmployeeID: "emp_002",
				TargetDate:       wednesday,
				TargetTime:       "12:00",
			},
			wantErr: ErrEmployeeOnBreak,
		},
		{
			name: "empty booking id",
			req: Request{
				TargetEmployeeID: "emp_002",
				TargetDate:       wednesday,
				TargetTime:       "09:00",
			},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newFixture()

			_, err := uc.Execute(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_NotReassignableStatus(t *testing.T) {
	uc, repo := newFixture()
	repo.bookings["book_002"].Status = domain.StatusCompleted

	_, err := uc.Execute(context.Background(), &Request{
		BookingID:        "book_002",
		TargetEmployeeID: "emp_002",
		TargetDate:       wednesday,
		TargetTime:       "09:00",
	})
	assert.ErrorIs(t, err, ErrBookingNotReassignable)
}

func TestExecute_UpdateFailureRestoresBooking(t *testing.T) {
	uc, repo := newFixture()
	repo.updateErr = errors.New("storage unavailable")

	_, err := uc.Execute(context.Background(), &Request{
		BookingID:        "book_002",
		TargetEmployeeID: "emp_002",
		TargetDate:       wednesday,
		TargetTime:       "09:00",
	})
	require.ErrorIs(t, err, ErrInternal)

	// Заявка осталась в исходном размещении
	b := repo.bookings["book_002"]
	assert.Equal(t, "emp_001", b.EmployeeID)
	assert.Equal(t, "10:00", b.ScheduledTime.String())
	assert.True(t, b.ScheduledDate.Equal(wednesday))
}
