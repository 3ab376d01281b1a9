package dragdrop

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/v-lavrov/RS-SchedulerService/internal/domain"
	bookingRepo "github.com/v-lavrov/RS-SchedulerService/internal/infra/storage/booking"
	scheduleRepo "github.com/v-lavrov/RS-SchedulerService/internal/infra/storage/schedule"
	"github.com/v-lavrov/RS-SchedulerService/internal/usecase/reassign_booking"
)

type stubBookingRepo struct {
	bookings map[string]*domain.Booking
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

type stubReassign struct {
	resp  *reassign_booking.Response
	err   error
	calls int
	last  *reassign_booking.Request
}

func (s *stubReassign) Execute(ctx context.Context, req *reassign_booking.Request) (*reassign_booking.Response, error) {
	s.calls++
	s.last = req
	return s.resp, s.err
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

func newFixture(reassign *stubReassign) *Coordinator {
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
		"book_004": {
			ID:         "book_004",
			EmployeeID: "emp_001",
			Status:     domain.StatusCompleted,
		},
	}}

	schedules := &stubScheduleRepo{templates: map[string]*domain.ScheduleTemplate{
		"emp_001": weeklyTemplate("emp_001"),
		"emp_002": weeklyTemplate("emp_002"),
	}}

	return NewCoordinator(bookings, schedules, reassign, nopLogger{})
}

func TestBegin(t *testing.T) {
	c := newFixture(&stubReassign{})
	ctx := context.Background()

	session, err := c.Begin(ctx, "book_002")
	require.NoError(t, err)
	assert.Equal(t, "book_002", session.BookingID)
	assert.Equal(t, "emp_001", session.SourceEmployee)
	assert.Equal(t, "10:00", session.SourceTime.String())
	assert.Equal(t, 60, session.Duration)
	assert.Equal(t, StateDragging, session.State)

	t.Run("only one drag at a time", func(t *testing.T) {
		_, err := c.Begin(ctx, "book_003")
		assert.ErrorIs(t, err, ErrDragInProgress)
	})
}

func TestBegin_UnknownBooking(t *testing.T) {
	c := newFixture(&stubReassign{})

	_, err := c.Begin(context.Background(), "book_404")
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.Nil(t, c.Active())
}

func TestBegin_CompletedBookingNotDraggable(t *testing.T) {
	c := newFixture(&stubReassign{})

	_, err := c.Begin(context.Background(), "book_004")
	assert.ErrorIs(t, err, ErrBookingNotDraggable)
}

func TestHover(t *testing.T) {
	c := newFixture(&stubReassign{})
	ctx := context.Background()

	_, err := c.Begin(ctx, "book_002")
	require.NoError(t, err)

	tests := []struct {
		name    string
		target  Target
		allowed bool
		ownCell bool
	}{
		{
			name:    "free cell of another employee",
			target:  Target{EmployeeID: "emp_002", Date: wednesday, Time: "09:00"},
			allowed: true,
		},
		{
			name:    "own source cell",
			target:  Target{EmployeeID: "emp_001", Date: wednesday, Time: "10:00"},
			allowed: true,
			ownCell: true,
		},
		{
			name:   "occupied cell",
			target: Target{EmployeeID: "emp_002", Date: wednesday, Time: "14:30"},
		},
		{
			name:   "break cell",
			target: Target{EmployeeID: "emp_002", Date: wednesday, Time: "12:00"},
		},
		{
			name:   "outside working hours",
			target: Target{EmployeeID: "emp_002", Date: wednesday, Time: "08:00"},
		},
		{
			name: "day off",
			// 2026-04-19 - воскресенье
			target: Target{EmployeeID: "emp_002", Date: time.Date(2026, 4, 19, 0, 0, 0, 0, time.UTC), Time: "10:00"},
		},
		{
			name:   "employee without template",
			target: Target{EmployeeID: "emp_404", Date: wednesday, Time: "10:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := c.Hover(ctx, tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.allowed, result.Allowed)
			assert.Equal(t, tt.ownCell, result.OwnCell)
			if !tt.allowed {
				assert.NotEmpty(t, result.Reason)
			}
		})
	}

	// Hover ничего не переносит: сессия остается активной
	active := c.Active()
	require.NotNil(t, active)
	assert.Equal(t, "book_002", active.BookingID)
}

func TestHover_WithoutSession(t *testing.T) {
	c := newFixture(&stubReassign{})

	_, err := c.Hover(context.Background(), Target{EmployeeID: "emp_002", Date: wednesday, Time: "09:00"})
	assert.ErrorIs(t, err, ErrNoActiveDrag)
}

func TestDrop(t *testing.T) {
	reassign := &stubReassign{resp: &reassign_booking.Response{
		ID:            "book_002",
		EmployeeID:    "emp_002",
		ScheduledDate: wednesday,
		ScheduledTime: "09:00",
		Moved:         true,
	}}
	c := newFixture(reassign)
	ctx := context.Background()

	_, err := c.Begin(ctx, "book_002")
	require.NoError(t, err)

	result, err := c.Drop(ctx, Target{EmployeeID: "emp_002", Date: wednesday, Time: "09:00"})
	require.NoError(t, err)

	assert.True(t, result.Moved)
	assert.Equal(t, "emp_002", result.EmployeeID)
	assert.Equal(t, 1, reassign.calls)
	require.NotNil(t, reassign.last)
	assert.Equal(t, "book_002", reassign.last.BookingID)

	// Перетаскивание завершено
	assert.Nil(t, c.Active())
}

func TestDrop_RejectionEndsDrag(t *testing.T) {
	reassign := &stubReassign{err: reassign_booking.ErrSlotOccupied}
	c := newFixture(reassign)
	ctx := context.Background()

	_, err := c.Begin(ctx, "book_002")
	require.NoError(t, err)

	_, err = c.Drop(ctx, Target{EmployeeID: "emp_002", Date: wednesday, Time: "14:30"})
	assert.ErrorIs(t, err, reassign_booking.ErrSlotOccupied)

	// Сессия закрыта даже при отказе: заявку можно взять заново
	assert.Nil(t, c.Active())

	_, err = c.Begin(ctx, "book_002")
	assert.NoError(t, err)
}

func TestDrop_WithoutSession(t *testing.T) {
	c := newFixture(&stubReassign{})

	_, err := c.Drop(context.Background(), Target{EmployeeID: "emp_002", Date: wednesday, Time: "09:00"})
	assert.ErrorIs(t, err, ErrNoActiveDrag)
}

func TestCancel(t *testing.T) {
	c := newFixture(&stubReassign{})
	ctx := context.Background()

	assert.ErrorIs(t, c.Cancel(), ErrNoActiveDrag)

	_, err := c.Begin(ctx, "book_002")
	require.NoError(t, err)

	require.NoError(t, c.Cancel())
	assert.Nil(t, c.Active())
}
