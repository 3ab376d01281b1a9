package create_booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/v-lavrov/RS-SchedulerService/internal/domain"
	employeeRepo "github.com/v-lavrov/RS-SchedulerService/internal/infra/storage/employee"
	"github.com/v-lavrov/RS-SchedulerService/pkg/ptr"
)

type stubEmployeeRepo struct {
	employee *domain.Employee
	err      error
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	return s.employee, s.err
}

type stubScheduleRepo struct {
	template *domain.ScheduleTemplate
	err      error
}

func (s *stubScheduleRepo) GetByEmployee(ctx context.Context, employeeID string) (*domain.ScheduleTemplate, error) {
	return s.template, s.err
}

type stubBookingRepo struct {
	existing []*domain.Booking
	created  *domain.Booking
}

func (s *stubBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	s.created = booking
	return booking, nil
}

func (s *stubBookingRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, onlyActive bool) ([]*domain.Booking, error) {
	return s.existing, nil
}

type stubCounterRepo struct {
	next int
}

func (s *stubCounterRepo) MintID(ctx context.Context, kind, prefix string) (string, error) {
	s.next++
	return fmt.Sprintf("%s_%03d", prefix, s.next), nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type passthroughTx struct{}

func (passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func activeEmployee() *domain.Employee {
	return &domain.Employee{ID: "emp_001", FirstName: "Сергей", LastName: "Иванов", IsActive: true}
}

func weeklyTemplate() *domain.ScheduleTemplate {
	return &domain.ScheduleTemplate{
		ID:         "sched_001",
		EmployeeID: "emp_001",
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
				Saturday: domain.DayRule{Working: true, Start: "10:00", End: "15:00"},
				Sunday:   domain.DayRule{Working: false},
			},
		},
	}
}

// 2026-04-15 - среда
var wednesday = time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)

func validRequest() *Request {
	return &Request{
		EmployeeID:        "emp_001",
		ClientName:        "Петров П.П.",
		ClientPhone:       "+7-900-000-00-00",
		ServiceType:       "repair",
		DeviceType:        "washing_machine",
		Date:              wednesday,
		ScheduledTime:     "10:00",
		EstimatedDuration: 60,
	}
}

func newTestUseCase(emp *stubEmployeeRepo, sched *stubScheduleRepo, bookings *stubBookingRepo) (*UseCase, *stubCounterRepo) {
	counter := &stubCounterRepo{}
	uc := NewUseCase(emp, sched, bookings, counter, passthroughTx{}, nopLogger{}).
		WithTimeProvider(&fixedTimeProvider{now: wednesday.AddDate(0, 0, -1)})
	return uc, counter
}

func TestExecute_Success(t *testing.T) {
	bookings := &stubBookingRepo{}
	uc, _ := newTestUseCase(
		&stubEmployeeRepo{employee: activeEmployee()},
		&stubScheduleRepo{template: weeklyTemplate()},
		bookings,
	)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "book_001", resp.ID)
	assert.Equal(t, "emp_001", resp.EmployeeID)
	assert.Equal(t, string(domain.StatusScheduled), resp.Status)
	assert.Equal(t, "10:00", resp.ScheduledTime.String())

	require.NotNil(t, bookings.created)
	assert.Equal(t, "book_001", bookings.created.ID)
}

func TestExecute_SequentialIDs(t *testing.T) {
	uc, counter := newTestUseCase(
		&stubEmployeeRepo{employee: activeEmployee()},
		&stubScheduleRepo{template: weeklyTemplate()},
		&stubBookingRepo{},
	)

	first, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	second := validRequest()
	second.ScheduledTime = "15:00"
	resp, err := uc.Execute(context.Background(), second)
	require.NoError(t, err)

	assert.Equal(t, "book_001", first.ID)
	assert.Equal(t, "book_002", resp.ID)
	assert.Equal(t, 2, counter.next)
}

func TestExecute_Validation(t *testing.T) {
	uc, _ := newTestUseCase(
		&stubEmployeeRepo{employee: activeEmployee()},
		&stubScheduleRepo{template: weeklyTemplate()},
		&stubBookingRepo{},
	)

	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{name: "empty employee id", mutate: func(r *Request) { r.EmployeeID = "" }},
		{name: "empty client name", mutate: func(r *Request) { r.ClientName = "" }},
		{name: "zero date", mutate: func(r *Request) { r.Date = time.Time{} }},
		{name: "duration below minimum", mutate: func(r *Request) { r.EstimatedDuration = 10 }},
		{name: "duration above maximum", mutate: func(r *Request) { r.EstimatedDuration = 600 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_OffGridDurationAccepted(t *testing.T) {
	uc, _ := newTestUseCase(
		&stubEmployeeRepo{employee: activeEmployee()},
		&stubScheduleRepo{template: weeklyTemplate()},
		&stubBookingRepo{},
	)

	// Некратная шагу сетки длительность допустима
	req := validRequest()
	req.EstimatedDuration = 50

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 50, resp.EstimatedDuration)
}

func TestExecute_DateInPast(t *testing.T) {
	uc, _ := newTestUseCase(
		&stubEmployeeRepo{employee: activeEmployee()},
		&stubScheduleRepo{template: weeklyTemplate()},
		&stubBookingRepo{},
	)
	uc.WithTimeProvider(&fixedTimeProvider{now: wednesday.AddDate(0, 0, 3)})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDateInPast)
}

func TestExecute_TodayIsNotPast(t *testing.T) {
	uc, _ := newTestUseCase(
		&stubEmployeeRepo{employee: activeEmployee()},
		&stubScheduleRepo{template: weeklyTemplate()},
		&stubBookingRepo{},
	)
	// Сравниваются только даты: визит сегодня допустим
	uc.WithTimeProvider(&fixedTimeProvider{now: wednesday.Add(13 * time.Hour)})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_OptionalAddressFields(t *testing.T) {
	bookings := &stubBookingRepo{}
	uc, _ := newTestUseCase(
		&stubEmployeeRepo{employee: activeEmployee()},
		&stubScheduleRepo{template: weeklyTemplate()},
		bookings,
	)

	req := validRequest()
	req.AddressStreet = ptr.Ptr("Ленина")
	req.AddressHouse = ptr.Ptr("12")
	req.AddressApartment = ptr.Ptr("34")

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, resp.AddressStreet)
	assert.Equal(t, "Ленина", *resp.AddressStreet)
	require.NotNil(t, resp.AddressHouse)
	assert.Equal(t, "12", *resp.AddressHouse)

	require.NotNil(t, bookings.created)
	require.NotNil(t, bookings.created.AddressStreet)
	assert.Equal(t, "Ленина", *bookings.created.AddressStreet)

	t.Run("address is optional", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
		assert.Nil(t, resp.AddressStreet)
		assert.Nil(t, resp.AddressHouse)
	})
}

func TestExecute_EmployeeNotFound(t *testing.T) {
	uc, _ := newTestUseCase(
		&stubEmployeeRepo{err: employeeRepo.ErrEmployeeNotFound},
		&stubScheduleRepo{template: weeklyTemplate()},
		&stubBookingRepo{},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestExecute_EmployeeInactive(t *testing.T) {
	inactive := activeEmployee()
	inactive.IsActive = false

	uc, _ := newTestUseCase(
		&stubEmployeeRepo{employee: inactive},
		&stubScheduleRepo{template: weeklyTemplate()},
		&stubBookingRepo{},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrEmployeeInactive)
}

func TestExecute_NotWorking(t *testing.T) {
	uc, _ := newTestUseCase(
		&stubEmployeeRepo{employee: activeEmployee()},
		&stubScheduleRepo{template: weeklyTemplate()},
		&stubBookingRepo{},
	)

	t.Run("day off", func(t *testing.T) {
		req := validRequest()
		// 2026-04-19 - воскресенье
		req.Date = time.Date(2026, 4, 19, 0, 0, 0, 0, time.UTC)

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrEmployeeNotWorking)
	})

	t.Run("outside working hours", func(t *testing.T) {
		req := validRequest()
		req.ScheduledTime = "08:00"

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrEmployeeNotWorking)
	})
}

func TestExecute_OnBreak(t *testing.T) {
	uc, _ := newTestUseCase(
		&stubEmployeeRepo{employee: activeEmployee()},
		&stubScheduleRepo{template: weeklyTemplate()},
		&stubBookingRepo{},
	)

	req := validRequest()
	req.ScheduledTime = "12:30"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrEmployeeOnBreak)
}

func TestExecute_SlotOccupied(t *testing.T) {
	existing := &domain.Booking{
		ID:                "book_002",
		EmployeeID:        "emp_001",
		ScheduledDate:     wednesday,
		ScheduledTime:     "10:00",
		EstimatedDuration: 60,
		Status:            domain.StatusScheduled,
	}

	uc, _ := newTestUseCase(
		&stubEmployeeRepo{employee: activeEmployee()},
		&stubScheduleRepo{template: weeklyTemplate()},
		&stubBookingRepo{existing: []*domain.Booking{existing}},
	)

	t.Run("same start time", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotOccupied)
	})

	t.Run("overlap without shared start", func(t *testing.T) {
		req := validRequest()
		req.ScheduledTime = "09:30"

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrSlotOccupied)
	})

	t.Run("adjacent slot is free", func(t *testing.T) {
		req := validRequest()
		req.ScheduledTime = "11:00"

		_, err := uc.Execute(context.Background(), req)
		assert.NoError(t, err)
	})
}
