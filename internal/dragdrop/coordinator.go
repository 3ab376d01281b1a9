package dragdrop

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	bookingRepo "github.com/v-lavrov/RS-SchedulerService/internal/infra/storage/booking"
	scheduleRepo "github.com/v-lavrov/RS-SchedulerService/internal/infra/storage/schedule"
	"github.com/v-lavrov/RS-SchedulerService/internal/schedule"
	"github.com/v-lavrov/RS-SchedulerService/internal/usecase/reassign_booking"
)

// Coordinator управляет перетаскиванием заявок по сетке.
// Одновременно допускается ровно одно активное перетаскивание: мьютекс
// удерживается на время всей операции, так что Hover и Drop не могут
// наблюдать ячейки в полуобновленном состоянии.
type Coordinator struct {
	mu      sync.Mutex
	session *Session

	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	reassign     ReassignUseCase
	logger       Logger
}

// NewCoordinator создает новый координатор перетаскивания
func NewCoordinator(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	reassign ReassignUseCase,
	logger Logger,
) *Coordinator {
	return &Coordinator{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		reassign:     reassign,
		logger:       logger,
	}
}

// Begin начинает перетаскивание заявки
func (c *Coordinator) Begin(ctx context.Context, bookingID string) (*Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session != nil {
		c.logger.Warn("DragDrop: begin rejected, booking id=%s is already being dragged",
			c.session.BookingID)
		return nil, ErrDragInProgress
	}

	booking, err := c.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			c.logger.Warn("DragDrop: booking id=%s not found", bookingID)
			return nil, ErrBookingNotFound
		}
		c.logger.Error("DragDrop: failed to get booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if !booking.CanBeReassigned() {
		c.logger.Warn("DragDrop: booking id=%s has status=%s, cannot be dragged",
			booking.ID, booking.Status)
		return nil, fmt.Errorf("%w: status=%s", ErrBookingNotDraggable, booking.Status)
	}

	c.session = &Session{
		BookingID:      booking.ID,
		SourceEmployee: booking.EmployeeID,
		SourceDate:     booking.ScheduledDate,
		SourceTime:     booking.ScheduledTime,
		Duration:       booking.EstimatedDuration,
		State:          StateDragging,
		StartedAt:      time.Now(),
	}

	c.logger.Info("DragDrop: started dragging booking id=%s from employee=%s", booking.ID, booking.EmployeeID)

	snapshot := *c.session
	return &snapshot, nil
}

// Hover проверяет целевую ячейку, не изменяя данных
func (c *Coordinator) Hover(ctx context.Context, target Target) (*HoverResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil {
		return nil, ErrNoActiveDrag
	}

	c.session.State = StateHovering

	// Своя же ячейка всегда допустима: отпускание в нее - no-op
	if target.EmployeeID == c.session.SourceEmployee &&
		sameDay(target.Date, c.session.SourceDate) &&
		target.Time == c.session.SourceTime {
		return &HoverResult{Allowed: true, OwnCell: true}, nil
	}

	tpl, err := c.scheduleRepo.GetByEmployee(ctx, target.EmployeeID)
	if err != nil && !errors.Is(err, scheduleRepo.ErrTemplateNotFound) {
		c.logger.Error("DragDrop: failed to get template for employee=%s: %v", target.EmployeeID, err)
		return nil, fmt.Errorf("%w: failed to get template: %v", ErrInternal, err)
	}

	window, working := schedule.ResolveWorkWindow(tpl, target.Date)
	if !working {
		return &HoverResult{Reason: "employee is not working on this date"}, nil
	}

	bookings, err := c.bookingRepo.GetByEmployeeAndDate(ctx, target.EmployeeID, target.Date, true)
	if err != nil {
		c.logger.Error("DragDrop: failed to get bookings for employee=%s: %v", target.EmployeeID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	if err := schedule.CheckPlacement(window, bookings, c.session.BookingID, target.Time, c.session.Duration); err != nil {
		return &HoverResult{Reason: hoverReason(err)}, nil
	}

	return &HoverResult{Allowed: true}, nil
}

// Drop завершает перетаскивание, перенося заявку в целевую ячейку.
// Независимо от исхода перетаскивание заканчивается: при отказе заявка
// остается в исходной ячейке
func (c *Coordinator) Drop(ctx context.Context, target Target) (*DropResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil {
		return nil, ErrNoActiveDrag
	}

	session := c.session
	c.session = nil

	resp, err := c.reassign.Execute(ctx, &reassign_booking.Request{
		BookingID:        session.BookingID,
		TargetEmployeeID: target.EmployeeID,
		TargetDate:       target.Date,
		TargetTime:       target.Time,
	})
	if err != nil {
		c.logger.Warn("DragDrop: drop rejected for booking id=%s: %v", session.BookingID, err)
		return nil, err
	}

	c.logger.Info("DragDrop: booking id=%s dropped at employee=%s %s %s (moved=%t)",
		resp.ID, resp.EmployeeID, resp.ScheduledDate.Format("2006-01-02"), resp.ScheduledTime, resp.Moved)

	return &DropResult{
		BookingID:  resp.ID,
		EmployeeID: resp.EmployeeID,
		Date:       resp.ScheduledDate,
		Time:       resp.ScheduledTime,
		Moved:      resp.Moved,
	}, nil
}

// Cancel прерывает перетаскивание, заявка остается в исходной ячейке
func (c *Coordinator) Cancel() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil {
		return ErrNoActiveDrag
	}

	c.logger.Info("DragDrop: drag of booking id=%s cancelled", c.session.BookingID)
	c.session = nil
	return nil
}

// Active возвращает снимок активного перетаскивания или nil
func (c *Coordinator) Active() *Session {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil {
		return nil
	}
	snapshot := *c.session
	return &snapshot
}

// hoverReason переводит ошибку проверки размещения в причину для подсветки ячейки
func hoverReason(err error) string {
	switch {
	case errors.Is(err, schedule.ErrNotWorking):
		return "employee is not working at this time"
	case errors.Is(err, schedule.ErrOnBreak):
		return "employee is on break at this time"
	case errors.Is(err, schedule.ErrSlotOccupied):
		return "slot is already occupied"
	case errors.Is(err, schedule.ErrInvalidDuration):
		return "booking duration is invalid"
	default:
		return err.Error()
	}
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
