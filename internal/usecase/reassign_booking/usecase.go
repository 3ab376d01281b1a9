package reassign_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/v-lavrov/RS-SchedulerService/internal/domain"
	bookingRepo "github.com/v-lavrov/RS-SchedulerService/internal/infra/storage/booking"
	employeeRepo "github.com/v-lavrov/RS-SchedulerService/internal/infra/storage/employee"
	scheduleRepo "github.com/v-lavrov/RS-SchedulerService/internal/infra/storage/schedule"
	"github.com/v-lavrov/RS-SchedulerService/internal/schedule"
)

// UseCase use case для переноса заявки на другого сотрудника или слот
type UseCase struct {
	employeeRepo EmployeeRepository
	scheduleRepo ScheduleRepository
	bookingRepo  BookingRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	employeeRepo EmployeeRepository,
	scheduleRepo ScheduleRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		employeeRepo: employeeRepo,
		scheduleRepo: scheduleRepo,
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет use case переноса заявки
// Использует сериализуемую транзакцию: проверка занятости целевого слота
// и перезапись заявки выполняются атомарно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReassignBooking: booking=%s -> employee=%s, date=%s, time=%s",
		req.BookingID, req.TargetEmployeeID, req.TargetDate.Format(domain.DateFormat), req.TargetTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReassignBooking: validation failed: %v", err)
		return nil, err
	}

	var result *Response

	// 2. Выполняем перенос в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем заявку
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("ReassignBooking: booking id=%s not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("ReassignBooking: failed to get booking id=%s: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2.2. Проверяем, что статус заявки допускает перенос
		if !booking.CanBeReassigned() {
			uc.logger.Warn("ReassignBooking: booking id=%s has status=%s, cannot be reassigned",
				booking.ID, booking.Status)
			return fmt.Errorf("%w: status=%s", ErrBookingNotReassignable, booking.Status)
		}

		// 2.3. Перенос в свою же ячейку - no-op
		if booking.SameSlot(req.TargetEmployeeID, req.TargetDate, req.TargetTime) {
			uc.logger.Info("ReassignBooking: booking id=%s dropped on its own cell, nothing to do", booking.ID)
			result = buildResponse(booking, booking.EmployeeID, false)
			return nil
		}

		// 2.4. Получаем целевого сотрудника
		employee, err := uc.employeeRepo.GetByID(txCtx, req.TargetEmployeeID)
		if err != nil {
			if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
				uc.logger.Warn("ReassignBooking: target employee id=%s not found", req.TargetEmployeeID)
				return ErrEmployeeNotFound
			}
			uc.logger.Error("ReassignBooking: failed to get employee id=%s: %v", req.TargetEmployeeID, err)
			return fmt.Errorf("%w: failed to get employee: %v", ErrInternal, err)
		}

		if !employee.IsActive {
			uc.logger.Warn("ReassignBooking: target employee id=%s is inactive", req.TargetEmployeeID)
			return ErrEmployeeInactive
		}

		// 2.5. Разворачиваем рабочее окно целевого сотрудника
		tpl, err := uc.scheduleRepo.GetByEmployee(txCtx, req.TargetEmployeeID)
		if err != nil && !errors.Is(err, scheduleRepo.ErrTemplateNotFound) {
			uc.logger.Error("ReassignBooking: failed to get template for employee=%s: %v",
				req.TargetEmployeeID, err)
			return fmt.Errorf("%w: failed to get template: %v", ErrInternal, err)
		}

		window, working := schedule.ResolveWorkWindow(tpl, req.TargetDate)
		if !working {
			uc.logger.Warn("ReassignBooking: target employee id=%s is not working on %s",
				req.TargetEmployeeID, req.TargetDate.Format(domain.DateFormat))
			return ErrEmployeeNotWorking
		}

		// 2.6. Проверяем целевой слот, исключая саму переносимую заявку
		targetBookings, err := uc.bookingRepo.GetByEmployeeAndDate(txCtx, req.TargetEmployeeID, req.TargetDate, true)
		if err != nil {
			uc.logger.Error("ReassignBooking: failed to get target bookings: %v", err)
			return fmt.Errorf("%w: failed to get target bookings: %v", ErrInternal, err)
		}

		if err := schedule.CheckPlacement(window, targetBookings, booking.ID, req.TargetTime, booking.EstimatedDuration); err != nil {
			uc.logger.Warn("ReassignBooking: placement rejected for booking=%s at employee=%s %s: %v",
				booking.ID, req.TargetEmployeeID, req.TargetTime, err)
			return mapPlacementError(err)
		}

		// 2.7. Запоминаем исходное размещение и перезаписываем заявку
		prevEmployeeID := booking.EmployeeID
		prevDate := booking.ScheduledDate
		prevTime := booking.ScheduledTime

		booking.EmployeeID = req.TargetEmployeeID
		booking.ScheduledDate = req.TargetDate
		booking.ScheduledTime = req.TargetTime

		updated, err := uc.bookingRepo.Update(txCtx, booking, prevEmployeeID)
		if err != nil {
			// Возвращаем заявку в исходное размещение, чтобы вызывающий
			// код не увидел полуперенесенное состояние
			booking.EmployeeID = prevEmployeeID
			booking.ScheduledDate = prevDate
			booking.ScheduledTime = prevTime
			uc.logger.Error("ReassignBooking: failed to update booking id=%s: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		result = buildResponse(updated, prevEmployeeID, true)
		return nil
	})

	if err != nil {
		return nil, err
	}

	if result.Moved {
		uc.logger.Info("ReassignBooking: booking id=%s moved %s -> %s at %s %s",
			result.ID, result.PrevEmployeeID, result.EmployeeID,
			result.ScheduledDate.Format(domain.DateFormat), result.ScheduledTime)
	}

	return result, nil
}

func buildResponse(b *domain.Booking, prevEmployeeID string, moved bool) *Response {
	return &Response{
		ID:                b.ID,
		EmployeeID:        b.EmployeeID,
		PrevEmployeeID:    prevEmployeeID,
		ScheduledDate:     b.ScheduledDate,
		ScheduledTime:     b.ScheduledTime,
		EstimatedDuration: b.EstimatedDuration,
		Status:            string(b.Status),
		Moved:             moved,
		UpdatedAt:         b.UpdatedAt,
	}
}

// mapPlacementError переводит ошибки проверки размещения в ошибки usecase
func mapPlacementError(err error) error {
	switch {
	case errors.Is(err, schedule.ErrNotWorking):
		return ErrEmployeeNotWorking
	case errors.Is(err, schedule.ErrOnBreak):
		return ErrEmployeeOnBreak
	case errors.Is(err, schedule.ErrSlotOccupied):
		return fmt.Errorf("%w: %v", ErrSlotOccupied, err)
	case errors.Is(err, schedule.ErrInvalidDuration):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
