package schedule

import (
	"fmt"

	"github.com/v-lavrov/RS-SchedulerService/internal/domain"
	"github.com/v-lavrov/RS-SchedulerService/pkg/ptr"
	"github.com/v-lavrov/RS-SchedulerService/pkg/types"
)

// Occupies проверяет, покрывает ли окно заявки метку t:
// scheduledTime <= t < scheduledTime + estimatedDuration.
// Вся арифметика - в минутах с полуночи.
func Occupies(b *domain.Booking, t types.TimeString) bool {
	end, err := b.EndTime()
	if err != nil {
		return false
	}
	return !t.IsBefore(b.ScheduledTime) && t.IsBefore(end)
}

// ClassifySlot вычисляет состояние одной ячейки сетки для сотрудника.
// Состояния взаимоисключающие: not_working (вне рабочего окна),
// break (перерыв), booked (покрыта окном активной заявки), available.
// window == nil означает нерабочий день.
func ClassifySlot(window *domain.WorkWindow, bookings []*domain.Booking, t types.TimeString) domain.GridCell {
	cell := domain.GridCell{Time: t}

	if window == nil || !window.ContainsTime(t) {
		cell.State = domain.SlotNotWorking
		return cell
	}

	// Заявка имеет приоритет над перерывом при отображении:
	// если заявку передвинули на перерыв вручную, она должна быть видна
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if Occupies(b, t) {
			cell.State = domain.SlotBooked
			cell.BookingID = ptr.Ptr(b.ID)
			return cell
		}
	}

	if window.OnBreak(t) {
		cell.State = domain.SlotBreak
		return cell
	}

	cell.State = domain.SlotAvailable
	return cell
}

// FindConflict ищет активную заявку, окно которой пересекается с
// кандидатом [start, start+durationMinutes). Используется полное
// пересечение интервалов, а не только совпадение начальных меток:
// две заявки конфликтуют и тогда, когда их окна накладываются без
// общей границы сетки. excludeID исключает перемещаемую заявку.
func FindConflict(
	bookings []*domain.Booking,
	excludeID string,
	start types.TimeString,
	durationMinutes int,
) (*domain.Booking, error) {
	candidateEnd, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDuration, err)
	}

	for _, b := range bookings {
		if b.ID == excludeID {
			continue
		}
		if !b.IsActive() {
			continue
		}

		bookingEnd, err := b.EndTime()
		if err != nil {
			continue
		}

		// Интервалы пересекаются, только если начало одного строго раньше
		// конца другого в обе стороны; граничащие окна не конфликтуют
		if b.ScheduledTime.IsBefore(candidateEnd) && bookingEnd.IsAfter(start) {
			return b, nil
		}
	}

	return nil, nil
}

// CheckPlacement проверяет, можно ли поставить заявку сотруднику на
// (время, длительность): вне рабочего окна и на перерыве размещение
// запрещено, пересечение с другой активной заявкой - конфликт с
// указанием её идентификатора.
func CheckPlacement(
	window *domain.WorkWindow,
	bookings []*domain.Booking,
	excludeID string,
	start types.TimeString,
	durationMinutes int,
) error {
	if durationMinutes < domain.MinBookingDurationMinutes {
		return fmt.Errorf("%w: %d minutes (minimum %d)",
			ErrInvalidDuration, durationMinutes, domain.MinBookingDurationMinutes)
	}

	if window == nil || !window.ContainsTime(start) {
		return ErrNotWorking
	}

	if window.OnBreak(start) {
		return ErrOnBreak
	}

	conflict, err := FindConflict(bookings, excludeID, start, durationMinutes)
	if err != nil {
		return err
	}
	if conflict != nil {
		return fmt.Errorf("%w: conflicts with booking %s at %s",
			ErrSlotOccupied, conflict.ID, conflict.ScheduledTime)
	}

	return nil
}
