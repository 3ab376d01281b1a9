package reassign_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда заявка не найдена
	ErrBookingNotFound = errors.New("reassign_booking: booking not found")

	// ErrBookingNotReassignable возвращается, когда статус заявки не допускает перенос
	ErrBookingNotReassignable = errors.New("reassign_booking: booking cannot be reassigned in its current status")

	// ErrEmployeeNotFound возвращается, когда целевой сотрудник не найден
	ErrEmployeeNotFound = errors.New("reassign_booking: target employee not found")

	// ErrEmployeeInactive возвращается, когда целевой сотрудник деактивирован
	ErrEmployeeInactive = errors.New("reassign_booking: target employee is inactive")

	// ErrEmployeeNotWorking возвращается, когда целевой сотрудник не работает в указанное время
	ErrEmployeeNotWorking = errors.New("reassign_booking: target employee is not working at this time")

	// ErrEmployeeOnBreak возвращается, когда целевое время попадает на перерыв
	ErrEmployeeOnBreak = errors.New("reassign_booking: target employee is on break at this time")

	// ErrSlotOccupied возвращается, когда целевой слот пересекается с другой активной заявкой
	ErrSlotOccupied = errors.New("reassign_booking: target slot is already occupied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reassign_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reassign_booking: internal error")
)
