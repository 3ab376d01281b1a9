package create_booking

import "errors"

var (
	// ErrEmployeeNotFound возвращается, когда сотрудник не найден
	ErrEmployeeNotFound = errors.New("create_booking: employee not found")

	// ErrEmployeeInactive возвращается, когда сотрудник деактивирован
	ErrEmployeeInactive = errors.New("create_booking: employee is inactive")

	// ErrEmployeeNotWorking возвращается, когда сотрудник не работает в указанное время
	ErrEmployeeNotWorking = errors.New("create_booking: employee is not working at this time")

	// ErrEmployeeOnBreak возвращается, когда время начала попадает на перерыв
	ErrEmployeeOnBreak = errors.New("create_booking: employee is on break at this time")

	// ErrSlotOccupied возвращается, когда слот пересекается с другой активной заявкой
	ErrSlotOccupied = errors.New("create_booking: slot is already occupied")

	// ErrDateInPast возвращается, когда дата визита уже прошла
	ErrDateInPast = errors.New("create_booking: date is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
