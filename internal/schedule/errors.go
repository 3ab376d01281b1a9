package schedule

import "errors"

var (
	// ErrNotWorking возвращается, когда время вне рабочего окна сотрудника
	ErrNotWorking = errors.New("schedule: employee is not working at this time")

	// ErrOnBreak возвращается, когда время попадает на перерыв
	ErrOnBreak = errors.New("schedule: time falls on a break")

	// ErrSlotOccupied возвращается, когда слот пересекается с другой заявкой
	ErrSlotOccupied = errors.New("schedule: slot is occupied by another booking")

	// ErrInvalidDuration возвращается при некорректной длительности заявки
	ErrInvalidDuration = errors.New("schedule: invalid booking duration")
)
