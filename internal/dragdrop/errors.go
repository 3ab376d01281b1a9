package dragdrop

import "errors"

var (
	// ErrDragInProgress возвращается при попытке начать перетаскивание,
	// когда другое еще не завершено
	ErrDragInProgress = errors.New("dragdrop: another drag is already in progress")

	// ErrNoActiveDrag возвращается, когда операция требует активного перетаскивания
	ErrNoActiveDrag = errors.New("dragdrop: no active drag")

	// ErrDragMismatch возвращается, когда операция ссылается не на ту заявку,
	// которая сейчас перетаскивается
	ErrDragMismatch = errors.New("dragdrop: booking does not match the active drag")

	// ErrBookingNotFound возвращается, когда перетаскиваемая заявка не найдена
	ErrBookingNotFound = errors.New("dragdrop: booking not found")

	// ErrBookingNotDraggable возвращается, когда статус заявки не допускает перенос
	ErrBookingNotDraggable = errors.New("dragdrop: booking cannot be dragged in its current status")

	// ErrInternal возвращается при внутренних ошибках координатора
	ErrInternal = errors.New("dragdrop: internal error")
)
