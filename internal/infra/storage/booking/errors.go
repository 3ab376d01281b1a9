package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда заявка не найдена
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrInvalidRecord возвращается при некорректной записи заявки
	ErrInvalidRecord = errors.New("booking.repository: invalid booking record")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("booking.repository: invalid booking status")

	// ErrStorage возвращается при ошибке нижележащего хранилища
	ErrStorage = errors.New("booking.repository: storage error")
)
