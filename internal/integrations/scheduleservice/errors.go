package scheduleservice

import "errors"

var (
	// ErrNotFound возвращается, когда запись не найдена на удалённом сервисе
	ErrNotFound = errors.New("scheduleservice client: record not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("scheduleservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе сервиса
	ErrInvalidResponse = errors.New("scheduleservice client: invalid response")

	// ErrUnavailable возвращается, когда сервис недоступен после всех повторов.
	// Вызывающая сторона продолжает работать с локальным кэшем и сообщает
	// пользователю, что изменения не синхронизированы.
	ErrUnavailable = errors.New("scheduleservice client: service unavailable")
)
