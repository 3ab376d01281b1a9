package store

import "errors"

var (
	// ErrRemoteDisabled возвращается при попытке синхронизации в локальном режиме
	ErrRemoteDisabled = errors.New("service.store: remote mode is disabled")

	// ErrInvalidSnapshot возвращается, когда снимок не удалось разобрать
	ErrInvalidSnapshot = errors.New("service.store: invalid snapshot")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service.store: internal error")
)
