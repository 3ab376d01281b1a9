package records

import "errors"

var (
	// ErrRecordNotFound возвращается, когда запись не найдена
	ErrRecordNotFound = errors.New("records: record not found")

	// ErrMarshal возвращается при ошибке сериализации записи
	ErrMarshal = errors.New("records: failed to marshal record")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("records: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("records: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("records: failed to scan row")

	// ErrRemoteDisabled возвращается при попытке синхронизации
	// в локальном режиме
	ErrRemoteDisabled = errors.New("records: sync requires remote mode")

	// ErrRemote возвращается при ошибке удалённого вызова
	ErrRemote = errors.New("records: remote call failed")

	// ErrInvalidSnapshot возвращается при некорректном снимке
	ErrInvalidSnapshot = errors.New("records: invalid snapshot")
)
