package employee

import "errors"

var (
	// ErrEmployeeNotFound возвращается, когда сотрудник не найден
	ErrEmployeeNotFound = errors.New("employee.repository: employee not found")

	// ErrInvalidRecord возвращается при некорректной записи сотрудника.
	// Запись с отсутствующими обязательными полями отклоняется на границе
	// хранилища, а не молча допускается.
	ErrInvalidRecord = errors.New("employee.repository: invalid employee record")

	// ErrStorage возвращается при ошибке нижележащего хранилища
	ErrStorage = errors.New("employee.repository: storage error")
)
