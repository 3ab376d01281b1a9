package schedules

import "errors"

var (
	// ErrTemplateNotFound возвращается, когда у сотрудника нет шаблона расписания
	ErrTemplateNotFound = errors.New("service.schedules: schedule template not found")

	// ErrEmployeeNotFound возвращается, когда сотрудник не найден
	ErrEmployeeNotFound = errors.New("service.schedules: employee not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("service.schedules: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service.schedules: internal error")
)
