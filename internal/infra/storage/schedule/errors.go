package schedule

import "errors"

var (
	// ErrTemplateNotFound возвращается, когда у сотрудника нет шаблона расписания
	ErrTemplateNotFound = errors.New("schedule.repository: schedule template not found")

	// ErrInvalidRecord возвращается при некорректной записи шаблона
	ErrInvalidRecord = errors.New("schedule.repository: invalid schedule template record")

	// ErrStorage возвращается при ошибке нижележащего хранилища
	ErrStorage = errors.New("schedule.repository: storage error")
)
