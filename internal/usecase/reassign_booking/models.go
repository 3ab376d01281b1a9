package reassign_booking

import (
	"time"

	"github.com/v-lavrov/RS-SchedulerService/pkg/types"
)

// Request модель запроса на перенос заявки
type Request struct {
	BookingID        string           // ID переносимой заявки
	TargetEmployeeID string           // ID целевого сотрудника
	TargetDate       time.Time        // Целевая дата визита
	TargetTime       types.TimeString // Целевое время начала
}

// Response модель ответа с перенесенной заявкой
type Response struct {
	ID                string           // ID заявки
	EmployeeID        string           // ID сотрудника после переноса
	PrevEmployeeID    string           // ID сотрудника до переноса
	ScheduledDate     time.Time        // Дата визита после переноса
	ScheduledTime     types.TimeString // Время начала после переноса
	EstimatedDuration int              // Длительность в минутах
	Status            string           // Статус заявки
	Moved             bool             // false, если заявка осталась в своей же ячейке

	UpdatedAt time.Time // Время обновления
}
