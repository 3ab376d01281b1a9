package dragdrop

import (
	"time"

	"github.com/v-lavrov/RS-SchedulerService/pkg/types"
)

// SessionState состояние активного перетаскивания
type SessionState string

const (
	StateDragging SessionState = "dragging"
	StateHovering SessionState = "hovering"
)

// Session активное перетаскивание: одна заявка, взятая из сетки
type Session struct {
	BookingID      string           // ID перетаскиваемой заявки
	SourceEmployee string           // ID сотрудника, у которого взята заявка
	SourceDate     time.Time        // Исходная дата
	SourceTime     types.TimeString // Исходное время начала
	Duration       int              // Длительность заявки в минутах
	State          SessionState     // Текущее состояние
	StartedAt      time.Time        // Момент начала перетаскивания
}

// Target целевая ячейка сетки, над которой находится перетаскиваемая заявка
type Target struct {
	EmployeeID string           // ID целевого сотрудника
	Date       time.Time        // Целевая дата
	Time       types.TimeString // Целевое время начала
}

// HoverResult результат проверки целевой ячейки без изменения данных
type HoverResult struct {
	Allowed bool   // true, если заявку можно отпустить в эту ячейку
	OwnCell bool   // true, если ячейка совпадает с исходной
	Reason  string // причина запрета (пусто, если Allowed)
}

// DropResult результат завершения перетаскивания
type DropResult struct {
	BookingID  string           // ID заявки
	EmployeeID string           // ID сотрудника после переноса
	Date       time.Time        // Дата после переноса
	Time       types.TimeString // Время начала после переноса
	Moved      bool             // false, если заявка отпущена в свою же ячейку
}
