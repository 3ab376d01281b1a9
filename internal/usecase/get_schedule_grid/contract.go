package get_schedule_grid

import (
	"context"
	"time"

	"github.com/v-lavrov/RS-SchedulerService/internal/domain"
)

// EmployeeRepository интерфейс репозитория сотрудников
type EmployeeRepository interface {
	List(ctx context.Context, activeOnly bool) ([]*domain.Employee, error)
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
}

// ScheduleRepository интерфейс репозитория шаблонов расписаний
type ScheduleRepository interface {
	GetByEmployee(ctx context.Context, employeeID string) (*domain.ScheduleTemplate, error)
}

// BookingRepository интерфейс репозитория заявок
type BookingRepository interface {
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, onlyActive bool) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
