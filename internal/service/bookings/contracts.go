package bookings

import (
	"context"
	"time"

	"github.com/v-lavrov/RS-SchedulerService/internal/domain"
)

// BookingRepository интерфейс репозитория заявок
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByEmployee(ctx context.Context, employeeID string, from, to *time.Time, onlyActive bool) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id string, reason string) (*domain.Booking, error)
}

// EmployeeRepository интерфейс репозитория сотрудников
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
