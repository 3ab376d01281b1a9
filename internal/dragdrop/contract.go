package dragdrop

import (
	"context"
	"time"

	"github.com/v-lavrov/RS-SchedulerService/internal/domain"
	"github.com/v-lavrov/RS-SchedulerService/internal/usecase/reassign_booking"
)

// BookingRepository интерфейс репозитория заявок
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, onlyActive bool) ([]*domain.Booking, error)
}

// ScheduleRepository интерфейс репозитория шаблонов расписания
type ScheduleRepository interface {
	GetByEmployee(ctx context.Context, employeeID string) (*domain.ScheduleTemplate, error)
}

// ReassignUseCase интерфейс use case переноса заявки
type ReassignUseCase interface {
	Execute(ctx context.Context, req *reassign_booking.Request) (*reassign_booking.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
