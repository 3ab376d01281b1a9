package get_schedule_template

import (
	"context"
	"time"

	"github.com/v-lavrov/RS-SchedulerService/internal/service/schedules/models"
)

type ScheduleService interface {
	GetByEmployee(ctx context.Context, employeeID string) (*models.TemplateResponse, error)
	ResolveDay(ctx context.Context, employeeID string, date time.Time) (*models.DayScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
