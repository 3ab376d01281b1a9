package save_schedule_template

import (
	"context"

	"github.com/v-lavrov/RS-SchedulerService/internal/service/schedules/models"
)

type ScheduleService interface {
	SaveTemplate(ctx context.Context, employeeID string, req *models.SaveTemplateRequest) (*models.TemplateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
