package get_schedule_grid

import (
	"context"

	getScheduleGrid "github.com/v-lavrov/RS-SchedulerService/internal/usecase/get_schedule_grid"
)

type GetScheduleGridUseCase interface {
	Execute(ctx context.Context, req *getScheduleGrid.Request) (*getScheduleGrid.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
