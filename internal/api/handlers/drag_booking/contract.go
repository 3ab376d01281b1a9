package drag_booking

import (
	"context"

	"github.com/v-lavrov/RS-SchedulerService/internal/dragdrop"
)

type DragCoordinator interface {
	Begin(ctx context.Context, bookingID string) (*dragdrop.Session, error)
	Hover(ctx context.Context, target dragdrop.Target) (*dragdrop.HoverResult, error)
	Drop(ctx context.Context, target dragdrop.Target) (*dragdrop.DropResult, error)
	Cancel() error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
