package store_snapshot

import (
	"context"

	"github.com/v-lavrov/RS-SchedulerService/internal/service/store/models"
)

type StoreService interface {
	Export(ctx context.Context) (*models.ExportResponse, error)
	Import(ctx context.Context, req *models.ImportRequest) (*models.ImportResponse, error)
	Sync(ctx context.Context) (*models.SyncResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
