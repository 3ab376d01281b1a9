package store

import (
	"context"

	"github.com/v-lavrov/RS-SchedulerService/internal/infra/storage/records"
)

// Gateway интерфейс шлюза хранилища
type Gateway interface {
	Export(ctx context.Context) (*records.Snapshot, error)
	Import(ctx context.Context, snap *records.Snapshot) (*records.ImportReport, error)
	Sync(ctx context.Context) (*records.SyncReport, error)
	RemoteMode() bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
