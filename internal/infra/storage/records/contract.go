package records

import (
	"context"
	"encoding/json"
	"time"

	"github.com/v-lavrov/RS-SchedulerService/internal/integrations/scheduleservice"
)

// Store интерфейс хранилища записей, ключ - пара (таблица, ключ записи).
// Конкретный бэкенд (in-memory, Postgres) внедряется снаружи, логика
// планирования от способа хранения не зависит.
type Store interface {
	// Save сохраняет запись; data сериализуется в JSON
	Save(ctx context.Context, table, key string, data interface{}) error

	// Get возвращает запись или ErrRecordNotFound
	Get(ctx context.Context, table, key string) (*Envelope, error)

	// QueryByPrefix возвращает все записи таблицы, ключ которых
	// содержит partialKey; пустой partialKey возвращает всю таблицу
	QueryByPrefix(ctx context.Context, table, partialKey string) ([]Envelope, error)

	// Delete удаляет запись; отсутствие записи - ErrRecordNotFound
	Delete(ctx context.Context, table, key string) error

	// Export возвращает полный снимок хранилища
	Export(ctx context.Context) (*Snapshot, error)

	// Import проигрывает записи снимка через сохранение,
	// частичный успех отражается в отчёте
	Import(ctx context.Context, snap *Snapshot) (*ImportReport, error)

	// DoSerializable выполняет fn атомарно относительно других
	// сериализуемых операций хранилища
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// RemoteClient интерфейс удалённого сервиса расписаний (remote-режим шлюза)
type RemoteClient interface {
	SaveEmployee(ctx context.Context, payload json.RawMessage) (json.RawMessage, error)
	GetEmployee(ctx context.Context, id string) (json.RawMessage, error)
	SaveSchedule(ctx context.Context, payload json.RawMessage) (json.RawMessage, error)
	GetEmployeeSchedule(ctx context.Context, employeeID string) (json.RawMessage, error)
	SaveBooking(ctx context.Context, payload json.RawMessage) (json.RawMessage, error)
	GetEmployeeBookings(ctx context.Context, employeeID string, from, to *time.Time) ([]json.RawMessage, error)
	Sync(ctx context.Context, snapshot json.RawMessage) (*scheduleservice.SyncResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
