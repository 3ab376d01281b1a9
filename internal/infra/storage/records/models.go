package records

import (
	"encoding/json"
	"strings"
	"time"
)

// Известные таблицы хранилища
const (
	TableEmployees = "employees"
	TableSchedules = "schedules"
	TableBookings  = "bookings"
	TableCounters  = "counters"
)

// SnapshotVersion текущая версия формата снимка
const SnapshotVersion = 1

// Envelope запись хранилища: полезная нагрузка с тегом таблицы,
// ключом и временем сохранения
type Envelope struct {
	Table   string          `json:"table"`
	Key     string          `json:"key"`
	Data    json.RawMessage `json:"data"`
	SavedAt time.Time       `json:"savedAt"`
}

// Snapshot полный снимок хранилища, сгруппированный по таблицам.
// Используется для резервного копирования и синхронизации.
type Snapshot struct {
	ID         string                `json:"id"`
	Version    int                   `json:"version"`
	ExportedAt time.Time             `json:"exportedAt"`
	Tables     map[string][]Envelope `json:"tables"`
}

// TotalRecords возвращает общее количество записей в снимке
func (s *Snapshot) TotalRecords() int {
	total := 0
	for _, envs := range s.Tables {
		total += len(envs)
	}
	return total
}

// ImportError ошибка импорта одной записи
type ImportError struct {
	Table   string `json:"table"`
	Key     string `json:"key"`
	Message string `json:"message"`
}

// ImportReport результат импорта снимка: покартотечные счётчики и
// ошибки отдельных записей. Частичный успех допустим и отражается
// в отчёте, а не прерывает импорт.
type ImportReport struct {
	Imported map[string]int `json:"imported"`
	Errors   []ImportError  `json:"errors,omitempty"`
}

// NewImportReport создает пустой отчёт импорта
func NewImportReport() *ImportReport {
	return &ImportReport{Imported: make(map[string]int)}
}

// SyncReport результат синхронизации с удалённым сервисом
type SyncReport struct {
	SnapshotID string        `json:"snapshotId"`
	Pushed     int           `json:"pushed"`
	Accepted   int           `json:"accepted"`
	Updated    *ImportReport `json:"updated,omitempty"`
}

// bookingKeySeparator разделитель составного ключа заявок
const bookingKeySeparator = "__"

// BookingKey строит составной ключ заявки: сотрудник входит в ключ,
// чтобы QueryByPrefix по идентификатору сотрудника возвращал его заявки
func BookingKey(employeeID, bookingID string) string {
	return employeeID + bookingKeySeparator + bookingID
}

// SplitBookingKey разбирает составной ключ заявки
func SplitBookingKey(key string) (employeeID, bookingID string, ok bool) {
	parts := strings.SplitN(key, bookingKeySeparator, 2)
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}
