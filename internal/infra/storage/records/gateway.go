package records

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/v-lavrov/RS-SchedulerService/internal/domain"
)

// Gateway двухрежимное хранилище записей. В локальном режиме все операции
// идут в локальный бэкенд. В remote-режиме операции над сущностями
// транслируются в HTTP-вызовы удалённого сервиса, локальные записи
// пропускаются; локальный кэш наполняется только через Import/Sync.
// Счётчики всегда локальные - это процессный источник номеров.
type Gateway struct {
	local      Store
	remote     RemoteClient
	remoteMode bool
	log        Logger
}

// NewGateway создает шлюз хранилища. remote может быть nil в локальном режиме.
func NewGateway(local Store, remote RemoteClient, remoteMode bool, log Logger) *Gateway {
	return &Gateway{
		local:      local,
		remote:     remote,
		remoteMode: remoteMode && remote != nil,
		log:        log,
	}
}

// RemoteMode возвращает true, если шлюз работает с удалённым сервисом
func (g *Gateway) RemoteMode() bool {
	return g.remoteMode
}

// Save сохраняет запись в активный бэкенд
func (g *Gateway) Save(ctx context.Context, table, key string, data interface{}) error {
	if !g.remoteMode || table == TableCounters {
		return g.local.Save(ctx, table, key, data)
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("%w: Save - table=%s key=%s: %v", ErrMarshal, table, key, err)
	}

	switch table {
	case TableEmployees:
		_, err = g.remote.SaveEmployee(ctx, raw)
	case TableSchedules:
		_, err = g.remote.SaveSchedule(ctx, raw)
	case TableBookings:
		_, err = g.remote.SaveBooking(ctx, raw)
	default:
		return g.local.Save(ctx, table, key, data)
	}

	if err != nil {
		return fmt.Errorf("%w: Save - table=%s key=%s: %v", ErrRemote, table, key, err)
	}
	return nil
}

// Get возвращает запись из активного бэкенда. Для таблиц без точечного
// удалённого эндпоинта чтение идёт из локального кэша.
func (g *Gateway) Get(ctx context.Context, table, key string) (*Envelope, error) {
	if !g.remoteMode {
		return g.local.Get(ctx, table, key)
	}

	var (
		raw json.RawMessage
		err error
	)

	switch table {
	case TableEmployees:
		raw, err = g.remote.GetEmployee(ctx, key)
	case TableSchedules:
		// Шаблоны хранятся под ключом сотрудника
		raw, err = g.remote.GetEmployeeSchedule(ctx, key)
	default:
		return g.local.Get(ctx, table, key)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: Get - table=%s key=%s: %v", ErrRemote, table, key, err)
	}

	return &Envelope{Table: table, Key: key, Data: raw, SavedAt: time.Now().UTC()}, nil
}

// QueryByPrefix возвращает записи таблицы, ключ которых содержит partialKey.
// В remote-режиме удалённый эндпоинт есть только у выборки заявок по
// сотруднику; остальные запросы (в том числе поиск заявки по номеру)
// обслуживаются локальным кэшем, который наполняется через Sync -
// до первой синхронизации такой запрос может не найти запись,
// известную удалённому сервису.
func (g *Gateway) QueryByPrefix(ctx context.Context, table, partialKey string) ([]Envelope, error) {
	if g.remoteMode && table == TableBookings && strings.HasPrefix(partialKey, domain.RefPrefixEmployee) {
		items, err := g.remote.GetEmployeeBookings(ctx, partialKey, nil, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: QueryByPrefix - table=%s partial=%s: %v", ErrRemote, table, partialKey, err)
		}
		return bookingEnvelopes(items)
	}

	if g.remoteMode {
		g.log.Debug("records: no remote endpoint for query table=%s partial=%s, falling back to local cache",
			table, partialKey)
	}
	return g.local.QueryByPrefix(ctx, table, partialKey)
}

// Delete удаляет запись
func (g *Gateway) Delete(ctx context.Context, table, key string) error {
	// Удалённый сервис не даёт DELETE-эндпоинта: отмена заявки - это
	// смена статуса через Save. Локальный кэш чистим всегда.
	return g.local.Delete(ctx, table, key)
}

// Export возвращает полный снимок локального кэша
func (g *Gateway) Export(ctx context.Context) (*Snapshot, error) {
	return g.local.Export(ctx)
}

// Import проигрывает снимок в локальный кэш
func (g *Gateway) Import(ctx context.Context, snap *Snapshot) (*ImportReport, error) {
	return g.local.Import(ctx, snap)
}

// DoSerializable выполняет fn атомарно в локальном бэкенде.
// В remote-режиме атомарность обеспечивает сервер - fn выполняется как есть.
func (g *Gateway) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if g.remoteMode {
		return fn(ctx)
	}
	return g.local.DoSerializable(ctx, fn)
}

// Sync согласует локальный кэш с удалённым сервисом: экспортирует снимок,
// отправляет его на /sync и проигрывает возвращённые updatedData через
// Import. В локальном режиме синхронизация явно недоступна.
func (g *Gateway) Sync(ctx context.Context) (*SyncReport, error) {
	if !g.remoteMode {
		return nil, ErrRemoteDisabled
	}

	snap, err := g.local.Export(ctx)
	if err != nil {
		return nil, fmt.Errorf("Sync - export local snapshot: %w", err)
	}

	rawSnap, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("%w: Sync - marshal snapshot: %v", ErrMarshal, err)
	}

	resp, err := g.remote.Sync(ctx, rawSnap)
	if err != nil {
		return nil, fmt.Errorf("%w: Sync - remote call: %v", ErrRemote, err)
	}

	report := &SyncReport{
		SnapshotID: snap.ID,
		Pushed:     snap.TotalRecords(),
		Accepted:   resp.Accepted,
	}

	if len(resp.UpdatedData) > 0 {
		var updated Snapshot
		if err := json.Unmarshal(resp.UpdatedData, &updated); err != nil {
			return nil, fmt.Errorf("%w: Sync - decode updatedData: %v", ErrInvalidSnapshot, err)
		}
		importReport, err := g.local.Import(ctx, &updated)
		if err != nil {
			return nil, fmt.Errorf("Sync - import updatedData: %w", err)
		}
		report.Updated = importReport
	}

	g.log.Info("records: sync completed, snapshot=%s pushed=%d accepted=%d",
		report.SnapshotID, report.Pushed, report.Accepted)
	return report, nil
}

// bookingEnvelopes строит записи из сырых заявок удалённого сервиса
func bookingEnvelopes(items []json.RawMessage) ([]Envelope, error) {
	envs := make([]Envelope, 0, len(items))
	for _, raw := range items {
		var keyFields struct {
			ID         string `json:"id"`
			EmployeeID string `json:"employeeId"`
		}
		if err := json.Unmarshal(raw, &keyFields); err != nil {
			return nil, fmt.Errorf("%w: malformed remote booking: %v", ErrInvalidSnapshot, err)
		}
		envs = append(envs, Envelope{
			Table:   TableBookings,
			Key:     BookingKey(keyFields.EmployeeID, keyFields.ID),
			Data:    raw,
			SavedAt: time.Now().UTC(),
		})
	}
	return envs, nil
}
