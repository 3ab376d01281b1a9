package records

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore хранилище записей в памяти. Используется как локальный
// кэш и как детерминированный бэкенд в тестах.
type MemoryStore struct {
	mu   sync.RWMutex
	txMu sync.Mutex

	// table -> key -> envelope
	tables map[string]map[string]Envelope

	clock func() time.Time
}

// NewMemoryStore создает пустое in-memory хранилище
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tables: make(map[string]map[string]Envelope),
		clock:  time.Now,
	}
}

// WithClock подменяет источник времени (для тестов)
func (s *MemoryStore) WithClock(clock func() time.Time) *MemoryStore {
	s.clock = clock
	return s
}

// Save сохраняет запись
func (s *MemoryStore) Save(ctx context.Context, table, key string, data interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("%w: Save - table=%s key=%s: %v", ErrMarshal, table, key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.putLocked(Envelope{
		Table:   table,
		Key:     key,
		Data:    raw,
		SavedAt: s.clock(),
	})
	return nil
}

func (s *MemoryStore) putLocked(env Envelope) {
	if s.tables[env.Table] == nil {
		s.tables[env.Table] = make(map[string]Envelope)
	}
	s.tables[env.Table][env.Key] = env
}

// Get возвращает запись по (таблица, ключ)
func (s *MemoryStore) Get(ctx context.Context, table, key string) (*Envelope, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	env, ok := s.tables[table][key]
	if !ok {
		return nil, fmt.Errorf("%w: table=%s key=%s", ErrRecordNotFound, table, key)
	}
	return &env, nil
}

// QueryByPrefix возвращает записи таблицы, ключ которых содержит partialKey,
// отсортированные по ключу
func (s *MemoryStore) QueryByPrefix(ctx context.Context, table, partialKey string) ([]Envelope, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Envelope, 0)
	for key, env := range s.tables[table] {
		if partialKey == "" || strings.Contains(key, partialKey) {
			result = append(result, env)
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Key < result[j].Key })
	return result, nil
}

// Delete удаляет запись
func (s *MemoryStore) Delete(ctx context.Context, table, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tables[table][key]; !ok {
		return fmt.Errorf("%w: table=%s key=%s", ErrRecordNotFound, table, key)
	}
	delete(s.tables[table], key)
	return nil
}

// Export возвращает полный снимок хранилища
func (s *MemoryStore) Export(ctx context.Context) (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := &Snapshot{
		ID:         uuid.NewString(),
		Version:    SnapshotVersion,
		ExportedAt: s.clock(),
		Tables:     make(map[string][]Envelope, len(s.tables)),
	}

	for table, recs := range s.tables {
		envs := make([]Envelope, 0, len(recs))
		for _, env := range recs {
			envs = append(envs, env)
		}
		sort.Slice(envs, func(i, j int) bool { return envs[i].Key < envs[j].Key })
		snap.Tables[table] = envs
	}

	return snap, nil
}

// Import проигрывает записи снимка. Время сохранения записи берётся из
// снимка: при согласовании выигрывает последняя запись по savedAt.
func (s *MemoryStore) Import(ctx context.Context, snap *Snapshot) (*ImportReport, error) {
	if snap == nil {
		return nil, fmt.Errorf("%w: snapshot is nil", ErrInvalidSnapshot)
	}

	report := NewImportReport()

	s.mu.Lock()
	defer s.mu.Unlock()

	for table, envs := range snap.Tables {
		for _, env := range envs {
			if env.Key == "" {
				report.Errors = append(report.Errors, ImportError{
					Table:   table,
					Key:     env.Key,
					Message: "empty record key",
				})
				continue
			}
			if !json.Valid(env.Data) {
				report.Errors = append(report.Errors, ImportError{
					Table:   table,
					Key:     env.Key,
					Message: "record data is not valid JSON",
				})
				continue
			}

			// Last-write-wins: более свежая локальная запись не затирается
			if existing, ok := s.tables[table][env.Key]; ok && existing.SavedAt.After(env.SavedAt) {
				continue
			}

			env.Table = table
			s.putLocked(env)
			report.Imported[table]++
		}
	}

	return report, nil
}

// DoSerializable выполняет fn под общим замком транзакций хранилища
func (s *MemoryStore) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	return fn(ctx)
}
