package records

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/v-lavrov/RS-SchedulerService/pkg/dbmetrics"
	"github.com/v-lavrov/RS-SchedulerService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// PostgresStore хранилище записей поверх одной KV-таблицы records
// (table_name, record_key, data jsonb, saved_at)
type PostgresStore struct {
	db DBExecutor
	tx TxManager
}

// NewPostgresStore создает Postgres-хранилище записей
func NewPostgresStore(db DBExecutor, tx TxManager) *PostgresStore {
	return &PostgresStore{db: db, tx: tx}
}

// Save сохраняет запись (upsert по паре таблица+ключ)
func (s *PostgresStore) Save(ctx context.Context, table, key string, data interface{}) error {
	executor := dbmetrics.GetExecutor(ctx, s.db)

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("%w: Save - table=%s key=%s: %v", ErrMarshal, table, key, err)
	}

	query, args, err := psqlbuilder.Insert("records").
		Columns("table_name", "record_key", "data", "saved_at").
		Values(table, key, raw, time.Now().UTC()).
		Suffix("ON CONFLICT (table_name, record_key) DO UPDATE SET data = EXCLUDED.data, saved_at = EXCLUDED.saved_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// Get возвращает запись по (таблица, ключ)
func (s *PostgresStore) Get(ctx context.Context, table, key string) (*Envelope, error) {
	executor := dbmetrics.GetExecutor(ctx, s.db)

	query, args, err := psqlbuilder.Select("table_name", "record_key", "data", "saved_at").
		From("records").
		Where(squirrel.Eq{"table_name": table, "record_key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var env Envelope
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&env.Table,
		&env.Key,
		&env.Data,
		&env.SavedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: table=%s key=%s", ErrRecordNotFound, table, key)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan record: %v", ErrScanRow, err)
	}

	return &env, nil
}

// QueryByPrefix возвращает записи таблицы, ключ которых содержит partialKey
func (s *PostgresStore) QueryByPrefix(ctx context.Context, table, partialKey string) ([]Envelope, error) {
	executor := dbmetrics.GetExecutor(ctx, s.db)

	selectBuilder := psqlbuilder.Select("table_name", "record_key", "data", "saved_at").
		From("records").
		Where(squirrel.Eq{"table_name": table}).
		OrderBy("record_key ASC")

	if partialKey != "" {
		selectBuilder = selectBuilder.Where(squirrel.Like{"record_key": "%" + partialKey + "%"})
	}

	// Внутри транзакции блокируем записи для проверки доступности слота
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: QueryByPrefix - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: QueryByPrefix - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanEnvelopes(rows)
}

// Delete удаляет запись
func (s *PostgresStore) Delete(ctx context.Context, table, key string) error {
	executor := dbmetrics.GetExecutor(ctx, s.db)

	query, args, err := psqlbuilder.Delete("records").
		Where(squirrel.Eq{"table_name": table, "record_key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: table=%s key=%s", ErrRecordNotFound, table, key)
	}

	return nil
}

// Export возвращает полный снимок хранилища
func (s *PostgresStore) Export(ctx context.Context) (*Snapshot, error) {
	executor := dbmetrics.GetExecutor(ctx, s.db)

	query, args, err := psqlbuilder.Select("table_name", "record_key", "data", "saved_at").
		From("records").
		OrderBy("table_name ASC, record_key ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Export - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Export - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	envs, err := scanEnvelopes(rows)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		ID:         uuid.NewString(),
		Version:    SnapshotVersion,
		ExportedAt: time.Now().UTC(),
		Tables:     make(map[string][]Envelope),
	}
	for _, env := range envs {
		snap.Tables[env.Table] = append(snap.Tables[env.Table], env)
	}

	return snap, nil
}

// Import проигрывает записи снимка, частичный успех отражается в отчёте
func (s *PostgresStore) Import(ctx context.Context, snap *Snapshot) (*ImportReport, error) {
	if snap == nil {
		return nil, fmt.Errorf("%w: snapshot is nil", ErrInvalidSnapshot)
	}

	report := NewImportReport()
	executor := dbmetrics.GetExecutor(ctx, s.db)

	for table, envs := range snap.Tables {
		for _, env := range envs {
			if env.Key == "" || !json.Valid(env.Data) {
				report.Errors = append(report.Errors, ImportError{
					Table:   table,
					Key:     env.Key,
					Message: "malformed record",
				})
				continue
			}

			// Last-write-wins по saved_at
			query, args, err := psqlbuilder.Insert("records").
				Columns("table_name", "record_key", "data", "saved_at").
				Values(table, env.Key, []byte(env.Data), env.SavedAt).
				Suffix("ON CONFLICT (table_name, record_key) DO UPDATE SET data = EXCLUDED.data, saved_at = EXCLUDED.saved_at WHERE records.saved_at <= EXCLUDED.saved_at").
				ToSql()
			if err != nil {
				report.Errors = append(report.Errors, ImportError{Table: table, Key: env.Key, Message: err.Error()})
				continue
			}

			if _, err := executor.ExecContext(ctx, query, args...); err != nil {
				report.Errors = append(report.Errors, ImportError{Table: table, Key: env.Key, Message: err.Error()})
				continue
			}
			report.Imported[table]++
		}
	}

	return report, nil
}

// DoSerializable выполняет fn в сериализуемой транзакции БД
func (s *PostgresStore) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return s.tx.DoSerializable(ctx, fn)
}

// scanEnvelopes сканирует результаты запроса в слайс записей
func scanEnvelopes(rows *sql.Rows) ([]Envelope, error) {
	envs := make([]Envelope, 0)

	for rows.Next() {
		var env Envelope
		if err := rows.Scan(&env.Table, &env.Key, &env.Data, &env.SavedAt); err != nil {
			return nil, fmt.Errorf("%w: scanEnvelopes - scan row: %v", ErrScanRow, err)
		}
		envs = append(envs, env)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanEnvelopes - rows error: %v", ErrScanRow, err)
	}

	return envs, nil
}
