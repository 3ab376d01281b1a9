package records

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	Name string `json:"name"`
}

func TestMemoryStore_SaveGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, TableEmployees, "emp_001", testRecord{Name: "Иванов"}))

	env, err := store.Get(ctx, TableEmployees, "emp_001")
	require.NoError(t, err)
	assert.Equal(t, TableEmployees, env.Table)
	assert.Equal(t, "emp_001", env.Key)
	assert.False(t, env.SavedAt.IsZero())

	var got testRecord
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "Иванов", got.Name)
}

func TestMemoryStore_GetMissing(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), TableEmployees, "emp_404")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestMemoryStore_QueryByPrefix(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, TableBookings, BookingKey("emp_002", "book_001"), testRecord{}))
	require.NoError(t, store.Save(ctx, TableBookings, BookingKey("emp_001", "book_002"), testRecord{}))
	require.NoError(t, store.Save(ctx, TableBookings, BookingKey("emp_001", "book_003"), testRecord{}))

	t.Run("partial key matches anywhere in the key", func(t *testing.T) {
		envs, err := store.QueryByPrefix(ctx, TableBookings, "emp_001")
		require.NoError(t, err)
		require.Len(t, envs, 2)
		assert.Equal(t, "emp_001__book_002", envs[0].Key)
		assert.Equal(t, "emp_001__book_003", envs[1].Key)
	})

	t.Run("empty partial key returns the whole table sorted", func(t *testing.T) {
		envs, err := store.QueryByPrefix(ctx, TableBookings, "")
		require.NoError(t, err)
		require.Len(t, envs, 3)
		assert.Equal(t, "emp_001__book_002", envs[0].Key)
		assert.Equal(t, "emp_002__book_001", envs[2].Key)
	})

	t.Run("unknown table is empty, not an error", func(t *testing.T) {
		envs, err := store.QueryByPrefix(ctx, "unknown", "")
		require.NoError(t, err)
		assert.Empty(t, envs)
	})
}

func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, TableEmployees, "emp_001", testRecord{}))
	require.NoError(t, store.Delete(ctx, TableEmployees, "emp_001"))

	_, err := store.Get(ctx, TableEmployees, "emp_001")
	assert.ErrorIs(t, err, ErrRecordNotFound)

	assert.ErrorIs(t, store.Delete(ctx, TableEmployees, "emp_001"), ErrRecordNotFound)
}

func TestMemoryStore_ExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()

	src := NewMemoryStore()
	require.NoError(t, src.Save(ctx, TableEmployees, "emp_001", testRecord{Name: "Иванов"}))
	require.NoError(t, src.Save(ctx, TableSchedules, "emp_001", testRecord{Name: "шаблон"}))
	require.NoError(t, src.Save(ctx, TableBookings, BookingKey("emp_001", "book_001"), testRecord{}))

	snap, err := src.Export(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, snap.ID)
	assert.Equal(t, SnapshotVersion, snap.Version)
	assert.Equal(t, 3, snap.TotalRecords())

	dst := NewMemoryStore()
	report, err := dst.Import(ctx, snap)
	require.NoError(t, err)
	assert.Empty(t, report.Errors)
	assert.Equal(t, 1, report.Imported[TableEmployees])
	assert.Equal(t, 1, report.Imported[TableSchedules])
	assert.Equal(t, 1, report.Imported[TableBookings])

	env, err := dst.Get(ctx, TableEmployees, "emp_001")
	require.NoError(t, err)

	var got testRecord
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "Иванов", got.Name)
}

func TestMemoryStore_ImportLastWriteWins(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 4, 15, 12, 0, 0, 0, time.UTC)

	store := NewMemoryStore().WithClock(func() time.Time { return now })
	require.NoError(t, store.Save(ctx, TableEmployees, "emp_001", testRecord{Name: "свежая"}))

	stale := &Snapshot{
		ID:      "snap-stale",
		Version: SnapshotVersion,
		Tables: map[string][]Envelope{
			TableEmployees: {{
				Key:     "emp_001",
				Data:    json.RawMessage(`{"name":"устаревшая"}`),
				SavedAt: now.Add(-time.Hour),
			}},
		},
	}

	report, err := store.Import(ctx, stale)
	require.NoError(t, err)
	assert.Zero(t, report.Imported[TableEmployees])

	env, err := store.Get(ctx, TableEmployees, "emp_001")
	require.NoError(t, err)

	var got testRecord
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "свежая", got.Name)

	fresh := &Snapshot{
		ID:      "snap-fresh",
		Version: SnapshotVersion,
		Tables: map[string][]Envelope{
			TableEmployees: {{
				Key:     "emp_001",
				Data:    json.RawMessage(`{"name":"новее"}`),
				SavedAt: now.Add(time.Hour),
			}},
		},
	}

	report, err = store.Import(ctx, fresh)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Imported[TableEmployees])
}

func TestMemoryStore_ImportPartialFailure(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	snap := &Snapshot{
		ID:      "snap-mixed",
		Version: SnapshotVersion,
		Tables: map[string][]Envelope{
			TableEmployees: {
				{Key: "emp_001", Data: json.RawMessage(`{"name":"ok"}`), SavedAt: time.Now()},
				{Key: "", Data: json.RawMessage(`{}`), SavedAt: time.Now()},
				{Key: "emp_002", Data: json.RawMessage(`{broken`), SavedAt: time.Now()},
			},
		},
	}

	report, err := store.Import(ctx, snap)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Imported[TableEmployees])
	require.Len(t, report.Errors, 2)

	_, err = store.Get(ctx, TableEmployees, "emp_001")
	assert.NoError(t, err)
	_, err = store.Get(ctx, TableEmployees, "emp_002")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestMemoryStore_ImportNilSnapshot(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Import(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInvalidSnapshot)
}

func TestMemoryStore_DoSerializable(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	err := store.DoSerializable(ctx, func(ctx context.Context) error {
		return store.Save(ctx, TableEmployees, "emp_001", testRecord{})
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = store.DoSerializable(ctx, func(ctx context.Context) error { return boom })
	assert.ErrorIs(t, err, boom)
}
