package counter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/v-lavrov/RS-SchedulerService/internal/domain"
	"github.com/v-lavrov/RS-SchedulerService/internal/infra/storage/records"
)

func TestNext(t *testing.T) {
	repo := NewRepository(records.NewMemoryStore())
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		n, err := repo.Next(ctx, domain.CounterBookings)
		require.NoError(t, err)
		assert.Equal(t, want, n)
	}
}

func TestNext_IndependentKinds(t *testing.T) {
	repo := NewRepository(records.NewMemoryStore())
	ctx := context.Background()

	_, err := repo.Next(ctx, domain.CounterBookings)
	require.NoError(t, err)
	_, err = repo.Next(ctx, domain.CounterBookings)
	require.NoError(t, err)

	n, err := repo.Next(ctx, domain.CounterEmployees)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestMintID(t *testing.T) {
	repo := NewRepository(records.NewMemoryStore())
	ctx := context.Background()

	id, err := repo.MintID(ctx, domain.CounterEmployees, domain.RefPrefixEmployee)
	require.NoError(t, err)
	assert.Equal(t, "emp_001", id)

	id, err = repo.MintID(ctx, domain.CounterEmployees, domain.RefPrefixEmployee)
	require.NoError(t, err)
	assert.Equal(t, "emp_002", id)

	// Счётчик переживает пересоздание репозитория поверх того же хранилища
	store := records.NewMemoryStore()
	first := NewRepository(store)
	_, err = first.MintID(ctx, domain.CounterBookings, domain.RefPrefixBooking)
	require.NoError(t, err)

	second := NewRepository(store)
	id, err = second.MintID(ctx, domain.CounterBookings, domain.RefPrefixBooking)
	require.NoError(t, err)
	assert.Equal(t, "book_002", id)
}
