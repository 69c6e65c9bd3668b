package table

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shift-bot/internal/domain"
	"shift-bot/internal/repository/memtable"
	"shift-bot/internal/schema"
)

func newStore(t *testing.T) *memtable.Store {
	t.Helper()
	store := memtable.New()
	require.NoError(t, schema.Ensure(context.Background(), store, schema.Shifts))
	return store
}

func TestShiftRepoRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	repo := NewShiftRepo(store, time.UTC)

	started := time.Date(2025, 3, 13, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Append(ctx, domain.ShiftRow{
		Identity:  "alice",
		Nickname:  "Алиса",
		StartedAt: started,
	}))

	rows, err := repo.ByIdentity(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, started, rows[0].StartedAt)
	assert.Equal(t, "Алиса", rows[0].Nickname)
	assert.True(t, rows[0].Open())
	assert.Equal(t, 1, rows[0].Ref)

	other, err := repo.ByIdentity(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestShiftRepoClose(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	repo := NewShiftRepo(store, time.UTC)

	started := time.Date(2025, 3, 13, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Append(ctx, domain.ShiftRow{Identity: "alice", StartedAt: started}))

	rows, err := repo.ByIdentity(ctx, "alice")
	require.NoError(t, err)
	row := rows[0]
	row.EndedAt = started.Add(8*time.Hour + 30*time.Minute)
	row.Worked = "8ч 30мин"
	row.Nickname = "Алиса"
	require.NoError(t, repo.Close(ctx, row))

	rows, err = repo.ByIdentity(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].Open())
	assert.Equal(t, "8ч 30мин", rows[0].Worked)
	assert.Equal(t, "Алиса", rows[0].Nickname)
}

func TestShiftRepoClosePartialFailure(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	repo := NewShiftRepo(store, time.UTC)

	started := time.Date(2025, 3, 13, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Append(ctx, domain.ShiftRow{Identity: "alice", StartedAt: started}))

	// Вторая запись ячейки (worked) отваливается после успешной первой.
	boom := errors.New("quota exceeded")
	store.UpdateErr = func(row, col int) error {
		if col == colWorked {
			return boom
		}
		return nil
	}

	rows, err := repo.ByIdentity(ctx, "alice")
	require.NoError(t, err)
	row := rows[0]
	row.EndedAt = started.Add(time.Hour)
	row.Worked = "1ч 0мин"

	err = repo.Close(ctx, row)
	var storeErr *domain.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.True(t, storeErr.Partial)
	assert.ErrorIs(t, err, boom)
}
