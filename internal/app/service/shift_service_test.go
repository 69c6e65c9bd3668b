package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"shift-bot/internal/domain"
	"shift-bot/internal/repository/memtable"
	"shift-bot/internal/repository/table"
	"shift-bot/internal/schema"
)

func newLedger(t *testing.T) (*ShiftLedger, *memtable.Store) {
	t.Helper()
	store := memtable.New()
	require.NoError(t, schema.Ensure(context.Background(), store, schema.Shifts))
	repo := table.NewShiftRepo(store, time.UTC)
	return NewShiftLedger(repo, zap.NewNop()), store
}

func id(stable, nick string) domain.Identity {
	return domain.Identity{StableID: stable, Nickname: nick}
}

func TestShiftLedgerStartEnd(t *testing.T) {
	ctx := context.Background()
	ledger, _ := newLedger(t)

	start := time.Date(2025, 3, 13, 9, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 13, 17, 30, 0, 0, time.UTC)

	row, err := ledger.Start(ctx, id("alice", "Алиса"), start)
	require.NoError(t, err)
	assert.Equal(t, start, row.StartedAt)

	worked, err := ledger.End(ctx, id("alice", "Алиса"), end)
	require.NoError(t, err)
	assert.Equal(t, "8ч 30мин", worked)

	// Смена закрыта: новая открывается без конфликта.
	_, err = ledger.Start(ctx, id("alice", "Алиса"), end.Add(time.Hour))
	require.NoError(t, err)
}

func TestShiftLedgerSecondStartRefused(t *testing.T) {
	ctx := context.Background()
	ledger, store := newLedger(t)

	start := time.Date(2025, 3, 13, 9, 0, 0, 0, time.UTC)
	_, err := ledger.Start(ctx, id("alice", ""), start)
	require.NoError(t, err)

	writes := store.Writes()
	_, err = ledger.Start(ctx, id("alice", ""), start.Add(time.Minute))
	assert.ErrorIs(t, err, domain.ErrAlreadyActive)
	assert.Equal(t, writes, store.Writes())

	// Чужая смена не мешает.
	_, err = ledger.Start(ctx, id("bob", ""), start)
	require.NoError(t, err)
}

func TestShiftLedgerEndWithoutStart(t *testing.T) {
	ctx := context.Background()
	ledger, store := newLedger(t)

	writes := store.Writes()
	_, err := ledger.End(ctx, id("alice", ""), time.Now())
	assert.ErrorIs(t, err, domain.ErrNoActiveShift)
	assert.Equal(t, writes, store.Writes())
}

func TestShiftLedgerActive(t *testing.T) {
	ctx := context.Background()
	ledger, _ := newLedger(t)

	start := time.Date(2025, 3, 13, 9, 0, 0, 0, time.UTC)
	_, err := ledger.Start(ctx, id("alice", ""), start)
	require.NoError(t, err)

	active, ok, err := ledger.Active(ctx, "alice")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, start, active.StartedAt)

	_, ok, err = ledger.Active(ctx, "bob")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestShiftLedgerMostRecentOpenRowWins(t *testing.T) {
	// Нарушенный внешней записью инвариант: два открытых ряда.
	// Закрывается последний добавленный, старый остаётся как есть.
	ctx := context.Background()
	store := memtable.New(
		schema.Shifts.Header,
		domain.Row{"alice", "2025-03-12 09:00:00", "", "", ""},
		domain.Row{"alice", "2025-03-13 09:00:00", "", "", ""},
	)
	ledger := NewShiftLedger(table.NewShiftRepo(store, time.UTC), zap.NewNop())

	end := time.Date(2025, 3, 13, 10, 0, 0, 0, time.UTC)
	worked, err := ledger.End(ctx, id("alice", ""), end)
	require.NoError(t, err)
	assert.Equal(t, "1ч 0мин", worked)

	rows, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", rows[1].Cell(2))
	assert.Equal(t, "2025-03-13 10:00:00", rows[2].Cell(2))

	// Пока жив хоть один открытый ряд, новый старт невозможен.
	_, err = ledger.Start(ctx, id("alice", ""), end.Add(time.Hour))
	assert.ErrorIs(t, err, domain.ErrAlreadyActive)
}

func TestShiftLedgerClockSkew(t *testing.T) {
	ctx := context.Background()
	ledger, _ := newLedger(t)

	start := time.Date(2025, 3, 13, 10, 30, 0, 0, time.UTC)
	_, err := ledger.Start(ctx, id("alice", ""), start)
	require.NoError(t, err)

	// Часы уехали назад: длительность по модулю, закрытие не падает.
	worked, err := ledger.End(ctx, id("alice", ""), start.Add(-70*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, "1ч 10мин", worked)
}

func TestShiftLedgerCloseFaultIsNotSuccess(t *testing.T) {
	ctx := context.Background()
	ledger, store := newLedger(t)

	start := time.Date(2025, 3, 13, 9, 0, 0, 0, time.UTC)
	_, err := ledger.Start(ctx, id("alice", ""), start)
	require.NoError(t, err)

	boom := errors.New("api down")
	store.UpdateErr = func(row, col int) error {
		if col == 3 {
			return boom
		}
		return nil
	}

	_, err = ledger.End(ctx, id("alice", ""), start.Add(time.Hour))
	var storeErr *domain.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.True(t, storeErr.Partial)
}

func TestShiftLedgerNicknameRefreshOnClose(t *testing.T) {
	ctx := context.Background()
	ledger, store := newLedger(t)

	start := time.Date(2025, 3, 13, 9, 0, 0, 0, time.UTC)
	_, err := ledger.Start(ctx, id("alice", "Алиса"), start)
	require.NoError(t, err)

	_, err = ledger.End(ctx, id("alice", "Алиса Нова"), start.Add(time.Hour))
	require.NoError(t, err)

	rows, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Алиса Нова", rows[1].Cell(4))
}
