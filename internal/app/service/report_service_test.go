package service

import (
	"context"
	"fmt"
	"strings"
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

func TestReportBuilder(t *testing.T) {
	ctx := context.Background()
	caller := domain.Identity{StableID: "alice", Nickname: "Алиса"}

	t.Run("no history", func(t *testing.T) {
		ledger, _ := newLedger(t)
		_, err := NewReportBuilder(ledger).Build(ctx, caller)
		assert.ErrorIs(t, err, domain.ErrNoHistory)
	})

	t.Run("closed and open shifts are listed", func(t *testing.T) {
		ledger, _ := newLedger(t)
		start := time.Date(2025, 3, 13, 9, 0, 0, 0, time.UTC)
		_, err := ledger.Start(ctx, caller, start)
		require.NoError(t, err)
		_, err = ledger.End(ctx, caller, start.Add(8*time.Hour+30*time.Minute))
		require.NoError(t, err)
		_, err = ledger.Start(ctx, caller, start.Add(24*time.Hour))
		require.NoError(t, err)

		text, err := NewReportBuilder(ledger).Build(ctx, caller)
		require.NoError(t, err)
		assert.Contains(t, text, "alice (Алиса)")
		assert.Contains(t, text, "2025-03-13 09:00:00 ➝ 2025-03-13 17:30:00 ⏳ 8ч 30мин")
		assert.Contains(t, text, "2025-03-14 09:00:00 ➝ — ⏳ —")
	})

	t.Run("capped at the most recent entries", func(t *testing.T) {
		rows := []domain.Row{schema.Shifts.Header}
		for i := 0; i < MaxReportEntries+5; i++ {
			day := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC).AddDate(0, 0, i)
			rows = append(rows, domain.Row{
				"alice",
				day.Format(domain.TimeLayout),
				day.Add(8 * time.Hour).Format(domain.TimeLayout),
				"8ч 0мин",
				"",
			})
		}
		store := memtable.New(rows...)
		ledger := NewShiftLedger(table.NewShiftRepo(store, time.UTC), zap.NewNop())

		text, err := NewReportBuilder(ledger).Build(ctx, caller)
		require.NoError(t, err)
		lines := strings.Count(text, "📅")
		assert.Equal(t, MaxReportEntries, lines)
		// Остаются самые свежие записи.
		assert.NotContains(t, text, "2025-01-01")
		assert.Contains(t, text, fmt.Sprintf("2025-01-%02d", MaxReportEntries+5))
	})
}
