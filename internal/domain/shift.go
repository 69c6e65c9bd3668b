package domain

import (
	"context"
	"fmt"
	"time"
)

// Форматы хранения.
const (
	TimeLayout      = "2006-01-02 15:04:05"
	DateLayout      = "2006-01-02"
	LeaveDateLayout = "02.01.2006"
)

// ShiftRow — одна смена. Нулевой EndedAt означает открытую смену.
type ShiftRow struct {
	Ref       int // адрес ряда в хранилище, 0 — ещё не записан
	Identity  string
	Nickname  string
	StartedAt time.Time
	EndedAt   time.Time
	Worked    string
}

func (s ShiftRow) Open() bool { return s.EndedAt.IsZero() }

func (s ShiftRow) Label() string {
	return Identity{StableID: s.Identity, Nickname: s.Nickname}.Label()
}

type ShiftRepo interface {
	// ByIdentity возвращает все смены ключа в порядке вставки.
	ByIdentity(ctx context.Context, stableID string) ([]ShiftRow, error)
	Append(ctx context.Context, row ShiftRow) error
	// Close записывает EndedAt, Worked и обновлённый Nickname ряда row.Ref.
	Close(ctx context.Context, row ShiftRow) error
}

// FormatWorked отдаёт длительность как целые часы и минуты,
// остаток секунд отбрасывается.
func FormatWorked(d time.Duration) string {
	if d < 0 {
		d = -d
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dч %dмин", h, m)
}
