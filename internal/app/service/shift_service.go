package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"shift-bot/internal/domain"
)

// ShiftLedger — машина состояний смен: NONE -> OPEN -> CLOSED.
// Инвариант: на один ключ не больше одной открытой смены. Хранилище
// общее и без транзакций, поэтому каждая операция перечитывает ряды
// заново; гонка двух одновременных Start на один ключ остаётся
// возможной — блокировок поверх хранилища нет.
type ShiftLedger struct {
	Repo domain.ShiftRepo
	Log  *zap.Logger
}

func NewShiftLedger(repo domain.ShiftRepo, log *zap.Logger) *ShiftLedger {
	return &ShiftLedger{Repo: repo, Log: log}
}

// Start открывает смену. Любой найденный открытый ряд означает отказ,
// даже если инвариант был нарушен внешней записью.
func (s *ShiftLedger) Start(ctx context.Context, id domain.Identity, now time.Time) (domain.ShiftRow, error) {
	rows, err := s.Repo.ByIdentity(ctx, id.StableID)
	if err != nil {
		s.Log.Error("start shift: read failed", zap.String("identity", id.StableID), zap.Error(err))
		return domain.ShiftRow{}, err
	}
	for _, r := range rows {
		if r.Open() {
			return domain.ShiftRow{}, domain.ErrAlreadyActive
		}
	}
	row := domain.ShiftRow{
		Identity:  id.StableID,
		Nickname:  id.Nickname,
		StartedAt: now.Truncate(time.Second),
	}
	if err := s.Repo.Append(ctx, row); err != nil {
		s.Log.Error("start shift: append failed", zap.String("identity", id.StableID), zap.Error(err))
		return domain.ShiftRow{}, err
	}
	return row, nil
}

// End закрывает последнюю открытую смену и возвращает строку
// отработанного времени.
func (s *ShiftLedger) End(ctx context.Context, id domain.Identity, now time.Time) (string, error) {
	open, ok, err := s.Active(ctx, id.StableID)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", domain.ErrNoActiveShift
	}

	now = now.Truncate(time.Second)
	worked := now.Sub(open.StartedAt)
	if worked < 0 {
		// Часы разъехались либо в ряду битое время начала. Считаем по
		// модулю и оставляем след для оператора, не роняя закрытие.
		s.Log.Warn("shift ends before it started",
			zap.String("identity", id.StableID),
			zap.Time("started_at", open.StartedAt),
			zap.Time("ended_at", now),
		)
	}
	open.EndedAt = now
	open.Worked = domain.FormatWorked(worked)
	open.Nickname = id.Nickname

	if err := s.Repo.Close(ctx, open); err != nil {
		s.Log.Error("end shift: close failed", zap.String("identity", id.StableID), zap.Error(err))
		return "", err
	}
	return open.Worked, nil
}

// Active находит открытую смену. При нескольких открытых рядах
// авторитетен последний добавленный.
func (s *ShiftLedger) Active(ctx context.Context, stableID string) (domain.ShiftRow, bool, error) {
	rows, err := s.Repo.ByIdentity(ctx, stableID)
	if err != nil {
		return domain.ShiftRow{}, false, err
	}
	for i := len(rows) - 1; i >= 0; i-- {
		if rows[i].Open() {
			return rows[i], true, nil
		}
	}
	return domain.ShiftRow{}, false, nil
}

// History возвращает все смены ключа в порядке вставки.
func (s *ShiftLedger) History(ctx context.Context, stableID string) ([]domain.ShiftRow, error) {
	return s.Repo.ByIdentity(ctx, stableID)
}
