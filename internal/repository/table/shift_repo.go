package table

import (
	"context"
	"time"

	"shift-bot/internal/domain"
)

// Колонки листа Shifts.
const (
	colIdentity = iota
	colStartedAt
	colEndedAt
	colWorked
	colNickname
)

// ShiftRepo хранит смены в общем табличном хранилище: одна смена —
// один ряд, открытая смена — пустые "Край" и "Изработено време".
type ShiftRepo struct {
	store domain.RowStore
	loc   *time.Location
}

func NewShiftRepo(store domain.RowStore, loc *time.Location) *ShiftRepo {
	return &ShiftRepo{store: store, loc: loc}
}

func (r *ShiftRepo) ByIdentity(ctx context.Context, stableID string) ([]domain.ShiftRow, error) {
	rows, err := r.store.List(ctx)
	if err != nil {
		return nil, &domain.StoreError{Op: "list shifts", Err: err}
	}
	var out []domain.ShiftRow
	for i, row := range rows {
		if i == 0 || row.Cell(colIdentity) != stableID {
			continue
		}
		s, err := r.parse(i, row)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *ShiftRepo) Append(ctx context.Context, s domain.ShiftRow) error {
	row := domain.Row{
		s.Identity,
		s.StartedAt.Format(domain.TimeLayout),
		"",
		"",
		s.Nickname,
	}
	if err := r.store.Append(ctx, row); err != nil {
		return &domain.StoreError{Op: "append shift", Err: err}
	}
	return nil
}

// Close пишет ячейки по одной — у хранилища нет многоячеечных
// транзакций. Сбой после первой записи возвращается как Partial:
// ряд остаётся неконсистентным и требует ручной правки.
func (r *ShiftRepo) Close(ctx context.Context, s domain.ShiftRow) error {
	if err := r.store.UpdateCell(ctx, s.Ref, colEndedAt, s.EndedAt.Format(domain.TimeLayout)); err != nil {
		return &domain.StoreError{Op: "close shift: ended_at", Err: err}
	}
	if err := r.store.UpdateCell(ctx, s.Ref, colWorked, s.Worked); err != nil {
		return &domain.StoreError{Op: "close shift: worked", Partial: true, Err: err}
	}
	if err := r.store.UpdateCell(ctx, s.Ref, colNickname, s.Nickname); err != nil {
		return &domain.StoreError{Op: "close shift: nickname", Partial: true, Err: err}
	}
	return nil
}

func (r *ShiftRepo) parse(ref int, row domain.Row) (domain.ShiftRow, error) {
	started, err := time.ParseInLocation(domain.TimeLayout, row.Cell(colStartedAt), r.loc)
	if err != nil {
		return domain.ShiftRow{}, &domain.StoreError{Op: "parse shift started_at", Err: err}
	}
	s := domain.ShiftRow{
		Ref:       ref,
		Identity:  row.Cell(colIdentity),
		Nickname:  row.Cell(colNickname),
		StartedAt: started,
		Worked:    row.Cell(colWorked),
	}
	if raw := row.Cell(colEndedAt); raw != "" {
		ended, err := time.ParseInLocation(domain.TimeLayout, raw, r.loc)
		if err != nil {
			return domain.ShiftRow{}, &domain.StoreError{Op: "parse shift ended_at", Err: err}
		}
		s.EndedAt = ended
	}
	return s, nil
}
