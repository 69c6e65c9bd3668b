package sqlite

import (
	"context"
	"database/sql"
	"time"

	"shift-bot/internal/domain"
)

// SqliteShiftRepo — локальный бэкенд для развёртываний без общей
// таблицы. Времена хранятся тем же текстовым форматом, что и в листе.
type SqliteShiftRepo struct {
	db  *sql.DB
	loc *time.Location
}

func NewSqliteShiftRepo(db *sql.DB, loc *time.Location) *SqliteShiftRepo {
	return &SqliteShiftRepo{db: db, loc: loc}
}

func (r *SqliteShiftRepo) ByIdentity(ctx context.Context, stableID string) ([]domain.ShiftRow, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, identity, nickname, started_at, ended_at, worked FROM shifts WHERE identity = ? ORDER BY id`,
		stableID,
	)
	if err != nil {
		return nil, &domain.StoreError{Op: "select shifts", Err: err}
	}
	defer rows.Close()

	var out []domain.ShiftRow
	for rows.Next() {
		var s domain.ShiftRow
		var startedAt, endedAt string
		if err := rows.Scan(&s.Ref, &s.Identity, &s.Nickname, &startedAt, &endedAt, &s.Worked); err != nil {
			return nil, &domain.StoreError{Op: "scan shift", Err: err}
		}
		s.StartedAt, err = time.ParseInLocation(domain.TimeLayout, startedAt, r.loc)
		if err != nil {
			return nil, &domain.StoreError{Op: "parse shift started_at", Err: err}
		}
		if endedAt != "" {
			s.EndedAt, err = time.ParseInLocation(domain.TimeLayout, endedAt, r.loc)
			if err != nil {
				return nil, &domain.StoreError{Op: "parse shift ended_at", Err: err}
			}
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.StoreError{Op: "select shifts", Err: err}
	}
	return out, nil
}

func (r *SqliteShiftRepo) Append(ctx context.Context, s domain.ShiftRow) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO shifts (identity, nickname, started_at, ended_at, worked) VALUES (?, ?, ?, '', '')`,
		s.Identity,
		s.Nickname,
		s.StartedAt.Format(domain.TimeLayout),
	)
	if err != nil {
		return &domain.StoreError{Op: "insert shift", Err: err}
	}
	return nil
}

func (r *SqliteShiftRepo) Close(ctx context.Context, s domain.ShiftRow) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE shifts SET ended_at = ?, worked = ?, nickname = ? WHERE id = ?`,
		s.EndedAt.Format(domain.TimeLayout),
		s.Worked,
		s.Nickname,
		s.Ref,
	)
	if err != nil {
		return &domain.StoreError{Op: "close shift", Err: err}
	}
	return nil
}
