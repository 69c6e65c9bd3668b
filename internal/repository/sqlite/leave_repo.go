package sqlite

import (
	"context"
	"database/sql"

	"shift-bot/internal/domain"
)

type SqliteLeaveRepo struct {
	db *sql.DB
}

func NewSqliteLeaveRepo(db *sql.DB) *SqliteLeaveRepo {
	return &SqliteLeaveRepo{db: db}
}

func (r *SqliteLeaveRepo) Append(ctx context.Context, l domain.LeaveRow) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO leaves (label, start_date, end_date, total_days, reason) VALUES (?, ?, ?, ?, ?)`,
		l.Label,
		l.StartDate.Format(domain.DateLayout),
		l.EndDate.Format(domain.DateLayout),
		l.TotalDays,
		l.Reason,
	)
	if err != nil {
		return &domain.StoreError{Op: "insert leave", Err: err}
	}
	return nil
}
