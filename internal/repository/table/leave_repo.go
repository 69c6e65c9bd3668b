package table

import (
	"context"
	"strconv"

	"shift-bot/internal/domain"
)

type LeaveRepo struct {
	store domain.RowStore
}

func NewLeaveRepo(store domain.RowStore) *LeaveRepo {
	return &LeaveRepo{store: store}
}

func (r *LeaveRepo) Append(ctx context.Context, l domain.LeaveRow) error {
	row := domain.Row{
		l.Label,
		l.StartDate.Format(domain.DateLayout),
		l.EndDate.Format(domain.DateLayout),
		strconv.Itoa(l.TotalDays),
		l.Reason,
	}
	if err := r.store.Append(ctx, row); err != nil {
		return &domain.StoreError{Op: "append leave", Err: err}
	}
	return nil
}
