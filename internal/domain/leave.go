package domain

import (
	"context"
	"time"
)

// LeaveRow — заявка на отпуск. Журнал только на добавление,
// записанные заявки не меняются и не удаляются.
type LeaveRow struct {
	Label     string
	StartDate time.Time
	EndDate   time.Time
	TotalDays int
	Reason    string
}

type LeaveRepo interface {
	Append(ctx context.Context, row LeaveRow) error
}
