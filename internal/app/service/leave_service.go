package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"shift-bot/internal/domain"
)

// LeaveJournal валидирует и записывает заявки на отпуск. Журнал только
// на добавление.
type LeaveJournal struct {
	Repo domain.LeaveRepo
	Log  *zap.Logger
}

func NewLeaveJournal(repo domain.LeaveRepo, log *zap.Logger) *LeaveJournal {
	return &LeaveJournal{Repo: repo, Log: log}
}

// Request принимает даты в формате ДД.ММ.ГГГГ. Задним числом
// разрешён максимум один день от today.
func (j *LeaveJournal) Request(ctx context.Context, id domain.Identity, startStr, endStr, reason string, today time.Time) (domain.LeaveRow, error) {
	start, err := time.Parse(domain.LeaveDateLayout, startStr)
	if err != nil {
		return domain.LeaveRow{}, domain.ErrInvalidDate
	}
	end, err := time.Parse(domain.LeaveDateLayout, endStr)
	if err != nil {
		return domain.LeaveRow{}, domain.ErrInvalidDate
	}
	if end.Before(start) {
		return domain.LeaveRow{}, domain.ErrInvalidRange
	}
	if start.Before(MinLeaveStart(today)) {
		return domain.LeaveRow{}, domain.ErrTooFarInPast
	}
	if strings.TrimSpace(reason) == "" {
		return domain.LeaveRow{}, domain.ErrMissingReason
	}

	row := domain.LeaveRow{
		Label:     id.Label(),
		StartDate: start,
		EndDate:   end,
		TotalDays: int(end.Sub(start).Hours()/24) + 1,
		Reason:    reason,
	}
	if err := j.Repo.Append(ctx, row); err != nil {
		j.Log.Error("leave request: append failed", zap.String("identity", id.StableID), zap.Error(err))
		return domain.LeaveRow{}, err
	}
	return row, nil
}

// MinLeaveStart — самая ранняя допустимая дата начала отпуска:
// вчерашняя полночь относительно today. Даты заявок сравниваются как
// календарные дни в UTC, без сдвигов локальной зоны.
func MinLeaveStart(today time.Time) time.Time {
	y, m, d := today.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
}
