package telegram

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"shift-bot/internal/domain"
)

func TestRenderError(t *testing.T) {
	today := time.Date(2025, 3, 13, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, msgAlreadyActive, renderError(domain.ErrAlreadyActive, today))
	assert.Equal(t, msgNoActiveShift, renderError(domain.ErrNoActiveShift, today))
	assert.Equal(t, msgNoHistory, renderError(domain.ErrNoHistory, today))
	assert.Equal(t, msgBadDate, renderError(domain.ErrInvalidDate, today))
	assert.Equal(t, msgBadRange, renderError(domain.ErrInvalidRange, today))
	assert.Equal(t, msgNoReason, renderError(domain.ErrMissingReason, today))

	assert.Contains(t, renderError(domain.ErrTooFarInPast, today), "12.03.2025")

	storeErr := &domain.StoreError{Op: "close shift", Partial: true, Err: errors.New("api down")}
	assert.Equal(t, msgStoreFault, renderError(storeErr, today))

	assert.Equal(t, msgGenericFault, renderError(errors.New("nope"), today))
}

func TestShiftReplies(t *testing.T) {
	at := time.Date(2025, 3, 13, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, "✅ alice (Алиса) започна смяната в 2025-03-13 09:00:00", msgShiftStarted("alice (Алиса)", at))

	ended := msgShiftEnded("alice", at.Add(8*time.Hour+30*time.Minute), "8ч 30мин")
	assert.Contains(t, ended, "приключи смяната в 2025-03-13 17:30:00")
	assert.Contains(t, ended, "(⏳ 8ч 30мин)")
	assert.Contains(t, ended, "Благодарим ви")
}

func TestLeaveReply(t *testing.T) {
	msg := msgLeaveApproved(domain.LeaveRow{
		Label:     "alice",
		StartDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		TotalDays: 3,
		Reason:    "обучение",
	})
	assert.Contains(t, msg, "от 01.03.2025 до 03.03.2025 (3 дни)")
	assert.Contains(t, msg, "Причина:** обучение")
}
