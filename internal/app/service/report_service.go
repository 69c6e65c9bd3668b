package service

import (
	"context"
	"strings"

	"shift-bot/internal/domain"
)

// MaxReportEntries ограничивает отчёт, чтобы ответ влезал в сообщение.
const MaxReportEntries = 15

// ReportBuilder собирает текстовый отчёт по сменам одного ключа.
type ReportBuilder struct {
	Ledger *ShiftLedger
}

func NewReportBuilder(ledger *ShiftLedger) *ReportBuilder {
	return &ReportBuilder{Ledger: ledger}
}

func (b *ReportBuilder) Build(ctx context.Context, id domain.Identity) (string, error) {
	rows, err := b.Ledger.History(ctx, id.StableID)
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", domain.ErrNoHistory
	}
	if len(rows) > MaxReportEntries {
		rows = rows[len(rows)-MaxReportEntries:]
	}

	var sb strings.Builder
	sb.WriteString("📋 **Отчет за работното време на " + id.Label() + ":**\n")
	for _, r := range rows {
		end, worked := "—", "—"
		if !r.Open() {
			end = r.EndedAt.Format(domain.TimeLayout)
			worked = r.Worked
		}
		sb.WriteString("📅 " + r.StartedAt.Format(domain.TimeLayout) + " ➝ " + end + " ⏳ " + worked + "\n")
	}
	return sb.String(), nil
}
