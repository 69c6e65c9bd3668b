package telegram

import (
	"errors"
	"fmt"
	"time"

	"shift-bot/internal/app/service"
	"shift-bot/internal/domain"
)

// Тексты ответов — болгарские, как в таблице организации.
const (
	msgAlreadyActive = "❌ Вече имаш активна смяна!"
	msgNoActiveShift = "❌ Няма започната смяна за приключване!"
	msgNoHistory     = "❌ Няма записано работно време!"
	msgBadDate       = "❌ Грешен формат на датите! Използвай **ДД.ММ.ГГГГ** (пример: 13.03.2025)"
	msgBadRange      = "❌ Грешка: Крайната дата трябва да е след началната!"
	msgNoReason      = "❌ Моля, предостави причина за отпуска!"
	msgStoreFault    = "❌ Възникна проблем с връзката към таблицата!"
	msgGenericFault  = "❌ Възникна грешка, опитай отново!"
	msgLeaveUsage    = "Използване: /leave <начална дата> <крайна дата> <причина>\nПример: /leave 13.03.2025 15.03.2025 семейни причини"

	msgEndShiftFooter = "\n\n💼 **Благодарим ви за днешната ви служба!**\n" +
		"Ако имате проблем или неразбирателство, моля свържете се с ръководството."

	msgDocuments = "**📜 Важни документи:**\n\n" +
		"📖 **Наказателен кодекс (Penal Code):**\n" +
		"🔗 https://docs.google.com/spreadsheets/d/1vyCQWnxKUPKknOsIpiXqU_-qC8vpLaHdDQIQu22hz2s/edit\n\n" +
		"📕 **Handbook (Ръководство):**\n" +
		"🔗 https://docs.google.com/document/d/1eEsR6jwpk0Y38Yw7vr22BlB1w9HiI3qtib-uy_YkWck/edit"
)

func msgShiftStarted(label string, startedAt time.Time) string {
	return fmt.Sprintf("✅ %s започна смяната в %s", label, startedAt.Format(domain.TimeLayout))
}

func msgShiftEnded(label string, endedAt time.Time, worked string) string {
	return fmt.Sprintf("✅ %s приключи смяната в %s (⏳ %s)%s", label, endedAt.Format(domain.TimeLayout), worked, msgEndShiftFooter)
}

func msgLeaveApproved(l domain.LeaveRow) string {
	return fmt.Sprintf("✅ %s заяви отпуск от %s до %s (%d дни)\n📝 **Причина:** %s",
		l.Label,
		l.StartDate.Format(domain.LeaveDateLayout),
		l.EndDate.Format(domain.LeaveDateLayout),
		l.TotalDays,
		l.Reason,
	)
}

func msgTooFarInPast(today time.Time) string {
	return fmt.Sprintf("❌ Не можеш да заявиш отпуск, започващ преди %s! Максимум 1 ден назад е позволен.",
		service.MinLeaveStart(today).Format(domain.LeaveDateLayout))
}

// renderError переводит доменную ошибку в ответ пользователю. Ошибки
// никогда не уходят в Telegram сырыми.
func renderError(err error, today time.Time) string {
	switch {
	case errors.Is(err, domain.ErrAlreadyActive):
		return msgAlreadyActive
	case errors.Is(err, domain.ErrNoActiveShift):
		return msgNoActiveShift
	case errors.Is(err, domain.ErrNoHistory):
		return msgNoHistory
	case errors.Is(err, domain.ErrInvalidDate):
		return msgBadDate
	case errors.Is(err, domain.ErrInvalidRange):
		return msgBadRange
	case errors.Is(err, domain.ErrTooFarInPast):
		return msgTooFarInPast(today)
	case errors.Is(err, domain.ErrMissingReason):
		return msgNoReason
	}
	var storeErr *domain.StoreError
	if errors.As(err, &storeErr) {
		return msgStoreFault
	}
	return msgGenericFault
}
