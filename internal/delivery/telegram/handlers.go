package telegram

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"gopkg.in/telebot.v3"

	"shift-bot/internal/app/service"
	"shift-bot/internal/delivery/telegram/middleware"
	"shift-bot/internal/delivery/telegram/router"
	"shift-bot/internal/domain"
	"shift-bot/pkg/calendar"
)

type Handler struct {
	Bot      *telebot.Bot
	Ledger   *service.ShiftLedger
	Journal  *service.LeaveJournal
	Reports  *service.ReportBuilder
	Async    *service.AsyncService
	Calendar *calendar.CalendarController
	Router   *router.CallbackRouter
	Log      *zap.Logger
	Loc      *time.Location

	// chatID -> черновик заявки на отпуск (календарный сценарий /leave)
	mu           sync.Mutex
	pendingLeave map[int64]*leaveDraft
}

type leaveDraft struct {
	start time.Time
	end   time.Time
}

func (h *Handler) Register() {
	h.pendingLeave = make(map[int64]*leaveDraft)

	h.Bot.Handle("/startshift", h.handleStartShift)
	h.Bot.Handle("/endshift", h.handleEndShift)
	h.Bot.Handle("/leave", h.handleLeave)
	h.Bot.Handle("/report", h.handleReport)
	h.Bot.Handle("/documents", h.handleDocuments)
	h.Bot.Handle(telebot.OnText, h.handleText)

	h.Calendar.OnDate = h.onLeaveDate
	h.Router.CalDelegate = h.Calendar.Dispatch
	h.Router.Attach(h.Bot)
}

func (h *Handler) handleStartShift(c telebot.Context) error {
	id, err := identityFromContext(c)
	if err != nil {
		return c.Send(msgGenericFault)
	}
	now := time.Now().In(h.Loc)
	h.Log.Info("startshift", zap.String("identity", id.StableID))

	res, err := h.Async.SubmitAsync(context.Background(), func() (any, error) {
		return h.Ledger.Start(context.Background(), id, now)
	})
	if err != nil {
		return c.Send(renderError(err, now))
	}
	row := res.(domain.ShiftRow)
	return c.Send(msgShiftStarted(id.Label(), row.StartedAt))
}

func (h *Handler) handleEndShift(c telebot.Context) error {
	id, err := identityFromContext(c)
	if err != nil {
		return c.Send(msgGenericFault)
	}
	now := time.Now().In(h.Loc)
	h.Log.Info("endshift", zap.String("identity", id.StableID))

	res, err := h.Async.SubmitAsync(context.Background(), func() (any, error) {
		return h.Ledger.End(context.Background(), id, now)
	})
	if err != nil {
		return c.Send(renderError(err, now))
	}
	return c.Send(msgShiftEnded(id.Label(), now.Truncate(time.Second), res.(string)))
}

func (h *Handler) handleLeave(c telebot.Context) error {
	payload := strings.TrimSpace(c.Message().Payload)
	if payload == "" {
		// Без аргументов — календарный сценарий: дата начала, дата
		// конца, причина текстом.
		h.mu.Lock()
		h.pendingLeave[c.Chat().ID] = &leaveDraft{}
		h.mu.Unlock()
		_ = c.Send("Изберете начална дата на отпуска:")
		return h.Calendar.ShowCalendar(c)
	}

	parts := strings.Fields(payload)
	if len(parts) < 3 {
		return c.Send(msgLeaveUsage)
	}
	return h.submitLeave(c, parts[0], parts[1], strings.Join(parts[2:], " "))
}

func (h *Handler) onLeaveDate(date time.Time, c telebot.Context) error {
	h.mu.Lock()
	draft, ok := h.pendingLeave[c.Chat().ID]
	h.mu.Unlock()
	if !ok {
		return nil // календарь от устаревшего сообщения
	}
	if draft.start.IsZero() {
		draft.start = date
		_ = c.Send("📅 Начална дата: " + date.Format(domain.LeaveDateLayout) + ". Изберете крайна дата:")
		return calendar.SendCalendar(c, date.Year(), int(date.Month()))
	}
	draft.end = date
	return middleware.EditOrSend(c, "📅 Крайна дата: "+date.Format(domain.LeaveDateLayout)+". Въведете причина за отпуска:", nil)
}

func (h *Handler) handleText(c telebot.Context) error {
	h.mu.Lock()
	draft, ok := h.pendingLeave[c.Chat().ID]
	if ok && (draft.start.IsZero() || draft.end.IsZero()) {
		ok = false // ещё выбираются даты, текст не причина
	}
	if ok {
		delete(h.pendingLeave, c.Chat().ID)
	}
	h.mu.Unlock()
	if !ok {
		return nil
	}
	return h.submitLeave(c,
		draft.start.Format(domain.LeaveDateLayout),
		draft.end.Format(domain.LeaveDateLayout),
		c.Text(),
	)
}

func (h *Handler) submitLeave(c telebot.Context, startStr, endStr, reason string) error {
	id, err := identityFromContext(c)
	if err != nil {
		return c.Send(msgGenericFault)
	}
	today := time.Now().In(h.Loc)
	h.Log.Info("leave", zap.String("identity", id.StableID), zap.String("from", startStr), zap.String("to", endStr))

	res, err := h.Async.SubmitAsync(context.Background(), func() (any, error) {
		return h.Journal.Request(context.Background(), id, startStr, endStr, reason, today)
	})
	if err != nil {
		return c.Send(renderError(err, today))
	}
	return c.Send(msgLeaveApproved(res.(domain.LeaveRow)))
}

func (h *Handler) handleReport(c telebot.Context) error {
	id, err := identityFromContext(c)
	if err != nil {
		return c.Send(msgGenericFault)
	}
	h.Log.Info("report", zap.String("identity", id.StableID))

	res, err := h.Async.SubmitAsync(context.Background(), func() (any, error) {
		return h.Reports.Build(context.Background(), id)
	})
	if err != nil {
		return c.Send(renderError(err, time.Now().In(h.Loc)))
	}
	return c.Send(res.(string))
}

func (h *Handler) handleDocuments(c telebot.Context) error {
	return c.Send(msgDocuments)
}
