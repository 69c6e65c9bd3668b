package calendar

import (
	"strconv"
	"strings"
	"time"

	"gopkg.in/telebot.v3"
)

// CalendarController реализует инлайн-календарь выбора даты.
// OnDate вызывается при выборе дня; переключение месяцев календарь
// обрабатывает сам через Dispatch.
type CalendarController struct {
	Bot    *telebot.Bot
	OnDate func(time.Time, telebot.Context) error
}

// ShowCalendar отправляет календарь текущего месяца
func (cc *CalendarController) ShowCalendar(c telebot.Context) error {
	now := time.Now()
	return SendCalendar(c, now.Year(), int(now.Month()))
}

// SendCalendar строит и отправляет календарь за указанный месяц
func SendCalendar(c telebot.Context, year, month int) error {
	markup := &telebot.ReplyMarkup{}
	days := daysInMonth(year, month)
	var rows []telebot.Row
	week := telebot.Row{}
	for d := 1; d <= days; d++ {
		btn := markup.Data(strconv.Itoa(d), "cal_day", strconv.Itoa(d)+"-"+strconv.Itoa(month)+"-"+strconv.Itoa(year))
		week = append(week, btn)
		if len(week) == 7 {
			rows = append(rows, week)
			week = telebot.Row{}
		}
	}
	if len(week) > 0 {
		rows = append(rows, week)
	}
	prev := markup.Data("<", "cal_prev", strconv.Itoa(month-1)+"-"+strconv.Itoa(year))
	next := markup.Data(">", "cal_next", strconv.Itoa(month+1)+"-"+strconv.Itoa(year))
	rows = append(rows, telebot.Row{prev, next})
	markup.Inline(rows...)
	bgMonths := map[time.Month]string{
		time.January:   "Януари",
		time.February:  "Февруари",
		time.March:     "Март",
		time.April:     "Април",
		time.May:       "Май",
		time.June:      "Юни",
		time.July:      "Юли",
		time.August:    "Август",
		time.September: "Септември",
		time.October:   "Октомври",
		time.November:  "Ноември",
		time.December:  "Декември",
	}
	monthName := time.Month(month).String()
	if bg, ok := bgMonths[time.Month(month)]; ok {
		monthName = bg
	}
	title := "Изберете дата: " + monthName + " " + strconv.Itoa(year)
	if c.Callback() != nil {
		return c.Edit(title, markup)
	}
	return c.Send(title, markup)
}

// Dispatch обрабатывает календарные callback-коды (cal_day, cal_prev,
// cal_next), делегируется из общего роутера.
func (cc *CalendarController) Dispatch(c telebot.Context) error {
	raw := strings.TrimPrefix(c.Data(), "\f")
	split := strings.SplitN(raw, "|", 2)
	if len(split) != 2 {
		return nil
	}
	payload := split[1]
	switch split[0] {
	case "cal_day":
		parts := SplitDateData(payload)
		if len(parts) != 3 {
			return c.Send("Грешка при избор на дата", &telebot.ReplyMarkup{})
		}
		day, _ := strconv.Atoi(parts[0])
		month, _ := strconv.Atoi(parts[1])
		year, _ := strconv.Atoi(parts[2])
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		if cc.OnDate != nil {
			return cc.OnDate(date, c)
		}
		return nil
	case "cal_prev":
		month, year, ok := monthPayload(payload)
		if !ok {
			return c.Send("Грешка при избор на месец", &telebot.ReplyMarkup{})
		}
		if month < 1 {
			month = 12
			year--
		}
		return SendCalendar(c, year, month)
	case "cal_next":
		month, year, ok := monthPayload(payload)
		if !ok {
			return c.Send("Грешка при избор на месец", &telebot.ReplyMarkup{})
		}
		if month > 12 {
			month = 1
			year++
		}
		return SendCalendar(c, year, month)
	}
	return nil
}

func monthPayload(payload string) (month, year int, ok bool) {
	parts := SplitDateData(payload)
	if len(parts) != 2 {
		return 0, 0, false
	}
	month, _ = strconv.Atoi(parts[0])
	year, _ = strconv.Atoi(parts[1])
	return month, year, true
}

// SplitDateData разбивает строку даты на части
func SplitDateData(data string) []string {
	return strings.Split(data, "-")
}

func daysInMonth(year, month int) int {
	t := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
	return t.Day()
}
