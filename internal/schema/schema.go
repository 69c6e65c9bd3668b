package schema

import (
	"context"

	"shift-bot/internal/domain"
)

// Раскладки листов. Имена колонок — исторические, совпадают с
// таблицей, которую уже ведёт организация.
var (
	Shifts = Table{
		Sheet:    "Shifts",
		Header:   domain.Row{"Потребител", "Начало", "Край", "Изработено време", "Ник"},
		Required: 4, // колонка "Ник" добавлена позже, старые листы без неё
	}
	Leaves = Table{
		Sheet:    "Leaves",
		Header:   domain.Row{"Потребител", "Начало на отпуска", "Край на отпуска", "Общо дни", "Причина"},
		Required: 5,
	}
)

type Table struct {
	Sheet    string
	Header   domain.Row
	Required int
}

// Ensure проверяет заголовок листа перед работой. Пустой лист получает
// заголовок, устаревшая раскладка (совпадающий префикс не короче
// Required) достраивается недостающими колонками с бэкфиллом пустых
// значений. Существующие ряды никогда не удаляются. Идемпотентна:
// на корректном заголовке не пишет ничего.
func Ensure(ctx context.Context, store domain.RowStore, t Table) error {
	rows, err := store.List(ctx)
	if err != nil {
		return &domain.StoreError{Op: "schema list " + t.Sheet, Err: err}
	}
	if len(rows) == 0 {
		if err := store.Append(ctx, t.Header); err != nil {
			return &domain.StoreError{Op: "schema append header " + t.Sheet, Err: err}
		}
		return nil
	}

	got := rows[0]
	if len(got) > len(t.Header) || len(got) < t.Required || !isPrefix(got, t.Header) {
		return &domain.SchemaError{Sheet: t.Sheet, Got: got, Want: t.Header}
	}
	if len(got) == len(t.Header) {
		return nil
	}

	// Устаревший префикс: достраиваем заголовок и пустые ячейки данных.
	for col := len(got); col < len(t.Header); col++ {
		if err := store.UpdateCell(ctx, 0, col, t.Header[col]); err != nil {
			return &domain.StoreError{Op: "schema extend header " + t.Sheet, Err: err}
		}
	}
	for i := 1; i < len(rows); i++ {
		for col := len(rows[i]); col < len(t.Header); col++ {
			if err := store.UpdateCell(ctx, i, col, ""); err != nil {
				return &domain.StoreError{Op: "schema backfill " + t.Sheet, Err: err}
			}
		}
	}
	return nil
}

func isPrefix(got, want domain.Row) bool {
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
