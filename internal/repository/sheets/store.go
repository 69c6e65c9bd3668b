package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/sheets/v4"

	"shift-bot/internal/domain"
)

// Worksheet — domain.RowStore поверх одного листа таблицы.
type Worksheet struct {
	svc           *sheets.Service
	spreadsheetID string
	name          string
}

func (w *Worksheet) List(ctx context.Context) ([]domain.Row, error) {
	resp, err := w.svc.Spreadsheets.Values.Get(w.spreadsheetID, w.name).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("values.get %s: %w", w.name, err)
	}
	rows := make([]domain.Row, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make(domain.Row, len(raw))
		for i, cell := range raw {
			row[i] = fmt.Sprint(cell)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (w *Worksheet) Append(ctx context.Context, row domain.Row) error {
	values := make([]interface{}, len(row))
	for i, cell := range row {
		values[i] = cell
	}
	_, err := w.svc.Spreadsheets.Values.
		Append(w.spreadsheetID, w.name, &sheets.ValueRange{Values: [][]interface{}{values}}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("values.append %s: %w", w.name, err)
	}
	return nil
}

func (w *Worksheet) UpdateCell(ctx context.Context, row, col int, value string) error {
	rng := fmt.Sprintf("%s!%s%d", w.name, columnName(col), row+1)
	_, err := w.svc.Spreadsheets.Values.
		Update(w.spreadsheetID, rng, &sheets.ValueRange{Values: [][]interface{}{{value}}}).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("values.update %s: %w", rng, err)
	}
	return nil
}

// columnName переводит индекс колонки в буквенный адрес A1-нотации.
func columnName(col int) string {
	name := ""
	for col >= 0 {
		name = string(rune('A'+col%26)) + name
		col = col/26 - 1
	}
	return name
}
