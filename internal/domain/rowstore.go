package domain

import "context"

// Row — один ряд таблицы, ячейки в порядке заголовка.
type Row []string

// Cell возвращает ячейку по индексу, пустую строку если ряд короче.
func (r Row) Cell(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// RowStore — порт внешнего табличного хранилища. Хранилище общее и
// без транзакций: каждая операция ядра перечитывает состояние заново.
type RowStore interface {
	// List возвращает все ряды, включая заголовок, в порядке вставки.
	List(ctx context.Context) ([]Row, error)
	Append(ctx context.Context, row Row) error
	// UpdateCell пишет одну ячейку; row и col с нуля, заголовок — ряд 0.
	UpdateCell(ctx context.Context, row, col int, value string) error
}
