package memtable

import (
	"context"
	"sync"

	"shift-bot/internal/domain"
)

// Store — таблица в памяти с семантикой внешнего хранилища: ряды с
// заголовком, запись по одной ячейке, никакой атомарности между
// вызовами. Общий тестовый дублёр для репозиториев и менеджера схемы.
type Store struct {
	mu     sync.Mutex
	rows   []domain.Row
	writes int

	// Хуки для имитации сбоев хранилища в тестах.
	AppendErr error
	UpdateErr func(row, col int) error
}

func New(rows ...domain.Row) *Store {
	s := &Store{}
	for _, r := range rows {
		s.rows = append(s.rows, append(domain.Row{}, r...))
	}
	return s
}

func (s *Store) List(_ context.Context) ([]domain.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Row, len(s.rows))
	for i, r := range s.rows {
		out[i] = append(domain.Row{}, r...)
	}
	return out, nil
}

func (s *Store) Append(_ context.Context, row domain.Row) error {
	if s.AppendErr != nil {
		return s.AppendErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, append(domain.Row{}, row...))
	s.writes++
	return nil
}

func (s *Store) UpdateCell(_ context.Context, row, col int, value string) error {
	if s.UpdateErr != nil {
		if err := s.UpdateErr(row, col); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for row >= len(s.rows) {
		s.rows = append(s.rows, domain.Row{})
	}
	for col >= len(s.rows[row]) {
		s.rows[row] = append(s.rows[row], "")
	}
	s.rows[row][col] = value
	s.writes++
	return nil
}

// Writes — счётчик записей, для проверки идемпотентности в тестах.
func (s *Store) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}
