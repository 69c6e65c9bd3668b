package domain

import (
	"errors"
	"fmt"
)

// Ошибки валидации и конфликтов состояния: возвращаются вызывающему
// слою как значения, никогда не паникой.
var (
	ErrAlreadyActive    = errors.New("смена уже открыта")
	ErrNoActiveShift    = errors.New("нет открытой смены")
	ErrNoHistory        = errors.New("нет записей по смене")
	ErrInvalidDate      = errors.New("неверный формат даты")
	ErrInvalidRange     = errors.New("конечная дата раньше начальной")
	ErrTooFarInPast     = errors.New("дата начала слишком далеко в прошлом")
	ErrMissingReason    = errors.New("не указана причина отпуска")
	ErrNoIdentity       = errors.New("не удалось определить отправителя")
)

// StoreError — сбой внешнего хранилища. Partial означает, что часть
// ячеек успела записаться и ряд остался в неконсистентном состоянии.
type StoreError struct {
	Op      string
	Partial bool
	Err     error
}

func (e *StoreError) Error() string {
	if e.Partial {
		return fmt.Sprintf("хранилище: %s: частичная запись: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("хранилище: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// SchemaError — заголовок таблицы не совпадает с ожидаемым и не
// является известной устаревшей раскладкой. Фатально на старте.
type SchemaError struct {
	Sheet string
	Got   Row
	Want  Row
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("таблица %q: неожиданный заголовок %v, ожидался %v", e.Sheet, []string(e.Got), []string(e.Want))
}
