// Package apperr определяет категоризированный тип ошибок приложения.
package apperr

import (
	"errors"
	"fmt"
)

// Kind определяет категорию ошибки приложения.
type Kind int

const (
	// KindValidation — входные данные не прошли проверку.
	KindValidation Kind = iota + 1
	// KindDatabase — сбой при выполнении запроса к БД.
	KindDatabase
	// KindAuth — категоризированный отказ аутентификации.
	KindAuth
)

// Error — ошибка приложения с категорией. Оборачивает исходную ошибку,
// поэтому errors.Is/As продолжают работать по цепочке.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindValidation:
		return fmt.Sprintf("validation: %v", e.Err)
	case KindDatabase:
		return fmt.Sprintf("database: %v", e.Err)
	case KindAuth:
		return fmt.Sprintf("auth: %v", e.Err)
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Validation оборачивает ошибку как ошибку валидации.
func Validation(err error) error { return &Error{Kind: KindValidation, Err: err} }

// Database оборачивает ошибку как ошибку БД.
func Database(err error) error { return &Error{Kind: KindDatabase, Err: err} }

// Auth оборачивает ошибку как отказ аутентификации.
func Auth(err error) error { return &Error{Kind: KindAuth, Err: err} }

// KindOf возвращает категорию ошибки или 0, если ошибка не категоризирована.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
