package repository

import (
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mmeshcher/invoice-dashboard/internal/apperr"
)

func TestWrapDB_TagsDatabaseKind(t *testing.T) {
	err := wrapDB("insert invoice", errors.New("connection refused"))

	if apperr.KindOf(err) != apperr.KindDatabase {
		t.Fatalf("wrapDB must tag errors as KindDatabase, got %v", err)
	}
}

func TestWrapDB_KeepsOriginalError(t *testing.T) {
	base := errors.New("broken pipe")
	err := wrapDB("delete invoice", base)

	if !errors.Is(err, base) {
		t.Fatalf("wrapped error lost the original: %v", err)
	}
}

func TestWrapDB_UniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           pgerrcode.UniqueViolation,
		ConstraintName: "users_email_key",
	}

	err := wrapDB("insert user", pgErr)

	if apperr.KindOf(err) != apperr.KindDatabase {
		t.Fatalf("unique violation must still be a database error, got %v", err)
	}

	var got *pgconn.PgError
	if !errors.As(err, &got) || got.ConstraintName != "users_email_key" {
		t.Fatalf("pg error details lost: %v", err)
	}
}
