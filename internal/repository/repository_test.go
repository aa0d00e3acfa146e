package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/alifrahman-dev/event-registration-service/internal/model"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

func TestPgErrCode(t *testing.T) {
	dup := fmt.Errorf("insert user: %w", &pgconn.PgError{Code: codeUniqueViolation})
	if got := pgErrCode(dup); got != codeUniqueViolation {
		t.Errorf("expected %s, got %q", codeUniqueViolation, got)
	}

	fk := &pgconn.PgError{Code: codeForeignKeyViolation}
	if got := pgErrCode(fk); got != codeForeignKeyViolation {
		t.Errorf("expected %s, got %q", codeForeignKeyViolation, got)
	}

	if got := pgErrCode(errors.New("broken pipe")); got != "" {
		t.Errorf("expected empty code for non-pg error, got %q", got)
	}
}

func TestWrapErrKeepsChain(t *testing.T) {
	base := &pgconn.PgError{Code: codeUniqueViolation}
	wrapped := wrapErr("insert event", base)

	var pgErr *pgconn.PgError
	if !errors.As(wrapped, &pgErr) {
		t.Fatal("expected wrapped error to keep the pg error in its chain")
	}
	if errors.Is(wrapped, ErrUnavailable) {
		t.Error("server-side errors must not be classified as unavailable")
	}
}

func TestNullableArgs(t *testing.T) {
	if dateArg(nil) != nil {
		t.Error("expected nil date to bind as NULL")
	}
	if feeArg(nil) != nil {
		t.Error("expected nil fee to bind as NULL")
	}

	d, err := model.ParseDate("2025-11-30")
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	if got := dateArg(&d); got == nil {
		t.Error("expected a concrete date binding")
	}

	fee := decimal.RequireFromString("25.00")
	if got := feeArg(&fee); got == nil {
		t.Error("expected a concrete fee binding")
	}
}
