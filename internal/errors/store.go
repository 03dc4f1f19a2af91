package errors

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// MapStoreError maps key-value store errors to AppError instances:
// context timeouts/cancellations, pgx.ErrNoRows, and Postgres protocol
// errors from the postgres backend. Unrecognized errors come back wrapped
// as unavailable, since every store failure degrades rather than propagates.
func MapStoreError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &AppError{Code: ErrCodeTimeout, Message: "store request timed out", Cause: err}
	}
	if errors.Is(err, context.Canceled) {
		return &AppError{Code: ErrCodeCanceled, Message: "store request was canceled", Cause: err}
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return &AppError{Code: ErrCodeNotFound, Message: "key not found", Cause: err}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return mapPgError(pgErr)
	}

	return &AppError{Code: ErrCodeUnavailable, Message: "store unavailable", Cause: err}
}

func mapPgError(pgErr *pgconn.PgError) error {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		// The KV table upserts on key; a unique violation means two writers
		// raced the same key. Last writer wins, so surface as unavailable to
		// let the caller's swallow-and-log path handle it.
		return &AppError{Code: ErrCodeUnavailable, Message: "conflicting store write", Cause: pgErr}
	case pgerrcode.UndefinedTable:
		return &AppError{Code: ErrCodeUnavailable, Message: "store schema missing", Cause: pgErr}
	default:
		return &AppError{Code: ErrCodeUnavailable, Message: "store error", Cause: pgErr}
	}
}
