package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/coursetrack-backend/internal/domain"
)

// MapError converts pgx/pgconn errors to domain errors.
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass through.
// id is anything printable (a uuid, a composite key); an empty id is omitted.
func MapError(err error, entity string, id any) error {
	if err == nil {
		return nil
	}

	prefix := entity
	if s := fmt.Sprint(id); s != "" {
		prefix = entity + " " + s
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", prefix, err)
	}

	// no rows → domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) || pgxscan.NotFound(err) {
		return fmt.Errorf("%s: %w", prefix, domain.ErrNotFound)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s: %w", prefix, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s: %w", prefix, domain.ErrNotFound)
		case "23514", "22P02": // check_violation, invalid_text_representation
			return fmt.Errorf("%s: %w", prefix, domain.ErrValidation)
		case "40001", "40P01": // serialization_failure, deadlock_detected
			return fmt.Errorf("%s: %w", prefix, domain.ErrConflict)
		case "53300", "57P01", "57P02", "57P03": // too_many_connections, admin/crash shutdown, cannot_connect_now
			return fmt.Errorf("%s: %w: %v", prefix, domain.ErrStorageUnavailable, err)
		}
		if len(pgErr.Code) == 5 && pgErr.Code[:2] == "08" { // connection_exception class
			return fmt.Errorf("%s: %w: %v", prefix, domain.ErrStorageUnavailable, err)
		}
		return fmt.Errorf("%s: %w", prefix, err)
	}

	if isConnectionError(err) {
		return fmt.Errorf("%s: %w: %v", prefix, domain.ErrStorageUnavailable, err)
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s: %w", prefix, err)
}

func isConnectionError(err error) bool {
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return pgconn.SafeToRetry(err)
}
