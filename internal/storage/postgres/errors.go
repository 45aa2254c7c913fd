package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/polkiloo/shopmart/internal/domain/errors"
)

// ViolationKind classifies store failures at the adapter boundary so callers
// branch on kind, never on error text.
type ViolationKind int

const (
	ViolationNone ViolationKind = iota
	ViolationUnique
	ViolationForeignKey
	ViolationNotNull
	ViolationSerialization
	ViolationOther
)

// SQLSTATE classes per PostgreSQL documentation.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeNotNullViolation    = "23502"
	codeSerializationFail   = "40001"
	codeDeadlockDetected    = "40P01"
	codeLockNotAvailable    = "55P03"
	classConnectionError    = "08"
)

// Classify maps a pgx error to a ViolationKind.
func Classify(err error) ViolationKind {
	if err == nil {
		return ViolationNone
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return ViolationOther
	}
	switch pgErr.Code {
	case codeUniqueViolation:
		return ViolationUnique
	case codeForeignKeyViolation:
		return ViolationForeignKey
	case codeNotNullViolation:
		return ViolationNotNull
	case codeSerializationFail, codeDeadlockDetected, codeLockNotAvailable:
		return ViolationSerialization
	}
	return ViolationOther
}

// mapError translates driver-level failures into the domain taxonomy:
// missing rows become ErrNotFound, serialization conflicts and connection
// failures become TransientError so the caller may retry the whole
// transaction, everything else passes through.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domainErrors.ErrNotFound
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &domainErrors.TransientError{Err: err}
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case Classify(err) == ViolationSerialization:
			return &domainErrors.TransientError{Err: err}
		case len(pgErr.Code) >= 2 && pgErr.Code[:2] == classConnectionError:
			return &domainErrors.TransientError{Err: err}
		}
	}
	return err
}
