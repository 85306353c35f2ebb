package errors

import (
	"context"
	stderrs "errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the numbering ledger can run into
const (
	pgUniqueViolation     = "23505"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
	pgStringTooLong       = "22001"
	pgInvalidText         = "22P02"
	pgSerializationFailed = "40001"
	pgDeadlock            = "40P01"
	pgLockNotAvailable    = "55P03"
	pgReadOnlyTx          = "25006"
	pgCannotConnectNow    = "57P03"
)

// PgError returns the *pgconn.PgError at the root of err
func PgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(Root(err), &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsSQLState reports whether err is a Postgres error with the given SQLSTATE
func IsSQLState(err error, code string) bool {
	pgErr, ok := PgError(err)
	return ok && pgErr.Code == code
}

// IsDuplicateKey reports a unique constraint violation
func IsDuplicateKey(err error) bool { return IsSQLState(err, pgUniqueViolation) }

// IsSerializationFailure reports a serializable transaction conflict
func IsSerializationFailure(err error) bool { return IsSQLState(err, pgSerializationFailed) }

// DBErrorCode classifies a Postgres error; ok is false when err is not one
func DBErrorCode(err error) (ErrorCode, bool) {
	pgErr, ok := PgError(err)
	if !ok {
		return ErrorCodeUnknown, false
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		return ErrorCodeDuplicateKey, true
	case pgNotNullViolation, pgCheckViolation:
		return ErrorCodeValidation, true
	case pgStringTooLong, pgInvalidText:
		return ErrorCodeInvalidArgument, true
	case pgReadOnlyTx, pgCannotConnectNow:
		return ErrorCodeUnavailable, true
	default:
		return ErrorCodeDB, true
	}
}

// FromPG wraps err with the code DBErrorCode picks, ErrorCodeDB otherwise
// A nil err stays nil
func FromPG(err error, format string, a ...any) error {
	if err == nil {
		return nil
	}
	code, ok := DBErrorCode(err)
	if !ok {
		code = ErrorCodeDB
	}
	return Wrap(err, code, fmt.Sprintf(format, a...))
}

// FieldFromPG tags err with the column Postgres blamed, if it named one
func FieldFromPG(err error) error {
	pgErr, ok := PgError(err)
	if !ok {
		return err
	}
	if col := strings.TrimSpace(pgErr.ColumnName); col != "" {
		return WithField(err, col)
	}
	return err
}

// IsRetryable reports contention errors worth another attempt
// cancellation and deadlines are never retryable
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return false
	}
	if pgErr, ok := PgError(err); ok {
		switch pgErr.Code {
		case pgSerializationFailed, pgDeadlock, pgLockNotAvailable:
			return true
		}
		return false
	}
	s := strings.ToLower(Root(err).Error())
	return strings.Contains(s, "commit unexpectedly resulted in rollback") ||
		strings.Contains(s, "could not serialize access") ||
		strings.Contains(s, "deadlock detected")
}
