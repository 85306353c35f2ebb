package errors

import (
	"context"
	stderrs "errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func pgErr(code, col string) *pgconn.PgError {
	return &pgconn.PgError{Code: code, ColumnName: col}
}

func TestDBErrorCode(t *testing.T) {
	cases := []struct {
		code string
		want ErrorCode
	}{
		{"23505", ErrorCodeDuplicateKey},
		{"23502", ErrorCodeValidation},
		{"23514", ErrorCodeValidation},
		{"22001", ErrorCodeInvalidArgument},
		{"22P02", ErrorCodeInvalidArgument},
		{"40001", ErrorCodeDB},
		{"25006", ErrorCodeUnavailable},
		{"57P03", ErrorCodeUnavailable},
		{"XXXXX", ErrorCodeDB},
	}
	for _, c := range cases {
		got, ok := DBErrorCode(pgErr(c.code, ""))
		if !ok || got != c.want {
			t.Fatalf("DBErrorCode(%s) = %v %v, want %v", c.code, got, ok, c.want)
		}
	}
	if _, ok := DBErrorCode(stderrs.New("nope")); ok {
		t.Fatalf("non pg error must report ok=false")
	}
}

func TestFromPG(t *testing.T) {
	if FromPG(nil, "x") != nil {
		t.Fatalf("nil must stay nil")
	}

	wrapped := fmt.Errorf("exec: %w", pgErr("23505", ""))
	err := FromPG(wrapped, "insert number %q", "2024-0001")
	if !IsCode(err, ErrorCodeDuplicateKey) || !IsDuplicateKey(err) {
		t.Fatalf("FromPG code = %v", CodeOf(err))
	}
	if WireFrom(err).Message != `insert number "2024-0001"` {
		t.Fatalf("message = %q", WireFrom(err).Message)
	}

	if !IsCode(FromPG(stderrs.New("conn reset"), "count"), ErrorCodeDB) {
		t.Fatalf("foreign error must map to DB")
	}
}

func TestFieldFromPG(t *testing.T) {
	err := FieldFromPG(FromPG(pgErr("23502", "customer"), "insert"))
	if e, _ := As(err); e.Field() != "customer" {
		t.Fatalf("field = %q", e.Field())
	}

	noCol := FromPG(pgErr("23505", ""), "insert")
	if FieldFromPG(noCol) != noCol {
		t.Fatalf("error without column must pass through")
	}
	other := stderrs.New("x")
	if FieldFromPG(other) != other {
		t.Fatalf("non pg error must pass through")
	}
}

func TestIsRetryable(t *testing.T) {
	for _, code := range []string{"40001", "40P01", "55P03"} {
		if !IsRetryable(pgErr(code, "")) {
			t.Fatalf("%s should be retryable", code)
		}
	}
	if IsRetryable(pgErr("23505", "")) {
		t.Fatalf("unique violation is not retryable")
	}
	if IsRetryable(nil) || IsRetryable(context.Canceled) {
		t.Fatalf("nil and cancellation are not retryable")
	}
	if !IsRetryable(stderrs.New("commit unexpectedly resulted in rollback")) {
		t.Fatalf("commit rollback text should be retryable")
	}
	if !Retryable(Unavailablef("pool exhausted")) {
		t.Fatalf("unavailable should be retryable")
	}
	if !IsSerializationFailure(FromPG(pgErr("40001", ""), "tx")) {
		t.Fatalf("serialization predicate")
	}
}
