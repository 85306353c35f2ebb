package repo

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"tallybook/internal/modkit/repokit"
	perr "tallybook/internal/platform/errors"
	"tallybook/internal/services/api/numbering/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTag int64

func (fakeTag) String() string        { return "INSERT" }
func (t fakeTag) RowsAffected() int64 { return int64(t) }

type fakeRow struct {
	v   int64
	err error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*int64) = r.v
	return nil
}

type fakeQ struct {
	stmts   []string
	args    [][]any
	execErr error
	count   int64
}

func (f *fakeQ) Exec(_ context.Context, sql string, args ...any) (repokit.CommandTag, error) {
	f.stmts = append(f.stmts, sql)
	f.args = append(f.args, args)
	if f.execErr != nil {
		return nil, f.execErr
	}
	return fakeTag(1), nil
}

func (f *fakeQ) Query(context.Context, string, ...any) (repokit.Rows, error) {
	return nil, errors.New("not used")
}

func (f *fakeQ) QueryRow(_ context.Context, sql string, args ...any) repokit.Row {
	f.stmts = append(f.stmts, sql)
	f.args = append(f.args, args)
	return fakeRow{v: f.count}
}

type fakeTx struct {
	fakeQ
	txs int
}

func (f *fakeTx) Tx(_ context.Context, fn func(repokit.Queryer) error) error {
	f.txs++
	return fn(&f.fakeQ)
}

var t0 = time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

func TestPG_Count(t *testing.T) {
	q := &fakeQ{count: 12}
	l := NewPG().Bind(q)

	n, err := l.Count(context.Background(), domain.Scope{Format: "F", Since: t0, ByCustomer: true, Customer: "acme"})
	require.NoError(t, err)
	assert.Equal(t, 12, n)
	assert.Contains(t, q.stmts[0], "FROM issued_numbers")
	assert.Equal(t, []any{"F", t0, true, "acme"}, q.args[0])

	_, err = l.Count(context.Background(), domain.Scope{})
	require.NoError(t, err)
	assert.Nil(t, q.args[1][1], "zero Since must be sent as NULL")
}

func TestPG_Append(t *testing.T) {
	q := &fakeQ{}
	l := NewPG().Bind(q)
	rec := domain.Issued{ID: "id-1", Format: "F", Number: "N1", Customer: "acme", IssuedAt: t0}
	require.NoError(t, l.Append(context.Background(), rec))
	assert.Contains(t, q.stmts[0], "INSERT INTO issued_numbers")
	assert.Equal(t, []any{"id-1", "F", "N1", "acme", "", t0}, q.args[0])

	q.execErr = &pgconn.PgError{Code: "23505"}
	err := l.Append(context.Background(), rec)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeConflict), "got %v", err)

	q.execErr = errors.New("conn reset")
	err = l.Append(context.Background(), rec)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeDB), "got %v", err)
}

func TestEnsureSchema(t *testing.T) {
	q := &fakeQ{}
	require.NoError(t, EnsureSchema(context.Background(), q))
	assert.Contains(t, q.stmts[0], "CREATE TABLE IF NOT EXISTS issued_numbers")
}

func TestPGBook_Locked(t *testing.T) {
	db := &fakeTx{fakeQ: fakeQ{count: 2}}
	b := NewPGBook(db, 1500*time.Millisecond)

	var got int
	err := b.Locked(context.Background(), "{Y}-{ccy,4}", func(l domain.Ledger) error {
		var err error
		got, err = l.Count(context.Background(), domain.Scope{})
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 2, got)
	assert.Equal(t, 1, db.txs)
	require.Len(t, db.stmts, 3)
	assert.Equal(t, "SET LOCAL lock_timeout = '1500ms'", db.stmts[0])
	assert.True(t, strings.Contains(db.stmts[1], "pg_advisory_xact_lock"))
	assert.Equal(t, []any{"{Y}-{ccy,4}"}, db.args[1])

	// counts outside Locked go straight to the pool
	_, err = b.Count(context.Background(), domain.Scope{})
	require.NoError(t, err)
	assert.Equal(t, 1, db.txs)
	assert.NoError(t, b.Ping(context.Background()))
}

func TestPGBook_LockFailureSkipsFn(t *testing.T) {
	db := &fakeTx{fakeQ: fakeQ{execErr: errors.New("lock timeout")}}
	called := false
	err := NewPGBook(db, time.Second).Locked(context.Background(), "k", func(domain.Ledger) error {
		called = true
		return nil
	})
	assert.Error(t, err)
	assert.False(t, called)
}

func TestMemory(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	recs := []domain.Issued{
		{Number: "A1", Format: "A", Customer: "acme", IssuedAt: t0.AddDate(0, -1, 0)},
		{Number: "A2", Format: "A", Customer: "acme", IssuedAt: t0},
		{Number: "A3", Format: "A", Customer: "globex", IssuedAt: t0},
		{Number: "B1", Format: "B", IssuedAt: t0},
	}
	for _, r := range recs {
		require.NoError(t, m.Append(ctx, r))
	}

	cases := []struct {
		name  string
		scope domain.Scope
		want  int
	}{
		{"everything", domain.Scope{}, 4},
		{"format", domain.Scope{Format: "A"}, 3},
		{"since", domain.Scope{Format: "A", Since: t0}, 2},
		{"customer", domain.Scope{Format: "A", ByCustomer: true, Customer: "acme"}, 2},
		{"customer since", domain.Scope{ByCustomer: true, Customer: "acme", Since: t0}, 1},
		{"blank customer", domain.Scope{ByCustomer: true}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := m.Count(ctx, tc.scope)
			require.NoError(t, err)
			assert.Equal(t, tc.want, n)
		})
	}

	err := m.Append(ctx, domain.Issued{Number: "A1"})
	assert.True(t, perr.IsCode(err, perr.ErrorCodeConflict))
	assert.Len(t, m.Issued(), 4)
}

func TestMemory_Locked(t *testing.T) {
	m := NewMemory()
	err := m.Locked(context.Background(), "k", func(l domain.Ledger) error {
		if err := l.Append(context.Background(), domain.Issued{Number: "X"}); err != nil {
			return err
		}
		n, err := l.Count(context.Background(), domain.Scope{})
		assert.Equal(t, 1, n)
		return err
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = m.Locked(ctx, "k", func(domain.Ledger) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}
