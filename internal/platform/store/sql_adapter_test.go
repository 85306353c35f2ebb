package store

import (
	"context"
	"errors"
	"testing"

	"tallybook/internal/platform/store/pg"
	kit "tallybook/internal/platform/testkit"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type scanFunc func(dest ...any) error

func (f scanFunc) Scan(dest ...any) error { return f(dest...) }

type fakePgx struct {
	execErr error
	rowErr  error
}

func (f fakePgx) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag("INSERT 0 1"), f.execErr
}

func (f fakePgx) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("query unsupported")
}

func (f fakePgx) QueryRow(context.Context, string, ...any) pgx.Row {
	return scanFunc(func(...any) error { return f.rowErr })
}

type recorder struct{ events []pg.QueryEvent }

func (r *recorder) OnQuery(_ context.Context, ev pg.QueryEvent) { r.events = append(r.events, ev) }

func TestTraced_Exec(t *testing.T) {
	rec := &recorder{}
	tq := traced{q: fakePgx{}, tracer: rec, slowUS: 0}

	tag, err := tq.Exec(context.Background(), "INSERT INTO issued_numbers", "a")
	if err != nil || tag.RowsAffected() != 1 {
		t.Fatalf("Exec = %v, %v", tag, err)
	}
	if len(rec.events) != 1 || rec.events[0].SQL != "INSERT INTO issued_numbers" || rec.events[0].Slow {
		t.Fatalf("events = %+v", rec.events)
	}
	if len(rec.events[0].Args) != 1 {
		t.Fatalf("args not recorded")
	}
}

func TestTraced_QueryRowEmitsAfterScan(t *testing.T) {
	rec := &recorder{}
	tq := traced{q: fakePgx{rowErr: pgx.ErrNoRows}, tracer: rec}

	r := tq.QueryRow(context.Background(), "SELECT 1")
	if len(rec.events) != 0 {
		t.Fatalf("must not emit before Scan")
	}
	if err := r.Scan(); !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("scan err = %v", err)
	}
	if len(rec.events) != 1 || rec.events[0].Err != nil {
		t.Fatalf("no rows is not a query failure: %+v", rec.events)
	}
}

func TestTraced_QueryError(t *testing.T) {
	rec := &recorder{}
	tq := traced{q: fakePgx{}, tracer: rec}
	if _, err := tq.Query(context.Background(), "SELECT"); err == nil {
		t.Fatalf("expected error")
	}
	if len(rec.events) != 1 || rec.events[0].Err == nil {
		t.Fatalf("events = %+v", rec.events)
	}
}

func TestTraced_NoTracer(t *testing.T) {
	tq := traced{q: fakePgx{execErr: errors.New("x")}}
	if _, err := tq.Exec(context.Background(), "x"); err == nil {
		t.Fatalf("exec error lost")
	}
}

type fakeTx struct{ committed, rolledBack bool }

func (f *fakeTx) Commit(context.Context) error   { f.committed = true; return nil }
func (f *fakeTx) Rollback(context.Context) error { f.rolledBack = true; return nil }

func TestRunTx(t *testing.T) {
	ctx := context.Background()

	tx := &fakeTx{}
	if err := runTx(ctx, tx, &fakeQuerier{}, func(RowQuerier) error { return nil }); err != nil || !tx.committed {
		t.Fatalf("commit path: %v %+v", err, tx)
	}

	tx = &fakeTx{}
	boom := errors.New("boom")
	if err := runTx(ctx, tx, &fakeQuerier{}, func(RowQuerier) error { return boom }); !errors.Is(err, boom) || !tx.rolledBack || tx.committed {
		t.Fatalf("rollback path: %v %+v", err, tx)
	}

	tx = &fakeTx{}
	kit.MustPanic(t, func() {
		_ = runTx(ctx, tx, &fakeQuerier{}, func(RowQuerier) error { panic("x") })
	})
	if !tx.rolledBack {
		t.Fatalf("panic must roll back")
	}
}

func TestPGAdapter_NilPing(t *testing.T) {
	var a *pgAdapter
	if a.Ping(context.Background()) == nil {
		t.Fatalf("nil adapter must fail ping")
	}
}
