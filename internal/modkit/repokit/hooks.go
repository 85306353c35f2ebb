package repokit

import (
	"context"
	"fmt"
	"time"
)

// BeginHook runs first inside every transaction
type BeginHook func(ctx context.Context, q Queryer) error

// WithBeginHooks wraps inner so hooks run before fn in the same tx
func WithBeginHooks(inner TxRunner, hooks ...BeginHook) TxRunner {
	return hookedTx{inner: inner, hooks: hooks}
}

type hookedTx struct {
	inner TxRunner
	hooks []BeginHook
}

func (h hookedTx) Tx(ctx context.Context, fn func(q Queryer) error) error {
	return h.inner.Tx(ctx, func(q Queryer) error {
		for _, hk := range h.hooks {
			if err := hk(ctx, q); err != nil {
				return err
			}
		}
		return fn(q)
	})
}

func (h hookedTx) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	return h.inner.Exec(ctx, sql, args...)
}

func (h hookedTx) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	return h.inner.Query(ctx, sql, args...)
}

func (h hookedTx) QueryRow(ctx context.Context, sql string, args ...any) Row {
	return h.inner.QueryRow(ctx, sql, args...)
}

// Ping forwards to inner when it can ping
func (h hookedTx) Ping(ctx context.Context) error {
	if p, ok := h.inner.(interface{ Ping(context.Context) error }); ok {
		return p.Ping(ctx)
	}
	return nil
}

// LockTimeout bounds how long statements in the tx wait on row locks
func LockTimeout(d time.Duration) BeginHook {
	stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", d.Milliseconds())
	return func(ctx context.Context, q Queryer) error {
		_, err := q.Exec(ctx, stmt)
		return err
	}
}

// MidHook is run explicitly inside a tx when needed
type MidHook func(ctx context.Context, q Queryer) error

// RunMidHooks runs hooks in order, stopping at the first error
func RunMidHooks(ctx context.Context, q Queryer, hooks ...MidHook) error {
	for _, hk := range hooks {
		if err := hk(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

// AdvisoryXactLock serializes transactions sharing key until they end
func AdvisoryXactLock(key string) MidHook {
	return func(ctx context.Context, q Queryer) error {
		_, err := q.Exec(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", key)
		return err
	}
}
