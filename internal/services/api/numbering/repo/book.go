package repo

import (
	"context"
	"time"

	"tallybook/internal/modkit/repokit"
	"tallybook/internal/services/api/numbering/domain"
)

// PGBook serializes issuers of one format with a transaction scoped advisory lock
type PGBook struct {
	domain.Ledger
	db   repokit.TxRunner
	bind repokit.Binder[domain.Ledger]
}

// NewPGBook wraps db; every transaction gives up on row locks after lockTimeout
func NewPGBook(db repokit.TxRunner, lockTimeout time.Duration) *PGBook {
	tx := repokit.WithBeginHooks(db, repokit.LockTimeout(lockTimeout))
	b := NewPG()
	return &PGBook{Ledger: repokit.MustBind(b, db), db: tx, bind: b}
}

// Locked runs fn in one transaction holding the advisory lock for key
func (b *PGBook) Locked(ctx context.Context, key string, fn func(l domain.Ledger) error) error {
	return repokit.WithTx(ctx, b.db, func(q repokit.Queryer) error {
		if err := repokit.RunMidHooks(ctx, q, repokit.AdvisoryXactLock(key)); err != nil {
			return err
		}
		return fn(b.bind.Bind(q))
	})
}

// Ping forwards to the pool
func (b *PGBook) Ping(ctx context.Context) error {
	if p, ok := b.db.(interface{ Ping(context.Context) error }); ok {
		return p.Ping(ctx)
	}
	return nil
}
