// Package repo stores issued numbers in Postgres or in memory
package repo

import (
	"context"

	"tallybook/internal/modkit/repokit"
	perr "tallybook/internal/platform/errors"
	"tallybook/internal/platform/store"
	"tallybook/internal/services/api/numbering/domain"
)

// Schema creates the ledger table; EnsureSchema runs it at startup
const Schema = `
	CREATE TABLE IF NOT EXISTS issued_numbers (
		id              uuid        PRIMARY KEY,
		format          text        NOT NULL,
		number          text        NOT NULL UNIQUE,
		customer        text        NOT NULL DEFAULT '',
		customer_number text        NOT NULL DEFAULT '',
		issued_at       timestamptz NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS issued_numbers_format_at ON issued_numbers (format, issued_at);
	CREATE INDEX IF NOT EXISTS issued_numbers_customer_at ON issued_numbers (customer, issued_at)
`

type (
	// PG is the Postgres ledger
	PG      struct{}
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder for the Postgres ledger
func NewPG() repokit.Binder[domain.Ledger] { return PG{} }

// Bind attaches a Queryer to the Postgres ledger
func (PG) Bind(q repokit.Queryer) domain.Ledger { return &queries{q: q} }

// EnsureSchema creates issued_numbers when missing
func EnsureSchema(ctx context.Context, q repokit.Queryer) error {
	_, err := q.Exec(ctx, Schema)
	return perr.FromPG(err, "numbering: ensure schema")
}

// Count counts the rows s selects
func (r *queries) Count(ctx context.Context, s domain.Scope) (int, error) {
	const sql = `
		SELECT count(*)
		FROM issued_numbers
		WHERE ($1 = '' OR format = $1)
		  AND ($2::timestamptz IS NULL OR issued_at >= $2)
		  AND (NOT $3 OR customer = $4)
	`
	var since any
	if !s.Since.IsZero() {
		since = s.Since
	}
	n, err := store.Scalar[int64](ctx, r.q, sql, s.Format, since, s.ByCustomer, s.Customer)
	if err != nil {
		return 0, perr.FromPG(err, "numbering: count")
	}
	return int(n), nil
}

// Append inserts rec; a number issued twice is a conflict
func (r *queries) Append(ctx context.Context, rec domain.Issued) error {
	const sql = `
		INSERT INTO issued_numbers (id, format, number, customer, customer_number, issued_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	err := store.ExecOne(ctx, r.q, sql, rec.ID, rec.Format, rec.Number, rec.Customer, rec.CustomerNumber, rec.IssuedAt)
	if perr.IsDuplicateKey(err) {
		return perr.WithField(perr.Conflictf("number %q was already issued", rec.Number), "number")
	}
	return perr.FromPG(err, "numbering: append")
}
