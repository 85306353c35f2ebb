// Package repokit holds the seams repositories are written against
package repokit

import (
	"context"

	"tallybook/internal/platform/store"
)

// Queryer is the read and write surface for SQL repos
type Queryer = store.RowQuerier

// TxRunner executes a function inside a transaction
type TxRunner = store.TxRunner

type (
	// Rows are the result set of a query
	Rows = store.Rows

	// Row is a single row result
	Row = store.Row

	// CommandTag reports what a write did
	CommandTag = store.CommandTag
)

// WithTx runs fn inside a transaction on tx
func WithTx(ctx context.Context, tx TxRunner, fn func(q Queryer) error) error {
	return tx.Tx(ctx, fn)
}
