package store

import (
	"errors"

	"tallybook/internal/platform/logger"
	"tallybook/internal/platform/store/pg"
)

// Option mutates Store during Open
type Option func(*Store) error

// WithLogger sets the logger used by the query tracer
func WithLogger(log logger.Logger) Option {
	return func(s *Store) error {
		s.Log = log
		return nil
	}
}

// WithPG installs an already built runner, mostly for tests and embedding
func WithPG(tx TxRunner) Option {
	return func(s *Store) error {
		if tx == nil {
			return errors.New("store: nil pg runner")
		}
		s.PG = tx
		return nil
	}
}

// NewPG wraps an opened pg client in the sql adapter without pinging
func NewPG(p *pg.PG) TxRunner { return newPGAdapter(p) }
