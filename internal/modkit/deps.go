package modkit

import (
	"tallybook/internal/modkit/repokit"
	"tallybook/internal/platform/config"
	"tallybook/internal/platform/logger"
)

// Deps holds the shared dependencies passed to every module
// PG is nil when Postgres is not configured
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
}

// HasPG reports whether a SQL backend was wired
func (d Deps) HasPG() bool { return d.PG != nil }
