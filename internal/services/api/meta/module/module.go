// Package module wires meta endpoints into the API
package module

import (
	"time"

	"tallybook/internal/core/duration"
	modkit "tallybook/internal/modkit"
	phttp "tallybook/internal/platform/net/http"
	metahttp "tallybook/internal/services/api/meta/http"
)

// Module is the meta module
type Module struct {
	modkit.Base
	deps metahttp.Deps
}

// New builds the meta module
// pass the numbering TokenLister with modkit.WithPorts to fill /codecs
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	m := &Module{}
	m.Base = modkit.NewBase(
		[]modkit.Option{modkit.WithName("meta"), modkit.WithPrefix("/meta")},
		opts,
		func(r phttp.Router) { metahttp.Register(r, m.deps) },
	)

	m.deps = metahttp.Deps{
		ServiceName:   deps.Cfg.MayString("SERVICE_NAME", "tallybook-api"),
		StartedAt:     time.Now(),
		DurationStyle: deps.Cfg.MayString("DURATION_STYLE", duration.DefaultStyle),
	}
	if deps.HasPG() {
		m.deps.PG = deps.PG
	}
	if tl, ok := m.Injected().(metahttp.TokenLister); ok {
		m.deps.Tokens = tl
	}
	return m
}
