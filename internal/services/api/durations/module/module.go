// Package module wires durations into the API
package module

import (
	"tallybook/internal/core/duration"
	modkit "tallybook/internal/modkit"
	phttp "tallybook/internal/platform/net/http"
	durhttp "tallybook/internal/services/api/durations/http"
	dursvc "tallybook/internal/services/api/durations/service"
)

// Module is the durations module
type Module struct {
	modkit.Base
	svc *dursvc.Svc
}

// New builds the module; TALLY_API_DURATION_STYLE sets the default style
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	m := &Module{svc: dursvc.New(deps.Cfg.MayString("DURATION_STYLE", duration.DefaultStyle))}
	m.Base = modkit.NewBase(
		[]modkit.Option{modkit.WithName("durations"), modkit.WithPrefix("/durations")},
		opts,
		func(r phttp.Router) { durhttp.Register(r, m.svc) },
	)
	m.SetPorts(m.svc)
	return m
}
