// Package module wires search into the API
package module

import (
	modkit "tallybook/internal/modkit"
	phttp "tallybook/internal/platform/net/http"
	searchhttp "tallybook/internal/services/api/search/http"
	searchsvc "tallybook/internal/services/api/search/service"
)

// Module is the search module
type Module struct {
	modkit.Base
}

// New builds the module
func New(_ modkit.Deps, opts ...modkit.Option) modkit.Module {
	svc := searchsvc.New()
	m := &Module{}
	m.Base = modkit.NewBase(
		[]modkit.Option{modkit.WithName("search"), modkit.WithPrefix("/search")},
		opts,
		func(r phttp.Router) { searchhttp.Register(r, svc) },
	)
	m.SetPorts(svc)
	return m
}
