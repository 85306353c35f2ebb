package modkit

import (
	"net/http"

	phttp "tallybook/internal/platform/net/http"
	str "tallybook/internal/platform/strings"
)

// Built is the resolved option set
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	Ports  any

	Subrouter func(phttp.Router) phttp.Router
	Register  func(phttp.Router)
}

// Build applies opts over defaults; hooks are never nil
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	if c.subrouter == nil {
		c.subrouter = func(r phttp.Router) phttp.Router { return r }
	}
	if c.register == nil {
		c.register = func(phttp.Router) {}
	}
	return Built{
		Name:      c.name,
		Prefix:    c.prefix,
		Mw:        append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:     c.ports,
		Subrouter: c.subrouter,
		Register:  c.register,
	}
}

// Base implements Module for the common case; modules embed it and
// supply their routes
type Base struct {
	built  Built
	routes func(phttp.Router)
	ports  any
}

// NewBase builds a Base from defaults followed by caller options
// routes registers the module's own endpoints on its prefixed router
func NewBase(defaults []Option, opts []Option, routes func(phttp.Router)) Base {
	b := Build(append(defaults, opts...)...)
	return Base{built: b, routes: routes, ports: b.Ports}
}

// SetPorts replaces the exported port set
func (m *Base) SetPorts(p any) { m.ports = p }

// Injected returns the ports passed in with WithPorts
func (m *Base) Injected() any { return m.built.Ports }

// Name returns the module name and panics when none was set
func (m *Base) Name() string { return str.MustString(m.built.Name, "module name") }

// Prefix returns the normalized route prefix
func (m *Base) Prefix() string { return str.MustPrefix(m.built.Prefix) }

// Ports returns the exported port set
func (m *Base) Ports() any { return m.ports }

// MountRoutes mounts middlewares, the subrouter hook, the module routes and
// any extra registration under Prefix
func (m *Base) MountRoutes(r phttp.Router) {
	r.Route(m.Prefix(), func(rr phttp.Router) {
		if len(m.built.Mw) > 0 {
			rr.Use(m.built.Mw...)
		}
		rr = m.built.Subrouter(rr)
		if m.routes != nil {
			m.routes(rr)
		}
		m.built.Register(rr)
	})
}
