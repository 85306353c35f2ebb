// Package modkit wires API modules: shared deps, build options and a base
// that mounts a module under its prefix
package modkit

import (
	phttp "tallybook/internal/platform/net/http"
)

// Module is the surface the API composes
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}

// Builder constructs a Module from shared deps and options
type Builder func(Deps, ...Option) Module
