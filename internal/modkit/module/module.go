// Package module holds the module contract plus port lookup helpers used
// while composing the API
package module

import (
	phttp "tallybook/internal/platform/net/http"
)

// Module mirrors modkit.Module so port helpers can live apart from modkit
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
