// Package http exposes the search endpoints
package http

import (
	stdhttp "net/http"

	"tallybook/internal/modkit/httpkit"
	"tallybook/internal/modkit/swaggerkit"
	"tallybook/internal/services/api/search/domain"
)

// Register mounts the search routes
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.PostJSON(r, "/parse", h.parse)
	httpkit.PostJSON(r, "/filter", h.filter)
}

func init() {
	swaggerkit.Document(
		swaggerkit.Op{Method: "POST", Path: "/search/parse", Tag: "Search", Summary: "Tokenize a filter string", Body: true},
		swaggerkit.Op{Method: "POST", Path: "/search/filter", Tag: "Search", Summary: "Apply a filter string to items", Body: true},
	)
}

type handlers struct{ svc domain.ServicePort }

// @Summary Tokenize a filter string
// @Tags Search
// @Accept json
// @Produce json
// @Param payload body domain.ParseInput true "Query"
// @Success 200 {object} domain.ParseOutput
// @Router /search/parse [post]
func (h *handlers) parse(r *stdhttp.Request, in domain.ParseInput) (any, error) {
	return h.svc.Parse(r.Context(), in)
}

// @Summary Apply a filter string to items
// @Tags Search
// @Accept json
// @Produce json
// @Param payload body domain.FilterInput true "Query and items"
// @Success 200 {object} domain.FilterOutput
// @Router /search/filter [post]
func (h *handlers) filter(r *stdhttp.Request, in domain.FilterInput) (any, error) {
	return h.svc.Filter(r.Context(), in)
}
