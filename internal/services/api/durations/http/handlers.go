// Package http exposes the durations endpoints
package http

import (
	stdhttp "net/http"

	"tallybook/internal/modkit/httpkit"
	"tallybook/internal/modkit/swaggerkit"
	"tallybook/internal/services/api/durations/domain"
)

// Register mounts the durations routes
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.PostJSON(r, "/parse", h.parse)
	httpkit.PostJSON(r, "/format", h.format)
}

func init() {
	swaggerkit.Document(
		swaggerkit.Op{Method: "POST", Path: "/durations/parse", Tag: "Durations", Summary: "Parse a typed duration into seconds", Body: true},
		swaggerkit.Op{Method: "POST", Path: "/durations/format", Tag: "Durations", Summary: "Render seconds through a style", Body: true},
	)
}

type handlers struct{ svc domain.ServicePort }

// @Summary Parse a typed duration into seconds
// @Tags Durations
// @Accept json
// @Produce json
// @Param payload body domain.ParseInput true "Duration"
// @Success 200 {object} domain.ParseOutput
// @Router /durations/parse [post]
func (h *handlers) parse(r *stdhttp.Request, in domain.ParseInput) (any, error) {
	return h.svc.Parse(r.Context(), in)
}

// @Summary Render seconds through a style
// @Tags Durations
// @Accept json
// @Produce json
// @Param payload body domain.FormatInput true "Seconds"
// @Success 200 {object} domain.FormatOutput
// @Router /durations/format [post]
func (h *handlers) format(r *stdhttp.Request, in domain.FormatInput) (any, error) {
	return h.svc.Format(r.Context(), in)
}
