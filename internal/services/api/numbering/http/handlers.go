// Package http exposes the numbering endpoints
package http

import (
	stdhttp "net/http"

	"tallybook/internal/modkit/httpkit"
	"tallybook/internal/modkit/swaggerkit"
	"tallybook/internal/services/api/numbering/domain"
)

// Register mounts the numbering routes
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/formats", h.formats)
	httpkit.PostJSON(r, "/preview", h.preview)
	httpkit.CreateJSON(r, "/issue", h.issue)
}

func init() {
	swaggerkit.Document(
		swaggerkit.Op{Method: "GET", Path: "/numbering/formats", Tag: "Numbering", Summary: "List the configured number formats"},
		swaggerkit.Op{Method: "POST", Path: "/numbering/preview", Tag: "Numbering", Summary: "Compute the next number without recording it", Body: true},
		swaggerkit.Op{Method: "POST", Path: "/numbering/issue", Tag: "Numbering", Summary: "Issue and record the next number", Body: true},
	)
}

type handlers struct{ svc domain.ServicePort }

// @Summary List the configured number formats
// @Tags Numbering
// @Produce json
// @Success 200 {array} domain.FormatInfo
// @Router /numbering/formats [get]
func (h *handlers) formats(r *stdhttp.Request) (any, error) {
	return h.svc.Formats(r.Context())
}

// @Summary Compute the next number without recording it
// @Tags Numbering
// @Accept json
// @Produce json
// @Param payload body domain.NumberInput true "Format and customer"
// @Success 200 {object} domain.Preview
// @Router /numbering/preview [post]
func (h *handlers) preview(r *stdhttp.Request, in domain.NumberInput) (any, error) {
	return h.svc.Preview(r.Context(), in)
}

// @Summary Issue and record the next number
// @Tags Numbering
// @Accept json
// @Produce json
// @Param payload body domain.NumberInput true "Format and customer"
// @Success 201 {object} domain.Issued
// @Failure 409 {object} httpkit.Envelope
// @Router /numbering/issue [post]
func (h *handlers) issue(r *stdhttp.Request, in domain.NumberInput) (any, error) {
	return h.svc.Issue(r.Context(), in)
}
