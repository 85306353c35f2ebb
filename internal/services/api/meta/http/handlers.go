// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"tallybook/internal/core/duration"
	"tallybook/internal/core/version"
	"tallybook/internal/modkit/httpkit"
	"tallybook/internal/modkit/swaggerkit"
)

// Pinger is satisfied by adapters that expose Ping
type Pinger interface {
	Ping(stdctx.Context) error
}

// TokenLister reports the numbering directive bases
type TokenLister interface {
	NumberTokens() []string
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName   string
	StartedAt     time.Time
	PG            any
	Tokens        TokenLister
	DurationStyle string
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/codecs", h.codecs)
}

func init() {
	swaggerkit.Document(
		swaggerkit.Op{Method: "GET", Path: "/meta/health", Tag: "Meta", Summary: "Health check"},
		swaggerkit.Op{Method: "GET", Path: "/meta/ready", Tag: "Meta", Summary: "Readiness probe with dependency checks"},
		swaggerkit.Op{Method: "GET", Path: "/meta/version", Tag: "Meta", Summary: "Build and version info"},
		swaggerkit.Op{Method: "GET", Path: "/meta/service", Tag: "Meta", Summary: "Service info and uptime"},
		swaggerkit.Op{Method: "GET", Path: "/meta/codecs", Tag: "Meta", Summary: "Supported duration modes and number tokens"},
	)
}

//
// Swagger DTOs and route docs
//

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"tallybook-api"`
	Started string `json:"started"  example:"2026-01-03T13:00:00Z"`
	Now     string `json:"now"      example:"2026-01-03T13:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"pg"`
	Status string `json:"status" example:"ok"` // ok fail skipped unknown
	Error  string `json:"error,omitempty" example:"dial tcp 127.0.0.1:5432 connect: connection refused"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok degraded fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-01-03T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"    example:"tallybook-api"`
	Started string `json:"started" example:"2026-01-03T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// CodecsResponse lists what the codecs accept
type CodecsResponse struct {
	DurationModes []string `json:"duration_modes" example:"colon,decimal,natural"`
	DurationStyle string   `json:"duration_style" example:"%h:%m"`
	NumberTokens  []string `json:"number_tokens"`
	SearchSyntax  string   `json:"search_syntax"  example:"field:value !excluded field:\"\""`
}

// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// @Summary Readiness probe with dependency checks
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	check := func(name string, c any) ReadyCheck {
		if c == nil {
			return ReadyCheck{Name: name, Status: "skipped"}
		}
		if p, ok := c.(Pinger); ok {
			if err := p.Ping(ctx); err != nil {
				return ReadyCheck{Name: name, Status: "fail", Error: err.Error()}
			}
			return ReadyCheck{Name: name, Status: "ok"}
		}
		return ReadyCheck{Name: name, Status: "unknown"}
	}

	pg := check("pg", h.deps.PG)

	// postgres is optional, so skipped still counts as ready
	overall := "ok"
	switch pg.Status {
	case "fail":
		overall = "fail"
	case "unknown":
		overall = "degraded"
	}

	return ReadyResponse{
		Status: overall,
		Checks: []ReadyCheck{pg},
		Now:    time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := time.Since(h.deps.StartedAt)
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
	}, nil
}

// @Summary Supported duration modes and number tokens
// @Tags Meta
// @Produce json
// @Success 200 {object} CodecsResponse
// @Router /meta/codecs [get]
func (h *handlers) codecs(_ *http.Request) (any, error) {
	modes := duration.Modes()
	out := CodecsResponse{
		DurationModes: make([]string, 0, len(modes)),
		DurationStyle: h.deps.DurationStyle,
		NumberTokens:  []string{},
		SearchSyntax:  `field:value !excluded field:""`,
	}
	for _, m := range modes {
		out.DurationModes = append(out.DurationModes, string(m))
	}
	if out.DurationStyle == "" {
		out.DurationStyle = duration.DefaultStyle
	}
	if h.deps.Tokens != nil {
		out.NumberTokens = h.deps.Tokens.NumberTokens()
	}
	return out, nil
}
