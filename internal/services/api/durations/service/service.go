// Package service converts typed durations for the API
package service

import (
	"context"

	"tallybook/internal/core/duration"
	perr "tallybook/internal/platform/errors"
	"tallybook/internal/services/api/durations/domain"
)

// Service is the durations contract
type Service interface{ domain.ServicePort }

// Svc implements Service
type Svc struct {
	style string
}

// New builds a Svc rendering with style when requests carry none
func New(style string) *Svc {
	if style == "" {
		style = duration.DefaultStyle
	}
	return &Svc{style: style}
}

// Parse parses in.Input in the requested mode, detecting it when empty
func (s *Svc) Parse(_ context.Context, in domain.ParseInput) (domain.ParseOutput, error) {
	mode := duration.Detect(in.Input)
	if in.Mode != "" {
		m, ok := domain.ParseMode(in.Mode)
		if !ok {
			return domain.ParseOutput{}, perr.WithField(perr.Validationf("unknown mode %q", in.Mode), "mode")
		}
		mode = m
	}
	secs, err := duration.Parse(in.Input, mode)
	if err != nil {
		return domain.ParseOutput{}, perr.WithOp(perr.FromCodec(err, "input"), "durations.parse")
	}
	return domain.ParseOutput{
		Seconds:   secs,
		Formatted: duration.Format(secs, s.styleFor(in.Style)),
		Mode:      string(mode),
	}, nil
}

// Format renders in.Seconds; nil stays nil
func (s *Svc) Format(_ context.Context, in domain.FormatInput) (domain.FormatOutput, error) {
	return domain.FormatOutput{Formatted: duration.FormatNullable(in.Seconds, s.styleFor(in.Style))}, nil
}

func (s *Svc) styleFor(style string) string {
	if style != "" {
		return style
	}
	return s.style
}
