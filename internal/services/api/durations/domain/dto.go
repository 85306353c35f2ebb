// Package domain holds the durations DTOs and service contract
package domain

import (
	"context"

	"tallybook/internal/core/duration"
	"tallybook/internal/platform/net/http/bind"
)

func init() {
	bind.RegisterRule("duration_mode", "{0} must be one of colon, natural, decimal", func(fl bind.FieldLevel) bool {
		_, ok := ParseMode(fl.Field().String())
		return ok
	})
}

// ParseMode maps a wire mode name onto duration.Mode
func ParseMode(s string) (duration.Mode, bool) {
	for _, m := range duration.Modes() {
		if string(m) == s {
			return m, true
		}
	}
	return "", false
}

// ParseInput is a typed duration; an empty mode means detect it
type ParseInput struct {
	Input string `json:"input" validate:"max=64" example:"1:30"`
	Mode  string `json:"mode,omitempty" validate:"omitempty,duration_mode" example:"colon"`
	Style string `json:"style,omitempty" validate:"omitempty,max=32" example:"%hh %mm"`
}

// ParseOutput is the parsed value plus its canonical rendering
type ParseOutput struct {
	Seconds   int64  `json:"seconds" example:"5400"`
	Formatted string `json:"formatted" example:"1:30"`
	Mode      string `json:"mode" example:"colon"`
}

// FormatInput renders seconds; a null seconds renders null
type FormatInput struct {
	Seconds *int64 `json:"seconds" example:"5400"`
	Style   string `json:"style,omitempty" validate:"omitempty,max=32" example:"%h:%m"`
}

// FormatOutput holds the rendering
type FormatOutput struct {
	Formatted *string `json:"formatted" example:"1:30"`
}

// ServicePort is the durations contract
type ServicePort interface {
	Parse(ctx context.Context, in ParseInput) (ParseOutput, error)
	Format(ctx context.Context, in FormatInput) (FormatOutput, error)
}
