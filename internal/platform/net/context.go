// Package net carries request scoped values shared by the HTTP layers
package net

import (
	"context"

	"tallybook/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// WithRequest stores reqID where both chi and the logger look for it
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	return logger.WithRequest(ctx, reqID)
}

// RequestID returns the id set by the RequestID middleware or WithRequest
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }
