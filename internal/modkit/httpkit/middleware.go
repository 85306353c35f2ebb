package httpkit

import (
	"net/http"
	"time"

	"tallybook/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	CORSOrigins []string
	SlowRequest time.Duration
	MaxInFlight int
}

// CommonStack is the middleware applied to the versioned API
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	stack := []func(http.Handler) http.Handler{
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.AccessLog(middleware.AccessLogOptions{Slow: o.SlowRequest}),
		middleware.StripSlashes(),
	}
	if o.MaxInFlight > 0 {
		stack = append(stack, middleware.Throttle(o.MaxInFlight))
	}
	return stack
}
