package pg

import (
	"context"
	"strings"

	"tallybook/internal/platform/logger"

	"github.com/rs/zerolog"
)

// QueryEvent describes one finished statement
type QueryEvent struct {
	SQL       string
	Args      []any
	ElapsedUS int64
	Err       error
	Slow      bool
}

// QueryTracer receives an event per statement
type QueryTracer interface {
	OnQuery(ctx context.Context, ev QueryEvent)
}

// TracerFunc adapts a function to QueryTracer
type TracerFunc func(ctx context.Context, ev QueryEvent)

// OnQuery calls f
func (f TracerFunc) OnQuery(ctx context.Context, ev QueryEvent) { f(ctx, ev) }

// Tracer logs every statement through a debug level child of root so that
// TALLY_PGSQL_LOG_SQL works regardless of the process level
func Tracer(root logger.Logger) QueryTracer {
	return &zlTracer{log: root.Level(zerolog.DebugLevel).With().Str("component", "pg").Logger()}
}

type zlTracer struct{ log logger.Logger }

func (z *zlTracer) OnQuery(ctx context.Context, ev QueryEvent) {
	evt := z.log.Info()
	switch {
	case ev.Err != nil:
		evt = z.log.Error().Err(ev.Err)
	case ev.Slow:
		evt = z.log.Warn()
	}
	if id := logger.RequestID(ctx); id != "" {
		evt = evt.Str("request_id", id)
	}
	evt.Float64("elapsed_ms", float64(ev.ElapsedUS)/1000.0).
		Bool("slow", ev.Slow).
		Str("sql", Compact(ev.SQL)).
		Interface("args", ev.Args).
		Msg("pg query")
}

// Compact collapses whitespace runs so statements log on one line
func Compact(sql string) string {
	return strings.Join(strings.Fields(sql), " ")
}
