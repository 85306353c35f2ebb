// @title         Tallybook API
// @version       0.1.0
// @description   Duration, search query and invoice number codecs over HTTP

package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"tallybook/internal/platform/config"
	"tallybook/internal/platform/logger"
	phttp "tallybook/internal/platform/net/http"
	"tallybook/internal/platform/net/middleware"
	"tallybook/internal/platform/store"

	"tallybook/internal/modkit/httpkit"
	"tallybook/internal/services/api"

	"github.com/go-chi/chi/v5"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// bring up logging early
	logger.Init(logger.FromEnv())
	l := logger.Get()

	// service-scoped config for HTTP etc (TALLY_API_*)
	apiCfg := config.New().Prefix("TALLY_API_")

	// postgres is optional; TALLY_PGSQL_DBURL turns it on
	st, err := store.Open(ctx, store.LoadConfig("tallybook-api"), store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	srv := phttp.NewServer(":"+apiCfg.MayString("PORT", "4000"), func(m *chi.Mux) {
		m.Use(middleware.Defaults()...)
		m.Use(middleware.Heartbeat("/ping"))
	})

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Store:          st,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
			Stack: httpkit.StackOptions{
				CORSOrigins: apiCfg.MayCSV("CORS_ORIGINS", []string{"*"}),
				SlowRequest: apiCfg.MayDuration("SLOW_REQUEST", 500*time.Millisecond),
				MaxInFlight: apiCfg.MayInt("MAX_IN_FLIGHT", 0),
			},
		},
	)

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
