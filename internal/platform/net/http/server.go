package http

import (
	"context"
	"errors"
	"net"
	stdhttp "net/http"
	"time"

	"tallybook/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Server owns the chi mux and the net/http server around it
type Server struct {
	mux *chi.Mux
	srv *stdhttp.Server
}

// NewServer builds a server listening on addr (":4000", "127.0.0.1:0")
// opts run against the bare mux before any module mounts
func NewServer(addr string, opts ...func(*chi.Mux)) *Server {
	m := chi.NewRouter()
	for _, o := range opts {
		o(m)
	}
	return &Server{
		mux: m,
		srv: &stdhttp.Server{
			Addr:              addr,
			Handler:           m,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       2 * time.Minute,
		},
	}
}

// Router exposes the mux through the Router seam
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Addr is the configured listen address
func (s *Server) Addr() string { return s.srv.Addr }

// Run listens until Shutdown or ctx is done; a clean shutdown returns nil
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	stop := context.AfterFunc(ctx, func() {
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = s.srv.Shutdown(sctx)
	})
	defer stop()

	logger.Named("http").Info().Str("addr", ln.Addr().String()).Msg("http listening")
	if err := s.srv.Serve(ln); !errors.Is(err, stdhttp.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains connections until ctx is done
func (s *Server) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }
