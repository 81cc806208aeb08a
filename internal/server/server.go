// Package server exposes the generation runner over a small read-only HTTP
// API.
//
// # Routes
//
//	GET /health
//	GET /api/v1/sample?x=&z=&chain=
//	GET /api/v1/region?x=&z=&w=&h=&step=&chain=
//	GET /api/v1/region.png?x=&z=&w=&h=&step=&scale=&chain=
//	GET /api/v1/layers?format=json|dot|svg&detailed=
//	GET /api/v1/sessions/{id}
//
// Every world route also accepts seed, world_type, biome_size, river_size
// and fixed_biome; unset values fall back to the server's configured world.
package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/genlayer/pkg/pipeline"
)

// Default timeouts.
const (
	DefaultReadTimeout    = 10 * time.Second
	DefaultWriteTimeout   = 30 * time.Second
	DefaultRequestTimeout = 30 * time.Second
	shutdownTimeout       = 10 * time.Second
)

// Options configure a Server.
type Options struct {
	Addr           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	RequestTimeout time.Duration

	// Seed and Settings describe the world served when a request does not
	// name one.
	Seed     int64
	Settings pipeline.Settings
}

// SetDefaults fills unset fields.
func (o *Options) SetDefaults() {
	if o.Addr == "" {
		o.Addr = ":8080"
	}
	if o.ReadTimeout <= 0 {
		o.ReadTimeout = DefaultReadTimeout
	}
	if o.WriteTimeout <= 0 {
		o.WriteTimeout = DefaultWriteTimeout
	}
	if o.RequestTimeout <= 0 {
		o.RequestTimeout = DefaultRequestTimeout
	}
	o.Settings = o.Settings.OrDefault()
}

// Server serves the HTTP API.
type Server struct {
	runner *pipeline.Runner
	opts   Options
	logger *log.Logger
}

// New creates a server backed by runner. A nil logger discards output.
func New(runner *pipeline.Runner, opts Options, logger *log.Logger) *Server {
	opts.SetDefaults()
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Server{runner: runner, opts: opts, logger: logger}
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.opts.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.opts.ReadTimeout,
		WriteTimeout: s.opts.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.opts.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return ctx.Err()
}
