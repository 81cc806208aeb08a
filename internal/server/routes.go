package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"

	"github.com/matzehuels/genlayer/pkg/observability"
)

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{headerSession, headerCache},
		MaxAge:         300,
	}))
	r.Use(middleware.Timeout(s.opts.RequestTimeout))

	r.Get("/health", s.health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/sample", s.sample)
		r.Get("/region", s.region)
		r.Get("/region.png", s.regionPNG)
		r.Get("/layers", s.layers)
		r.Get("/sessions/{id}", s.session)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.renderError(w, r, http.StatusNotFound, "route not found", nil)
	})
	return r
}

// logRequests reports every request to the HTTP hooks and the debug log.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hooks := observability.HTTP()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		elapsed := time.Since(start)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnResponse(r.Context(), r.Method, r.URL.Path, status, elapsed)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration", elapsed,
			"request_id", middleware.GetReqID(r.Context()))
	})
}

// jsonOK writes v as JSON with status 200.
func jsonOK(w http.ResponseWriter, r *http.Request, v any) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, v)
}
