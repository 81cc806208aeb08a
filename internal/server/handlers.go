package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/matzehuels/genlayer/pkg/buildinfo"
	"github.com/matzehuels/genlayer/pkg/errors"
	"github.com/matzehuels/genlayer/pkg/pipeline"
)

// Response headers.
const (
	headerSession = "X-Genlayer-Session"
	headerCache   = "X-Genlayer-Cache"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// RegionResponse is the body of /api/v1/region.
type RegionResponse struct {
	*pipeline.Region
	Session     string      `json:"session"`
	Fingerprint string      `json:"fingerprint"`
	Cached      bool        `json:"cached"`
	Stats       RegionStats `json:"stats"`
}

// RegionStats reports query timing in milliseconds.
type RegionStats struct {
	Cells    int     `json:"cells"`
	Layers   int     `json:"layers"`
	BuildMS  float64 `json:"build_ms"`
	SampleMS float64 `json:"sample_ms"`
	EncodeMS float64 `json:"encode_ms"`
}

// SessionResponse describes a built world.
type SessionResponse struct {
	ID          string            `json:"id"`
	Seed        int64             `json:"seed"`
	Settings    pipeline.Settings `json:"settings"`
	Fingerprint string            `json:"fingerprint"`
	Layers      int               `json:"layers"`
	Depth       int               `json:"depth"`
	Chains      []string          `json:"chains"`
	CreatedAt   time.Time         `json:"created_at"`
	BuildMS     float64           `json:"build_ms"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	jsonOK(w, r, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
		"service":   "genlayer",
		"version":   buildinfo.Version,
	})
}

func (s *Server) sample(w http.ResponseWriter, r *http.Request) {
	q, err := s.parseRequest(r.URL.Query())
	if err != nil {
		s.renderRunnerError(w, r, err)
		return
	}
	res, err := s.runner.Sample(r.Context(), q)
	if err != nil {
		s.renderRunnerError(w, r, err)
		return
	}
	w.Header().Set(headerSession, res.Session)
	jsonOK(w, r, res)
}

func (s *Server) region(w http.ResponseWriter, r *http.Request) {
	q, err := s.parseRequest(r.URL.Query())
	if err != nil {
		s.renderRunnerError(w, r, err)
		return
	}
	q.Format = pipeline.FormatJSON
	res, err := s.runner.Execute(r.Context(), q)
	if err != nil {
		s.renderRunnerError(w, r, err)
		return
	}
	setResultHeaders(w, res)
	jsonOK(w, r, RegionResponse{
		Region:      res.Region,
		Session:     res.Session,
		Fingerprint: res.Fingerprint,
		Cached:      res.CacheInfo.RegionHit,
		Stats: RegionStats{
			Cells:    res.Stats.Cells,
			Layers:   res.Stats.LayerCount,
			BuildMS:  millis(res.Stats.BuildTime),
			SampleMS: millis(res.Stats.SampleTime),
			EncodeMS: millis(res.Stats.EncodeTime),
		},
	})
}

func (s *Server) regionPNG(w http.ResponseWriter, r *http.Request) {
	q, err := s.parseRequest(r.URL.Query())
	if err != nil {
		s.renderRunnerError(w, r, err)
		return
	}
	q.Format = pipeline.FormatPNG
	res, err := s.runner.Execute(r.Context(), q)
	if err != nil {
		s.renderRunnerError(w, r, err)
		return
	}
	setResultHeaders(w, res)
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(res.Data)
}

var topologyContentTypes = map[string]string{
	pipeline.FormatJSON: "application/json",
	pipeline.FormatDOT:  "text/vnd.graphviz; charset=utf-8",
	pipeline.FormatSVG:  "image/svg+xml",
}

func (s *Server) layers(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	q, err := s.parseRequest(values)
	if err != nil {
		s.renderRunnerError(w, r, err)
		return
	}
	format := values.Get("format")
	if format == "" {
		format = pipeline.FormatJSON
	}
	detailed, err := parseBool(values, "detailed")
	if err != nil {
		s.renderRunnerError(w, r, err)
		return
	}

	data, hit, err := s.runner.TopologyWithCacheInfo(r.Context(), q.Seed, q.Settings, format, detailed)
	if err != nil {
		s.renderRunnerError(w, r, err)
		return
	}
	w.Header().Set(headerCache, cacheStatus(hit))
	w.Header().Set("Content-Type", topologyContentTypes[format])
	_, _ = w.Write(data)
}

func (s *Server) session(w http.ResponseWriter, r *http.Request) {
	sess, err := s.runner.Lookup(chi.URLParam(r, "id"))
	if err != nil {
		s.renderRunnerError(w, r, err)
		return
	}
	jsonOK(w, r, SessionResponse{
		ID:          sess.ID,
		Seed:        sess.Seed,
		Settings:    sess.Settings,
		Fingerprint: sess.Fingerprint(),
		Layers:      sess.Chains.Graph.Len(),
		Depth:       sess.Chains.Graph.Depth(),
		Chains:      sess.Chains.Names(),
		CreatedAt:   sess.CreatedAt,
		BuildMS:     millis(sess.BuildTime),
	})
}

// =============================================================================
// Query Parsing
// =============================================================================

// parseRequest reads the world and region parameters shared by every route.
func (s *Server) parseRequest(v url.Values) (pipeline.Request, error) {
	q := pipeline.Request{
		Seed:     s.opts.Seed,
		Settings: s.opts.Settings,
		Chain:    v.Get("chain"),
	}
	if ws := v.Get("world_type"); ws != "" {
		q.Settings.WorldType = ws
	}
	if fb, ok := v["fixed_biome"]; ok {
		q.Settings.FixedBiome = fb[0]
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"biome_size", &q.Settings.BiomeSize},
		{"river_size", &q.Settings.RiverSize},
		{"x", &q.X},
		{"z", &q.Z},
		{"w", &q.Width},
		{"h", &q.Height},
		{"step", &q.Step},
		{"scale", &q.Scale},
	}
	for _, p := range ints {
		if err := parseInt(v, p.key, p.dst); err != nil {
			return q, err
		}
	}
	// Explicit sizes fail fast, before any session is built.
	if v.Get("biome_size") != "" {
		if err := errors.ValidateSize("biome size", q.Settings.BiomeSize); err != nil {
			return q, err
		}
	}
	if v.Get("river_size") != "" {
		if err := errors.ValidateSize("river size", q.Settings.RiverSize); err != nil {
			return q, err
		}
	}
	if raw := v.Get("seed"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return q, errors.New(errors.ErrCodeInvalidConfig, "seed must be an integer, got %q", raw)
		}
		q.Seed = seed
	}
	return q, nil
}

func parseInt(v url.Values, key string, dst *int) error {
	raw := v.Get(key)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return errors.New(errors.ErrCodeInvalidRegion, "%s must be an integer, got %q", key, raw)
	}
	*dst = n
	return nil
}

func parseBool(v url.Values, key string) (bool, error) {
	raw := v.Get(key)
	if raw == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errors.New(errors.ErrCodeInvalidConfig, "%s must be a boolean, got %q", key, raw)
	}
	return b, nil
}

// =============================================================================
// Responses
// =============================================================================

func setResultHeaders(w http.ResponseWriter, res *pipeline.Result) {
	w.Header().Set(headerSession, res.Session)
	w.Header().Set(headerCache, cacheStatus(res.CacheInfo.RegionHit))
}

func cacheStatus(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}

func millis(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}

// renderRunnerError maps coded runner errors to HTTP statuses.
func (s *Server) renderRunnerError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.IsClientError(err):
		s.renderError(w, r, http.StatusBadRequest, errors.UserMessage(err), err)
	case errors.Is(err, errors.ErrCodeSessionNotFound), errors.Is(err, errors.ErrCodeNotFound):
		s.renderError(w, r, http.StatusNotFound, errors.UserMessage(err), err)
	case stderrors.Is(err, context.DeadlineExceeded):
		s.renderError(w, r, http.StatusGatewayTimeout, "request timed out", err)
	default:
		s.renderError(w, r, http.StatusInternalServerError, "internal server error", err)
	}
}

func (s *Server) renderError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Code = string(errors.GetCode(err))
		if status >= 500 {
			s.logger.Error("request failed", "path", r.URL.Path, "status", status, "error", err)
		} else {
			s.logger.Debug("request rejected", "path", r.URL.Path, "status", status, "error", err)
		}
	}
	render.Status(r, status)
	render.JSON(w, r, resp)
}
