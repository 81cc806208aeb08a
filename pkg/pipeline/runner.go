package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/matzehuels/genlayer/pkg/biome"
	"github.com/matzehuels/genlayer/pkg/cache"
	"github.com/matzehuels/genlayer/pkg/errors"
	"github.com/matzehuels/genlayer/pkg/observability"
)

// =============================================================================
// Requests and Results
// =============================================================================

// DefaultRegionSize is the region edge length used when a request leaves
// width or height unset.
const DefaultRegionSize = 256

// sessionCacheSize bounds the number of built pipelines a runner keeps.
const sessionCacheSize = 16

// Request describes a query against one world. A zero Settings value means
// DefaultSettings, so a request only needs a seed. Settings that are set are
// used as given and validated when the session is built.
type Request struct {
	Seed     int64    `json:"seed"`
	Settings Settings `json:"settings"`
	Chain    string   `json:"chain,omitempty"`

	X      int `json:"x"`
	Z      int `json:"z"`
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`
	Step   int `json:"step,omitempty"`  // blocks between samples
	Scale  int `json:"scale,omitempty"` // PNG pixels per sample

	Format  string `json:"format,omitempty"`
	Refresh bool   `json:"refresh,omitempty"` // bypass the region cache and recompute every cell
}

// SetDefaults fills unset fields.
func (q *Request) SetDefaults() {
	q.Settings = q.Settings.OrDefault()
	if q.Chain == "" {
		q.Chain = ChainZoomed
	}
	if q.Width == 0 {
		q.Width = DefaultRegionSize
	}
	if q.Height == 0 {
		q.Height = DefaultRegionSize
	}
	if q.Step == 0 {
		q.Step = 1
	}
	if q.Scale == 0 {
		q.Scale = 1
	}
	if q.Format == "" {
		q.Format = FormatJSON
	}
}

// Validate checks the request shape. World settings are validated when the
// session is built.
func (q *Request) Validate() error {
	if err := errors.ValidateFormat(q.Format, RegionFormats...); err != nil {
		return err
	}
	if q.Step < 1 {
		return errors.New(errors.ErrCodeInvalidRegion, "step must be >= 1, got %d", q.Step)
	}
	if q.Scale < 1 || q.Scale > 32 {
		return errors.New(errors.ErrCodeInvalidRegion, "scale must be in [1, 32], got %d", q.Scale)
	}
	return errors.ValidateRegion(q.X, q.Z, q.Width, q.Height)
}

// SampleResult is the value of one cell.
type SampleResult struct {
	X       int         `json:"x"`
	Z       int         `json:"z"`
	Chain   string      `json:"chain"`
	Value   int         `json:"value"`
	Biome   biome.Biome `json:"biome"`
	Session string      `json:"session"`
}

// Result contains the outputs of a region query.
type Result struct {
	// Region is the decoded region; nil for PNG results served from cache.
	Region *Region
	// Data is the encoded region in Format.
	Data   []byte
	Format string

	// Session is the ID of the session that owns the world.
	Session string
	// Fingerprint identifies the world for cache keys and ETags.
	Fingerprint string

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains query timing.
type Stats struct {
	Cells      int
	BuildTime  time.Duration
	SampleTime time.Duration
	EncodeTime time.Duration
	LayerCount int

	// Layer cache counters summed over every layer of the session. They are
	// cumulative for the session's lifetime.
	LayerComputations int64
	LayerHits         int64
	LayerMisses       int64
}

// CacheInfo tracks which stages were served from cache.
type CacheInfo struct {
	SessionHit bool // pipeline was already built
	RegionHit  bool // encoded region came from the region cache
}

// =============================================================================
// Runner
// =============================================================================

// Runner serves queries with cached sessions and encoded regions. It is
// safe for concurrent use.
type Runner struct {
	Cache   cache.Cache
	Keyer   cache.Keyer
	Logger  *log.Logger
	Options Options

	sessions *lru.Cache[string, *Session]
	byID     *lru.Cache[string, *Session]
	builds   singleflight.Group
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	sessions, _ := lru.New[string, *Session](sessionCacheSize)
	byID, _ := lru.New[string, *Session](sessionCacheSize)
	return &Runner{
		Cache:    c,
		Keyer:    keyer,
		Logger:   logger,
		sessions: sessions,
		byID:     byID,
	}
}

// WithOptions sets the pipeline options used for new sessions and returns r.
func (r *Runner) WithOptions(opts Options) *Runner {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	r.Options = opts
	return r
}

// SessionWithCacheInfo returns the session for seed and s, building it on
// first use. Concurrent requests for the same world share one build.
func (r *Runner) SessionWithCacheInfo(ctx context.Context, seed int64, s Settings) (*Session, bool, error) {
	key := Fingerprint(seed, s, r.Options.LegacySeeding)
	if sess, ok := r.sessions.Get(key); ok {
		return sess, true, nil
	}

	v, err, _ := r.builds.Do(key, func() (any, error) {
		if sess, ok := r.sessions.Get(key); ok {
			return sess, nil
		}
		opts := r.Options
		if opts.Logger == nil {
			opts.Logger = r.Logger
		}
		sess, err := NewSession(ctx, seed, s, opts)
		if err != nil {
			return nil, err
		}
		r.sessions.Add(key, sess)
		r.byID.Add(sess.ID, sess)
		r.Logger.Info("built world", "seed", seed, "world_type", s.WorldType,
			"layers", sess.Chains.Graph.Len(), "duration", sess.BuildTime)
		return sess, nil
	})
	if err != nil {
		return nil, false, err
	}
	return v.(*Session), false, nil
}

// Session is a convenience wrapper that discards the cache hit info.
func (r *Runner) Session(ctx context.Context, seed int64, s Settings) (*Session, error) {
	sess, _, err := r.SessionWithCacheInfo(ctx, seed, s)
	return sess, err
}

// Lookup returns a previously built session by ID.
func (r *Runner) Lookup(id string) (*Session, error) {
	if sess, ok := r.byID.Get(id); ok {
		return sess, nil
	}
	return nil, errors.New(errors.ErrCodeSessionNotFound, "session %q not found", id)
}

// Sample returns the value of one cell.
func (r *Runner) Sample(ctx context.Context, q Request) (*SampleResult, error) {
	q.SetDefaults()
	if err := errors.ValidateCoordinate(q.X, q.Z); err != nil {
		return nil, err
	}
	sess, err := r.Session(ctx, q.Seed, q.Settings)
	if err != nil {
		return nil, err
	}
	g, err := sess.Grid(q.Chain)
	if err != nil {
		return nil, err
	}
	return &SampleResult{
		X:       q.X,
		Z:       q.Z,
		Chain:   g.Name(),
		Value:   g.Sample(q.X, q.Z),
		Biome:   g.Biome(q.X, q.Z),
		Session: sess.ID,
	}, nil
}

// Execute samples and encodes a region, consulting the region cache first.
func (r *Runner) Execute(ctx context.Context, q Request) (*Result, error) {
	q.SetDefaults()
	if err := q.Validate(); err != nil {
		return nil, err
	}

	sess, sessionHit, err := r.SessionWithCacheInfo(ctx, q.Seed, q.Settings)
	if err != nil {
		return nil, err
	}
	grid, err := sess.Grid(q.Chain)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Format:      q.Format,
		Session:     sess.ID,
		Fingerprint: sess.Fingerprint(),
		CacheInfo:   CacheInfo{SessionHit: sessionHit},
	}
	result.Stats.Cells = q.Width * q.Height
	result.Stats.BuildTime = sess.BuildTime
	result.Stats.LayerCount = sess.Chains.Graph.Len()

	cacheKey := r.Keyer.RegionKey(result.Fingerprint, cache.RegionKeyOpts{
		Chain:  grid.Name(),
		X:      q.X,
		Z:      q.Z,
		Width:  q.Width,
		Height: q.Height,
		Step:   q.Step,
		Scale:  q.Scale,
		Format: q.Format,
	})

	// Try cache first (unless refresh requested)
	if q.Refresh {
		sess.Chains.Graph.Purge()
	} else {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err != nil {
			r.Logger.Warn("region cache read failed", "error", err)
		} else if hit {
			if q.Format == FormatJSON {
				if region, err := DecodeRegion(data); err == nil {
					result.Region = region
				}
			}
			if q.Format != FormatJSON || result.Region != nil {
				observability.Cache().OnCacheHit(ctx, "region")
				result.Data = data
				result.CacheInfo.RegionHit = true
				r.Logger.Debug("region cache hit", "region", fmt.Sprintf("%s[%d,%d %dx%d]", grid.Name(), q.X, q.Z, q.Width, q.Height))
				return result, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "region")
	}

	hooks := observability.Pipeline()
	hooks.OnRegionStart(ctx, grid.Name(), result.Stats.Cells)
	start := time.Now()
	region, err := grid.SampledRegion(ctx, q.X, q.Z, q.Width, q.Height, q.Step)
	result.Stats.SampleTime = time.Since(start)
	hooks.OnRegionComplete(ctx, grid.Name(), result.Stats.Cells, result.Stats.SampleTime, err)
	if err != nil {
		return nil, err
	}
	result.Region = region

	start = time.Now()
	data, err := EncodeRegion(region, q.Format, sess.opts.Registry, q.Scale)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode %s", q.Format)
	}
	result.Data = data
	result.Stats.EncodeTime = time.Since(start)

	ls := sess.Chains.Graph.Stats()
	result.Stats.LayerComputations, result.Stats.LayerHits, result.Stats.LayerMisses = ls.Computations, ls.Hits, ls.Misses

	if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLRegion); err != nil {
		r.Logger.Warn("region cache write failed", "error", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "region", len(data))
	}

	r.Logger.Debug("sampled region",
		"region", region.String(),
		"format", q.Format,
		"bytes", len(data),
		"sample", result.Stats.SampleTime,
		"encode", result.Stats.EncodeTime)
	return result, nil
}

// Region is a convenience wrapper that returns only the decoded region. It
// always requests JSON so the region can be decoded from cache.
func (r *Runner) Region(ctx context.Context, q Request) (*Region, error) {
	q.Format = FormatJSON
	res, err := r.Execute(ctx, q)
	if err != nil {
		return nil, err
	}
	return res.Region, nil
}

// TopologyWithCacheInfo encodes the layer topology of a world.
func (r *Runner) TopologyWithCacheInfo(ctx context.Context, seed int64, s Settings, format string, detailed bool) ([]byte, bool, error) {
	if err := errors.ValidateFormat(format, TopologyFormats...); err != nil {
		return nil, false, err
	}
	sess, err := r.Session(ctx, seed, s)
	if err != nil {
		return nil, false, err
	}

	keyFormat := format
	if detailed {
		keyFormat += ":detailed"
	}
	cacheKey := r.Keyer.TopologyKey(sess.Fingerprint(), keyFormat)
	if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
		observability.Cache().OnCacheHit(ctx, "topology")
		return data, true, nil
	}
	observability.Cache().OnCacheMiss(ctx, "topology")

	data, err := EncodeTopology(ctx, sess.Chains.Graph, format, detailed)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "encode topology")
	}
	if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLTopology); err == nil {
		observability.Cache().OnCacheSet(ctx, "topology", len(data))
	}
	return data, false, nil
}

// Topology is a convenience wrapper that discards the cache hit info.
func (r *Runner) Topology(ctx context.Context, seed int64, s Settings, format string, detailed bool) ([]byte, error) {
	data, _, err := r.TopologyWithCacheInfo(ctx, seed, s, format, detailed)
	return data, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
