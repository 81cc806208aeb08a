package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/genlayer/pkg/cache"
	"github.com/matzehuels/genlayer/pkg/observability"
)

// Session is one built pipeline for a seed and settings.
type Session struct {
	ID        string
	Seed      int64
	Settings  Settings
	Chains    *Chains
	CreatedAt time.Time
	BuildTime time.Duration

	opts Options
}

// NewSession builds the chains for seed and s.
func NewSession(ctx context.Context, seed int64, s Settings, opts Options) (*Session, error) {
	opts.SetDefaults()
	hooks := observability.Pipeline()
	hooks.OnBuildStart(ctx, s.WorldType, seed)

	start := time.Now()
	chains, err := BuildChains(seed, s, opts)
	elapsed := time.Since(start)
	if err != nil {
		hooks.OnBuildComplete(ctx, s.WorldType, 0, elapsed, err)
		return nil, err
	}
	hooks.OnBuildComplete(ctx, s.WorldType, chains.Graph.Len(), elapsed, nil)

	sess := &Session{
		ID:        uuid.NewString(),
		Seed:      seed,
		Settings:  s,
		Chains:    chains,
		CreatedAt: start,
		BuildTime: elapsed,
		opts:      opts,
	}
	opts.Logger.Debug("built pipeline",
		"session", sess.ID,
		"seed", seed,
		"world_type", s.WorldType,
		"layers", chains.Graph.Len(),
		"depth", chains.Graph.Depth(),
		"duration", elapsed)
	return sess, nil
}

// Grid returns the query facade for a chain or branch name.
func (s *Session) Grid(chain string) (*Grid, error) {
	n, err := s.Chains.Chain(chain)
	if err != nil {
		return nil, err
	}
	if chain == "" {
		chain = ChainZoomed
	}
	return NewGrid(chain, n, s.opts.Registry, s.opts.Workers), nil
}

// Fingerprint identifies the generated world. Sessions with equal
// fingerprints produce identical values everywhere.
func (s *Session) Fingerprint() string {
	return Fingerprint(s.Seed, s.Settings, s.opts.LegacySeeding)
}

// Fingerprint hashes everything that influences generated values.
func Fingerprint(seed int64, s Settings, legacySeeding bool) string {
	data, _ := json.Marshal(struct {
		Seed     int64    `json:"seed"`
		Settings Settings `json:"settings"`
		Legacy   bool     `json:"legacy"`
	}{seed, s, legacySeeding})
	return cache.Hash(data)
}
