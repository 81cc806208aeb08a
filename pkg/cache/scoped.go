package cache

// ScopedKeyer wraps a Keyer with a prefix so several deployments can share
// one Redis or Mongo backend without key collisions.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "staging:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// RegionKey generates a prefixed region key.
func (k *ScopedKeyer) RegionKey(world string, opts RegionKeyOpts) string {
	return k.prefix + k.inner.RegionKey(world, opts)
}

// TopologyKey generates a prefixed topology key.
func (k *ScopedKeyer) TopologyKey(world string, format string) string {
	return k.prefix + k.inner.TopologyKey(world, format)
}
