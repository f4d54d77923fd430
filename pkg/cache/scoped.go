package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
// The render service scopes its entries away from local CLI entries so a
// shared Redis instance can serve both without collisions.
//
// Example usage:
//
//	// Service-owned artifacts
//	serveKeyer := NewScopedKeyer(NewDefaultKeyer(), "serve:")
//
//	// Local CLI artifacts
//	localKeyer := NewDefaultKeyer()
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

// ArtifactKey generates a prefixed key for a rendered artifact.
func (k *ScopedKeyer) ArtifactKey(docHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(docHash, opts)
}
