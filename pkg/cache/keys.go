package cache

// Keyer generates cache keys for pipeline artifacts.
type Keyer interface {
	// ArtifactKey generates a key for a rendered artifact. docHash is the
	// content hash of the canonical document serialization.
	ArtifactKey(docHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts captures everything besides the document itself that can
// change the rendered bytes.
type ArtifactKeyOpts struct {
	Format     string `json:"format"`      // output format ("pdf")
	ConfigHash string `json:"config_hash"` // fingerprint of the resolved configuration
	Version    string `json:"version"`     // generator version; renderer changes invalidate old entries
}

// DefaultKeyer is the standard key generator.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard key generator.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(docHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", docHash, opts)
}
