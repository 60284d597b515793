package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
// The preview server uses this to keep separate deployments from
// sharing a Redis keyspace.
//
// Example usage:
//
//	// Deployment-specific keys
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "plant-a:")
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

// ProjectKey generates a prefixed key for a parsed project.
func (k *ScopedKeyer) ProjectKey(contentHash string) string {
	return k.prefix + k.inner.ProjectKey(contentHash)
}

// LayoutKey generates a prefixed key for a computed layout plan.
func (k *ScopedKeyer) LayoutKey(projectHash, trayName string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(projectHash, trayName, opts)
}

// ArtifactKey generates a prefixed key for rendered output.
func (k *ScopedKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(layoutHash, opts)
}
