package cache

// ScopedKeyer wraps a Keyer with a prefix for multi-tenant isolation.
// This is useful in the cloud platform where different users or contexts
// need separate cache namespaces.
//
// Example usage:
//
//	// User-specific keys for private repos
//	userKeyer := NewScopedKeyer(NewDefaultKeyer(), "user:abc123:")
//
//	// Global keys for public packages
//	globalKeyer := NewDefaultKeyer()
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

// SliceKey generates a prefixed key for sliced-document caching.
func (k *ScopedKeyer) SliceKey(sourceHash string, opts SliceKeyOpts) string {
	return k.prefix + k.inner.SliceKey(sourceHash, opts)
}

// LayoutKey generates a prefixed key for layout caching.
func (k *ScopedKeyer) LayoutKey(snapshotHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(snapshotHash, opts)
}

// FrameKey generates a prefixed key for rendered-frame caching.
func (k *ScopedKeyer) FrameKey(layoutHash string, opts FrameKeyOpts) string {
	return k.prefix + k.inner.FrameKey(layoutHash, opts)
}
