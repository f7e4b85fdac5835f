package ports

import "context"

// ListCache is the explicit staleness-bounded cache in front of the
// paginated listings. Entries expire after a fixed TTL and every write to
// the underlying collection invalidates the whole prefix, so a reader never
// trusts data older than the declared window.
type ListCache interface {
	// Get unmarshals the cached entry into dest and reports whether it existed.
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, v any) error
	// Invalidate removes every entry whose key starts with prefix.
	Invalidate(ctx context.Context, prefix string) error
}
