package port

import "context"

// KVStore is the persistence substrate for all collections. Values are
// opaque strings (JSON documents in practice). Implementations must be
// safe for concurrent use.
type KVStore interface {
	// Get returns the value for key. The second return is false when
	// the key is absent.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
