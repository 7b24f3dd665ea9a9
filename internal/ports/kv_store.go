package ports

import "context"

// KeyValueStore is the on-device persistence boundary: string keys to
// string values, durable across restarts. There are no transactions
// across keys; every call either completes or fails atomically from the
// caller's perspective.
type KeyValueStore interface {
	// Get returns the stored value and whether the key exists
	Get(ctx context.Context, key string) (string, bool, error)
	// Set writes the value, replacing any previous one
	Set(ctx context.Context, key, value string) error
	// Remove deletes the key; removing a missing key is not an error
	Remove(ctx context.Context, key string) error
	Close() error
}
