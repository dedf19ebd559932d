package storage

import "context"

// Storage is a persistent string map.
type Storage interface {
	// Get returns the value under key; ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set creates or overwrites key.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
