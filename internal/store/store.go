// Package store provides data persistence interfaces and implementations.
package store

import "context"

// Well-known keys owned by the client. Both hold a single value: the session
// identifier as a plain string, the history log as one serialized JSON array.
const (
	KeySessionID = "cooked_session_id"
	KeyHistory   = "cooked_history"
)

// Repository defines the interface for persisting namespaced client state.
type Repository interface {
	// Get retrieves the value stored under key. The second return value is
	// false when the key has never been written.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set writes value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Ping verifies the storage medium is reachable.
	Ping(ctx context.Context) error

	// Close releases the underlying storage handle.
	Close() error
}
