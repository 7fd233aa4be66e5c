// Package kvstore defines the key-value persistence port the core writes
// its snapshots through. Production uses the Badger adapter; tests and
// ephemeral runs use the in-memory adapter.
package kvstore

import "context"

// Store is a flat namespaced key-value port.
type Store interface {
	// Get returns the value for key, reporting whether it exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Well-known keys of the persisted layout. The legacy key holds the
// single-team schema of earlier deployments and is consulted once at
// startup when the primary key is empty.
const (
	KeyAppState    = "setly-app"
	KeyLegacyState = "volleyball-team-app"
	KeyCredentials = "setly-credentials"
	KeyDirector    = "setly-director"
)
