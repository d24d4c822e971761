// Package metadata stores small client-side key/value settings, such as the
// persisted session token.
package metadata

import (
	"context"
	"time"
)

// Entry is one stored value together with the time it was last written.
type Entry struct {
	Value     string
	UpdatedAt time.Time
}

type Repository interface {
	// Get returns ok=false when the key is absent.
	Get(ctx context.Context, key string) (Entry, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
