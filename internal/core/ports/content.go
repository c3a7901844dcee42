package ports

import (
	"context"

	"github.com/komfort-city/site-backend/internal/core/domain"
)

// Patch is an optional-field set for a partial update. Changes returns
// only the fields explicitly present in the request, keyed by stored
// field name; absent fields never reach the store.
type Patch interface {
	Changes() map[string]any
}

// ContentRepository is the uniform persistence contract shared by all six
// content types. One implementation is instantiated per type from a
// per-collection policy table (collection name + list sort direction).
//
// Update and Delete report domain.ErrNotFound when zero documents were
// modified. For Update this conflates "no such record" with "update was a
// no-op"; the store cannot tell the two apart and API consumers see 404
// for both.
type ContentRepository[T any] interface {
	// List returns records sorted by (order asc, created_at per policy),
	// restricted to active records when onlyActive is true.
	List(ctx context.Context, onlyActive bool) ([]T, error)
	GetByID(ctx context.Context, id string) (*T, error)
	// Create stamps created_at and updated_at and returns the stored
	// record with its assigned identifier.
	Create(ctx context.Context, record T) (*T, error)
	Update(ctx context.Context, id string, patch Patch) error
	Delete(ctx context.Context, id string) error
}

// SiteRepository manages the singleton site information document.
type SiteRepository interface {
	Get(ctx context.Context) (*domain.SiteInfo, error)
	Update(ctx context.Context, patch Patch) error
}

// ContentCensus exposes the counting queries behind dashboard statistics.
// Counts are independent queries, not an atomic snapshot.
type ContentCensus interface {
	CountContent(ctx context.Context, collection string, activeOnly bool) (int64, error)
	CountAllContent(ctx context.Context) (int64, error)
}
