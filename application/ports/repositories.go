package ports

import (
	"context"
	"time"

	"libreria-backend/domain/catalog"
	"libreria-backend/domain/events"
)

// ProductRepository is the port for the authoritative product table
type ProductRepository interface {
	// GetByID returns the product or a not-found error
	GetByID(ctx context.Context, id string) (*catalog.Product, error)

	// SetNormalizedTitle conditionally writes normalizedTitle and the
	// searchable marker. It returns false with a nil error when the stored
	// value already matches, which is the guard that stops the stream from
	// re-triggering itself forever.
	SetNormalizedTitle(ctx context.Context, id, normalized string) (bool, error)

	// SetCategoryIDs overwrites the product's denormalized category-id
	// list. An empty slice clears it.
	SetCategoryIDs(ctx context.Context, id string, categoryIDs []string) error
}

// CategoryLinkRepository is the port for the product-category join table
type CategoryLinkRepository interface {
	// ListByProduct returns every join row referencing the product, in
	// index order.
	ListByProduct(ctx context.Context, productID string) ([]catalog.CategoryLink, error)

	// PutSummaries overwrites the given join rows in batches
	PutSummaries(ctx context.Context, links []catalog.CategoryLink) error

	// DeleteByProduct removes every join row referencing the product and
	// returns how many were deleted.
	DeleteByProduct(ctx context.Context, productID string) (int, error)
}

// SearchTokenRepository is the port for the token-to-product search index
type SearchTokenRepository interface {
	// PutTokens writes the token rows in batches
	PutTokens(ctx context.Context, tokens []catalog.SearchToken) error

	// DeleteByProduct removes every token row for the product via the
	// byProduct index. No pipeline component calls this yet; it exists so
	// stale-token retraction can be added without schema work.
	DeleteByProduct(ctx context.Context, productID string) (int, error)
}

// ObjectStore is the port for product image storage
type ObjectStore interface {
	// DeleteKeys deletes the given storage keys and returns how many were
	// removed.
	DeleteKeys(ctx context.Context, keys []string) (int, error)

	// ListByPrefix returns every key under the prefix
	ListByPrefix(ctx context.Context, prefix string) ([]string, error)
}

// CleanupQueue is the port for the deletion-cascade job queue
type CleanupQueue interface {
	Enqueue(ctx context.Context, job catalog.CleanupJob, delay time.Duration) error
}

// EventPublisher publishes catalog lifecycle events for ops consumers
type EventPublisher interface {
	Publish(ctx context.Context, event events.CatalogEvent) error
}

// SearchEngine is the port for the optional full-text search mode
type SearchEngine interface {
	Search(ctx context.Context, term string, from, size int) ([]catalog.ProductFromSearch, error)
}
