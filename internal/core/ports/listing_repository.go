package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/listing"
)

// ListingRepository defines the persistence contract for listing aggregates.
type ListingRepository interface {
	// Add persists a new listing aggregate to storage.
	Add(ctx context.Context, aggregate *listing.Listing) error

	// Update persists changes to an existing listing aggregate.
	Update(ctx context.Context, aggregate *listing.Listing) error

	// Get retrieves a listing aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*listing.Listing, error)

	// IncrementOrderCount bumps the listing's order counter by one. The
	// counter is advisory and may lag behind the true count; the
	// reconciliation job brings it back in line.
	IncrementOrderCount(ctx context.Context, id kernel.UUID) error

	// ReconcileOrderCounts rewrites every listing's order counter from the
	// actual number of orders referencing it. Returns the number of listings
	// whose counter changed.
	ReconcileOrderCounts(ctx context.Context) (int64, error)
}
