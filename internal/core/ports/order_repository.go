package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Status-changing writes use optimistic concurrency: Update commits only while
// the persisted status still equals the status the aggregate was loaded with,
// and reports a concurrency conflict otherwise. Appends to the message and
// deliverable collections are row inserts and need no such guard; ordering
// among appends is by server timestamp, not globally linearized.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the aggregate's current status and payment status,
	// conditioned on the persisted status still equaling the aggregate's
	// loaded status. Returns a ConcurrencyConflictError when the condition
	// fails and ObjectNotFoundError when the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateRating persists the aggregate's rating, conditioned on no rating
	// being stored yet. Returns an AlreadyRatedError when a rating is already
	// present.
	UpdateRating(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, including
	// its messages and deliverables.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// AppendMessage inserts a message row for the order.
	AppendMessage(ctx context.Context, orderID kernel.UUID, message order.Message) error

	// AppendDeliverable inserts a deliverable row for the order.
	AppendDeliverable(ctx context.Context, orderID kernel.UUID, deliverable order.Deliverable) error

	// AverageRatingForSeller computes the mean rating over all rated,
	// completed orders sold by the given identity. Returns 0 when no rated
	// orders exist.
	AverageRatingForSeller(ctx context.Context, sellerID kernel.UUID) (float64, error)
}
