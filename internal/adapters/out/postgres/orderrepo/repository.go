package orderrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update persists the order's status and payment status, conditioned on the
// stored status still being the one the aggregate was loaded with. A
// transition that lost the race affects zero rows and is reported as a
// concurrency conflict so the caller can reload and retry.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ?", aggregate.ID().Bytes(), aggregate.LoadedStatus().String()).
		Updates(map[string]any{
			"status":         aggregate.Status().String(),
			"payment_status": aggregate.PaymentStatus().String(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.classifyMiss(ctx, aggregate.ID(),
			errs.NewConcurrencyConflictError("order", aggregate.ID().String()))
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateRating persists the order's rating, conditioned on no rating being
// stored yet. A second submission affects zero rows and is reported as
// AlreadyRatedError.
func (r *GormOrderRepository) UpdateRating(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	rating := aggregate.Rating()
	if rating == nil {
		return errs.NewValueIsRequiredError("rating")
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND rating_score IS NULL", aggregate.ID().Bytes()).
		Updates(map[string]any{
			"rating_score":  rating.Score(),
			"rating_review": rating.Review(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.classifyMiss(ctx, aggregate.ID(),
			errs.NewAlreadyRatedError(aggregate.ID().String()))
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// classifyMiss distinguishes "row is gone" from "condition failed" after a
// conditional update affected zero rows.
func (r *GormOrderRepository) classifyMiss(ctx context.Context, id kernel.UUID, conditionErr error) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}
	return conditionErr
}

// Get retrieves an order by ID, including its messages and deliverables.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	var messageDTOs []MessageDTO
	if err := r.db.WithContext(ctx).
		Order("sent_at, id").
		Find(&messageDTOs, "order_id = ?", id.Bytes()).Error; err != nil {
		return nil, err
	}

	var deliverableDTOs []DeliverableDTO
	if err := r.db.WithContext(ctx).
		Order("uploaded_at, id").
		Find(&deliverableDTOs, "order_id = ?", id.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, messageDTOs, deliverableDTOs)
}

// AppendMessage inserts a message row for the order.
func (r *GormOrderRepository) AppendMessage(ctx context.Context, orderID kernel.UUID, message order.Message) error {
	dto := messageFromDomain(orderID, message)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// AppendDeliverable inserts a deliverable row for the order.
func (r *GormOrderRepository) AppendDeliverable(
	ctx context.Context, orderID kernel.UUID, deliverable order.Deliverable,
) error {
	dto := deliverableFromDomain(orderID, deliverable)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// AverageRatingForSeller computes the mean rating over the seller's rated
// orders. Returns 0 when no rated orders exist.
func (r *GormOrderRepository) AverageRatingForSeller(ctx context.Context, sellerID kernel.UUID) (float64, error) {
	if err := sellerID.Validate(); err != nil {
		return 0, err
	}

	var average float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(AVG(rating_score), 0)
		FROM orders
		WHERE seller_id = ? AND rating_score IS NOT NULL
	`, sellerID.Bytes()).Scan(&average).Error
	if err != nil {
		return 0, err
	}

	return average, nil
}
