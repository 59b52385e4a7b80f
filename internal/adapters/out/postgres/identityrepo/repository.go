package identityrepo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// GormIdentityRepository implements IdentityRepository using GORM.
type GormIdentityRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormIdentityRepository creates a new GORM identity repository.
func NewGormIdentityRepository(db *gorm.DB, tracker aggregateTracker) *GormIdentityRepository {
	return &GormIdentityRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new identity to the database.
func (r *GormIdentityRepository) Add(ctx context.Context, aggregate *identity.Identity) error {
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

// Update saves an existing identity to the database.
func (r *GormIdentityRepository) Update(ctx context.Context, aggregate *identity.Identity) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&IdentityDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("identity", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an identity by ID.
func (r *GormIdentityRepository) Get(ctx context.Context, id kernel.UUID) (*identity.Identity, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto IdentityDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("identity", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByEmail retrieves an identity by its e-mail address. Addresses are
// stored lowercased, so the lookup lowercases too.
func (r *GormIdentityRepository) GetByEmail(ctx context.Context, email string) (*identity.Identity, error) {
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	var dto IdentityDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", strings.ToLower(email)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("identity", email)
		}
		return nil, err
	}

	return toDomain(dto)
}
