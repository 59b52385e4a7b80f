package ports

import (
	"context"

	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/model/kernel"
)

// IdentityRepository defines the persistence contract for identity aggregates.
type IdentityRepository interface {
	// Add persists a new identity aggregate to storage.
	Add(ctx context.Context, aggregate *identity.Identity) error

	// Update persists changes to an existing identity aggregate.
	Update(ctx context.Context, aggregate *identity.Identity) error

	// Get retrieves an identity aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*identity.Identity, error)

	// GetByEmail retrieves an identity aggregate by its e-mail address.
	GetByEmail(ctx context.Context, email string) (*identity.Identity, error)
}
