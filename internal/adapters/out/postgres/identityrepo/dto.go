// Package identityrepo provides data transfer objects and mapping functions for identity persistence.
package identityrepo

import (
	"github.com/google/uuid"

	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/model/kernel"
)

// IdentityDTO represents the database structure for persisting identity aggregates.
// Rating and CompletedOrders are derived values maintained by the order flows;
// they are stored here so profile reads need no aggregation.
type IdentityDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string
	Email           string `gorm:"uniqueIndex"`
	PasswordHash    string
	Role            string
	Rating          float64
	CompletedOrders int
}

// TableName specifies the database table name for identity entities.
func (IdentityDTO) TableName() string {
	return "identities"
}

// fromDomain converts an identity domain aggregate to its database representation.
func fromDomain(aggregate *identity.Identity) IdentityDTO {
	return IdentityDTO{
		ID:              aggregate.ID().Bytes(),
		Name:            aggregate.Name(),
		Email:           aggregate.Email(),
		PasswordHash:    aggregate.PasswordHash(),
		Role:            aggregate.Role().String(),
		Rating:          aggregate.Rating(),
		CompletedOrders: aggregate.CompletedOrders(),
	}
}

// toDomain converts a database DTO to an identity domain aggregate.
func toDomain(dto IdentityDTO) (*identity.Identity, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := identity.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return identity.RestoreIdentity(
		id, dto.Name, dto.Email, dto.PasswordHash, role,
		dto.Rating, dto.CompletedOrders,
	)
}
