// Package listingrepo provides data transfer objects and mapping functions for listing persistence.
package listingrepo

import (
	"github.com/google/uuid"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/listing"
)

// ListingDTO represents the database structure for persisting listing aggregates.
// TotalOrders is advisory; the reconciliation pass rewrites it from the orders
// table.
type ListingDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID      uuid.UUID `gorm:"type:uuid;index"`
	Title        string
	Description  string
	PriceCents   int64
	DeliveryDays int
	Category     string `gorm:"index"`
	Active       bool   `gorm:"index"`
	TotalOrders  int
}

// TableName specifies the database table name for listing entities.
func (ListingDTO) TableName() string {
	return "listings"
}

// fromDomain converts a listing domain aggregate to its database representation.
func fromDomain(aggregate *listing.Listing) ListingDTO {
	return ListingDTO{
		ID:           aggregate.ID().Bytes(),
		OwnerID:      aggregate.OwnerID().Bytes(),
		Title:        aggregate.Title(),
		Description:  aggregate.Description(),
		PriceCents:   aggregate.Price().Cents(),
		DeliveryDays: aggregate.DeliveryDays(),
		Category:     aggregate.Category().String(),
		Active:       aggregate.IsActive(),
		TotalOrders:  aggregate.TotalOrders(),
	}
}

// toDomain converts a database DTO to a listing domain aggregate.
func toDomain(dto ListingDTO) (*listing.Listing, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.PriceCents)
	if err != nil {
		return nil, err
	}
	category, err := listing.CategoryFromString(dto.Category)
	if err != nil {
		return nil, err
	}

	return listing.RestoreListing(
		id, ownerID,
		dto.Title, dto.Description,
		price, dto.DeliveryDays, category,
		dto.Active, dto.TotalOrders,
	)
}
