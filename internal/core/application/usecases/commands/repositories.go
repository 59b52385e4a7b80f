// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ListingRepoFactory provides access to listing repository within a transaction.
	ListingRepoFactory interface {
		ListingRepository() ports.ListingRepository
	}

	// IdentityRepoFactory provides access to identity repository within a transaction.
	IdentityRepoFactory interface {
		IdentityRepository() ports.IdentityRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ListingUoW manages transactions for listing-only operations.
	ListingUoW interface {
		TxManager
		ListingRepoFactory
	}

	// ListingUoWFactory creates new listing unit of work instances.
	ListingUoWFactory interface {
		Create() ListingUoW
	}

	// IdentityUoW manages transactions for identity-only operations.
	IdentityUoW interface {
		TxManager
		IdentityRepoFactory
	}

	// IdentityUoWFactory creates new identity unit of work instances.
	IdentityUoWFactory interface {
		Create() IdentityUoW
	}

	// OrderListingUoW manages transactions that read listings while creating orders.
	OrderListingUoW interface {
		TxManager
		OrderRepoFactory
		ListingRepoFactory
	}

	// OrderListingUoWFactory creates new unit of work instances for order creation.
	OrderListingUoWFactory interface {
		Create() OrderListingUoW
	}

	// OrderIdentityUoW manages transactions that update both an order and the
	// seller's identity within one boundary. Used for completion counters and
	// rating aggregation.
	OrderIdentityUoW interface {
		TxManager
		OrderRepoFactory
		IdentityRepoFactory
	}

	// OrderIdentityUoWFactory creates new unit of work instances for
	// order-and-seller operations.
	OrderIdentityUoWFactory interface {
		Create() OrderIdentityUoW
	}

	// ListingIdentityUoW manages transactions that read identities while
	// creating listings.
	ListingIdentityUoW interface {
		TxManager
		ListingRepoFactory
		IdentityRepoFactory
	}

	// ListingIdentityUoWFactory creates new unit of work instances for
	// listing creation.
	ListingIdentityUoWFactory interface {
		Create() ListingIdentityUoW
	}

	// ListingCounterIncrementer bumps a listing's order counter outside any
	// command transaction. The increment is best effort: failures are logged,
	// not propagated, and the reconciliation job repairs the drift.
	ListingCounterIncrementer interface {
		IncrementOrderCount(ctx context.Context, id kernel.UUID) error
	}
)
