package commands_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/listing"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// Shared testify mocks for command handler tests.

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateRating(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) AppendMessage(ctx context.Context, orderID kernel.UUID, msg order.Message) error {
	args := m.Called(ctx, orderID, msg)
	return args.Error(0)
}

func (m *MockOrderRepository) AppendDeliverable(
	ctx context.Context, orderID kernel.UUID, d order.Deliverable,
) error {
	args := m.Called(ctx, orderID, d)
	return args.Error(0)
}

func (m *MockOrderRepository) AverageRatingForSeller(ctx context.Context, sellerID kernel.UUID) (float64, error) {
	args := m.Called(ctx, sellerID)
	return args.Get(0).(float64), args.Error(1)
}

type MockListingRepository struct{ mock.Mock }

func (m *MockListingRepository) Add(ctx context.Context, l *listing.Listing) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockListingRepository) Update(ctx context.Context, l *listing.Listing) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockListingRepository) Get(ctx context.Context, id kernel.UUID) (*listing.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.Listing), args.Error(1)
}

func (m *MockListingRepository) IncrementOrderCount(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockListingRepository) ReconcileOrderCounts(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockIdentityRepository struct{ mock.Mock }

func (m *MockIdentityRepository) Add(ctx context.Context, i *identity.Identity) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockIdentityRepository) Update(ctx context.Context, i *identity.Identity) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockIdentityRepository) Get(ctx context.Context, id kernel.UUID) (*identity.Identity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Identity), args.Error(1)
}

func (m *MockIdentityRepository) GetByEmail(ctx context.Context, email string) (*identity.Identity, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Identity), args.Error(1)
}

// MockUoW satisfies every narrow unit of work interface in this package.

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ListingRepository() ports.ListingRepository {
	args := m.Called()
	return args.Get(0).(ports.ListingRepository)
}

func (m *MockUoW) IdentityRepository() ports.IdentityRepository {
	args := m.Called()
	return args.Get(0).(ports.IdentityRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockListingUoWFactory struct{ mock.Mock }

func (m *MockListingUoWFactory) Create() commands.ListingUoW {
	args := m.Called()
	return args.Get(0).(commands.ListingUoW)
}

type MockIdentityUoWFactory struct{ mock.Mock }

func (m *MockIdentityUoWFactory) Create() commands.IdentityUoW {
	args := m.Called()
	return args.Get(0).(commands.IdentityUoW)
}

type MockOrderListingUoWFactory struct{ mock.Mock }

func (m *MockOrderListingUoWFactory) Create() commands.OrderListingUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderListingUoW)
}

type MockOrderIdentityUoWFactory struct{ mock.Mock }

func (m *MockOrderIdentityUoWFactory) Create() commands.OrderIdentityUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderIdentityUoW)
}

type MockListingIdentityUoWFactory struct{ mock.Mock }

func (m *MockListingIdentityUoWFactory) Create() commands.ListingIdentityUoW {
	args := m.Called()
	return args.Get(0).(commands.ListingIdentityUoW)
}
