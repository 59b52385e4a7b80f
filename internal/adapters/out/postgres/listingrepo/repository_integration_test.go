package listingrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"marketplace/internal/adapters/out/postgres/listingrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/listing"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// ListingRepositoryIntegrationTestSuite provides integration tests for ListingRepository
// using PostgreSQL containers to verify database persistence behavior.
type ListingRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *listingrepo.GormListingRepository
	tracker    *MockAggregateTracker
}

func (suite *ListingRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&listingrepo.ListingDTO{}, &orderrepo.OrderDTO{}))
}

func (suite *ListingRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ListingRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE listings, orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = listingrepo.NewGormListingRepository(suite.db, suite.tracker)
}

func (suite *ListingRepositoryIntegrationTestSuite) newListing(ownerID kernel.UUID) *listing.Listing {
	price, err := kernel.NewMoney(30000)
	suite.Require().NoError(err)

	aggregate, err := listing.NewListing(
		kernel.NewUUID(), ownerID,
		"API integration", "REST API integration with tests",
		price, 5, listing.CategoryDevelopment,
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *ListingRepositoryIntegrationTestSuite) addOrderRows(listingID kernel.UUID, n int) {
	now := time.Now().UTC()
	amount, err := kernel.NewMoney(30000)
	suite.Require().NoError(err)

	orderRepo := orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
	for range n {
		aggregate, orderErr := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), listingID,
			"work", amount, now.Add(48*time.Hour), now,
		)
		suite.Require().NoError(orderErr)
		suite.Require().NoError(orderRepo.Add(context.Background(), aggregate))
	}
}

func (suite *ListingRepositoryIntegrationTestSuite) TestAddAndGet_Roundtrip() {
	ctx := context.Background()
	ownerID := kernel.NewUUID()
	aggregate := suite.newListing(ownerID)

	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(aggregate.ID(), loaded.ID())
	suite.Equal(ownerID, loaded.OwnerID())
	suite.Equal("API integration", loaded.Title())
	suite.EqualValues(30000, loaded.Price().Cents())
	suite.Equal(listing.CategoryDevelopment, loaded.Category())
	suite.True(loaded.IsActive())
	suite.Zero(loaded.TotalOrders())
}

func (suite *ListingRepositoryIntegrationTestSuite) TestUpdate_DeactivationPersists() {
	ctx := context.Background()
	aggregate := suite.newListing(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	aggregate.Deactivate()
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.False(loaded.IsActive())
}

func (suite *ListingRepositoryIntegrationTestSuite) TestIncrementOrderCount() {
	ctx := context.Background()
	aggregate := suite.newListing(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	suite.Require().NoError(suite.repository.IncrementOrderCount(ctx, aggregate.ID()))
	suite.Require().NoError(suite.repository.IncrementOrderCount(ctx, aggregate.ID()))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(2, loaded.TotalOrders())
}

func (suite *ListingRepositoryIntegrationTestSuite) TestIncrementOrderCount_MissingListing() {
	err := suite.repository.IncrementOrderCount(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ListingRepositoryIntegrationTestSuite) TestReconcileOrderCounts_RepairsDrift() {
	ctx := context.Background()

	drifted := suite.newListing(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, drifted))
	suite.addOrderRows(drifted.ID(), 3)
	// counter was never incremented, so it drifted to 0

	accurate := suite.newListing(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, accurate))
	suite.addOrderRows(accurate.ID(), 1)
	suite.Require().NoError(suite.repository.IncrementOrderCount(ctx, accurate.ID()))

	changed, err := suite.repository.ReconcileOrderCounts(ctx)
	suite.Require().NoError(err)
	suite.EqualValues(1, changed)

	loaded, err := suite.repository.Get(ctx, drifted.ID())
	suite.Require().NoError(err)
	suite.Equal(3, loaded.TotalOrders())

	untouched, err := suite.repository.Get(ctx, accurate.ID())
	suite.Require().NoError(err)
	suite.Equal(1, untouched.TotalOrders())
}

func TestListingRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ListingRepositoryIntegrationTestSuite))
}
