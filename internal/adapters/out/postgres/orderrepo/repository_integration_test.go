package orderrepo_test

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

	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.MessageDTO{},
		&orderrepo.DeliverableDTO{},
	))
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE orders, order_messages, order_deliverables",
	).Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) newPendingOrder(buyerID, sellerID kernel.UUID) *order.Order {
	now := time.Now().UTC()
	amount, err := kernel.NewMoney(25000)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), buyerID, sellerID, kernel.NewUUID(),
		"Responsive landing page",
		amount, now.Add(96*time.Hour), now,
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_Roundtrip() {
	ctx := context.Background()
	buyerID := kernel.NewUUID()
	sellerID := kernel.NewUUID()
	aggregate := suite.newPendingOrder(buyerID, sellerID)

	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(aggregate))
	suite.Equal(order.Pending, loaded.Status())
	suite.Equal(order.Pending, loaded.LoadedStatus())
	suite.Equal(buyerID, loaded.BuyerID())
	suite.Equal(sellerID, loaded.SellerID())
	suite.Equal("Responsive landing page", loaded.Requirements())
	suite.EqualValues(25000, loaded.TotalAmount().Cents())
	suite.Equal(order.PaymentPending, loaded.PaymentStatus())
	suite.Empty(loaded.Messages())
	suite.Nil(loaded.Rating())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_TransitionPersists() {
	ctx := context.Background()
	sellerID := kernel.NewUUID()
	aggregate := suite.newPendingOrder(kernel.NewUUID(), sellerID)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.TransitionTo(sellerID, order.Accepted))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	reloaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Accepted, reloaded.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleStatusConflicts() {
	ctx := context.Background()
	buyerID := kernel.NewUUID()
	sellerID := kernel.NewUUID()
	aggregate := suite.newPendingOrder(buyerID, sellerID)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	first, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.TransitionTo(sellerID, order.Accepted))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	suite.Require().NoError(second.TransitionTo(buyerID, order.Cancelled))
	err = suite.repository.Update(ctx, second)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrConcurrencyConflict)

	reloaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Accepted, reloaded.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_MissingOrderIsNotFound() {
	ctx := context.Background()
	aggregate := suite.newPendingOrder(kernel.NewUUID(), kernel.NewUUID())

	err := suite.repository.Update(ctx, aggregate)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateRating_SecondWriteIsAlreadyRated() {
	ctx := context.Background()
	buyerID := kernel.NewUUID()
	sellerID := kernel.NewUUID()
	aggregate := suite.newPendingOrder(buyerID, sellerID)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))
	suite.Require().NoError(suite.db.Exec(
		"UPDATE orders SET status = 'Completed' WHERE id = ?", aggregate.ID().Bytes(),
	).Error)

	first, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.AttachRating(buyerID, 5, "excellent"))
	suite.Require().NoError(suite.repository.UpdateRating(ctx, first))

	suite.Require().NoError(second.AttachRating(buyerID, 1, "changed my mind"))
	err = suite.repository.UpdateRating(ctx, second)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrAlreadyRated)

	reloaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(reloaded.Rating())
	suite.Equal(5, reloaded.Rating().Score())
	suite.Equal("excellent", reloaded.Rating().Review())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAppendMessage_PreservesThreadOrder() {
	ctx := context.Background()
	buyerID := kernel.NewUUID()
	sellerID := kernel.NewUUID()
	aggregate := suite.newPendingOrder(buyerID, sellerID)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	base := time.Now().UTC().Truncate(time.Microsecond)
	for i, text := range []string{"hello", "hi there", "when can you start?"} {
		sender := buyerID
		if i == 1 {
			sender = sellerID
		}
		message, err := aggregate.AppendMessage(sender, text, base.Add(time.Duration(i)*time.Second))
		suite.Require().NoError(err)
		suite.Require().NoError(suite.repository.AppendMessage(ctx, aggregate.ID(), message))
	}

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Require().Len(loaded.Messages(), 3)
	suite.Equal("hello", loaded.Messages()[0].Text())
	suite.Equal("hi there", loaded.Messages()[1].Text())
	suite.Equal("when can you start?", loaded.Messages()[2].Text())
	suite.Equal(sellerID, loaded.Messages()[1].SenderID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAppendDeliverable_Roundtrip() {
	ctx := context.Background()
	sellerID := kernel.NewUUID()
	aggregate := suite.newPendingOrder(kernel.NewUUID(), sellerID)
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	deliverable, err := aggregate.AppendDeliverable(
		sellerID, "draft.pdf", "https://files.example.com/draft.pdf", time.Now().UTC(),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.AppendDeliverable(ctx, aggregate.ID(), deliverable))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Require().Len(loaded.Deliverables(), 1)
	suite.Equal("draft.pdf", loaded.Deliverables()[0].FileName())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAverageRatingForSeller() {
	ctx := context.Background()
	buyerID := kernel.NewUUID()
	sellerID := kernel.NewUUID()

	average, err := suite.repository.AverageRatingForSeller(ctx, sellerID)
	suite.Require().NoError(err)
	suite.Zero(average)

	for _, score := range []int{5, 4} {
		aggregate := suite.newPendingOrder(buyerID, sellerID)
		suite.Require().NoError(suite.repository.Add(ctx, aggregate))
		suite.Require().NoError(suite.db.Exec(
			"UPDATE orders SET status = 'Completed' WHERE id = ?", aggregate.ID().Bytes(),
		).Error)

		loaded, loadErr := suite.repository.Get(ctx, aggregate.ID())
		suite.Require().NoError(loadErr)
		suite.Require().NoError(loaded.AttachRating(buyerID, score, ""))
		suite.Require().NoError(suite.repository.UpdateRating(ctx, loaded))
	}

	// unrated order must not drag the average down
	unrated := suite.newPendingOrder(buyerID, sellerID)
	suite.Require().NoError(suite.repository.Add(ctx, unrated))

	average, err = suite.repository.AverageRatingForSeller(ctx, sellerID)
	suite.Require().NoError(err)
	suite.InDelta(4.5, average, 0.001)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
