package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

type GetOrderQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetOrderQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.MessageDTO{}, &orderrepo.DeliverableDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrderQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetOrderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_messages, order_deliverables").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderQueryHandlerTestSuite) seedOrder(buyerID, sellerID kernel.UUID, status order.Status) *order.Order {
	now := time.Now().UTC().Truncate(time.Microsecond)
	amount, err := kernel.NewMoney(25000)
	suite.Require().NoError(err)

	aggregate, err := order.RestoreOrder(
		kernel.NewUUID(), buyerID, sellerID, kernel.NewUUID(),
		"landing page copy", status, amount,
		now.Add(72*time.Hour), now,
		nil, nil, nil, order.PaymentPending,
	)
	suite.Require().NoError(err)

	err = suite.orderRepo.Add(context.Background(), aggregate)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_BuyerReadsOrder() {
	buyerID := kernel.NewUUID()
	sellerID := kernel.NewUUID()
	aggregate := suite.seedOrder(buyerID, sellerID, order.Pending)

	query, err := queries.NewGetOrderQuery(aggregate.ID(), buyerID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(aggregate.ID(), result.ID)
	suite.Equal(buyerID, result.BuyerID)
	suite.Equal(sellerID, result.SellerID)
	suite.Equal("landing page copy", result.Requirements)
	suite.Equal(order.Pending.String(), result.Status)
	suite.Equal(order.PaymentPending.String(), result.PaymentStatus)
	suite.Equal(int64(25000), result.TotalAmount.Cents())
	suite.Nil(result.Rating)
	suite.Empty(result.Messages)
	suite.Empty(result.Deliverables)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_SellerReadsOrder() {
	sellerID := kernel.NewUUID()
	aggregate := suite.seedOrder(kernel.NewUUID(), sellerID, order.InProgress)

	query, err := queries.NewGetOrderQuery(aggregate.ID(), sellerID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(order.InProgress.String(), result.Status)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_IncludesThreadAndDeliverables() {
	ctx := context.Background()
	buyerID := kernel.NewUUID()
	sellerID := kernel.NewUUID()
	aggregate := suite.seedOrder(buyerID, sellerID, order.InProgress)

	base := time.Now().UTC().Truncate(time.Microsecond)
	first, err := order.RestoreMessage(buyerID, "any update?", base)
	suite.Require().NoError(err)
	second, err := order.RestoreMessage(sellerID, "uploading a draft now", base.Add(time.Minute))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.AppendMessage(ctx, aggregate.ID(), first))
	suite.Require().NoError(suite.orderRepo.AppendMessage(ctx, aggregate.ID(), second))

	draft, err := order.RestoreDeliverable("draft-v1.pdf", "https://files.example.com/draft-v1.pdf", base.Add(2*time.Minute))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.AppendDeliverable(ctx, aggregate.ID(), draft))

	query, err := queries.NewGetOrderQuery(aggregate.ID(), buyerID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Messages, 2)
	suite.Equal("any update?", result.Messages[0].Text)
	suite.Equal("uploading a draft now", result.Messages[1].Text)
	suite.Equal(sellerID, result.Messages[1].SenderID)
	suite.Require().Len(result.Deliverables, 1)
	suite.Equal("draft-v1.pdf", result.Deliverables[0].FileName)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_IncludesRating() {
	ctx := context.Background()
	buyerID := kernel.NewUUID()
	aggregate := suite.seedOrder(buyerID, kernel.NewUUID(), order.Completed)

	err := aggregate.AttachRating(buyerID, 5, "spot on")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.UpdateRating(ctx, aggregate))

	query, err := queries.NewGetOrderQuery(aggregate.ID(), buyerID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().NotNil(result.Rating)
	suite.Equal(5, result.Rating.Score)
	suite.Equal("spot on", result.Rating.Review)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_OutsiderIsForbidden() {
	aggregate := suite.seedOrder(kernel.NewUUID(), kernel.NewUUID(), order.Pending)

	query, err := queries.NewGetOrderQuery(aggregate.ID(), kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrForbidden)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_OrderNotFound() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	_, err := suite.handler.Handle(context.Background(), queries.GetOrderQuery{})

	suite.Require().Error(err)
	suite.ErrorIs(err, queries.ErrGetOrderQueryIsNotConstructed)
}

func TestGetOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderQueryHandlerTestSuite))
}

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
	// No-op for query tests
}
