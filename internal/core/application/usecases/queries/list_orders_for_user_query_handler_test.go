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
)

type ListOrdersForUserQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.ListOrdersForUserQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *ListOrdersForUserQueryHandlerTestSuite) SetupSuite() {
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

	suite.handler = queries.NewListOrdersForUserQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *ListOrdersForUserQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ListOrdersForUserQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_messages, order_deliverables").Error
	suite.Require().NoError(err)
}

func (suite *ListOrdersForUserQueryHandlerTestSuite) seedOrderAt(
	buyerID, sellerID kernel.UUID,
	createdAt time.Time,
) *order.Order {
	amount, err := kernel.NewMoney(5000)
	suite.Require().NoError(err)

	aggregate, err := order.RestoreOrder(
		kernel.NewUUID(), buyerID, sellerID, kernel.NewUUID(),
		"logo sketches", order.Pending, amount,
		createdAt.Add(48*time.Hour), createdAt,
		nil, nil, nil, order.PaymentPending,
	)
	suite.Require().NoError(err)

	err = suite.orderRepo.Add(context.Background(), aggregate)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *ListOrdersForUserQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewListOrdersForUserQuery(kernel.NewUUID(), queries.SideAny, 0, 0)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *ListOrdersForUserQueryHandlerTestSuite) TestHandle_ReturnsBothSidesNewestFirst() {
	userID := kernel.NewUUID()
	base := time.Now().UTC().Truncate(time.Microsecond)

	oldest := suite.seedOrderAt(userID, kernel.NewUUID(), base.Add(-3*time.Hour))
	middle := suite.seedOrderAt(kernel.NewUUID(), userID, base.Add(-2*time.Hour))
	newest := suite.seedOrderAt(userID, kernel.NewUUID(), base.Add(-time.Hour))
	suite.seedOrderAt(kernel.NewUUID(), kernel.NewUUID(), base)

	query, err := queries.NewListOrdersForUserQuery(userID, queries.SideAny, 0, 0)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal(newest.ID(), result[0].ID)
	suite.Equal(middle.ID(), result[1].ID)
	suite.Equal(oldest.ID(), result[2].ID)
	suite.Equal(order.Pending.String(), result[0].Status)
	suite.Equal(int64(5000), result[0].TotalAmount.Cents())
}

func (suite *ListOrdersForUserQueryHandlerTestSuite) TestHandle_SideSelectsView() {
	userID := kernel.NewUUID()
	base := time.Now().UTC().Truncate(time.Microsecond)

	bought := suite.seedOrderAt(userID, kernel.NewUUID(), base.Add(-time.Hour))
	sold := suite.seedOrderAt(kernel.NewUUID(), userID, base)

	buyerQuery, err := queries.NewListOrdersForUserQuery(userID, queries.SideBuyer, 0, 0)
	suite.Require().NoError(err)
	sellerQuery, err := queries.NewListOrdersForUserQuery(userID, queries.SideSeller, 0, 0)
	suite.Require().NoError(err)

	asBuyer, err := suite.handler.Handle(context.Background(), buyerQuery)
	suite.Require().NoError(err)
	asSeller, err := suite.handler.Handle(context.Background(), sellerQuery)
	suite.Require().NoError(err)

	suite.Require().Len(asBuyer, 1)
	suite.Equal(bought.ID(), asBuyer[0].ID)
	suite.Require().Len(asSeller, 1)
	suite.Equal(sold.ID(), asSeller[0].ID)
}

func (suite *ListOrdersForUserQueryHandlerTestSuite) TestHandle_Pagination() {
	userID := kernel.NewUUID()
	base := time.Now().UTC().Truncate(time.Microsecond)

	ids := make([]kernel.UUID, 0, 5)
	for i := range 5 {
		aggregate := suite.seedOrderAt(userID, kernel.NewUUID(), base.Add(-time.Duration(i)*time.Hour))
		ids = append(ids, aggregate.ID())
	}

	firstPage, err := queries.NewListOrdersForUserQuery(userID, queries.SideAny, 1, 2)
	suite.Require().NoError(err)
	secondPage, err := queries.NewListOrdersForUserQuery(userID, queries.SideAny, 2, 2)
	suite.Require().NoError(err)
	thirdPage, err := queries.NewListOrdersForUserQuery(userID, queries.SideAny, 3, 2)
	suite.Require().NoError(err)

	first, err := suite.handler.Handle(context.Background(), firstPage)
	suite.Require().NoError(err)
	second, err := suite.handler.Handle(context.Background(), secondPage)
	suite.Require().NoError(err)
	third, err := suite.handler.Handle(context.Background(), thirdPage)
	suite.Require().NoError(err)

	suite.Require().Len(first, 2)
	suite.Require().Len(second, 2)
	suite.Require().Len(third, 1)
	suite.Equal(ids[0], first[0].ID)
	suite.Equal(ids[1], first[1].ID)
	suite.Equal(ids[2], second[0].ID)
	suite.Equal(ids[3], second[1].ID)
	suite.Equal(ids[4], third[0].ID)
}

func (suite *ListOrdersForUserQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	result, err := suite.handler.Handle(context.Background(), queries.ListOrdersForUserQuery{})

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, queries.ErrListOrdersForUserQueryIsNotConstructed)
}

func TestListOrdersForUserQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ListOrdersForUserQueryHandlerTestSuite))
}
