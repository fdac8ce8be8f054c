package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"resto/internal/adapters/out/postgres/orderrepo"
	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/order"
	"resto/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	testOrder := suite.createDeliveryOrder()

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(testOrder.ID()))
	suite.Equal(order.TypeDelivery, loaded.Fulfillment())
	suite.Equal(order.StatusPending, loaded.Status())
	suite.Equal(order.PaymentMobileMoney, loaded.Payment())
	suite.Require().NotNil(loaded.MobileMoneyProvider())
	suite.Equal(order.ProviderMTN, *loaded.MobileMoneyProvider())
	suite.Require().NotNil(loaded.MobileMoneyNumber())
	suite.Equal("+22997000000", loaded.MobileMoneyNumber().String())
	suite.Require().NotNil(loaded.AddressID())
	suite.True(loaded.AddressID().IsEqual(*testOrder.AddressID()))
	suite.Nil(loaded.Driver())
	suite.Equal("SAVE5", loaded.PromoCode())
	suite.True(loaded.Totals().Total().IsEqual(testOrder.Totals().Total()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusTransition() {
	ctx := context.Background()
	testOrder := suite.createDeliveryOrder()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	_, err := testOrder.ChangeStatus(order.StatusConfirmed)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusConfirmed, loaded.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	testOrder := suite.createDeliveryOrder()
	err := suite.repository.Update(context.Background(), testOrder)
	suite.Require().Error(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestSetDriverIfUnset_FirstCallWins() {
	ctx := context.Background()
	testOrder := suite.createDeliveryOrder()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	firstDriver := kernel.NewUUID()
	won, err := suite.repository.SetDriverIfUnset(ctx, testOrder.ID(), firstDriver)
	suite.Require().NoError(err)
	suite.True(won)

	// Second attempt must lose without overwriting the first assignment.
	won, err = suite.repository.SetDriverIfUnset(ctx, testOrder.ID(), kernel.NewUUID())
	suite.Require().NoError(err)
	suite.False(won)

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(loaded.Driver())
	suite.True(loaded.Driver().IsEqual(firstDriver))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestSetDriverIfUnset_UnknownOrder_ReturnsNotFoundError() {
	_, err := suite.repository.SetDriverIfUnset(
		context.Background(), kernel.NewUUID(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetUnassignedDeliveries_FiltersByTypeStatusAndDriver() {
	ctx := context.Background()

	confirmedUnassigned := suite.createDeliveryOrder()
	_, err := confirmedUnassigned.ChangeStatus(order.StatusConfirmed)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, confirmedUnassigned))

	pendingDelivery := suite.createDeliveryOrder()
	suite.Require().NoError(suite.repository.Add(ctx, pendingDelivery))

	confirmedPickup := suite.createPickupOrder()
	_, err = confirmedPickup.ChangeStatus(order.StatusConfirmed)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, confirmedPickup))

	confirmedAssigned := suite.createDeliveryOrder()
	_, err = confirmedAssigned.ChangeStatus(order.StatusConfirmed)
	suite.Require().NoError(err)
	suite.Require().NoError(confirmedAssigned.AssignDriver(kernel.NewUUID()))
	suite.Require().NoError(suite.repository.Add(ctx, confirmedAssigned))

	result, err := suite.repository.GetUnassignedDeliveries(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID().IsEqual(confirmedUnassigned.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetUnassignedDeliveries_Empty_ReturnsEmptySlice() {
	result, err := suite.repository.GetUnassignedDeliveries(context.Background())
	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *OrderRepositoryIntegrationTestSuite) createDeliveryOrder() *order.Order {
	addressID := kernel.NewUUID()
	provider := order.ProviderMTN
	number, err := order.MobileMoneyNumberFromString("+22997000000")
	suite.Require().NoError(err)

	subtotal, err := kernel.NewMoneyFromString("30.00")
	suite.Require().NoError(err)
	fee, err := kernel.NewMoneyFromString("2.50")
	suite.Require().NoError(err)
	discount, err := kernel.NewMoneyFromString("5.00")
	suite.Require().NoError(err)
	totals, err := order.NewTotals(subtotal, fee, discount)
	suite.Require().NoError(err)

	o, err := order.NewOrder(order.NewOrderParams{
		ID:                  kernel.NewUUID(),
		Fulfillment:         order.TypeDelivery,
		Payment:             order.PaymentMobileMoney,
		AddressID:           &addressID,
		MobileMoneyProvider: &provider,
		MobileMoneyNumber:   &number,
		PromoCode:           "SAVE5",
		Totals:              totals,
	})
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) createPickupOrder() *order.Order {
	o, err := order.NewOrder(order.NewOrderParams{
		ID:          kernel.NewUUID(),
		Fulfillment: order.TypePickup,
		Payment:     order.PaymentCash,
	})
	suite.Require().NoError(err)
	return o
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
