package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items, orders RESTART IDENTITY").Error)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestSave_NewOrder_AssignsIdentifiers() {
	ctx := context.Background()

	aggregate := suite.newTestOrder("John Michael Doe", 2, 29.99)
	suite.False(aggregate.ID().IsAssigned())

	persisted, err := suite.repository.Save(ctx, aggregate)
	suite.Require().NoError(err)

	suite.True(persisted.ID().IsAssigned())
	for _, item := range persisted.Items() {
		suite.True(item.ID().IsAssigned())
	}
	suite.assertOrderCount(1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestSave_ExistingOrder_ReplacesItems() {
	ctx := context.Background()

	persisted, err := suite.repository.Save(ctx, suite.newTestOrder("John Michael Doe", 2, 29.99))
	suite.Require().NoError(err)

	replacement := suite.newTestItem("USB-C Hub", "UH-007", 1, 89.99)
	suite.Require().NoError(persisted.UpdateItems([]*order.Item{replacement}))

	updated, err := suite.repository.Save(ctx, persisted)
	suite.Require().NoError(err)

	suite.Equal(1, updated.ItemCount())
	suite.Equal("UH-007", updated.Items()[0].ProductSku())

	var itemCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderItemDTO{}).Count(&itemCount).Error)
	suite.Equal(int64(1), itemCount)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestSave_UnknownAssignedID_ReturnsNotFound() {
	ctx := context.Background()

	orderID, err := kernel.NewOrderID(9999)
	suite.Require().NoError(err)
	name, err := kernel.NewCustomerName("Jane Smith")
	suite.Require().NoError(err)
	aggregate, err := order.RestoreOrder(
		orderID, name, []*order.Item{suite.newTestItem("Wireless Mouse", "WM-042", 2, 29.99)}, order.StatusPending)
	suite.Require().NoError(err)

	_, err = suite.repository.Save(ctx, aggregate)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsOrder() {
	ctx := context.Background()

	persisted, err := suite.repository.Save(ctx, suite.newTestOrder("John Michael Doe", 2, 29.99))
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, persisted.ID())
	suite.Require().NoError(err)

	suite.True(retrieved.IsEqual(persisted))
	suite.Equal("John Michael Doe", retrieved.CustomerName().Value())
	suite.Equal(order.StatusPending, retrieved.Status())
	suite.Equal(1, retrieved.ItemCount())
	suite.False(retrieved.HasUncommittedEvents())

	total, err := retrieved.TotalPrice()
	suite.Require().NoError(err)
	suite.Equal("USD 59.98", total.Format())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	orderID, err := kernel.NewOrderID(12345)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, orderID)
	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAll_ReturnsNewestFirstPages() {
	ctx := context.Background()

	first, err := suite.repository.Save(ctx, suite.newTestOrder("Jane Smith", 1, 89.99))
	suite.Require().NoError(err)
	second, err := suite.repository.Save(ctx, suite.newTestOrder("Bob Brown", 3, 12.50))
	suite.Require().NoError(err)

	all, err := suite.repository.GetAll(ctx, 10, 1)
	suite.Require().NoError(err)

	suite.Require().Len(all, 2)
	suite.True(all[0].IsEqual(second))
	suite.True(all[1].IsEqual(first))

	secondPage, err := suite.repository.GetAll(ctx, 1, 2)
	suite.Require().NoError(err)
	suite.Require().Len(secondPage, 1)
	suite.True(secondPage[0].IsEqual(first))

	emptyPage, err := suite.repository.GetAll(ctx, 10, 2)
	suite.Require().NoError(err)
	suite.Empty(emptyPage)

	_, err = suite.repository.GetAll(ctx, 0, 1)
	suite.Require().Error(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInStatus_FiltersByStatus() {
	ctx := context.Background()

	pending, err := suite.repository.Save(ctx, suite.newTestOrder("Jane Smith", 1, 89.99))
	suite.Require().NoError(err)

	confirmed, err := suite.repository.Save(ctx, suite.newTestOrder("Bob Brown", 3, 12.50))
	suite.Require().NoError(err)
	suite.Require().NoError(confirmed.UpdateStatus(order.StatusConfirmed))
	_, err = suite.repository.Save(ctx, confirmed)
	suite.Require().NoError(err)

	pendingOrders, err := suite.repository.GetAllInStatus(ctx, order.StatusPending)
	suite.Require().NoError(err)
	suite.Require().Len(pendingOrders, 1)
	suite.True(pendingOrders[0].IsEqual(pending))

	confirmedOrders, err := suite.repository.GetAllInStatus(ctx, order.StatusConfirmed)
	suite.Require().NoError(err)
	suite.Require().Len(confirmedOrders, 1)
	suite.Equal(order.StatusConfirmed, confirmedOrders[0].Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInTotalPriceRange_InclusiveBounds() {
	ctx := context.Background()

	// totals: 59.98, 89.99, 37.50
	cheap, err := suite.repository.Save(ctx, suite.newTestOrder("Jane Smith", 2, 29.99))
	suite.Require().NoError(err)
	_, err = suite.repository.Save(ctx, suite.newTestOrder("Bob Brown", 1, 89.99))
	suite.Require().NoError(err)
	_, err = suite.repository.Save(ctx, suite.newTestOrder("Ann Lee", 3, 12.50))
	suite.Require().NoError(err)

	low, err := kernel.NewMoneyFromFloat(37.50, "USD")
	suite.Require().NoError(err)
	high, err := kernel.NewMoneyFromFloat(59.98, "USD")
	suite.Require().NoError(err)

	inRange, err := suite.repository.GetAllInTotalPriceRange(ctx, low, high)
	suite.Require().NoError(err)

	suite.Require().Len(inRange, 2)
	suite.True(inRange[len(inRange)-1].IsEqual(cheap) || inRange[0].IsEqual(cheap))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_RemovesOrderAndItems() {
	ctx := context.Background()

	persisted, err := suite.repository.Save(ctx, suite.newTestOrder("Jane Smith", 2, 29.99))
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Delete(ctx, persisted.ID()))

	suite.assertOrderCount(0)
	var itemCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderItemDTO{}).Count(&itemCount).Error)
	suite.Equal(int64(0), itemCount)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	orderID, err := kernel.NewOrderID(54321)
	suite.Require().NoError(err)

	err = suite.repository.Delete(ctx, orderID)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) newTestItem(
	productName, sku string, quantity int, price float64,
) *order.Item {
	unitPrice, err := kernel.NewMoneyFromFloat(price, "USD")
	suite.Require().NoError(err)
	item, err := order.NewItem(productName, sku, quantity, unitPrice, "")
	suite.Require().NoError(err)
	return item
}

func (suite *OrderRepositoryIntegrationTestSuite) newTestOrder(
	customer string, quantity int, price float64,
) *order.Order {
	name, err := kernel.NewCustomerName(customer)
	suite.Require().NoError(err)
	aggregate, err := order.NewOrder(name, []*order.Item{
		suite.newTestItem("Wireless Mouse", "WM-042", quantity, price),
	})
	suite.Require().NoError(err)
	return aggregate
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
