package queries_test

import (
	"context"
	"testing"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Save(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	args := m.Called(ctx, aggregate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context, pageSize int, pageNumber int) ([]*order.Order, error) {
	args := m.Called(ctx, pageSize, pageNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInTotalPriceRange(
	ctx context.Context, low kernel.Money, high kernel.Money,
) ([]*order.Order, error) {
	args := m.Called(ctx, low, high)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.OrderID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func mustOrderID(t *testing.T, id int64) kernel.OrderID {
	t.Helper()
	orderID, err := kernel.NewOrderID(id)
	require.NoError(t, err)
	return orderID
}

func mustMoney(t *testing.T, amount float64) kernel.Money {
	t.Helper()
	money, err := kernel.NewMoneyFromFloat(amount, "USD")
	require.NoError(t, err)
	return money
}

func mustRestoredItem(t *testing.T, id int64, productName, sku string, quantity int, price float64) *order.Item {
	t.Helper()
	itemID, err := kernel.NewOrderItemID(id)
	require.NoError(t, err)
	item, err := order.RestoreItem(itemID, productName, sku, quantity, mustMoney(t, price), "")
	require.NoError(t, err)
	return item
}

func mustRestoredOrder(t *testing.T, id int64, status order.Status, items ...*order.Item) *order.Order {
	t.Helper()
	name, err := kernel.NewCustomerName("John Michael Doe")
	require.NoError(t, err)
	aggregate, err := order.RestoreOrder(mustOrderID(t, id), name, items, status)
	require.NoError(t, err)
	return aggregate
}
