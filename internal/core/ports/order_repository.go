package ports

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// together with their line items.
type OrderRepository interface {
	// Save persists the order aggregate and its items. An order with an
	// unassigned identifier is inserted; persistence assigns the identifiers
	// of the order and of any new items. An order with an assigned identifier
	// has its row and item rows replaced. Returns the persisted aggregate
	// rehydrated with all identifiers assigned.
	Save(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an errs.ObjectNotFoundError when no order has the identifier.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// GetAll retrieves one page of orders, newest first. pageNumber starts at
	// 1 and pageSize caps the number of orders returned.
	GetAll(ctx context.Context, pageSize int, pageNumber int) ([]*order.Order, error)

	// GetAllInStatus retrieves all orders currently in the given status.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// GetAllInTotalPriceRange retrieves all orders whose total price falls
	// within [low, high], both bounds inclusive. Both bounds must share the
	// same currency.
	GetAllInTotalPriceRange(ctx context.Context, low kernel.Money, high kernel.Money) ([]*order.Order, error)

	// Delete removes the order and its items from storage.
	// Returns an errs.ObjectNotFoundError when no order has the identifier.
	Delete(ctx context.Context, id kernel.OrderID) error
}
