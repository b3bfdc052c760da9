package queries

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order by its identifier.
//
// Example:
//
//	orderID, _ := kernel.NewOrderID(42)
//	query, _ := NewGetOrderQuery(orderID)
//	handler := NewGetOrderQueryHandler(repo)
//
//	response, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // Order does not exist
//	}
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID kernel.OrderID) (GetOrderQuery, error) {
	query := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to retrieve.
func (q GetOrderQuery) OrderID() kernel.OrderID {
	return q.orderID
}

func (q *GetOrderQuery) setOrderID(orderID kernel.OrderID) error {
	if !orderID.IsAssigned() {
		return kernel.ErrOrderIDIsNotAssigned
	}

	q.orderID = orderID
	return nil
}
