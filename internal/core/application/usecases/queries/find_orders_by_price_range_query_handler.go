package queries

import (
	"context"

	"orders/internal/core/ports"
)

// FindOrdersByPriceRangeQueryHandler retrieves orders by total price range
// and projects them into the serialized order shape.
type FindOrdersByPriceRangeQueryHandler struct {
	orderRepository ports.OrderRepository
}

// NewFindOrdersByPriceRangeQueryHandler creates a handler for price range queries.
func NewFindOrdersByPriceRangeQueryHandler(
	orderRepository ports.OrderRepository,
) FindOrdersByPriceRangeQueryHandler {
	return FindOrdersByPriceRangeQueryHandler{orderRepository: orderRepository}
}

// Handle executes the query. Both bounds are inclusive.
func (h FindOrdersByPriceRangeQueryHandler) Handle(
	ctx context.Context,
	query FindOrdersByPriceRangeQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	aggregates, err := h.orderRepository.GetAllInTotalPriceRange(ctx, query.Low(), query.High())
	if err != nil {
		return nil, err
	}

	return NewOrderResponses(aggregates)
}
