package queries

import (
	"context"

	"orders/internal/core/ports"
)

// GetOrderQueryHandler loads a single order and projects it into the
// serialized order shape.
type GetOrderQueryHandler struct {
	orderRepository ports.OrderRepository
}

// NewGetOrderQueryHandler creates a handler for single order retrieval.
func NewGetOrderQueryHandler(orderRepository ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orderRepository: orderRepository}
}

// Handle executes the query.
// Returns an errs.ObjectNotFoundError when no order has the identifier.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	aggregate, err := h.orderRepository.Get(ctx, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}

	return NewOrderResponse(aggregate)
}
