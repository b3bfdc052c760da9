package queries

import (
	"context"

	"orders/internal/core/ports"
)

// ListOrdersQueryHandler retrieves orders page by page, newest first, and
// projects them into the serialized order shape.
type ListOrdersQueryHandler struct {
	orderRepository ports.OrderRepository
}

// NewListOrdersQueryHandler creates a handler for order listing.
func NewListOrdersQueryHandler(orderRepository ports.OrderRepository) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orderRepository: orderRepository}
}

// Handle executes the query, applying the status filter when one was set.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if status, ok := query.Status(); ok {
		aggregates, err := h.orderRepository.GetAllInStatus(ctx, status)
		if err != nil {
			return nil, err
		}
		return NewOrderResponses(aggregates)
	}

	aggregates, err := h.orderRepository.GetAll(ctx, query.PageSize(), query.PageNumber())
	if err != nil {
		return nil, err
	}

	return NewOrderResponses(aggregates)
}
