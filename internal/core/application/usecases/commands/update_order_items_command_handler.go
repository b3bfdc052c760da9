package commands

import (
	"context"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// UpdateOrderItemsCommandHandler handles replacing the item list of an order.
// Item changes record no domain events; only creation and status transitions
// are observable facts.
type UpdateOrderItemsCommandHandler struct {
	orderRepository ports.OrderRepository
}

// NewUpdateOrderItemsCommandHandler creates a handler for item replacement operations.
func NewUpdateOrderItemsCommandHandler(orderRepository ports.OrderRepository) UpdateOrderItemsCommandHandler {
	return UpdateOrderItemsCommandHandler{
		orderRepository: orderRepository,
	}
}

// Handle processes the item replacement command.
// Returns the persisted aggregate with the identifiers of the new item rows
// assigned.
func (h *UpdateOrderItemsCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderItemsCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.orderRepository.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.UpdateItems(cmd.Items()); err != nil {
		return nil, err
	}

	return h.orderRepository.Save(ctx, aggregate)
}
