package commands

import (
	"context"

	"orders/internal/core/ports"
)

// DeleteOrderCommandHandler handles order removal.
type DeleteOrderCommandHandler struct {
	orderRepository ports.OrderRepository
}

// NewDeleteOrderCommandHandler creates a handler for order removal operations.
func NewDeleteOrderCommandHandler(orderRepository ports.OrderRepository) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		orderRepository: orderRepository,
	}
}

// Handle processes the removal command.
// Returns an errs.ObjectNotFoundError when no order has the identifier.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.orderRepository.Delete(ctx, cmd.OrderID())
}
