package commands

import (
	"context"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// UpdateOrderStatusCommandHandler handles order status transitions.
// Loads the aggregate, lets it enforce the transition table, persists the
// result and dispatches the OrderStatusChanged event.
type UpdateOrderStatusCommandHandler struct {
	orderRepository ports.OrderRepository
	eventDispatcher ports.EventDispatcher
}

// NewUpdateOrderStatusCommandHandler creates a handler for status transition operations.
func NewUpdateOrderStatusCommandHandler(
	orderRepository ports.OrderRepository,
	eventDispatcher ports.EventDispatcher,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		orderRepository: orderRepository,
		eventDispatcher: eventDispatcher,
	}
}

// Handle processes the status transition command.
// Fails with order.ErrInvalidStatusTransition when the transition table
// forbids the move, leaving the stored order untouched. Returns the persisted
// aggregate on success.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.orderRepository.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.UpdateStatus(cmd.Status()); err != nil {
		return nil, err
	}

	persisted, err := h.orderRepository.Save(ctx, aggregate)
	if err != nil {
		return nil, err
	}

	publishEvents(ctx, h.eventDispatcher, aggregate)
	return persisted, nil
}
