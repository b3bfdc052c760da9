package commands

import (
	"context"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Creates the aggregate in pending status, persists it and dispatches the
// OrderCreated event the aggregate recorded.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(repo, dispatcher)
//	cmd, _ := NewCreateOrderCommand(name, items)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Printf("order %s created", created.ID())
type CreateOrderCommandHandler struct {
	orderRepository ports.OrderRepository
	eventDispatcher ports.EventDispatcher
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	orderRepository ports.OrderRepository,
	eventDispatcher ports.EventDispatcher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		orderRepository: orderRepository,
		eventDispatcher: eventDispatcher,
	}
}

// Handle processes the order creation command.
// Returns the persisted aggregate with its identifiers assigned. Events are
// dispatched only after the save has succeeded.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(cmd.CustomerName(), cmd.Items())
	if err != nil {
		return nil, err
	}

	persisted, err := h.orderRepository.Save(ctx, aggregate)
	if err != nil {
		return nil, err
	}

	publishEvents(ctx, h.eventDispatcher, aggregate)
	return persisted, nil
}
