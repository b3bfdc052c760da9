package eventhandlers

import (
	"context"
	"log/slog"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/shared"
)

// InventoryReservationHandler reacts to OrderCreated events by requesting a
// stock reservation for the new order. The actual warehouse integration sits
// behind a narrow interface so the handler stays testable.
type InventoryReservationHandler struct {
	reservations InventoryReserver
	logger       *slog.Logger
}

// InventoryReserver requests that stock be held for an order.
type InventoryReserver interface {
	Reserve(ctx context.Context, orderID string, itemCount int) error
}

// NewInventoryReservationHandler creates a handler delegating to the given reserver.
func NewInventoryReservationHandler(reservations InventoryReserver, logger *slog.Logger) *InventoryReservationHandler {
	return &InventoryReservationHandler{
		reservations: reservations,
		logger:       logger.With("component", "inventory_reservation_handler"),
	}
}

// CanHandle reports interest in OrderCreated events only.
func (h *InventoryReservationHandler) CanHandle(event shared.DomainEvent) bool {
	return event.EventName() == order.OrderCreatedEventName
}

// Handle requests a reservation for every line of the created order.
func (h *InventoryReservationHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	created, ok := event.(*order.OrderCreated)
	if !ok {
		return nil
	}

	if err := h.reservations.Reserve(ctx, created.AggregateID(), created.ItemCount()); err != nil {
		h.logger.ErrorContext(ctx, "inventory reservation failed",
			"order_id", created.AggregateID(),
			"error", err,
		)
		return err
	}

	h.logger.InfoContext(ctx, "inventory reserved",
		"order_id", created.AggregateID(),
		"item_count", created.ItemCount(),
	)
	return nil
}
