package eventhandlers

import (
	"context"
	"log/slog"
	"sync"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/shared"
)

// CustomerStatsHandler keeps a running per-customer order counter fed by
// OrderCreated events. The counter is process-local: it exists to surface
// ordering activity in logs and for cheap introspection, not as a durable
// analytics store.
type CustomerStatsHandler struct {
	logger *slog.Logger

	mu          sync.Mutex
	orderCounts map[string]int
}

// NewCustomerStatsHandler creates a handler with an empty counter.
func NewCustomerStatsHandler(logger *slog.Logger) *CustomerStatsHandler {
	return &CustomerStatsHandler{
		logger:      logger.With("component", "customer_stats_handler"),
		orderCounts: make(map[string]int),
	}
}

// CanHandle reports interest in OrderCreated events only.
func (h *CustomerStatsHandler) CanHandle(event shared.DomainEvent) bool {
	return event.EventName() == order.OrderCreatedEventName
}

// Handle increments the counter for the customer the order was created for.
func (h *CustomerStatsHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	created, ok := event.(*order.OrderCreated)
	if !ok {
		return nil
	}

	customer := created.CustomerName().Value()

	h.mu.Lock()
	h.orderCounts[customer]++
	count := h.orderCounts[customer]
	h.mu.Unlock()

	h.logger.InfoContext(ctx, "customer order recorded",
		"customer", customer,
		"order_count", count,
		"total_amount", created.TotalAmount().Format(),
	)
	return nil
}

// OrderCount returns how many orders have been recorded for the customer.
func (h *CustomerStatsHandler) OrderCount(customerName string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.orderCounts[customerName]
}
