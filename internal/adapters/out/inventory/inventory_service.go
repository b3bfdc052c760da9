// Package inventory provides a stub warehouse adapter. Reservations are
// acknowledged and logged without contacting any warehouse system.
package inventory

import (
	"context"
	"log/slog"
)

// StubInventoryService accepts every reservation request.
type StubInventoryService struct {
	logger *slog.Logger
}

// NewStubInventoryService creates a stub warehouse client.
func NewStubInventoryService(logger *slog.Logger) *StubInventoryService {
	return &StubInventoryService{
		logger: logger.With("component", "inventory_service"),
	}
}

// Reserve acknowledges a stock reservation for an order.
func (s *StubInventoryService) Reserve(ctx context.Context, orderID string, itemCount int) error {
	s.logger.InfoContext(ctx, "stock reservation accepted",
		"order_id", orderID,
		"item_count", itemCount,
	)
	return nil
}
