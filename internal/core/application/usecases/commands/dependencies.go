// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, persistence through the
// order repository, and synchronous dispatch of the events the aggregate
// recorded once persistence has succeeded.
package commands

import (
	"context"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// publishEvents drains the aggregate's uncommitted events into the dispatcher.
// Called only after the aggregate has been durably persisted, so a handler
// failure can never leave events describing state that was rolled back.
func publishEvents(ctx context.Context, dispatcher ports.EventDispatcher, aggregate *order.Order) {
	if !aggregate.HasUncommittedEvents() {
		return
	}

	dispatcher.Dispatch(ctx, aggregate.GetUncommittedEvents())
	aggregate.MarkEventsAsCommitted()
}
