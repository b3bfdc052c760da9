// Package events provides the in-memory event dispatcher. Delivery is
// synchronous and in-process; a production deployment with external consumers
// would replace it with a broker behind the same port by adopting the outbox
// pattern.
package events

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"orders/internal/core/domain/model/shared"
	"orders/internal/core/ports"
)

// InMemoryDispatcher implements ports.EventDispatcher with synchronous,
// in-order delivery. Each event is offered to every subscribed handler whose
// CanHandle returns true, in subscription order, exactly once per Dispatch
// call. A handler error or panic is logged and never stops delivery to the
// remaining handlers.
type InMemoryDispatcher struct {
	mu       sync.RWMutex
	handlers []ports.EventHandler
	logger   *slog.Logger
}

// NewInMemoryDispatcher creates a dispatcher with no subscribers.
func NewInMemoryDispatcher(logger *slog.Logger) *InMemoryDispatcher {
	return &InMemoryDispatcher{
		logger: logger.With("component", "event_dispatcher"),
	}
}

// Subscribe registers a handler. Handlers receive events in subscription order.
func (d *InMemoryDispatcher) Subscribe(handler ports.EventHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers = append(d.handlers, handler)
}

// Dispatch delivers each event to every interested handler before moving to
// the next event.
func (d *InMemoryDispatcher) Dispatch(ctx context.Context, events []shared.DomainEvent) {
	d.mu.RLock()
	handlers := slices.Clone(d.handlers)
	d.mu.RUnlock()

	for _, event := range events {
		d.logger.DebugContext(ctx, "dispatching event",
			"event_name", event.EventName(),
			"event_id", event.EventID().String(),
			"aggregate_id", event.AggregateID(),
		)

		for _, handler := range handlers {
			if !handler.CanHandle(event) {
				continue
			}
			d.deliver(ctx, handler, event)
		}
	}
}

func (d *InMemoryDispatcher) deliver(ctx context.Context, handler ports.EventHandler, event shared.DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.ErrorContext(ctx, "event handler panicked",
				"event_name", event.EventName(),
				"event_id", event.EventID().String(),
				"panic", r,
			)
		}
	}()

	if err := handler.Handle(ctx, event); err != nil {
		d.logger.ErrorContext(ctx, "event handler failed",
			"event_name", event.EventName(),
			"event_id", event.EventID().String(),
			"error", err,
		)
	}
}
