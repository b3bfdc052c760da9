package ports

import (
	"context"

	"orders/internal/core/domain/model/shared"
)

// EventHandler reacts to domain events dispatched after an aggregate has been
// persisted. Implementations declare which events they care about through
// CanHandle and perform their side effect in Handle.
type EventHandler interface {
	// CanHandle reports whether the handler wants to receive the event.
	// Typically a match on the event name.
	CanHandle(event shared.DomainEvent) bool

	// Handle performs the handler's side effect for the event.
	// A returned error is logged by the dispatcher and does not stop
	// delivery to the remaining handlers.
	Handle(ctx context.Context, event shared.DomainEvent) error
}

// EventDispatcher delivers domain events to subscribed handlers synchronously
// and in subscription order. Delivery is at most once: an event is handed to
// each interested handler exactly one time within the dispatching call, and a
// failing handler never prevents the others from running.
type EventDispatcher interface {
	// Subscribe registers a handler. Handlers receive events in the order
	// they subscribed.
	Subscribe(handler EventHandler)

	// Dispatch delivers each event to every handler whose CanHandle returns
	// true, in subscription order, before moving to the next event.
	Dispatch(ctx context.Context, events []shared.DomainEvent)
}
