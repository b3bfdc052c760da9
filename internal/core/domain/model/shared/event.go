// Package shared provides domain building blocks that cross aggregate
// boundaries, currently the DomainEvent contract used for cross-aggregate
// notification.
package shared

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is an immutable record of something that already happened inside
// an aggregate. Events are recorded on the aggregate during mutation and
// dispatched by the application layer after the aggregate has been durably
// persisted. Handlers select events by their name discriminant, so every
// concrete event exposes an exported name constant next to its type.
type DomainEvent interface {
	// EventID returns the unique identifier of this event occurrence.
	EventID() uuid.UUID

	// EventName returns the discriminant name of the event, e.g. "order.created".
	EventName() string

	// AggregateID returns the identifier of the aggregate the event originated from.
	AggregateID() string

	// OccurredOn returns when the event was recorded.
	OccurredOn() time.Time

	// EventData returns a flattened representation of the event payload for
	// structured logging and serialization.
	EventData() map[string]any
}
