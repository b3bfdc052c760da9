package order

import (
	"time"

	"orders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// Event name discriminants. Handlers subscribe by name and can switch on the
// concrete event type for exhaustive matching.
const (
	// OrderCreatedEventName identifies OrderCreated events.
	OrderCreatedEventName = "order.created"

	// OrderStatusChangedEventName identifies OrderStatusChanged events.
	OrderStatusChangedEventName = "order.status_changed"
)

// OrderCreated is recorded when a new order aggregate is constructed.
// It carries a snapshot of the facts at creation time: the customer, the
// order total and the number of lines. The order identifier may still be
// unassigned when the event is recorded; persistence assigns it afterwards.
type OrderCreated struct {
	eventID      uuid.UUID
	orderID      kernel.OrderID
	customerName kernel.CustomerName
	totalAmount  kernel.Money
	itemCount    int
	occurredOn   time.Time
}

// NewOrderCreatedEvent creates an OrderCreated event with a fresh event
// identifier and the current time.
func NewOrderCreatedEvent(
	orderID kernel.OrderID,
	customerName kernel.CustomerName,
	totalAmount kernel.Money,
	itemCount int,
) *OrderCreated {
	return &OrderCreated{
		eventID:      uuid.New(),
		orderID:      orderID,
		customerName: customerName,
		totalAmount:  totalAmount,
		itemCount:    itemCount,
		occurredOn:   time.Now().UTC(),
	}
}

// EventID returns the unique identifier of this event occurrence.
func (e *OrderCreated) EventID() uuid.UUID { return e.eventID }

// EventName returns the OrderCreated discriminant.
func (e *OrderCreated) EventName() string { return OrderCreatedEventName }

// AggregateID returns the order identifier the event originated from.
func (e *OrderCreated) AggregateID() string { return e.orderID.String() }

// OccurredOn returns when the event was recorded.
func (e *OrderCreated) OccurredOn() time.Time { return e.occurredOn }

// EventData returns a flattened payload for structured logging.
func (e *OrderCreated) EventData() map[string]any {
	return map[string]any{
		"order_id":            e.orderID.Value(),
		"customer_name":       e.customerName.Value(),
		"customer_first_name": e.customerName.FirstName(),
		"customer_last_name":  e.customerName.LastName(),
		"total_amount":        e.totalAmount.ToMap(),
		"item_count":          e.itemCount,
	}
}

// OrderID returns the identifier of the created order.
func (e *OrderCreated) OrderID() kernel.OrderID { return e.orderID }

// CustomerName returns the customer the order was created for.
func (e *OrderCreated) CustomerName() kernel.CustomerName { return e.customerName }

// TotalAmount returns the order total at creation time.
func (e *OrderCreated) TotalAmount() kernel.Money { return e.totalAmount }

// ItemCount returns the number of order lines at creation time.
func (e *OrderCreated) ItemCount() int { return e.itemCount }

// OrderStatusChanged is recorded when an order moves to a new status through
// the transition table. It carries both the previous and the new status so
// subscribers can react to specific transitions.
type OrderStatusChanged struct {
	eventID        uuid.UUID
	orderID        kernel.OrderID
	previousStatus Status
	newStatus      Status
	occurredOn     time.Time
}

// NewOrderStatusChangedEvent creates an OrderStatusChanged event with a fresh
// event identifier and the current time.
func NewOrderStatusChangedEvent(orderID kernel.OrderID, previousStatus Status, newStatus Status) *OrderStatusChanged {
	return &OrderStatusChanged{
		eventID:        uuid.New(),
		orderID:        orderID,
		previousStatus: previousStatus,
		newStatus:      newStatus,
		occurredOn:     time.Now().UTC(),
	}
}

// EventID returns the unique identifier of this event occurrence.
func (e *OrderStatusChanged) EventID() uuid.UUID { return e.eventID }

// EventName returns the OrderStatusChanged discriminant.
func (e *OrderStatusChanged) EventName() string { return OrderStatusChangedEventName }

// AggregateID returns the order identifier the event originated from.
func (e *OrderStatusChanged) AggregateID() string { return e.orderID.String() }

// OccurredOn returns when the event was recorded.
func (e *OrderStatusChanged) OccurredOn() time.Time { return e.occurredOn }

// EventData returns a flattened payload for structured logging.
func (e *OrderStatusChanged) EventData() map[string]any {
	return map[string]any{
		"order_id":        e.orderID.Value(),
		"previous_status": e.previousStatus.String(),
		"new_status":      e.newStatus.String(),
	}
}

// OrderID returns the identifier of the order whose status changed.
func (e *OrderStatusChanged) OrderID() kernel.OrderID { return e.orderID }

// PreviousStatus returns the status the order transitioned from.
func (e *OrderStatusChanged) PreviousStatus() Status { return e.previousStatus }

// NewStatus returns the status the order transitioned to.
func (e *OrderStatusChanged) NewStatus() Status { return e.newStatus }
