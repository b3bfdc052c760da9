package order

import (
	"errors"
	"fmt"
	"slices"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/shared"
	"orders/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructors")

	// ErrOrderHasNoItems is returned when constructing an order, or replacing its
	// items, with an empty item list. Orders must contain at least one item.
	ErrOrderHasNoItems = errors.New("order must contain at least one item")

	// ErrCannotRemoveLastItem is returned when a removal would leave the order
	// without items. The removal is rejected and the order is left unchanged.
	ErrCannotRemoveLastItem = errors.New("cannot remove the last item from an order")

	// ErrInvalidStatusTransition is returned when the transition table does not
	// allow moving from the current status to the requested one.
	ErrInvalidStatusTransition = errors.New("order status transition is not allowed")
)

// Order represents a commercial order in the system. It is the aggregate root
// through which all invariant-preserving mutation of its line items must occur.
//
// Order follows these invariants:
//   - The item list is never empty after construction or any mutation
//   - The total price is always the sum of every item's line total
//   - Status changes only through the transitions defined on Status
//
// The aggregate records domain events (OrderCreated, OrderStatusChanged) in an
// internal buffer. It never dispatches them itself: the application layer
// drains the buffer after the order has been durably persisted and hands the
// events to the dispatcher. The Order struct uses private fields to ensure
// encapsulation and maintains its invariants through validated methods.
type Order struct {
	// id is the order identifier, unassigned until first persisted
	id kernel.OrderID

	// customerName is the validated name of the ordering customer
	customerName kernel.CustomerName

	// items is the non-empty, insertion-ordered list of line items
	items []*Item

	// status is the current state in the order lifecycle
	status Status

	// events buffers domain events recorded since the last commit
	events []shared.DomainEvent

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order for the given customer with the given items.
// The order starts in pending status with an unassigned identifier; the
// persistence layer assigns the numeric identifier on first save. On success
// an OrderCreated event is recorded on the aggregate (recorded, not yet
// delivered).
//
// Returns ErrOrderHasNoItems when the item list is empty, or a validation
// error when the customer name or any item is invalid.
//
// Example:
//
//	name, _ := kernel.NewCustomerName("John Michael Doe")
//	price, _ := kernel.NewMoneyFromFloat(29.99, "USD")
//	item, _ := order.NewItem("Wireless Mouse", "WM-042", 2, price, "")
//	o, err := order.NewOrder(name, []*order.Item{item})
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(customerName kernel.CustomerName, items []*Item) (*Order, error) {
	aggregate, err := RestoreOrder(kernel.UnassignedOrderID(), customerName, items, StatusPending)
	if err != nil {
		return nil, err
	}

	total, err := aggregate.TotalPrice()
	if err != nil {
		return nil, err
	}

	aggregate.recordEvent(NewOrderCreatedEvent(aggregate.id, aggregate.customerName, total, len(aggregate.items)))
	return aggregate, nil
}

// RestoreOrder recreates an Order from persisted state. Applies the same
// validation as NewOrder but records no event: rehydration is not a domain
// fact.
func RestoreOrder(
	id kernel.OrderID,
	customerName kernel.CustomerName,
	items []*Item,
	status Status,
) (*Order, error) {
	aggregate := &Order{
		id:            id,
		isConstructed: true,
	}

	if err := errors.Join(
		aggregate.setCustomerName(customerName),
		aggregate.setItems(items),
		aggregate.setStatus(status),
	); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// Validate ensures the Order instance was properly constructed through a
// constructor. Call it when reconstructing orders from external input to
// ensure data integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's identifier, unassigned until first persisted.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// CustomerName returns the name of the ordering customer.
func (o *Order) CustomerName() kernel.CustomerName {
	return o.customerName
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Items returns the line items in insertion order.
// The returned slice is a copy; mutating it does not affect the aggregate.
func (o *Order) Items() []*Item {
	return slices.Clone(o.items)
}

// ItemCount returns the number of line items.
func (o *Order) ItemCount() int {
	return len(o.items)
}

// Currency returns the currency shared by the order's items.
func (o *Order) Currency() string {
	return o.items[0].UnitPrice().Currency()
}

// TotalPrice returns the sum of every item's line total, folded from a zero
// Money in the order's currency. The non-empty invariant guarantees at least
// one line.
func (o *Order) TotalPrice() (kernel.Money, error) {
	total, err := kernel.ZeroMoney(o.Currency())
	if err != nil {
		return kernel.Money{}, err
	}

	for _, item := range o.items {
		lineTotal, lineErr := item.TotalPrice()
		if lineErr != nil {
			return kernel.Money{}, lineErr
		}

		total, err = total.Add(lineTotal)
		if err != nil {
			return kernel.Money{}, err
		}
	}

	return total, nil
}

// UpdateStatus transitions the order to a new status.
//
// Fails with ErrInvalidStatusTransition unless the transition table allows
// moving from the current status to newStatus. On success the status is
// replaced and an OrderStatusChanged event carrying the previous and the new
// status is recorded.
func (o *Order) UpdateStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	if !o.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("%w: cannot transition from %q to %q", ErrInvalidStatusTransition, o.status, newStatus)
	}

	previous := o.status
	o.status = newStatus
	o.recordEvent(NewOrderStatusChangedEvent(o.id, previous, newStatus))
	return nil
}

// UpdateCustomerName replaces the customer the order belongs to.
func (o *Order) UpdateCustomerName(customerName kernel.CustomerName) error {
	return o.setCustomerName(customerName)
}

// UpdateItems replaces the whole item list.
// Fails with ErrOrderHasNoItems when the replacement list is empty; the order
// is left unchanged on failure.
func (o *Order) UpdateItems(items []*Item) error {
	return o.setItems(items)
}

// AddItem appends a line item to the order.
// Addition can never violate the non-empty invariant.
func (o *Order) AddItem(item *Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	o.items = append(o.items, item)
	return nil
}

// RemoveItem removes the item with the given identifier.
// Fails with ErrCannotRemoveLastItem when the removal would leave the order
// empty; in that case the item list is left unchanged. Removing an identifier
// that is not present leaves the order unchanged and is not an error.
func (o *Order) RemoveItem(itemID kernel.OrderItemID) error {
	remaining := make([]*Item, 0, len(o.items))
	for _, item := range o.items {
		if !item.ID().IsEqual(itemID) {
			remaining = append(remaining, item)
		}
	}

	if len(remaining) == 0 {
		return ErrCannotRemoveLastItem
	}

	o.items = remaining
	return nil
}

// FindItem returns the item with the given identifier.
// Returns an ObjectNotFoundError when no item matches. No side effects.
func (o *Order) FindItem(itemID kernel.OrderItemID) (*Item, error) {
	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("order item", itemID.String())
}

// GetUncommittedEvents returns all events recorded since the last call to
// MarkEventsAsCommitted, in recording order. The returned slice is a copy.
func (o *Order) GetUncommittedEvents() []shared.DomainEvent {
	return slices.Clone(o.events)
}

// MarkEventsAsCommitted clears the event buffer. The application layer calls
// this after the drained events have been handed to the dispatcher.
func (o *Order) MarkEventsAsCommitted() {
	o.events = nil
}

// HasUncommittedEvents reports whether any recorded events await dispatch.
func (o *Order) HasUncommittedEvents() bool {
	return len(o.events) > 0
}

func (o *Order) recordEvent(event shared.DomainEvent) {
	o.events = append(o.events, event)
}

func (o *Order) setCustomerName(customerName kernel.CustomerName) error {
	if err := customerName.Validate(); err != nil {
		return err
	}
	o.customerName = customerName
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = slices.Clone(items)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
