package kernel

import (
	"fmt"
	"strconv"

	"orders/internal/pkg/errs"
)

// ErrOrderIDIsNotAssigned is returned when an operation requires an order
// identifier that persistence has already assigned.
var ErrOrderIDIsNotAssigned = errs.NewValueIsRequiredError("order id must be assigned")

// OrderID identifies an Order aggregate. The zero value means "unassigned":
// the order has not been persisted yet and the numeric identifier will be
// assigned by the persistence layer on first save. An unassigned identifier is
// distinct from every positive one.
type OrderID struct {
	value int64
}

// NewOrderID creates an OrderID from a persisted, positive identifier.
func NewOrderID(value int64) (OrderID, error) {
	if value <= 0 {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause(
			"order id", fmt.Errorf("%d is not a positive identifier", value))
	}
	return OrderID{value: value}, nil
}

// UnassignedOrderID returns the placeholder identifier for a not-yet-persisted
// order. Pure: it has no side effect and allocates nothing from any sequence.
func UnassignedOrderID() OrderID {
	return OrderID{}
}

// IsAssigned reports whether the identifier has been assigned by persistence.
func (id OrderID) IsAssigned() bool {
	return id.value > 0
}

// Value returns the numeric identifier, zero when unassigned.
func (id OrderID) Value() int64 {
	return id.value
}

// IsEqual compares two order identifiers by value.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// String implements fmt.Stringer.
func (id OrderID) String() string {
	return strconv.FormatInt(id.value, 10)
}

// OrderItemID identifies an order line item. Semantics mirror OrderID: the
// zero value is the unassigned placeholder, positive values come from
// persistence.
type OrderItemID struct {
	value int64
}

// NewOrderItemID creates an OrderItemID from a persisted, positive identifier.
func NewOrderItemID(value int64) (OrderItemID, error) {
	if value <= 0 {
		return OrderItemID{}, errs.NewValueIsInvalidErrorWithCause(
			"order item id", fmt.Errorf("%d is not a positive identifier", value))
	}
	return OrderItemID{value: value}, nil
}

// UnassignedOrderItemID returns the placeholder identifier for a
// not-yet-persisted item.
func UnassignedOrderItemID() OrderItemID {
	return OrderItemID{}
}

// IsAssigned reports whether the identifier has been assigned by persistence.
func (id OrderItemID) IsAssigned() bool {
	return id.value > 0
}

// Value returns the numeric identifier, zero when unassigned.
func (id OrderItemID) Value() int64 {
	return id.value
}

// IsEqual compares two item identifiers by value.
func (id OrderItemID) IsEqual(other OrderItemID) bool {
	return id.value == other.value
}

// String implements fmt.Stringer.
func (id OrderItemID) String() string {
	return strconv.FormatInt(id.value, 10)
}
