package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a request to move an order to a new
// status. Whether the transition is allowed is decided by the aggregate, not
// by the command: the command only guarantees the target status is a valid
// literal and the order identifier is assigned.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	status  order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to transition an order's status.
func NewUpdateOrderStatusCommand(orderID kernel.OrderID, status order.Status) (UpdateOrderStatusCommand, error) {
	statusCommand := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderID(orderID),
		statusCommand.setStatus(status),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c UpdateOrderStatusCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Status returns the target status.
func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.OrderID) error {
	if !orderID.IsAssigned() {
		return kernel.ErrOrderIDIsNotAssigned
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
