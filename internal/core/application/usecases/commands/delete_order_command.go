package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand represents a request to remove an order and its items.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a command to remove an order.
func NewDeleteOrderCommand(orderID kernel.OrderID) (DeleteOrderCommand, error) {
	deleteCommand := DeleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := deleteCommand.setOrderID(orderID); err != nil {
		return DeleteOrderCommand{}, err
	}

	return deleteCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to remove.
func (c DeleteOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

func (c *DeleteOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if !orderID.IsAssigned() {
		return kernel.ErrOrderIDIsNotAssigned
	}

	c.orderID = orderID
	return nil
}
