package commands

import (
	"errors"
	"slices"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/guard"
)

var ErrUpdateOrderItemsCommandIsNotConstructed = errors.New(
	"UpdateOrderItemsCommand must be created via NewUpdateOrderItemsCommand constructor",
)

// UpdateOrderItemsCommand represents a request to replace the full item list
// of an existing order. The replacement list must not be empty so the order
// never loses its last item.
type UpdateOrderItemsCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	items   []*order.Item

	guard guard.ConstructorGuard
}

// NewUpdateOrderItemsCommand creates a command to replace an order's items.
func NewUpdateOrderItemsCommand(orderID kernel.OrderID, items []*order.Item) (UpdateOrderItemsCommand, error) {
	itemsCommand := UpdateOrderItemsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemsCommand.setOrderID(orderID),
		itemsCommand.setItems(items),
	); err != nil {
		return UpdateOrderItemsCommand{}, err
	}

	return itemsCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderItemsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderItemsCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderItemsCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Items returns the replacement line items.
func (c UpdateOrderItemsCommand) Items() []*order.Item {
	return slices.Clone(c.items)
}

func (c *UpdateOrderItemsCommand) setOrderID(orderID kernel.OrderID) error {
	if !orderID.IsAssigned() {
		return kernel.ErrOrderIDIsNotAssigned
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderItemsCommand) setItems(items []*order.Item) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = slices.Clone(items)
	return nil
}
