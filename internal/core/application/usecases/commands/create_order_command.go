package commands

import (
	"errors"
	"slices"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderItemsAreRequired = errors.New("at least one order item is required")
)

// CreateOrderCommand represents a request to create a new order for a customer.
// Carries the validated customer name and the line items the order starts with.
//
// Example:
//
//	name, _ := kernel.NewCustomerName("John Michael Doe")
//	price, _ := kernel.NewMoneyFromFloat(29.99, "USD")
//	item, _ := order.NewItem("Wireless Mouse", "WM-042", 2, price, "")
//	cmd, err := NewCreateOrderCommand(name, []*order.Item{item})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(repo, dispatcher)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerName kernel.CustomerName
	items        []*order.Item

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the customer name was properly constructed and that at least
// one valid item is present. Returns an error if any validation fails.
func NewCreateOrderCommand(customerName kernel.CustomerName, items []*order.Item) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setCustomerName(customerName),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerName returns the customer the order is created for.
func (c CreateOrderCommand) CustomerName() kernel.CustomerName {
	return c.customerName
}

// Items returns the line items the order starts with.
func (c CreateOrderCommand) Items() []*order.Item {
	return slices.Clone(c.items)
}

func (c *CreateOrderCommand) setCustomerName(customerName kernel.CustomerName) error {
	if err := customerName.Validate(); err != nil {
		return err
	}

	c.customerName = customerName
	return nil
}

func (c *CreateOrderCommand) setItems(items []*order.Item) error {
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
