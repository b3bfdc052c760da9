package commands_test

import (
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	name := mustCustomerName(t, "John Michael Doe")
	items := []*order.Item{mustItem(t, "Wireless Mouse", "WM-042", 2, 29.99)}

	cmd, err := commands.NewCreateOrderCommand(name, items)
	require.NoError(t, err)
	assert.True(t, cmd.CustomerName().IsEqual(name))
	assert.Len(t, cmd.Items(), 1)
}

func TestNewCreateOrderCommand_EmptyItems(t *testing.T) {
	name := mustCustomerName(t, "John Michael Doe")
	_, err := commands.NewCreateOrderCommand(name, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOrderItemsAreRequired)
}

func TestNewCreateOrderCommand_InvalidCustomerName(t *testing.T) {
	invalidName := kernel.CustomerName{} // zero value, should trigger validation error
	items := []*order.Item{mustItem(t, "Wireless Mouse", "WM-042", 2, 29.99)}
	_, err := commands.NewCreateOrderCommand(invalidName, items)
	require.Error(t, err)
}

func TestNewCreateOrderCommand_InvalidItem(t *testing.T) {
	name := mustCustomerName(t, "John Michael Doe")
	_, err := commands.NewCreateOrderCommand(name, []*order.Item{{}})
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrItemIsNotConstructed)
}
