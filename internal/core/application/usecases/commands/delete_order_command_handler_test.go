package commands_test

import (
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID, err := kernel.NewOrderID(42)
	require.NoError(t, err)
	cmd, err := commands.NewDeleteOrderCommand(orderID)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Delete", mock.Anything, orderID).Return(nil).Once()

	h := commands.NewDeleteOrderCommandHandler(repo)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID, err := kernel.NewOrderID(42)
	require.NoError(t, err)
	cmd, err := commands.NewDeleteOrderCommand(orderID)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Delete", mock.Anything, orderID).
		Return(errs.NewObjectNotFoundError("order", orderID)).Once()

	h := commands.NewDeleteOrderCommandHandler(repo)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestDeleteOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	h := commands.NewDeleteOrderCommandHandler(new(MockOrderRepository))
	err := h.Handle(ctx, commands.DeleteOrderCommand{})
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDeleteOrderCommandIsNotConstructed)
}
