package queries_test

import (
	"testing"

	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListOrdersQueryHandler_Handle_All(t *testing.T) {
	ctx := t.Context()
	aggregates := []*order.Order{
		mustRestoredOrder(t, 1, order.StatusPending,
			mustRestoredItem(t, 1, "Wireless Mouse", "WM-042", 2, 29.99)),
		mustRestoredOrder(t, 2, order.StatusShipped,
			mustRestoredItem(t, 2, "USB-C Hub", "UH-007", 1, 89.99)),
	}

	repo := new(MockOrderRepository)
	repo.On("GetAll", mock.Anything, queries.DefaultPageSize, 1).Return(aggregates, nil).Once()

	query, err := queries.NewListOrdersQuery(0, 0)
	require.NoError(t, err)

	h := queries.NewListOrdersQueryHandler(repo)
	responses, err := h.Handle(ctx, query)
	require.NoError(t, err)

	require.Len(t, responses, 2)
	assert.Equal(t, int64(1), responses[0].ID)
	assert.Equal(t, "pending", responses[0].Status)
	assert.Equal(t, int64(2), responses[1].ID)
	assert.Equal(t, "shipped", responses[1].Status)
	repo.AssertExpectations(t)
}

func TestListOrdersQueryHandler_Handle_FilteredByStatus(t *testing.T) {
	ctx := t.Context()
	aggregates := []*order.Order{
		mustRestoredOrder(t, 3, order.StatusConfirmed,
			mustRestoredItem(t, 3, "HDMI Cable", "HC-014", 3, 12.50)),
	}

	repo := new(MockOrderRepository)
	repo.On("GetAllInStatus", mock.Anything, order.StatusConfirmed).Return(aggregates, nil).Once()

	query, err := queries.NewListOrdersQueryWithStatus(order.StatusConfirmed)
	require.NoError(t, err)

	h := queries.NewListOrdersQueryHandler(repo)
	responses, err := h.Handle(ctx, query)
	require.NoError(t, err)

	require.Len(t, responses, 1)
	assert.Equal(t, "confirmed", responses[0].Status)
	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "GetAll", mock.Anything, mock.Anything, mock.Anything)
}

func TestListOrdersQueryHandler_Handle_Paginated(t *testing.T) {
	ctx := t.Context()
	aggregates := []*order.Order{
		mustRestoredOrder(t, 42, order.StatusPending,
			mustRestoredItem(t, 9, "Wireless Mouse", "WM-042", 2, 29.99)),
	}

	repo := new(MockOrderRepository)
	repo.On("GetAll", mock.Anything, 10, 3).Return(aggregates, nil).Once()

	query, err := queries.NewListOrdersQuery(10, 3)
	require.NoError(t, err)

	h := queries.NewListOrdersQueryHandler(repo)
	responses, err := h.Handle(ctx, query)
	require.NoError(t, err)

	require.Len(t, responses, 1)
	assert.Equal(t, int64(42), responses[0].ID)
	repo.AssertExpectations(t)
}

func TestNewListOrdersQuery_PaginationBounds(t *testing.T) {
	t.Run("zero values fall back to defaults", func(t *testing.T) {
		query, err := queries.NewListOrdersQuery(0, 0)
		require.NoError(t, err)
		assert.Equal(t, queries.DefaultPageSize, query.PageSize())
		assert.Equal(t, 1, query.PageNumber())
	})

	t.Run("negative page size fails", func(t *testing.T) {
		_, err := queries.NewListOrdersQuery(-1, 1)
		require.Error(t, err)
	})

	t.Run("oversized page fails", func(t *testing.T) {
		_, err := queries.NewListOrdersQuery(queries.MaxPageSize+1, 1)
		require.Error(t, err)
	})

	t.Run("negative page number fails", func(t *testing.T) {
		_, err := queries.NewListOrdersQuery(10, -2)
		require.Error(t, err)
	})
}

func TestNewListOrdersQueryWithStatus_InvalidStatus(t *testing.T) {
	_, err := queries.NewListOrdersQueryWithStatus(order.Status("unknown"))
	require.Error(t, err)
}

func TestListOrdersQueryHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	h := queries.NewListOrdersQueryHandler(new(MockOrderRepository))
	_, err := h.Handle(ctx, queries.ListOrdersQuery{})
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrListOrdersQueryIsNotConstructed)
}
