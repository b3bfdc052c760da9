package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orders/internal/core/domain/model/kernel"
)

func TestNewOrderID(t *testing.T) {
	tests := []struct {
		name    string
		value   int64
		wantErr bool
	}{
		{name: "positive identifier", value: 42},
		{name: "zero is not a persisted identifier", value: 0, wantErr: true},
		{name: "negative identifier", value: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := kernel.NewOrderID(tt.value)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.True(t, id.IsAssigned())
			assert.Equal(t, tt.value, id.Value())
		})
	}
}

func TestUnassignedOrderID(t *testing.T) {
	id := kernel.UnassignedOrderID()

	assert.False(t, id.IsAssigned())
	assert.Equal(t, int64(0), id.Value())
	assert.Equal(t, "0", id.String())
}

func TestOrderIDIsEqual(t *testing.T) {
	a, err := kernel.NewOrderID(7)
	require.NoError(t, err)
	b, err := kernel.NewOrderID(7)
	require.NoError(t, err)
	c, err := kernel.NewOrderID(8)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(kernel.UnassignedOrderID()))
}

func TestNewOrderItemID(t *testing.T) {
	tests := []struct {
		name    string
		value   int64
		wantErr bool
	}{
		{name: "positive identifier", value: 3},
		{name: "zero is not a persisted identifier", value: 0, wantErr: true},
		{name: "negative identifier", value: -5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := kernel.NewOrderItemID(tt.value)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.True(t, id.IsAssigned())
			assert.Equal(t, tt.value, id.Value())
		})
	}
}

func TestUnassignedOrderItemID(t *testing.T) {
	id := kernel.UnassignedOrderItemID()

	assert.False(t, id.IsAssigned())
	assert.Equal(t, int64(0), id.Value())
}
