package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/services"
)

type line struct {
	quantity  int
	unitPrice float64
}

func orderWithItems(t *testing.T, lines ...line) *order.Order {
	t.Helper()

	name, err := kernel.NewCustomerName("John Michael Doe")
	require.NoError(t, err)

	items := make([]*order.Item, 0, len(lines))
	for _, line := range lines {
		price, priceErr := kernel.NewMoneyFromFloat(line.unitPrice, "USD")
		require.NoError(t, priceErr)
		item, itemErr := order.NewItem("Product", "SKU-1", line.quantity, price, "")
		require.NoError(t, itemErr)
		items = append(items, item)
	}

	aggregate, err := order.NewOrder(name, items)
	require.NoError(t, err)
	return aggregate
}

func TestCalculateVolumeDiscount(t *testing.T) {
	pricing := services.NewOrderPricingService()

	tests := []struct {
		name  string
		lines []line
		want  string
	}{
		{
			name:  "below medium threshold gets no discount",
			lines: []line{{1, 499.99}},
			want:  "0",
		},
		{
			name:  "exactly at medium threshold gets ten percent",
			lines: []line{{1, 500}},
			want:  "50",
		},
		{
			name:  "just below large threshold stays at ten percent",
			lines: []line{{1, 999.99}},
			want:  "99.999",
		},
		{
			name:  "exactly at large threshold gets fifteen percent",
			lines: []line{{1, 1000}},
			want:  "150",
		},
		{
			name:  "large order gets fifteen percent of the whole total",
			lines: []line{{2, 1289.99}, {6, 29.99}},
			want:  "413.988",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aggregate := orderWithItems(t, tt.lines...)

			discount, err := pricing.CalculateVolumeDiscount(aggregate)

			require.NoError(t, err)
			assert.Equal(t, tt.want, discount.Amount().String())
			assert.Equal(t, "USD", discount.Currency())
		})
	}
}

func TestCalculateVolumeDiscountRejectsUnconstructedOrder(t *testing.T) {
	pricing := services.NewOrderPricingService()

	_, err := pricing.CalculateVolumeDiscount(&order.Order{})

	assert.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
}

func TestCalculateBulkItemDiscount(t *testing.T) {
	pricing := services.NewOrderPricingService()

	tests := []struct {
		name  string
		lines []line
		want  string
	}{
		{
			name:  "no line reaches the bulk threshold",
			lines: []line{{4, 100}},
			want:  "0",
		},
		{
			name:  "exactly five units qualifies",
			lines: []line{{5, 100}},
			want:  "25",
		},
		{
			name:  "only qualifying lines contribute",
			lines: []line{{2, 1289.99}, {6, 29.99}},
			want:  "8.997",
		},
		{
			name:  "every qualifying line contributes independently",
			lines: []line{{5, 100}, {10, 20}, {1, 999}},
			want:  "35",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aggregate := orderWithItems(t, tt.lines...)

			discount, err := pricing.CalculateBulkItemDiscount(aggregate)

			require.NoError(t, err)
			assert.Equal(t, tt.want, discount.Amount().String())
		})
	}
}

func TestCalculateFinalPrice(t *testing.T) {
	pricing := services.NewOrderPricingService()

	tests := []struct {
		name  string
		lines []line
		want  string
	}{
		{
			name:  "no discounts keeps the total",
			lines: []line{{1, 25}},
			want:  "25",
		},
		{
			name:  "volume discount only",
			lines: []line{{1, 600}},
			want:  "540",
		},
		{
			name:  "bulk discount only",
			lines: []line{{5, 50}},
			want:  "237.5",
		},
		{
			name:  "both discounts combine",
			lines: []line{{2, 1289.99}, {6, 29.99}},
			want:  "2336.935",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aggregate := orderWithItems(t, tt.lines...)

			finalPrice, err := pricing.CalculateFinalPrice(aggregate)

			require.NoError(t, err)
			assert.Equal(t, tt.want, finalPrice.Amount().String())
		})
	}
}

func TestCalculateFinalPriceLeavesOrderUnchanged(t *testing.T) {
	pricing := services.NewOrderPricingService()
	aggregate := orderWithItems(t, line{2, 1289.99}, line{6, 29.99})

	_, err := pricing.CalculateFinalPrice(aggregate)
	require.NoError(t, err)

	total, err := aggregate.TotalPrice()
	require.NoError(t, err)
	assert.Equal(t, "2759.92", total.Amount().String())
	assert.Equal(t, 2, aggregate.ItemCount())
}
