package services

import (
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// Discount thresholds and rates for order pricing.
const (
	// LargeVolumeThreshold is the order total from which the large volume rate applies.
	LargeVolumeThreshold = 1000.0

	// MediumVolumeThreshold is the order total from which the medium volume rate applies.
	MediumVolumeThreshold = 500.0

	// BulkItemQuantityThreshold is the line quantity from which the bulk rate applies.
	BulkItemQuantityThreshold = 5
)

var (
	largeVolumeRate  = decimal.NewFromFloat(0.15)
	mediumVolumeRate = decimal.NewFromFloat(0.10)
	bulkItemRate     = decimal.NewFromFloat(0.05)

	largeVolumeThreshold  = decimal.NewFromFloat(LargeVolumeThreshold)
	mediumVolumeThreshold = decimal.NewFromFloat(MediumVolumeThreshold)
)

// OrderPricingService is a domain service that calculates discounts and the
// final price of an order. It is stateless and never mutates the order.
//
// Discount rules:
//   - Volume discount: 15% of the order total when the total is at least 1000,
//     10% when it is at least 500, otherwise no discount. Thresholds are
//     inclusive and the tiers are exclusive: exactly one rate applies.
//   - Bulk item discount: 5% of the line total for every item whose quantity
//     is at least 5. Each qualifying line contributes independently.
//   - Final price: order total minus both discounts. All arithmetic is exact
//     decimal arithmetic; nothing is rounded until display.
//
// Example usage:
//
//	pricing := services.NewOrderPricingService()
//	finalPrice, err := pricing.CalculateFinalPrice(o)
//	if err != nil {
//	    // Handle calculation failure
//	}
type OrderPricingService struct{}

// NewOrderPricingService creates a new OrderPricingService instance.
func NewOrderPricingService() OrderPricingService {
	return OrderPricingService{}
}

// CalculateVolumeDiscount returns the volume discount for the order's total.
// Returns a zero Money in the order's currency when no tier applies.
func (s OrderPricingService) CalculateVolumeDiscount(o *order.Order) (kernel.Money, error) {
	if err := o.Validate(); err != nil {
		return kernel.Money{}, err
	}

	total, err := o.TotalPrice()
	if err != nil {
		return kernel.Money{}, err
	}

	switch {
	case total.Amount().GreaterThanOrEqual(largeVolumeThreshold):
		return total.Multiply(largeVolumeRate)
	case total.Amount().GreaterThanOrEqual(mediumVolumeThreshold):
		return total.Multiply(mediumVolumeRate)
	default:
		return kernel.ZeroMoney(total.Currency())
	}
}

// CalculateBulkItemDiscount returns the sum of per-line bulk discounts: 5% of
// the line total for every item whose quantity reaches the bulk threshold.
// Returns a zero Money in the order's currency when no line qualifies.
func (s OrderPricingService) CalculateBulkItemDiscount(o *order.Order) (kernel.Money, error) {
	if err := o.Validate(); err != nil {
		return kernel.Money{}, err
	}

	discount, err := kernel.ZeroMoney(o.Currency())
	if err != nil {
		return kernel.Money{}, err
	}

	for _, item := range o.Items() {
		if item.Quantity() < BulkItemQuantityThreshold {
			continue
		}

		lineTotal, lineErr := item.TotalPrice()
		if lineErr != nil {
			return kernel.Money{}, lineErr
		}

		lineDiscount, lineErr := lineTotal.Multiply(bulkItemRate)
		if lineErr != nil {
			return kernel.Money{}, lineErr
		}

		discount, err = discount.Add(lineDiscount)
		if err != nil {
			return kernel.Money{}, err
		}
	}

	return discount, nil
}

// CalculateFinalPrice returns the order total minus the volume discount and
// the bulk item discount. The result can never go below zero because each
// discount is a fraction of the total.
func (s OrderPricingService) CalculateFinalPrice(o *order.Order) (kernel.Money, error) {
	total, err := o.TotalPrice()
	if err != nil {
		return kernel.Money{}, err
	}

	volumeDiscount, err := s.CalculateVolumeDiscount(o)
	if err != nil {
		return kernel.Money{}, err
	}

	bulkDiscount, err := s.CalculateBulkItemDiscount(o)
	if err != nil {
		return kernel.Money{}, err
	}

	finalPrice, err := total.Subtract(volumeDiscount)
	if err != nil {
		return kernel.Money{}, err
	}

	return finalPrice.Subtract(bulkDiscount)
}
