package queries

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var ErrGetOrderPricingQueryIsNotConstructed = errors.New(
	"GetOrderPricingQuery must be created via NewGetOrderPricingQuery constructor",
)

// GetOrderPricingQuery retrieves the full pricing breakdown of an order: its
// base total, the volume and bulk item discounts and the resulting final
// price.
type GetOrderPricingQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewGetOrderPricingQuery creates a pricing breakdown query.
func NewGetOrderPricingQuery(orderID kernel.OrderID) (GetOrderPricingQuery, error) {
	query := GetOrderPricingQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderPricingQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderPricingQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderPricingQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to price.
func (q GetOrderPricingQuery) OrderID() kernel.OrderID {
	return q.orderID
}

func (q *GetOrderPricingQuery) setOrderID(orderID kernel.OrderID) error {
	if !orderID.IsAssigned() {
		return kernel.ErrOrderIDIsNotAssigned
	}

	q.orderID = orderID
	return nil
}

// DiscountsResponse is the serialized breakdown of the discounts applied to
// an order.
type DiscountsResponse struct {
	VolumeDiscount   MoneyResponse `json:"volume_discount"`
	BulkItemDiscount MoneyResponse `json:"bulk_item_discount"`
	TotalDiscount    MoneyResponse `json:"total_discount"`
}

// PricingResponse is the serialized pricing calculation for an order.
type PricingResponse struct {
	BaseTotal  MoneyResponse     `json:"base_total"`
	Discounts  DiscountsResponse `json:"discounts"`
	FinalPrice MoneyResponse     `json:"final_price"`
}

// GetOrderPricingQueryResponse associates a pricing calculation with the
// order it was computed for.
type GetOrderPricingQueryResponse struct {
	OrderID int64           `json:"order_id"`
	Pricing PricingResponse `json:"pricing"`
}
