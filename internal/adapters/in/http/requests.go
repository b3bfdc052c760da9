package http

import (
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderItemRequest is the wire form of a line item in create and update
// requests.
type OrderItemRequest struct {
	ProductName string  `json:"product_name"`
	ProductSku  string  `json:"product_sku"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Currency    string  `json:"currency"`
	Description string  `json:"description,omitempty"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerName string             `json:"customer_name"`
	Items        []OrderItemRequest `json:"items"`
}

// UpdateOrderItemsRequest is the body of PUT /api/v1/orders/:id.
type UpdateOrderItemsRequest struct {
	Items []OrderItemRequest `json:"items"`
}

// UpdateOrderStatusRequest is the body of POST /api/v1/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// ProcessPaymentRequest is the body of POST /api/v1/orders/:id/payment.
type ProcessPaymentRequest struct {
	Method string `json:"method"`
}

// Envelope is the uniform response wrapper of every endpoint.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// toDomainItems builds domain items from their wire form. Items keep their
// request order; identifiers stay unassigned until persistence.
func toDomainItems(requests []OrderItemRequest) ([]*order.Item, error) {
	items := make([]*order.Item, 0, len(requests))
	for _, request := range requests {
		unitPrice, err := kernel.NewMoneyFromFloat(request.UnitPrice, request.Currency)
		if err != nil {
			return nil, err
		}

		item, err := order.NewItem(
			request.ProductName,
			request.ProductSku,
			request.Quantity,
			unitPrice,
			request.Description,
		)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}
	return items, nil
}
