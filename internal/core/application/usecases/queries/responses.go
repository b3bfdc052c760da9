// Package queries contains read operations over persisted orders.
// Implements the Query pattern for the read side of the CQRS architecture.
// Handlers load aggregates through the repository and project them into
// response structs carrying the serialized order shape.
package queries

import (
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// MoneyResponse is the serialized form of a monetary value. Amount carries the
// exact decimal representation; Formatted is the display form rounded to two
// decimal places.
type MoneyResponse struct {
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
	Formatted string `json:"formatted"`
}

// NewMoneyResponse projects a Money value into its serialized form.
func NewMoneyResponse(money kernel.Money) MoneyResponse {
	return MoneyResponse{
		Amount:    money.Amount().String(),
		Currency:  money.Currency(),
		Formatted: money.Format(),
	}
}

// OrderItemResponse is the serialized form of an order line item.
type OrderItemResponse struct {
	ID          int64         `json:"id"`
	ProductName string        `json:"product_name"`
	ProductSku  string        `json:"product_sku"`
	Quantity    int           `json:"quantity"`
	UnitPrice   MoneyResponse `json:"unit_price"`
	TotalPrice  MoneyResponse `json:"total_price"`
	Description string        `json:"description,omitempty"`
}

// NewOrderItemResponse projects an item into its serialized form.
func NewOrderItemResponse(item *order.Item) (OrderItemResponse, error) {
	lineTotal, err := item.TotalPrice()
	if err != nil {
		return OrderItemResponse{}, err
	}

	return OrderItemResponse{
		ID:          item.ID().Value(),
		ProductName: item.ProductName(),
		ProductSku:  item.ProductSku(),
		Quantity:    item.Quantity(),
		UnitPrice:   NewMoneyResponse(item.UnitPrice()),
		TotalPrice:  NewMoneyResponse(lineTotal),
		Description: item.Description(),
	}, nil
}

// OrderResponse is the serialized form of an order aggregate. The customer
// name appears both whole and decomposed so clients never re-implement the
// splitting rules.
type OrderResponse struct {
	ID                int64               `json:"id"`
	CustomerName      string              `json:"customer_name"`
	CustomerFirstName string              `json:"customer_first_name"`
	CustomerLastName  string              `json:"customer_last_name"`
	CustomerInitials  string              `json:"customer_initials"`
	Items             []OrderItemResponse `json:"items"`
	TotalPrice        MoneyResponse       `json:"total_price"`
	Status            string              `json:"status"`
}

// NewOrderResponse projects an aggregate into its serialized form.
func NewOrderResponse(aggregate *order.Order) (OrderResponse, error) {
	if err := aggregate.Validate(); err != nil {
		return OrderResponse{}, err
	}

	total, err := aggregate.TotalPrice()
	if err != nil {
		return OrderResponse{}, err
	}

	items := make([]OrderItemResponse, 0, aggregate.ItemCount())
	for _, item := range aggregate.Items() {
		itemResponse, itemErr := NewOrderItemResponse(item)
		if itemErr != nil {
			return OrderResponse{}, itemErr
		}
		items = append(items, itemResponse)
	}

	name := aggregate.CustomerName()
	return OrderResponse{
		ID:                aggregate.ID().Value(),
		CustomerName:      name.Value(),
		CustomerFirstName: name.FirstName(),
		CustomerLastName:  name.LastName(),
		CustomerInitials:  name.Initials(),
		Items:             items,
		TotalPrice:        NewMoneyResponse(total),
		Status:            aggregate.Status().String(),
	}, nil
}

// NewOrderResponses projects a list of aggregates, preserving order.
func NewOrderResponses(aggregates []*order.Order) ([]OrderResponse, error) {
	responses := make([]OrderResponse, 0, len(aggregates))
	for _, aggregate := range aggregates {
		response, err := NewOrderResponse(aggregate)
		if err != nil {
			return nil, err
		}
		responses = append(responses, response)
	}
	return responses, nil
}
