// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The total amount is denormalized onto the order row so price range queries
// never need to aggregate item rows.
type OrderDTO struct {
	ID           int64 `gorm:"primaryKey;autoIncrement"`
	CustomerName string
	Status       string          `gorm:"index"`
	TotalAmount  decimal.Decimal `gorm:"type:decimal(20,8);index"`
	Currency     string          `gorm:"type:varchar(8)"`
	Items        []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents the database structure for persisting order line items.
type OrderItemDTO struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	OrderID     int64 `gorm:"index"`
	ProductName string
	ProductSku  string
	Quantity    int
	UnitPrice   decimal.Decimal `gorm:"type:decimal(20,8)"`
	Currency    string          `gorm:"type:varchar(8)"`
	Description string
}

// TableName specifies the database table name for order item entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Computes the denormalized total from the aggregate's items.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	total, err := aggregate.TotalPrice()
	if err != nil {
		return OrderDTO{}, err
	}

	items := aggregate.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, OrderItemDTO{
			ID:          item.ID().Value(),
			OrderID:     aggregate.ID().Value(),
			ProductName: item.ProductName(),
			ProductSku:  item.ProductSku(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().Amount(),
			Currency:    item.UnitPrice().Currency(),
			Description: item.Description(),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID().Value(),
		CustomerName: aggregate.CustomerName().Value(),
		Status:       aggregate.Status().String(),
		TotalAmount:  total.Amount(),
		Currency:     total.Currency(),
		Items:        itemDTOs,
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including items using RestoreOrder,
// which records no domain events.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewOrderID(dto.ID)
	if err != nil {
		return nil, err
	}

	customerName, err := kernel.NewCustomerName(dto.CustomerName)
	if err != nil {
		return nil, err
	}

	status, err := order.NewStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, itemErr := kernel.NewOrderItemID(itemDTO.ID)
		if itemErr != nil {
			return nil, itemErr
		}

		unitPrice, itemErr := kernel.NewMoney(itemDTO.UnitPrice, itemDTO.Currency)
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.RestoreItem(
			itemID,
			itemDTO.ProductName,
			itemDTO.ProductSku,
			itemDTO.Quantity,
			unitPrice,
			itemDTO.Description,
		)
		if itemErr != nil {
			return nil, itemErr
		}

		items = append(items, item)
	}

	return order.RestoreOrder(id, customerName, items, status)
}
