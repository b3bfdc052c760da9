package order

import (
	"errors"
	"fmt"
	"strings"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem or RestoreItem factory methods.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructors")

// Item represents a line item of an order: a product identity, a quantity and
// a unit price. Items are entities compared by identifier, not by value - two
// items with identical product and price but different identifiers are
// distinct lines.
//
// Item follows these invariants:
//   - Product name and SKU are non-blank
//   - Quantity is positive
//   - Unit price is a valid Money value
//
// An item's identity never changes after construction; only quantity, unit
// price and description are mutable, each through an explicit update method.
type Item struct {
	// id is the item identifier, unassigned until first persisted
	id kernel.OrderItemID

	// productName is the display name of the ordered product
	productName string

	// productSku is the stock keeping unit of the ordered product
	productSku string

	// quantity is the ordered amount (must be positive)
	quantity int

	// unitPrice is the price of a single unit
	unitPrice kernel.Money

	// description is optional free-form text for the line
	description string

	// isConstructed ensures the item was created via a constructor
	isConstructed bool
}

// NewItem creates a new Item with an unassigned identifier. The persistence
// layer assigns the numeric identifier on first save.
//
// Parameters:
//   - productName: Display name of the product (non-blank after trim)
//   - productSku: SKU of the product (non-blank after trim)
//   - quantity: Ordered amount (must be greater than 0)
//   - unitPrice: Price of a single unit
//   - description: Optional free-form text, may be empty
//
// Returns the created item, or a validation error if any parameter is invalid.
func NewItem(
	productName string,
	productSku string,
	quantity int,
	unitPrice kernel.Money,
	description string,
) (*Item, error) {
	return RestoreItem(kernel.UnassignedOrderItemID(), productName, productSku, quantity, unitPrice, description)
}

// RestoreItem recreates an Item with a known identifier, typically while
// rehydrating an order from persistence. Applies the same validation as
// NewItem.
func RestoreItem(
	id kernel.OrderItemID,
	productName string,
	productSku string,
	quantity int,
	unitPrice kernel.Money,
	description string,
) (*Item, error) {
	item := &Item{
		id:            id,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setProductName(productName),
		item.setProductSku(productSku),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	item.description = strings.TrimSpace(description)
	return item, nil
}

// Validate ensures the Item instance was properly constructed through a constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's identifier.
func (i *Item) ID() kernel.OrderItemID {
	return i.id
}

// ProductName returns the trimmed product display name.
func (i *Item) ProductName() string {
	return i.productName
}

// ProductSku returns the trimmed product SKU.
func (i *Item) ProductSku() string {
	return i.productSku
}

// Quantity returns the ordered amount.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price of a single unit.
func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Description returns the optional line description, empty when unset.
func (i *Item) Description() string {
	return i.description
}

// TotalPrice returns the line total: unit price multiplied by quantity.
func (i *Item) TotalPrice() (kernel.Money, error) {
	return i.unitPrice.Multiply(decimal.NewFromInt(int64(i.quantity)))
}

// UpdateQuantity replaces the ordered amount.
// Fails when the new quantity is not positive; the item is left unchanged.
func (i *Item) UpdateQuantity(quantity int) error {
	return i.setQuantity(quantity)
}

// UpdateUnitPrice replaces the unit price with a new Money value.
func (i *Item) UpdateUnitPrice(unitPrice kernel.Money) error {
	return i.setUnitPrice(unitPrice)
}

// UpdateDescription replaces the optional line description.
func (i *Item) UpdateDescription(description string) {
	i.description = strings.TrimSpace(description)
}

// IsEqual compares two items by their identifiers.
// Items are considered equal if they have the same identifier, regardless of
// product, quantity or price.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

func (i *Item) setProductName(productName string) error {
	productName = strings.TrimSpace(productName)
	if productName == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	i.productName = productName
	return nil
}

func (i *Item) setProductSku(productSku string) error {
	productSku = strings.TrimSpace(productSku)
	if productSku == "" {
		return errs.NewValueIsRequiredError("product sku")
	}
	i.productSku = productSku
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}
