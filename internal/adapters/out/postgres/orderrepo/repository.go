package orderrepo

import (
	"context"
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Save persists the aggregate and its items inside a single transaction.
// Inserts when the identifier is unassigned, otherwise replaces the order row
// and its item rows. Item rows are rewritten on update, so item identifiers
// are reassigned by the database. Returns the rehydrated aggregate with all
// identifiers assigned.
func (r *GormOrderRepository) Save(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if dto.ID == 0 {
			for i := range dto.Items {
				dto.Items[i].ID = 0
			}
			return tx.Create(&dto).Error
		}

		result := tx.Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
			"customer_name": dto.CustomerName,
			"status":        dto.Status,
			"total_amount":  dto.TotalAmount,
			"currency":      dto.Currency,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewObjectNotFoundError("order", dto.ID)
		}

		if deleteErr := tx.Where("order_id = ?", dto.ID).Delete(&OrderItemDTO{}).Error; deleteErr != nil {
			return deleteErr
		}

		for i := range dto.Items {
			dto.Items[i].ID = 0
			dto.Items[i].OrderID = dto.ID
		}
		return tx.Create(&dto.Items).Error
	})
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// Get retrieves an order with its items by identifier.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	if !id.IsAssigned() {
		return nil, kernel.ErrOrderIDIsNotAssigned
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).Preload("Items", itemsInInsertionOrder).First(&dto, "id = ?", id.Value()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves one page of orders with their items, newest first.
func (r *GormOrderRepository) GetAll(ctx context.Context, pageSize int, pageNumber int) ([]*order.Order, error) {
	if pageSize <= 0 {
		return nil, errs.NewValueIsInvalidError("page size")
	}
	if pageNumber <= 0 {
		return nil, errs.NewValueIsInvalidError("page number")
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", itemsInInsertionOrder).
		Order("id DESC").
		Limit(pageSize).
		Offset((pageNumber - 1) * pageSize).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllInStatus retrieves all orders currently in the given status.
func (r *GormOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", itemsInInsertionOrder).
		Where("status = ?", status.String()).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllInTotalPriceRange retrieves all orders whose denormalized total falls
// within [low, high], both bounds inclusive. Only orders in the bounds'
// currency are considered.
func (r *GormOrderRepository) GetAllInTotalPriceRange(
	ctx context.Context,
	low kernel.Money,
	high kernel.Money,
) ([]*order.Order, error) {
	if err := errors.Join(low.Validate(), high.Validate()); err != nil {
		return nil, err
	}
	if low.Currency() != high.Currency() {
		return nil, kernel.ErrCurrencyMismatch
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", itemsInInsertionOrder).
		Where("currency = ? AND total_amount >= ? AND total_amount <= ?",
			low.Currency(), low.Amount(), high.Amount()).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// Delete removes the order and its items inside a single transaction.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.OrderID) error {
	if !id.IsAssigned() {
		return kernel.ErrOrderIDIsNotAssigned
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id.Value()).Delete(&OrderItemDTO{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&OrderDTO{}, "id = ?", id.Value())
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewObjectNotFoundError("order", id.String())
		}
		return nil
	})
}

// itemsInInsertionOrder keeps preloaded item rows in identifier order, which
// matches the order they were inserted in.
func itemsInInsertionOrder(db *gorm.DB) *gorm.DB {
	return db.Order("order_items.id")
}

func toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}
	return orders, nil
}
