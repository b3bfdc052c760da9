package queries

import (
	"context"

	"orders/internal/core/domain/services"
	"orders/internal/core/ports"
)

// GetOrderPricingQueryHandler loads an order and computes its pricing
// breakdown through the pricing domain service. The calculation is pure: the
// stored order is never modified.
type GetOrderPricingQueryHandler struct {
	orderRepository ports.OrderRepository
	pricingService  services.OrderPricingService
}

// NewGetOrderPricingQueryHandler creates a handler for pricing breakdown queries.
func NewGetOrderPricingQueryHandler(
	orderRepository ports.OrderRepository,
	pricingService services.OrderPricingService,
) GetOrderPricingQueryHandler {
	return GetOrderPricingQueryHandler{
		orderRepository: orderRepository,
		pricingService:  pricingService,
	}
}

// Handle executes the query.
// Returns an errs.ObjectNotFoundError when no order has the identifier.
func (h GetOrderPricingQueryHandler) Handle(
	ctx context.Context,
	query GetOrderPricingQuery,
) (GetOrderPricingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderPricingQueryResponse{}, err
	}

	aggregate, err := h.orderRepository.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderPricingQueryResponse{}, err
	}

	baseTotal, err := aggregate.TotalPrice()
	if err != nil {
		return GetOrderPricingQueryResponse{}, err
	}

	volumeDiscount, err := h.pricingService.CalculateVolumeDiscount(aggregate)
	if err != nil {
		return GetOrderPricingQueryResponse{}, err
	}

	bulkDiscount, err := h.pricingService.CalculateBulkItemDiscount(aggregate)
	if err != nil {
		return GetOrderPricingQueryResponse{}, err
	}

	totalDiscount, err := volumeDiscount.Add(bulkDiscount)
	if err != nil {
		return GetOrderPricingQueryResponse{}, err
	}

	finalPrice, err := baseTotal.Subtract(totalDiscount)
	if err != nil {
		return GetOrderPricingQueryResponse{}, err
	}

	return GetOrderPricingQueryResponse{
		OrderID: aggregate.ID().Value(),
		Pricing: PricingResponse{
			BaseTotal: NewMoneyResponse(baseTotal),
			Discounts: DiscountsResponse{
				VolumeDiscount:   NewMoneyResponse(volumeDiscount),
				BulkItemDiscount: NewMoneyResponse(bulkDiscount),
				TotalDiscount:    NewMoneyResponse(totalDiscount),
			},
			FinalPrice: NewMoneyResponse(finalPrice),
		},
	}, nil
}
