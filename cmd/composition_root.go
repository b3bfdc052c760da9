package cmd

import (
	"log/slog"

	"orders/internal/adapters/in/http"
	"orders/internal/adapters/out/events"
	"orders/internal/adapters/out/inventory"
	"orders/internal/adapters/out/payment"
	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/core/application/eventhandlers"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/services"
	"orders/internal/core/ports"
	"orders/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires the adapters, the domain services and the use case
// handlers together. Every handler factory hands out a ready to use instance
// sharing the same repository and dispatcher.
type CompositionRoot struct {
	gormDB *gorm.DB
	logger *slog.Logger

	orderRepository ports.OrderRepository
	eventDispatcher ports.EventDispatcher
	pricingService  services.OrderPricingService
	paymentService  *payment.StubPaymentService
}

// NewCompositionRoot creates the application object graph.
// Event handlers are subscribed here so every dispatch path sees the same set.
func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	dispatcher := events.NewInMemoryDispatcher(logger)
	dispatcher.Subscribe(eventhandlers.NewCustomerStatsHandler(logger))
	dispatcher.Subscribe(eventhandlers.NewInventoryReservationHandler(
		inventory.NewStubInventoryService(logger), logger))
	dispatcher.Subscribe(eventhandlers.NewStatusNotificationHandler(logger))

	return CompositionRoot{
		gormDB: gormDB,
		logger: logger,

		orderRepository: orderrepo.NewGormOrderRepository(gormDB),
		eventDispatcher: dispatcher,
		pricingService:  services.NewOrderPricingService(),
		paymentService:  payment.NewStubPaymentService(logger),
	}
}

// NewCreateOrderCommandHandler creates the handler for order creation.
func (cr *CompositionRoot) NewCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(cr.orderRepository, cr.eventDispatcher)
}

// NewUpdateOrderItemsCommandHandler creates the handler for item replacement.
func (cr *CompositionRoot) NewUpdateOrderItemsCommandHandler() commands.UpdateOrderItemsCommandHandler {
	return commands.NewUpdateOrderItemsCommandHandler(cr.orderRepository)
}

// NewUpdateOrderStatusCommandHandler creates the handler for status transitions.
func (cr *CompositionRoot) NewUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(cr.orderRepository, cr.eventDispatcher)
}

// NewDeleteOrderCommandHandler creates the handler for order deletion.
func (cr *CompositionRoot) NewDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(cr.orderRepository)
}

// NewGetOrderQueryHandler creates the handler for single order lookups.
func (cr *CompositionRoot) NewGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(cr.orderRepository)
}

// NewListOrdersQueryHandler creates the handler for order listings.
func (cr *CompositionRoot) NewListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(cr.orderRepository)
}

// NewFindOrdersByPriceRangeQueryHandler creates the handler for price range searches.
func (cr *CompositionRoot) NewFindOrdersByPriceRangeQueryHandler() queries.FindOrdersByPriceRangeQueryHandler {
	return queries.NewFindOrdersByPriceRangeQueryHandler(cr.orderRepository)
}

// NewGetOrderPricingQueryHandler creates the handler for pricing breakdowns.
func (cr *CompositionRoot) NewGetOrderPricingQueryHandler() queries.GetOrderPricingQueryHandler {
	return queries.NewGetOrderPricingQueryHandler(cr.orderRepository, cr.pricingService)
}

// NewHTTPServer creates the inbound HTTP adapter with all handlers wired.
func (cr *CompositionRoot) NewHTTPServer() *http.Server {
	return http.NewServer(
		cr.NewCreateOrderCommandHandler(),
		cr.NewUpdateOrderItemsCommandHandler(),
		cr.NewUpdateOrderStatusCommandHandler(),
		cr.NewDeleteOrderCommandHandler(),
		cr.NewGetOrderQueryHandler(),
		cr.NewListOrdersQueryHandler(),
		cr.NewFindOrdersByPriceRangeQueryHandler(),
		cr.NewGetOrderPricingQueryHandler(),
		cr.paymentService,
	)
}

// NewJobManager creates the manager for the scheduled background jobs.
func (cr *CompositionRoot) NewJobManager() *jobs.JobManager {
	return jobs.NewJobManager(cr.orderRepository, cr.logger)
}
