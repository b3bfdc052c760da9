// Package http provides the inbound HTTP adapter. It translates requests into
// commands and queries, and maps domain errors onto status codes.
package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"orders/internal/adapters/out/payment"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// PaymentProcessor charges the customer for an order.
type PaymentProcessor interface {
	Process(ctx context.Context, orderID kernel.OrderID, amount kernel.Money, method string) (payment.Receipt, error)
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler      commands.CreateOrderCommandHandler
	updateOrderItemsHandler commands.UpdateOrderItemsCommandHandler
	updateOrderStatusHandle commands.UpdateOrderStatusCommandHandler
	deleteOrderHandler      commands.DeleteOrderCommandHandler

	// Query handlers
	getOrderHandler        queries.GetOrderQueryHandler
	listOrdersHandler      queries.ListOrdersQueryHandler
	findByPriceHandler     queries.FindOrdersByPriceRangeQueryHandler
	getOrderPricingHandler queries.GetOrderPricingQueryHandler

	paymentProcessor PaymentProcessor
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderItemsHandler commands.UpdateOrderItemsCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	findByPriceHandler queries.FindOrdersByPriceRangeQueryHandler,
	getOrderPricingHandler queries.GetOrderPricingQueryHandler,
	paymentProcessor PaymentProcessor,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		updateOrderItemsHandler: updateOrderItemsHandler,
		updateOrderStatusHandle: updateOrderStatusHandler,
		deleteOrderHandler:      deleteOrderHandler,
		getOrderHandler:         getOrderHandler,
		listOrdersHandler:       listOrdersHandler,
		findByPriceHandler:      findByPriceHandler,
		getOrderPricingHandler:  getOrderPricingHandler,
		paymentProcessor:        paymentProcessor,
	}
}

// RegisterRoutes mounts every endpoint on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id", s.UpdateOrderItems)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.POST("/orders/:id/status", s.UpdateOrderStatus)
	api.GET("/orders/:id/pricing", s.GetOrderPricing)
	api.POST("/orders/:id/payment", s.ProcessPayment)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, Envelope{Success: true, Message: "ok"})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	customerName, err := kernel.NewCustomerName(request.CustomerName)
	if err != nil {
		return fail(ctx, err)
	}

	items, err := toDomainItems(request.Items)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(customerName, items)
	if err != nil {
		return fail(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	response, err := queries.NewOrderResponse(created)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Envelope{Success: true, Data: response})
}

// ListOrders handles GET /api/v1/orders.
// Supports pagination (?page=&page_size=), an optional status filter
// (?status=) and an optional total price range (?min_price=&max_price=&currency=).
func (s *Server) ListOrders(ctx echo.Context) error {
	requestCtx := ctx.Request().Context()

	if ctx.QueryParam("min_price") != "" || ctx.QueryParam("max_price") != "" {
		return s.listOrdersByPriceRange(ctx)
	}

	var query queries.ListOrdersQuery
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.NewStatusFromString(raw)
		if err != nil {
			return fail(ctx, err)
		}
		query, err = queries.NewListOrdersQueryWithStatus(status)
		if err != nil {
			return fail(ctx, err)
		}
	} else {
		pageSize, err := intFromParam(ctx.QueryParam("page_size"))
		if err != nil {
			return badRequest(ctx, "invalid page_size")
		}
		pageNumber, err := intFromParam(ctx.QueryParam("page"))
		if err != nil {
			return badRequest(ctx, "invalid page")
		}

		query, err = queries.NewListOrdersQuery(pageSize, pageNumber)
		if err != nil {
			return fail(ctx, err)
		}
	}

	responses, err := s.listOrdersHandler.Handle(requestCtx, query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Envelope{Success: true, Data: responses})
}

func (s *Server) listOrdersByPriceRange(ctx echo.Context) error {
	currency := ctx.QueryParam("currency")
	if currency == "" {
		currency = "USD"
	}

	low, err := moneyFromParam(ctx.QueryParam("min_price"), currency)
	if err != nil {
		return fail(ctx, err)
	}

	high, err := moneyFromParam(ctx.QueryParam("max_price"), currency)
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewFindOrdersByPriceRangeQuery(low, high)
	if err != nil {
		return fail(ctx, err)
	}

	responses, err := s.findByPriceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Envelope{Success: true, Data: responses})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return fail(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Envelope{Success: true, Data: response})
}

// UpdateOrderItems handles PUT /api/v1/orders/:id.
func (s *Server) UpdateOrderItems(ctx echo.Context) error {
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	var request UpdateOrderItemsRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	items, err := toDomainItems(request.Items)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderItemsCommand(orderID, items)
	if err != nil {
		return fail(ctx, err)
	}

	updated, err := s.updateOrderItemsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	response, err := queries.NewOrderResponse(updated)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Envelope{Success: true, Data: response})
}

// UpdateOrderStatus handles POST /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	var request UpdateOrderStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	status, err := order.NewStatusFromString(request.Status)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return fail(ctx, err)
	}

	updated, err := s.updateOrderStatusHandle.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	response, err := queries.NewOrderResponse(updated)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Envelope{Success: true, Data: response})
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Envelope{Success: true, Message: "order deleted"})
}

// GetOrderPricing handles GET /api/v1/orders/:id/pricing.
func (s *Server) GetOrderPricing(ctx echo.Context) error {
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetOrderPricingQuery(orderID)
	if err != nil {
		return fail(ctx, err)
	}

	response, err := s.getOrderPricingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Envelope{Success: true, Data: response})
}

// ProcessPayment handles POST /api/v1/orders/:id/payment.
// Charges the discounted final price of the order.
func (s *Server) ProcessPayment(ctx echo.Context) error {
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	var request ProcessPaymentRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	pricingQuery, err := queries.NewGetOrderPricingQuery(orderID)
	if err != nil {
		return fail(ctx, err)
	}

	pricing, err := s.getOrderPricingHandler.Handle(ctx.Request().Context(), pricingQuery)
	if err != nil {
		return fail(ctx, err)
	}

	amount, err := moneyFromParam(pricing.Pricing.FinalPrice.Amount, pricing.Pricing.FinalPrice.Currency)
	if err != nil {
		return fail(ctx, err)
	}

	receipt, err := s.paymentProcessor.Process(ctx.Request().Context(), orderID, amount, request.Method)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Envelope{Success: true, Data: map[string]any{
		"order_id":       orderID.Value(),
		"transaction_id": receipt.TransactionID,
		"method":         receipt.Method,
		"amount":         receipt.Amount.Format(),
	}})
}

func orderIDFromPath(ctx echo.Context) (kernel.OrderID, error) {
	raw, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return kernel.OrderID{}, errs.NewValueIsInvalidErrorWithCause("order id", err)
	}
	return kernel.NewOrderID(raw)
}

// intFromParam parses an optional numeric query parameter, zero when absent.
func intFromParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func moneyFromParam(raw string, currency string) (kernel.Money, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause("price", err)
	}
	return kernel.NewMoney(amount, currency)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Envelope{Success: false, Message: message})
}

// fail maps domain errors onto HTTP status codes: missing aggregates become
// 404, forbidden status transitions 409, validation failures 400 and
// everything else 500.
func fail(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, order.ErrInvalidStatusTransition):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, order.ErrOrderHasNoItems),
		errors.Is(err, order.ErrCannotRemoveLastItem),
		errors.Is(err, kernel.ErrCurrencyMismatch),
		errors.Is(err, kernel.ErrAmountIsNegative),
		errors.Is(err, commands.ErrOrderItemsAreRequired),
		errors.Is(err, queries.ErrPriceRangeIsInverted):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, Envelope{Success: false, Message: err.Error()})
}
