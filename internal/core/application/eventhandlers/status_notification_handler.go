package eventhandlers

import (
	"context"
	"log/slog"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/shared"
)

// StatusNotificationHandler notifies customers about order status changes.
// Sending is mocked with structured log lines; a production deployment would
// swap in a mail or push gateway behind the same handler.
type StatusNotificationHandler struct {
	logger *slog.Logger
}

// NewStatusNotificationHandler creates a handler logging notification intents.
func NewStatusNotificationHandler(logger *slog.Logger) *StatusNotificationHandler {
	return &StatusNotificationHandler{
		logger: logger.With("component", "status_notification_handler"),
	}
}

// CanHandle reports interest in OrderStatusChanged events only.
func (h *StatusNotificationHandler) CanHandle(event shared.DomainEvent) bool {
	return event.EventName() == order.OrderStatusChangedEventName
}

// Handle emits the notification matching the new status.
func (h *StatusNotificationHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	changed, ok := event.(*order.OrderStatusChanged)
	if !ok {
		return nil
	}

	h.logger.InfoContext(ctx, "sending status notification",
		"order_id", changed.AggregateID(),
		"previous_status", changed.PreviousStatus().String(),
		"new_status", changed.NewStatus().String(),
		"message", notificationMessage(changed.NewStatus()),
	)
	return nil
}

func notificationMessage(status order.Status) string {
	switch status {
	case order.StatusConfirmed:
		return "your order has been confirmed"
	case order.StatusShipped:
		return "your order is on its way"
	case order.StatusDelivered:
		return "your order has been delivered"
	case order.StatusCancelled:
		return "your order has been cancelled"
	default:
		return "your order status has changed"
	}
}
