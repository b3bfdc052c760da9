// Package jobs contains the scheduled background jobs of the application.
package jobs

import (
	"context"
	"log/slog"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// StatusReportJob periodically logs how many orders sit in each status.
// Gives operators a heartbeat of the order pipeline without a metrics stack.
type StatusReportJob struct {
	orderRepository ports.OrderRepository
	cron            *cron.Cron
	logger          *slog.Logger
}

// NewStatusReportJob creates a job reporting order counts per status every minute.
func NewStatusReportJob(orderRepository ports.OrderRepository, logger *slog.Logger) *StatusReportJob {
	return &StatusReportJob{
		orderRepository: orderRepository,
		cron:            cron.New(),
		logger:          logger.With("component", "status_report_job"),
	}
}

// Start begins the status report job on its one minute schedule.
func (j *StatusReportJob) Start() error {
	_, err := j.cron.AddFunc("@every 1m", j.report)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Status report job started (running every minute)")
	return nil
}

// Stop stops the status report job.
func (j *StatusReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Status report job stopped")
}

func (j *StatusReportJob) report() {
	ctx := context.Background()

	statuses := []order.Status{
		order.StatusPending,
		order.StatusConfirmed,
		order.StatusShipped,
		order.StatusDelivered,
		order.StatusCancelled,
	}

	counts := make([]any, 0, len(statuses)*2)
	for _, status := range statuses {
		orders, err := j.orderRepository.GetAllInStatus(ctx, status)
		if err != nil {
			j.logger.ErrorContext(ctx, "Status report job failed", "status", status.String(), "error", err)
			return
		}
		counts = append(counts, status.String(), len(orders))
	}

	j.logger.InfoContext(ctx, "order status report", counts...)
}
