package jobs

import (
	"context"
	"log/slog"
	"time"

	"shipping/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OverdueShipmentJob periodically scans for active orders whose status has
// been stuck longer than the configured threshold and logs each one so
// operations can chase the carrier.
type OverdueShipmentJob struct {
	handler   queries.GetOverdueShipmentsQueryHandler
	schedule  string
	threshold time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOverdueShipmentJob creates a job that runs the overdue scan on the given
// cron schedule. Orders untouched for longer than threshold count as overdue.
func NewOverdueShipmentJob(
	handler queries.GetOverdueShipmentsQueryHandler,
	schedule string,
	threshold time.Duration,
	logger *slog.Logger,
) *OverdueShipmentJob {
	return &OverdueShipmentJob{
		handler:   handler,
		schedule:  schedule,
		threshold: threshold,
		cron:      cron.New(),
		logger:    logger.With("component", "overdue_shipment_job"),
	}
}

// Start begins the periodic overdue scan.
func (j *OverdueShipmentJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.scan)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue shipment job started",
		"schedule", j.schedule, "threshold", j.threshold.String())
	return nil
}

// Stop stops the overdue shipment job.
func (j *OverdueShipmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue shipment job stopped")
}

func (j *OverdueShipmentJob) scan() {
	ctx := context.Background()

	query, err := queries.NewGetOverdueShipmentsQuery(j.threshold)
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue shipment scan misconfigured", "error", err)
		return
	}

	overdue, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue shipment scan failed", "error", err)
		return
	}

	for _, shipment := range overdue {
		j.logger.WarnContext(ctx, "Shipment is overdue",
			"orderId", shipment.OrderID.String(),
			"status", shipment.Status,
			"lastUpdatedAt", shipment.UpdatedAt)
	}

	j.logger.InfoContext(ctx, "Overdue shipment scan completed", "overdueCount", len(overdue))
}
