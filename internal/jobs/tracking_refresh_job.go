package jobs

import (
	"context"
	"log/slog"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// TrackingRefreshJob polls the courier for every shipment that has not
// reached a terminal state. Webhooks are the primary status source; this
// job covers deliveries whose callback was lost.
type TrackingRefreshJob struct {
	refreshHandler commands.RefreshShipmentCommandHandler
	uowFactory     ports.UnitOfWorkFactory
	cronSpec       string
	cron           *cron.Cron
	logger         *slog.Logger
}

// NewTrackingRefreshJob creates the tracking refresh job. The unit of
// work factory supplies the shipment listing; each refresh runs in its
// own transaction through the command handler.
func NewTrackingRefreshJob(
	refreshHandler commands.RefreshShipmentCommandHandler,
	uowFactory ports.UnitOfWorkFactory,
	cronSpec string,
	logger *slog.Logger,
) *TrackingRefreshJob {
	return &TrackingRefreshJob{
		refreshHandler: refreshHandler,
		uowFactory:     uowFactory,
		cronSpec:       cronSpec,
		cron:           cron.New(cron.WithSeconds()),
		logger:         logger.With("component", "tracking_refresh_job"),
	}
}

// Start schedules the periodic refresh.
func (j *TrackingRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.cronSpec, func() {
		j.refreshAll(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Tracking refresh job started", "schedule", j.cronSpec)
	return nil
}

// Stop stops the tracking refresh job.
func (j *TrackingRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Tracking refresh job stopped")
}

// refreshAll lists undelivered shipments outside a transaction and
// refreshes each one. One failing shipment does not block the rest.
func (j *TrackingRefreshJob) refreshAll(ctx context.Context) {
	shipments, err := j.uowFactory.Create().ShipmentRepository().GetAllUndelivered(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to list undelivered shipments", "error", err)
		return
	}

	for _, s := range shipments {
		cmd, err := commands.NewRefreshShipmentCommand(s.TrackingNumber())
		if err != nil {
			j.logger.ErrorContext(ctx, "Failed to build refresh command",
				"trackingNumber", s.TrackingNumber(), "error", err)
			continue
		}

		if err := j.refreshHandler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Shipment refresh failed",
				"trackingNumber", s.TrackingNumber(), "error", err)
		}
	}
}
