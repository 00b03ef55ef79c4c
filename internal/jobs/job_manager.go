package jobs

import (
	"fmt"
	"log/slog"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/ports"
)

// Schedules carries the cron expressions for all background jobs,
// six-field with seconds.
type Schedules struct {
	OverdueInvoices string
	TrackingRefresh string
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	overdueInvoiceJob  *OverdueInvoiceJob
	trackingRefreshJob *TrackingRefreshJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	markOverdueHandler commands.MarkOverdueInvoicesCommandHandler,
	refreshHandler commands.RefreshShipmentCommandHandler,
	uowFactory ports.UnitOfWorkFactory,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		overdueInvoiceJob:  NewOverdueInvoiceJob(markOverdueHandler, schedules.OverdueInvoices, logger),
		trackingRefreshJob: NewTrackingRefreshJob(refreshHandler, uowFactory, schedules.TrackingRefresh, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.overdueInvoiceJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue invoice job: %w", err)
	}

	if err := jm.trackingRefreshJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.overdueInvoiceJob.Stop()
		return fmt.Errorf("failed to start tracking refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.trackingRefreshJob.Stop()
	jm.overdueInvoiceJob.Stop()
}
