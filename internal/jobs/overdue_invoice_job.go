package jobs

import (
	"context"
	"log/slog"

	"shop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OverdueInvoiceJob manages the scheduled overdue sweep. Issued invoices
// whose due date has passed become overdue with an audit entry.
type OverdueInvoiceJob struct {
	handler  commands.MarkOverdueInvoicesCommandHandler
	cronSpec string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOverdueInvoiceJob creates the overdue sweep job. The cron spec is a
// six-field expression with seconds.
func NewOverdueInvoiceJob(
	handler commands.MarkOverdueInvoicesCommandHandler,
	cronSpec string,
	logger *slog.Logger,
) *OverdueInvoiceJob {
	return &OverdueInvoiceJob{
		handler:  handler,
		cronSpec: cronSpec,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "overdue_invoice_job"),
	}
}

// Start schedules the overdue sweep.
func (j *OverdueInvoiceJob) Start() error {
	_, err := j.cron.AddFunc(j.cronSpec, func() {
		ctx := context.Background()
		cmd := commands.NewMarkOverdueInvoicesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Overdue invoice sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue invoice job started", "schedule", j.cronSpec)
	return nil
}

// Stop stops the overdue sweep job.
func (j *OverdueInvoiceJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue invoice job stopped")
}
