// Package jobs provides scheduled background tasks for the order-to-cash
// core.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic operations the document lifecycle needs.
//
// # Available Jobs
//
// 1. OverdueInvoiceJob - Sweeps issued invoices past their due date into
// the overdue status.
// 2. TrackingRefreshJob - Polls the courier for every non-terminal
// shipment and applies the mapped status, covering deliveries whose
// webhook never arrived.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(markOverdueHandler, refreshHandler, uowFactory, schedules, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are six-field cron expressions (with seconds) supplied by
// configuration, so operators can tune sweep frequency per environment.
//
// # Error Handling
//
// Both jobs log failures and wait for the next tick; a failed sweep is
// retried implicitly by the schedule. The tracking refresh continues with
// the remaining shipments when one refresh fails.
package jobs
