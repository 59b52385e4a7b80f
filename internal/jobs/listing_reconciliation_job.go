package jobs

import (
	"context"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ListingReconciliationJob repairs listing order counters on a schedule.
// The counters are bumped best effort after order creation, so they drift when
// an increment fails; this job restores them from the orders table.
type ListingReconciliationJob struct {
	handler commands.ReconcileListingCountersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewListingReconciliationJob creates a job that reconciles listing counters.
// Uses ReconcileListingCountersCommandHandler to recompute counters every minute.
func NewListingReconciliationJob(
	handler commands.ReconcileListingCountersCommandHandler,
	logger *slog.Logger,
) *ListingReconciliationJob {
	return &ListingReconciliationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "listing_reconciliation_job"),
	}
}

// Start begins the reconciliation job to run at the top of every minute.
func (j *ListingReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewReconcileListingCountersCommand()

		changed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Listing counter reconciliation failed", "error", err)
			return
		}

		if changed > 0 {
			j.logger.InfoContext(ctx, "Listing counters repaired", "listings_changed", changed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Listing reconciliation job started (running every minute)")
	return nil
}

// Stop stops the reconciliation job.
func (j *ListingReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Listing reconciliation job stopped")
}
