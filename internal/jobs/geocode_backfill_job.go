package jobs

import (
	"context"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// GeocodeBackfillJob periodically resolves coordinates for deliveries whose
// addresses could not be geocoded when they were accepted.
type GeocodeBackfillJob struct {
	handler   commands.BackfillDeliveryCoordinatesCommandHandler
	cron      *cron.Cron
	spec      string
	batchSize int
	logger    *slog.Logger
}

// NewGeocodeBackfillJob creates the backfill job. spec is a cron expression
// with seconds, batchSize caps how many deliveries one run geocodes.
func NewGeocodeBackfillJob(
	handler commands.BackfillDeliveryCoordinatesCommandHandler,
	spec string,
	batchSize int,
	logger *slog.Logger,
) *GeocodeBackfillJob {
	return &GeocodeBackfillJob{
		handler:   handler,
		cron:      cron.New(cron.WithSeconds()),
		spec:      spec,
		batchSize: batchSize,
		logger:    logger.With("component", "geocode_backfill_job"),
	}
}

// Start schedules the backfill to run on the configured cron spec.
func (j *GeocodeBackfillJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewBackfillDeliveryCoordinatesCommand(j.batchSize)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Geocode backfill job misconfigured", "error", cmdErr)
			return
		}

		updated, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Geocode backfill job failed", "error", handleErr)
			return
		}

		if updated > 0 {
			j.logger.InfoContext(ctx, "Geocode backfill resolved coordinates", "deliveries", updated)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Geocode backfill job started", "schedule", j.spec)
	return nil
}

// Stop stops the backfill job.
func (j *GeocodeBackfillJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Geocode backfill job stopped")
}
