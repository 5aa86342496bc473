package jobs

import (
	"context"
	"log/slog"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// SmartAssignmentJob runs the batch dispatch sweep on a schedule, matching
// pending orders with eligible partners.
type SmartAssignmentJob struct {
	handler commands.RunSmartAssignmentCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewSmartAssignmentJob creates a new job for the scheduled dispatch sweep.
// Uses RunSmartAssignmentCommandHandler to process pending orders every
// thirty seconds.
func NewSmartAssignmentJob(
	handler commands.RunSmartAssignmentCommandHandler,
	logger *slog.Logger,
) *SmartAssignmentJob {
	return &SmartAssignmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "smart_assignment_job"),
	}
}

// Start begins the dispatch sweep job to run every thirty seconds.
// Scheduled runs do not record skipped orders in the attempt ledger; that
// would flood it with one failure per unmatched order per run.
func (j *SmartAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		now := kernel.TimeOfDayFromClock(time.Now().UTC())

		cmd, cmdErr := commands.NewRunSmartAssignmentCommand(now, false)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Smart assignment job failed to build command", "error", cmdErr)
			return
		}

		result, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Smart assignment job failed", "error", handleErr)
			return
		}

		// A sweep with nothing to do is the common case; keep it out of the logs.
		if result.Assigned > 0 || result.Skipped > 0 {
			j.logger.InfoContext(ctx, "Smart assignment sweep completed",
				"assigned", result.Assigned,
				"skipped", result.Skipped,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Smart assignment job started (running every 30 seconds)")
	return nil
}

// Stop stops the dispatch sweep job.
func (j *SmartAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Smart assignment job stopped")
}
