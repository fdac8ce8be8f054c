package jobs

import (
	"context"
	"errors"
	"log/slog"

	"resto/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AssignmentRequeueJob periodically re-requests driver assignment for
// delivery orders stuck without a driver. The post-commit assignment request
// is best effort, so this job is the safety net for the ones that got lost.
type AssignmentRequeueJob struct {
	handler commands.RequeueAssignmentsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAssignmentRequeueJob creates a new job for re-requesting assignments.
// Uses RequeueAssignmentsCommandHandler to sweep unassigned deliveries every
// 30 seconds.
func NewAssignmentRequeueJob(handler commands.RequeueAssignmentsCommandHandler, logger *slog.Logger) *AssignmentRequeueJob {
	return &AssignmentRequeueJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "assignment_requeue_job"),
	}
}

// Start begins the requeue job to run every 30 seconds.
func (j *AssignmentRequeueJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewRequeueAssignmentsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoUnassignedDeliveries) {
				j.logger.ErrorContext(ctx, "Assignment requeue job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Assignment requeue job started (running every 30 seconds)")
	return nil
}

// Stop stops the requeue job.
func (j *AssignmentRequeueJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Assignment requeue job stopped")
}
