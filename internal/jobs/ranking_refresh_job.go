package jobs

import (
	"context"
	"log/slog"

	"courierrank/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// RankingRefreshJob periodically triggers a full recomputation of the dynamic
// ranking cache so that read requests keep hitting fresh precomputed scores
// instead of dropping to the heuristic fallback.
type RankingRefreshJob struct {
	handler  commands.RefreshRankingCacheCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewRankingRefreshJob creates a job that refreshes the whole cache on the
// given cron schedule (standard five-field expression).
func NewRankingRefreshJob(
	handler commands.RefreshRankingCacheCommandHandler,
	schedule string,
	logger *slog.Logger,
) *RankingRefreshJob {
	return &RankingRefreshJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "ranking_refresh_job"),
	}
}

// Start schedules the refresh. Returns an error when the cron expression does
// not parse.
func (j *RankingRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		command, cmdErr := commands.NewRefreshRankingCacheCommand(nil, nil)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Ranking refresh command construction failed", "error", cmdErr)
			return
		}

		response, handleErr := j.handler.Handle(ctx, command)
		if handleErr != nil {
			// The refresh procedure may not be installed on every
			// environment; the next tick retries.
			j.logger.ErrorContext(ctx, "Scheduled ranking refresh failed", "error", handleErr)
			return
		}

		j.logger.InfoContext(ctx, "Scheduled ranking refresh completed",
			"updated", response.UpdatedCount,
			"couriers", response.Stats.CourierCount,
			"areas", response.Stats.AreaCount,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Ranking refresh job started", "schedule", j.schedule)
	return nil
}

// Stop stops the refresh job.
func (j *RankingRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Ranking refresh job stopped")
}
