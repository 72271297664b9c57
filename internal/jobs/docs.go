// Package jobs provides scheduled background tasks for the ranking engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. RankingRefreshJob - Periodically triggers a full recomputation of the
// dynamic ranking cache via the refresh stored procedure.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(refreshHandler, "0 * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed refresh run is logged and retried on the next tick; the engine
// keeps serving reads through its fallback tiers in the meantime.
package jobs
