package cmd

import (
	"log/slog"

	httpin "courierrank/internal/adapters/in/http"
	"courierrank/internal/adapters/out/postgres/fallbackrepo"
	"courierrank/internal/adapters/out/postgres/rankingrepo"
	"courierrank/internal/adapters/out/postgres/settingsrepo"
	"courierrank/internal/core/application/usecases/commands"
	"courierrank/internal/core/application/usecases/queries"
	"courierrank/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires repositories, use case handlers, the HTTP server and
// background jobs from one place.
type CompositionRoot struct {
	config Config
	gormDB *gorm.DB
	logger *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config: config,
		gormDB: gormDB,
		logger: logger,
	}
}

func (c *CompositionRoot) CreateGetCourierRankingQueryHandler() queries.GetCourierRankingQueryHandler {
	return queries.NewGetCourierRankingQueryHandler(
		rankingrepo.NewGormRankingScoreRepository(c.gormDB),
		settingsrepo.NewGormMerchantSettingsRepository(c.gormDB),
		fallbackrepo.NewGormFallbackStatsRepository(c.gormDB),
		c.config.DynamicRankingEnabled,
		c.logger,
	)
}

func (c *CompositionRoot) CreateRefreshRankingCacheCommandHandler() commands.RefreshRankingCacheCommandHandler {
	return commands.NewRefreshRankingCacheCommandHandler(
		rankingrepo.NewGormRankingCacheRefresher(c.gormDB),
		c.logger,
	)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateGetCourierRankingQueryHandler(),
		c.CreateRefreshRankingCacheCommandHandler(),
		c.config.AdminAPIToken,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateRefreshRankingCacheCommandHandler(),
		c.config.RankingRefreshCron,
		c.logger,
	)
}
