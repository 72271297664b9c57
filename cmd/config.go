package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// DynamicRankingEnabled is the platform-wide dynamic ranking toggle.
	DynamicRankingEnabled bool

	// AdminAPIToken guards the cache refresh endpoint. Empty disables it.
	AdminAPIToken string

	// RankingRefreshCron is the schedule of the background cache refresh,
	// as a standard five-field cron expression.
	RankingRefreshCron string
}
