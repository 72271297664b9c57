package ports

import (
	"context"
	"time"

	"courierrank/internal/core/domain/model/kernel"
)

// RankingCacheStats are scope-restricted aggregates over the dynamic cache,
// reported back after a refresh.
type RankingCacheStats struct {
	CourierCount int
	AreaCount    int
	MinScore     *float64
	AvgScore     *float64
	MaxScore     *float64
	// LastCalculated is the newest calculation timestamp in scope, nil when
	// the scope holds no rows.
	LastCalculated *time.Time
}

// RankingCacheRefresher invokes the external batch recomputation and reads
// back its aggregate statistics. The recomputation algorithm itself lives in
// the database and is opaque to the engine.
type RankingCacheRefresher interface {
	// Refresh recomputes cached rankings, optionally scoped to one postal
	// area and/or one courier, and returns the number of rows written.
	// Repeated invocation with the same scope simply overwrites.
	Refresh(ctx context.Context, postalArea *string, courierID *kernel.UUID) (int, error)

	// Stats returns aggregate statistics over the same scope.
	Stats(ctx context.Context, postalArea *string, courierID *kernel.UUID) (RankingCacheStats, error)
}
