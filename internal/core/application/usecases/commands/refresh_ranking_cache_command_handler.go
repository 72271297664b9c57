package commands

import (
	"context"
	"fmt"
	"log/slog"

	"courierrank/internal/core/ports"
)

// RefreshRankingCacheResponse reports the outcome of a cache refresh: how
// many rows the external procedure wrote and what the cache looks like in
// the refreshed scope afterwards.
type RefreshRankingCacheResponse struct {
	UpdatedCount int
	Stats        ports.RankingCacheStats
}

// RefreshRankingCacheCommandHandler triggers the external recomputation and
// reads back scope-restricted statistics. This is an administrative path:
// unlike the public lookup there is no fallback tier, so every failure is
// returned to the caller with diagnostic detail.
type RefreshRankingCacheCommandHandler struct {
	refresher ports.RankingCacheRefresher
	logger    *slog.Logger
}

// NewRefreshRankingCacheCommandHandler creates a handler for cache refresh
// operations.
func NewRefreshRankingCacheCommandHandler(
	refresher ports.RankingCacheRefresher,
	logger *slog.Logger,
) RefreshRankingCacheCommandHandler {
	return RefreshRankingCacheCommandHandler{
		refresher: refresher,
		logger:    logger.With("component", "ranking_cache_refresh"),
	}
}

// Handle executes the refresh and returns the updated-row count together
// with the post-refresh cache statistics for the same scope.
func (h RefreshRankingCacheCommandHandler) Handle(
	ctx context.Context,
	command RefreshRankingCacheCommand,
) (RefreshRankingCacheResponse, error) {
	if err := command.Validate(); err != nil {
		return RefreshRankingCacheResponse{}, err
	}

	var areaScope *string
	if command.PostalArea() != nil {
		area := command.PostalArea().Area()
		areaScope = &area
	}

	updated, err := h.refresher.Refresh(ctx, areaScope, command.CourierID())
	if err != nil {
		return RefreshRankingCacheResponse{}, fmt.Errorf("ranking cache refresh failed: %w", err)
	}

	stats, err := h.refresher.Stats(ctx, areaScope, command.CourierID())
	if err != nil {
		return RefreshRankingCacheResponse{}, fmt.Errorf("ranking cache stats read failed: %w", err)
	}

	h.logger.InfoContext(ctx, "Ranking cache refreshed",
		"updated", updated,
		"couriers", stats.CourierCount,
		"areas", stats.AreaCount,
	)

	return RefreshRankingCacheResponse{
		UpdatedCount: updated,
		Stats:        stats,
	}, nil
}
