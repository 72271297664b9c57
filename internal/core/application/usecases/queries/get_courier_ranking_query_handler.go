package queries

import (
	"context"
	"log/slog"

	"courierrank/internal/core/domain/model/kernel"
	"courierrank/internal/core/domain/model/ranking"
	"courierrank/internal/core/domain/services"
	"courierrank/internal/core/ports"
)

// GetCourierRankingQueryHandler executes the ranking cascade: dynamic cache
// first, then the area-scoped heuristic, then the nationwide heuristic. Each
// tier runs only when the previous one produced nothing, and only the last
// tier's failure reaches the caller; degraded optional dependencies (the
// settings store, the dynamic cache) are logged and skipped.
type GetCourierRankingQueryHandler struct {
	scores   ports.RankingScoreReader
	settings ports.MerchantSettingsReader
	stats    ports.FallbackStatsReader
	scorer   services.FallbackScorer

	// globalFlag is the platform-wide dynamic ranking toggle, resolved once
	// at startup from the environment.
	globalFlag bool

	logger *slog.Logger
}

// NewGetCourierRankingQueryHandler creates a handler for ranking lookups.
func NewGetCourierRankingQueryHandler(
	scores ports.RankingScoreReader,
	settings ports.MerchantSettingsReader,
	stats ports.FallbackStatsReader,
	globalFlag bool,
	logger *slog.Logger,
) GetCourierRankingQueryHandler {
	return GetCourierRankingQueryHandler{
		scores:     scores,
		settings:   settings,
		stats:      stats,
		scorer:     services.NewFallbackScorer(),
		globalFlag: globalFlag,
		logger:     logger.With("component", "courier_ranking_query"),
	}
}

// rankingTier is one level of the cascade. isLocal marks the dynamic cache
// tier; reason is attached to the response when a non-dynamic tier (or the
// empty terminal result) is what the caller gets.
type rankingTier struct {
	name    string
	isLocal bool
	run     func(ctx context.Context) ([]ranking.RankingCourier, error)
}

// Handle resolves a ranking request through the cascade and assembles the
// response envelope. It returns an error only for an unconstructed query or
// when a fallback tier itself fails; missing cached data never surfaces as
// an error.
func (h GetCourierRankingQueryHandler) Handle(
	ctx context.Context,
	query GetCourierRankingQuery,
) (GetCourierRankingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCourierRankingQueryResponse{}, err
	}

	area := kernel.NewPostalArea(query.PostalCode())
	flags := h.resolveFlags(ctx, query.MerchantID())

	fallbackReason := FallbackReasonNoDynamicData
	if !flags.DynamicEnabled {
		fallbackReason = FallbackReasonFlagDisabled
	}

	tiers := make([]rankingTier, 0, 3)

	if flags.DynamicEnabled {
		tiers = append(tiers, rankingTier{
			name:    "dynamic",
			isLocal: true,
			run: func(ctx context.Context) ([]ranking.RankingCourier, error) {
				return h.tryDynamic(ctx, area, query.Limit(), query.MerchantID())
			},
		})
	}

	tiers = append(tiers, rankingTier{
		name: "area_fallback",
		run: func(ctx context.Context) ([]ranking.RankingCourier, error) {
			return h.runFallback(ctx, area, query.Limit())
		},
	})

	if !area.IsNationwide() {
		tiers = append(tiers, rankingTier{
			name: "nationwide_fallback",
			run: func(ctx context.Context) ([]ranking.RankingCourier, error) {
				return h.runFallback(ctx, kernel.NationwidePostalArea(), query.Limit())
			},
		})
	}

	response := GetCourierRankingQueryResponse{
		PostalCode:     area.Cleaned(),
		PostalArea:     area.Area(),
		FeatureFlags:   flags,
		Couriers:       []ranking.RankingCourier{},
		Role:           query.Role(),
		IncludeHistory: query.IncludeHistory(),
	}

	for _, tier := range tiers {
		couriers, err := tier.run(ctx)
		if err != nil {
			return GetCourierRankingQueryResponse{}, err
		}
		if len(couriers) == 0 {
			continue
		}

		response.Couriers = couriers
		response.TotalFound = len(couriers)
		response.IsLocalData = tier.isLocal
		if !tier.isLocal {
			reason := fallbackReason
			response.FallbackReason = &reason
		}
		return response, nil
	}

	// Every tier came back empty; the envelope still reports why the
	// dynamic path did not serve it.
	reason := fallbackReason
	response.FallbackReason = &reason
	return response, nil
}

// resolveFlags merges the platform flag with the merchant's override record.
// Any settings lookup failure degrades to "no override": the read path must
// not fail because an optional table is missing or unreachable.
func (h GetCourierRankingQueryHandler) resolveFlags(
	ctx context.Context,
	merchantID *kernel.UUID,
) ranking.FeatureFlagState {
	if merchantID == nil {
		return services.ResolveFeatureFlags(h.globalFlag, nil)
	}

	settings, err := h.settings.Get(ctx, *merchantID)
	if err != nil {
		h.logger.WarnContext(ctx, "Merchant settings lookup failed, using platform default",
			"merchant_id", merchantID.String(), "error", err)
		return services.ResolveFeatureFlags(h.globalFlag, nil)
	}

	return services.ResolveFeatureFlags(h.globalFlag, settings)
}

// tryDynamic reads the precomputed cache. The cache is an optional
// dependency: a read failure is logged and reported as an empty tier so the
// cascade can continue.
func (h GetCourierRankingQueryHandler) tryDynamic(
	ctx context.Context,
	area kernel.PostalArea,
	limit int,
	merchantID *kernel.UUID,
) ([]ranking.RankingCourier, error) {
	couriers, err := h.scores.GetForArea(ctx, area, limit, merchantID)
	if err != nil {
		h.logger.WarnContext(ctx, "Dynamic ranking cache unavailable, falling back to heuristic",
			"postal_area", area.Area(), "error", err)
		return nil, nil
	}
	return couriers, nil
}

// runFallback computes the live heuristic ranking for an area. Errors
// propagate: past this point there is no further tier to absorb them.
func (h GetCourierRankingQueryHandler) runFallback(
	ctx context.Context,
	area kernel.PostalArea,
	limit int,
) ([]ranking.RankingCourier, error) {
	stats, err := h.stats.GetCourierStats(ctx, area)
	if err != nil {
		return nil, err
	}

	ranked := h.scorer.Rank(stats, area.Area())
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}
