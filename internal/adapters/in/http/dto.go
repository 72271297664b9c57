// Package http exposes the ranking engine over echo: the public ranking
// lookup, the token-protected cache refresh, and a health probe.
package http

import (
	"time"

	"courierrank/internal/core/application/usecases/commands"
	"courierrank/internal/core/application/usecases/queries"
	"courierrank/internal/core/domain/model/ranking"
	"courierrank/internal/core/ports"
)

// Error is the uniform error envelope for all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RefreshRequest is the optional scope of an administrative cache refresh.
// Both fields nil means a full refresh.
type RefreshRequest struct {
	PostalArea *string `json:"postal_area,omitempty"`
	CourierID  *string `json:"courier_id,omitempty"`
}

// Courier is one ranked courier entry. Dynamic-only metrics are omitted when
// the entry came from the fallback heuristic, and vice versa.
type Courier struct {
	CourierID    string   `json:"courier_id"`
	Name         string   `json:"name"`
	PostalArea   string   `json:"postal_area"`
	RankPosition *int     `json:"rank_position,omitempty"`
	FinalScore   *float64 `json:"final_score,omitempty"`

	TrustScore       float64  `json:"trust_score"`
	OnTimePercentage *float64 `json:"on_time_percentage,omitempty"`
	AvgDeliveryDays  *float64 `json:"avg_delivery_days,omitempty"`

	TotalReviews  *int `json:"total_reviews,omitempty"`
	RecentReviews *int `json:"recent_reviews,omitempty"`

	SelectionRate       *float64   `json:"selection_rate,omitempty"`
	TotalDisplays       *int       `json:"total_displays,omitempty"`
	TotalSelections     *int       `json:"total_selections,omitempty"`
	PositionPerformance *float64   `json:"position_performance,omitempty"`
	ActivityLevel       *float64   `json:"activity_level,omitempty"`
	RecentPerformance   *float64   `json:"recent_performance,omitempty"`
	EtaMinutes          *int       `json:"eta_minutes,omitempty"`
	LastCalculated      *time.Time `json:"last_calculated,omitempty"`

	FallbackScoreUsed bool `json:"fallback_score_used"`
}

// FeatureFlags reports the per-request feature flag resolution.
type FeatureFlags struct {
	GlobalEnabled  bool   `json:"global_enabled"`
	MerchantMode   string `json:"merchant_mode"`
	FlagSource     string `json:"flag_source"`
	DynamicEnabled bool   `json:"dynamic_enabled"`
}

// RankingResponse is the public ranking lookup envelope.
type RankingResponse struct {
	PostalCode     string       `json:"postal_code"`
	PostalArea     string       `json:"postal_area"`
	FeatureFlags   FeatureFlags `json:"feature_flags"`
	Couriers       []Courier    `json:"couriers"`
	TotalFound     int          `json:"total_found"`
	IsLocalData    bool         `json:"is_local_data"`
	FallbackReason *string      `json:"fallback_reason,omitempty"`
	Role           string       `json:"role,omitempty"`
	IncludeHistory bool         `json:"include_history"`
}

// CacheStats summarizes the ranking cache within the refreshed scope.
type CacheStats struct {
	CourierCount   int        `json:"courier_count"`
	AreaCount      int        `json:"area_count"`
	MinScore       *float64   `json:"min_score,omitempty"`
	AvgScore       *float64   `json:"avg_score,omitempty"`
	MaxScore       *float64   `json:"max_score,omitempty"`
	LastCalculated *time.Time `json:"last_calculated,omitempty"`
}

// RefreshResponse is the administrative refresh envelope.
type RefreshResponse struct {
	UpdatedCount int        `json:"updated_count"`
	Stats        CacheStats `json:"stats"`
}

func toRankingResponse(response queries.GetCourierRankingQueryResponse) RankingResponse {
	couriers := make([]Courier, len(response.Couriers))
	for i, courier := range response.Couriers {
		couriers[i] = toCourier(courier)
	}

	return RankingResponse{
		PostalCode:     response.PostalCode,
		PostalArea:     response.PostalArea,
		FeatureFlags:   toFeatureFlags(response.FeatureFlags),
		Couriers:       couriers,
		TotalFound:     response.TotalFound,
		IsLocalData:    response.IsLocalData,
		FallbackReason: response.FallbackReason,
		Role:           response.Role,
		IncludeHistory: response.IncludeHistory,
	}
}

func toCourier(courier ranking.RankingCourier) Courier {
	return Courier{
		CourierID:           courier.CourierID.String(),
		Name:                courier.Name,
		PostalArea:          courier.PostalArea,
		RankPosition:        courier.RankPosition,
		FinalScore:          courier.FinalScore,
		TrustScore:          courier.TrustScore,
		OnTimePercentage:    courier.OnTimePercentage,
		AvgDeliveryDays:     courier.AvgDeliveryDays,
		TotalReviews:        courier.TotalReviews,
		RecentReviews:       courier.RecentReviews,
		SelectionRate:       courier.SelectionRate,
		TotalDisplays:       courier.TotalDisplays,
		TotalSelections:     courier.TotalSelections,
		PositionPerformance: courier.PositionPerformance,
		ActivityLevel:       courier.ActivityLevel,
		RecentPerformance:   courier.RecentPerformance,
		EtaMinutes:          courier.EtaMinutes,
		LastCalculated:      courier.LastCalculated,
		FallbackScoreUsed:   courier.FallbackScoreUsed,
	}
}

func toFeatureFlags(flags ranking.FeatureFlagState) FeatureFlags {
	return FeatureFlags{
		GlobalEnabled:  flags.GlobalEnabled,
		MerchantMode:   string(flags.MerchantMode),
		FlagSource:     string(flags.FlagSource),
		DynamicEnabled: flags.DynamicEnabled,
	}
}

func toRefreshResponse(response commands.RefreshRankingCacheResponse) RefreshResponse {
	return RefreshResponse{
		UpdatedCount: response.UpdatedCount,
		Stats:        toCacheStats(response.Stats),
	}
}

func toCacheStats(stats ports.RankingCacheStats) CacheStats {
	return CacheStats{
		CourierCount:   stats.CourierCount,
		AreaCount:      stats.AreaCount,
		MinScore:       stats.MinScore,
		AvgScore:       stats.AvgScore,
		MaxScore:       stats.MaxScore,
		LastCalculated: stats.LastCalculated,
	}
}
