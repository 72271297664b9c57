package ranking

import (
	"time"

	"courierrank/internal/core/domain/model/kernel"
)

// RankingCourier is the unified courier entry returned to callers regardless
// of which source produced it. Fields that only the dynamic cache can supply
// stay nil when the entry came from the fallback heuristic.
type RankingCourier struct {
	CourierID  kernel.UUID
	Name       string
	PostalArea string

	// RankPosition is the stored cache position on the dynamic path and the
	// 1-based index in heuristic order on the fallback path.
	RankPosition *int
	FinalScore   *float64

	TrustScore       float64
	OnTimePercentage *float64
	AvgDeliveryDays  *float64

	// Review counters are only known on the fallback path.
	TotalReviews  *int
	RecentReviews *int

	// Dynamic-only metrics; nil when FallbackScoreUsed is true.
	SelectionRate       *float64
	TotalDisplays       *int
	TotalSelections     *int
	PositionPerformance *float64
	ActivityLevel       *float64
	RecentPerformance   *float64
	EtaMinutes          *int
	LastCalculated      *time.Time

	FallbackScoreUsed bool
}

// FallbackCourierStat holds the raw 6-month aggregates for one active
// courier, as read from orders and reviews. The fallback scorer turns a set
// of these into ranked RankingCourier entries.
type FallbackCourierStat struct {
	CourierID kernel.UUID
	Name      string

	// TrustScore is the mean review rating over the window, 0 when the
	// courier has no reviews.
	TrustScore       float64
	TotalReviews     int
	RecentReviews    int
	AvgDeliveryDays  float64
	OnTimePercentage float64
}
