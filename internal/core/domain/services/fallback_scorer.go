package services

import (
	"sort"

	"courierrank/internal/core/domain/model/ranking"
)

// Qualification thresholds for the fallback heuristic. A courier with too few
// reviews, or none recent enough, is excluded entirely rather than scored low.
const (
	MinTotalReviews  = 5
	MinRecentReviews = 1
)

// Fixed weights of the fallback score. Trust dominates, punctuality second,
// and a flat recency bonus rewards couriers with any recent review.
const (
	trustWeight   = 0.5
	onTimeWeight  = 0.3
	recencyWeight = 0.2

	maxRating = 5.0
)

// FallbackScorer ranks couriers from raw order/review aggregates when no
// cached ranking exists for an area. It is deterministic: equal inputs always
// produce the same order.
type FallbackScorer struct{}

// NewFallbackScorer creates a FallbackScorer.
func NewFallbackScorer() FallbackScorer {
	return FallbackScorer{}
}

// Score computes the fallback score for a single courier's aggregates.
//
//	score = 0.5*(trust/5) + 0.3*(onTime/100) + 0.2*(hasRecentReview)
func (FallbackScorer) Score(stat ranking.FallbackCourierStat) float64 {
	recency := 0.0
	if stat.RecentReviews > 0 {
		recency = 1.0
	}

	return trustWeight*(stat.TrustScore/maxRating) +
		onTimeWeight*(stat.OnTimePercentage/100.0) +
		recencyWeight*recency
}

// Qualifies reports whether a courier has enough review history to be ranked
// by the heuristic at all.
func (FallbackScorer) Qualifies(stat ranking.FallbackCourierStat) bool {
	return stat.TotalReviews >= MinTotalReviews && stat.RecentReviews >= MinRecentReviews
}

// Rank filters the aggregates down to qualifying couriers, orders them by
// descending score with deterministic tie-breaks (trust score, then total
// reviews, then courier ID), and assigns 1-based rank positions. Dynamic-only
// metrics stay nil and every entry is marked FallbackScoreUsed.
func (s FallbackScorer) Rank(stats []ranking.FallbackCourierStat, area string) []ranking.RankingCourier {
	type scored struct {
		stat  ranking.FallbackCourierStat
		score float64
	}

	qualified := make([]scored, 0, len(stats))
	for _, stat := range stats {
		if !s.Qualifies(stat) {
			continue
		}
		qualified = append(qualified, scored{stat: stat, score: s.Score(stat)})
	}

	sort.Slice(qualified, func(i, j int) bool {
		a, b := qualified[i], qualified[j]
		if a.score != b.score {
			return a.score > b.score
		}
		if a.stat.TrustScore != b.stat.TrustScore {
			return a.stat.TrustScore > b.stat.TrustScore
		}
		if a.stat.TotalReviews != b.stat.TotalReviews {
			return a.stat.TotalReviews > b.stat.TotalReviews
		}
		return a.stat.CourierID.String() < b.stat.CourierID.String()
	})

	couriers := make([]ranking.RankingCourier, 0, len(qualified))
	for i, q := range qualified {
		position := i + 1
		score := q.score
		onTime := q.stat.OnTimePercentage
		avgDays := q.stat.AvgDeliveryDays
		totalReviews := q.stat.TotalReviews
		recentReviews := q.stat.RecentReviews

		couriers = append(couriers, ranking.RankingCourier{
			CourierID:         q.stat.CourierID,
			Name:              q.stat.Name,
			PostalArea:        area,
			RankPosition:      &position,
			FinalScore:        &score,
			TrustScore:        q.stat.TrustScore,
			OnTimePercentage:  &onTime,
			AvgDeliveryDays:   &avgDays,
			TotalReviews:      &totalReviews,
			RecentReviews:     &recentReviews,
			FallbackScoreUsed: true,
		})
	}

	return couriers
}
