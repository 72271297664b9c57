package services_test

import (
	"testing"

	"courierrank/internal/core/domain/model/kernel"
	"courierrank/internal/core/domain/model/ranking"
	"courierrank/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stat(id kernel.UUID, trust float64, total, recent int, onTime float64) ranking.FallbackCourierStat {
	return ranking.FallbackCourierStat{
		CourierID:        id,
		Name:             "courier-" + id.String()[:8],
		TrustScore:       trust,
		TotalReviews:     total,
		RecentReviews:    recent,
		OnTimePercentage: onTime,
		AvgDeliveryDays:  2.5,
	}
}

func TestFallbackScorer_Score(t *testing.T) {
	scorer := services.NewFallbackScorer()

	t.Run("perfect_courier_scores_one", func(t *testing.T) {
		s := scorer.Score(stat(kernel.NewUUID(), 5.0, 10, 3, 100.0))
		assert.InDelta(t, 1.0, s, 1e-9)
	})

	t.Run("weights_applied_per_component", func(t *testing.T) {
		// trust 4.0/5 -> 0.4, on-time 50% -> 0.15, recency -> 0.2
		s := scorer.Score(stat(kernel.NewUUID(), 4.0, 10, 1, 50.0))
		assert.InDelta(t, 0.75, s, 1e-9)
	})

	t.Run("no_recent_reviews_drops_recency_bonus", func(t *testing.T) {
		s := scorer.Score(stat(kernel.NewUUID(), 5.0, 10, 0, 100.0))
		assert.InDelta(t, 0.8, s, 1e-9)
	})
}

func TestFallbackScorer_Qualifies(t *testing.T) {
	scorer := services.NewFallbackScorer()

	assert.False(t, scorer.Qualifies(stat(kernel.NewUUID(), 5, 4, 2, 100)),
		"four total reviews must not qualify")
	assert.False(t, scorer.Qualifies(stat(kernel.NewUUID(), 5, 5, 0, 100)),
		"five reviews but none recent must not qualify")
	assert.True(t, scorer.Qualifies(stat(kernel.NewUUID(), 5, 5, 1, 100)),
		"five reviews with one recent must qualify")
}

func TestFallbackScorer_Rank_ExcludesUnqualified(t *testing.T) {
	scorer := services.NewFallbackScorer()
	qualifiedID := kernel.NewUUID()

	ranked := scorer.Rank([]ranking.FallbackCourierStat{
		stat(kernel.NewUUID(), 5.0, 4, 2, 100), // too few reviews
		stat(kernel.NewUUID(), 5.0, 5, 0, 100), // no recent review
		stat(qualifiedID, 3.0, 5, 1, 50),
	}, "111")

	require.Len(t, ranked, 1)
	assert.True(t, ranked[0].CourierID.IsEqual(qualifiedID))
}

func TestFallbackScorer_Rank_OrderAndPositions(t *testing.T) {
	scorer := services.NewFallbackScorer()

	low := stat(kernel.NewUUID(), 3.0, 10, 1, 40)
	mid := stat(kernel.NewUUID(), 4.0, 10, 1, 70)
	high := stat(kernel.NewUUID(), 5.0, 10, 1, 95)

	ranked := scorer.Rank([]ranking.FallbackCourierStat{low, high, mid}, "111")

	require.Len(t, ranked, 3)
	assert.True(t, ranked[0].CourierID.IsEqual(high.CourierID))
	assert.True(t, ranked[1].CourierID.IsEqual(mid.CourierID))
	assert.True(t, ranked[2].CourierID.IsEqual(low.CourierID))

	for i, c := range ranked {
		require.NotNil(t, c.RankPosition)
		assert.Equal(t, i+1, *c.RankPosition, "positions must be contiguous from 1")
		assert.True(t, c.FallbackScoreUsed)
		assert.Equal(t, "111", c.PostalArea)
		assert.Nil(t, c.SelectionRate)
		assert.Nil(t, c.TotalDisplays)
		assert.Nil(t, c.ActivityLevel)
		assert.Nil(t, c.EtaMinutes)
		assert.Nil(t, c.LastCalculated)
	}
}

func TestFallbackScorer_Rank_TieBreaks(t *testing.T) {
	scorer := services.NewFallbackScorer()

	t.Run("equal_score_higher_trust_wins", func(t *testing.T) {
		// Same composite score: trust 5.0 + on-time 0% vs trust 3.0 + on-time 100%.
		// 0.5*1.0 + 0.3*0 + 0.2 = 0.8 and 0.5*0.6 + 0.3*1.0 + 0.2 = 0.8.
		trusted := stat(kernel.NewUUID(), 5.0, 10, 1, 0)
		punctual := stat(kernel.NewUUID(), 3.0, 10, 1, 100)

		ranked := scorer.Rank([]ranking.FallbackCourierStat{punctual, trusted}, "ALL")

		require.Len(t, ranked, 2)
		assert.True(t, ranked[0].CourierID.IsEqual(trusted.CourierID))
	})

	t.Run("equal_score_and_trust_more_reviews_wins", func(t *testing.T) {
		seasoned := stat(kernel.NewUUID(), 4.0, 50, 1, 80)
		newcomer := stat(kernel.NewUUID(), 4.0, 5, 1, 80)

		ranked := scorer.Rank([]ranking.FallbackCourierStat{newcomer, seasoned}, "ALL")

		require.Len(t, ranked, 2)
		assert.True(t, ranked[0].CourierID.IsEqual(seasoned.CourierID))
	})

	t.Run("full_tie_resolved_by_courier_id", func(t *testing.T) {
		a := stat(kernel.NewUUID(), 4.0, 10, 1, 80)
		b := stat(kernel.NewUUID(), 4.0, 10, 1, 80)

		first := scorer.Rank([]ranking.FallbackCourierStat{a, b}, "ALL")
		second := scorer.Rank([]ranking.FallbackCourierStat{b, a}, "ALL")

		require.Len(t, first, 2)
		require.Len(t, second, 2)
		assert.True(t, first[0].CourierID.IsEqual(second[0].CourierID),
			"order must not depend on input order")
		assert.Less(t, first[0].CourierID.String(), first[1].CourierID.String())
	})
}

func TestFallbackScorer_Rank_EmptyInput(t *testing.T) {
	ranked := services.NewFallbackScorer().Rank(nil, "111")
	assert.Empty(t, ranked)
}
