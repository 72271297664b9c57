package fallbackrepo

import (
	"context"
	"time"

	"courierrank/internal/core/domain/model/kernel"
	"courierrank/internal/core/domain/model/ranking"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Aggregation windows of the fallback heuristic. Orders and reviews older
// than the stats window are ignored; the recent window feeds the recency
// qualification and bonus.
const (
	statsWindow  = 6 * 30 * 24 * time.Hour
	recentWindow = 3 * 30 * 24 * time.Hour
)

// GormFallbackStatsRepository implements ports.FallbackStatsReader using GORM.
type GormFallbackStatsRepository struct {
	db *gorm.DB
}

// NewGormFallbackStatsRepository creates a new GORM fallback stats repository.
func NewGormFallbackStatsRepository(db *gorm.DB) *GormFallbackStatsRepository {
	return &GormFallbackStatsRepository{db: db}
}

// GetCourierStats aggregates six months of orders and reviews per active
// courier. Orders only count when their destination postal code falls in the
// requested area; the nationwide area lifts that restriction. Review and
// order aggregates are built in separate subqueries so the two joins cannot
// multiply each other's rows.
func (r *GormFallbackStatsRepository) GetCourierStats(
	ctx context.Context,
	area kernel.PostalArea,
) ([]ranking.FallbackCourierStat, error) {
	now := time.Now().UTC()
	windowStart := now.Add(-statsWindow)
	recentStart := now.Add(-recentWindow)

	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.name,
			COALESCE(rv.trust_score, 0)        AS trust_score,
			COALESCE(rv.total_reviews, 0)      AS total_reviews,
			COALESCE(rv.recent_reviews, 0)     AS recent_reviews,
			COALESCE(od.avg_delivery_days, 0)  AS avg_delivery_days,
			COALESCE(od.on_time_percentage, 0) AS on_time_percentage
		FROM couriers c
		LEFT JOIN (
			SELECT
				courier_id,
				AVG(rating)                                AS trust_score,
				COUNT(*)                                   AS total_reviews,
				COUNT(*) FILTER (WHERE created_at >= ?)    AS recent_reviews
			FROM reviews
			WHERE created_at >= ?
			GROUP BY courier_id
		) rv ON rv.courier_id = c.id
		LEFT JOIN (
			SELECT
				courier_id,
				AVG(EXTRACT(EPOCH FROM (delivered_at - created_at)) / 86400.0)
					FILTER (WHERE delivered_at IS NOT NULL) AS avg_delivery_days,
				100.0 * COUNT(*) FILTER (WHERE delivered_at IS NOT NULL
						AND promised_at IS NOT NULL
						AND delivered_at <= promised_at)
					/ NULLIF(COUNT(*) FILTER (WHERE delivered_at IS NOT NULL), 0)
					AS on_time_percentage
			FROM orders
			WHERE created_at >= ?
				AND courier_id IS NOT NULL
				AND (? = 'ALL' OR UPPER(REPLACE(postal_code, ' ', '')) LIKE ? || '%')
			GROUP BY courier_id
		) od ON od.courier_id = c.id
		WHERE c.is_active = true
		ORDER BY c.id
	`, recentStart, windowStart, windowStart, area.Area(), area.Area()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make([]ranking.FallbackCourierStat, 0)

	for rows.Next() {
		var (
			id   uuid.UUID
			stat ranking.FallbackCourierStat
		)

		err = rows.Scan(
			&id,
			&stat.Name,
			&stat.TrustScore,
			&stat.TotalReviews,
			&stat.RecentReviews,
			&stat.AvgDeliveryDays,
			&stat.OnTimePercentage,
		)
		if err != nil {
			return nil, err
		}

		courierID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		stat.CourierID = courierID
		stats = append(stats, stat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}
