package rankingrepo

import (
	"context"

	"courierrank/internal/core/domain/model/kernel"
	"courierrank/internal/core/ports"

	"gorm.io/gorm"
)

// GormRankingCacheRefresher implements ports.RankingCacheRefresher by calling
// the refresh_courier_rankings database procedure and reading back aggregate
// statistics over the refreshed scope.
type GormRankingCacheRefresher struct {
	db *gorm.DB
}

// NewGormRankingCacheRefresher creates a new GORM cache refresher.
func NewGormRankingCacheRefresher(db *gorm.DB) *GormRankingCacheRefresher {
	return &GormRankingCacheRefresher{db: db}
}

// Refresh invokes the external recomputation procedure, optionally scoped to
// one postal area and/or one courier, and returns the row count it reports.
func (r *GormRankingCacheRefresher) Refresh(
	ctx context.Context,
	postalArea *string,
	courierID *kernel.UUID,
) (int, error) {
	var courierArg any
	if courierID != nil {
		courierArg = courierID.Bytes()
	}

	var updated int
	err := r.db.WithContext(ctx).
		Raw(`SELECT refresh_courier_rankings(?, ?)`, postalArea, courierArg).
		Scan(&updated).Error
	if err != nil {
		return 0, err
	}

	return updated, nil
}

// Stats returns scope-restricted aggregates over the ranking cache: distinct
// courier and area counts, the score spread, and the newest calculation
// timestamp. An empty scope yields zero counts and nil aggregates.
func (r *GormRankingCacheRefresher) Stats(
	ctx context.Context,
	postalArea *string,
	courierID *kernel.UUID,
) (ports.RankingCacheStats, error) {
	query := `
		SELECT
			COUNT(DISTINCT courier_id),
			COUNT(DISTINCT postal_area),
			MIN(final_ranking_score),
			AVG(final_ranking_score),
			MAX(final_ranking_score),
			MAX(last_calculated)
		FROM courier_ranking_scores
		WHERE 1 = 1`

	args := make([]any, 0, 2)
	if postalArea != nil {
		query += ` AND postal_area = ?`
		args = append(args, *postalArea)
	}
	if courierID != nil {
		query += ` AND courier_id = ?`
		args = append(args, courierID.Bytes())
	}

	rows, err := r.db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return ports.RankingCacheStats{}, err
	}
	defer rows.Close()

	var stats ports.RankingCacheStats
	if rows.Next() {
		err = rows.Scan(
			&stats.CourierCount,
			&stats.AreaCount,
			&stats.MinScore,
			&stats.AvgScore,
			&stats.MaxScore,
			&stats.LastCalculated,
		)
		if err != nil {
			return ports.RankingCacheStats{}, err
		}
	}

	if err = rows.Err(); err != nil {
		return ports.RankingCacheStats{}, err
	}

	return stats, nil
}
