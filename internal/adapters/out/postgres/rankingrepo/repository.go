package rankingrepo

import (
	"context"
	"time"

	"courierrank/internal/core/domain/model/kernel"
	"courierrank/internal/core/domain/model/ranking"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormRankingScoreRepository implements ports.RankingScoreReader using GORM.
type GormRankingScoreRepository struct {
	db *gorm.DB
}

// NewGormRankingScoreRepository creates a new GORM ranking score repository.
func NewGormRankingScoreRepository(db *gorm.DB) *GormRankingScoreRepository {
	return &GormRankingScoreRepository{db: db}
}

// GetForArea returns cached ranking rows for the requested area plus the
// nationwide catch-all, restricted to active couriers and optionally to the
// merchant's selected couriers.
//
// Ordering is part of the contract: area-exact rows always precede catch-all
// rows even when the catch-all scores better, then ascending rank position
// with nulls last, then descending final score with nulls last.
func (r *GormRankingScoreRepository) GetForArea(
	ctx context.Context,
	area kernel.PostalArea,
	limit int,
	merchantID *kernel.UUID,
) ([]ranking.RankingCourier, error) {
	query := `
		SELECT
			crs.courier_id,
			c.name,
			crs.postal_area,
			crs.rank_position,
			crs.final_ranking_score,
			crs.trust_score,
			crs.on_time_rate,
			crs.avg_delivery_days,
			crs.selection_rate,
			crs.total_displays,
			crs.total_selections,
			crs.position_performance,
			crs.activity_level,
			crs.recent_performance,
			crs.eta_minutes,
			crs.last_calculated
		FROM courier_ranking_scores crs
		JOIN couriers c ON c.id = crs.courier_id AND c.is_active = true
		WHERE crs.postal_area IN (?, 'ALL')`

	args := []any{area.Area()}

	if merchantID != nil {
		query += `
		AND crs.courier_id IN (
			SELECT mcs.courier_id
			FROM merchant_courier_selections mcs
			WHERE mcs.merchant_id = ? AND mcs.is_active = true
		)`
		args = append(args, merchantID.Bytes())
	}

	query += `
		ORDER BY
			CASE WHEN crs.postal_area = ? THEN 0 ELSE 1 END,
			crs.rank_position ASC NULLS LAST,
			crs.final_ranking_score DESC NULLS LAST
		LIMIT ?`
	args = append(args, area.Area(), limit)

	rows, err := r.db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	couriers := make([]ranking.RankingCourier, 0, limit)

	for rows.Next() {
		var (
			id             uuid.UUID
			courier        ranking.RankingCourier
			lastCalculated time.Time
		)

		err = rows.Scan(
			&id,
			&courier.Name,
			&courier.PostalArea,
			&courier.RankPosition,
			&courier.FinalScore,
			&courier.TrustScore,
			&courier.OnTimePercentage,
			&courier.AvgDeliveryDays,
			&courier.SelectionRate,
			&courier.TotalDisplays,
			&courier.TotalSelections,
			&courier.PositionPerformance,
			&courier.ActivityLevel,
			&courier.RecentPerformance,
			&courier.EtaMinutes,
			&lastCalculated,
		)
		if err != nil {
			return nil, err
		}

		courierID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		courier.CourierID = courierID
		courier.LastCalculated = &lastCalculated
		couriers = append(couriers, courier)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return couriers, nil
}
