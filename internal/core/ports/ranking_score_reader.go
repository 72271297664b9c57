// Package ports defines the data access contracts of the ranking engine.
// These interfaces establish contracts between the application layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"courierrank/internal/core/domain/model/kernel"
	"courierrank/internal/core/domain/model/ranking"
)

// RankingScoreReader reads precomputed ranking rows from the dynamic cache.
type RankingScoreReader interface {
	// GetForArea returns cached rows for the given area plus the nationwide
	// catch-all rows, restricted to active couriers and, when merchantID is
	// non-nil, to couriers the merchant has actively selected. Rows arrive
	// ordered: area-exact before catch-all, then ascending rank position
	// (nulls last), then descending final score (nulls last), truncated to
	// limit. An area with no rows yields an empty slice, not an error.
	GetForArea(
		ctx context.Context,
		area kernel.PostalArea,
		limit int,
		merchantID *kernel.UUID,
	) ([]ranking.RankingCourier, error)
}
