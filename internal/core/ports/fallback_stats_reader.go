package ports

import (
	"context"

	"courierrank/internal/core/domain/model/kernel"
	"courierrank/internal/core/domain/model/ranking"
)

// FallbackStatsReader aggregates raw order and review data for the fallback
// heuristic. Unlike the optional readers, failures here propagate: this is
// the last tier of the cascade and there is nothing left to degrade to.
type FallbackStatsReader interface {
	// GetCourierStats returns per-courier aggregates over the trailing six
	// months for active couriers, with orders restricted to destination
	// postal codes in the given area (unrestricted for the nationwide area).
	// Qualification and ordering are the scorer's concern, not the reader's.
	GetCourierStats(ctx context.Context, area kernel.PostalArea) ([]ranking.FallbackCourierStat, error)
}
