package ports

import (
	"context"

	"courierrank/internal/core/domain/model/kernel"
	"courierrank/internal/core/domain/model/ranking"
)

// MerchantSettingsReader looks up a merchant's ranking override record.
// This is an optional dependency: callers treat every failure, including a
// missing backing table, as "no override" rather than a request error.
type MerchantSettingsReader interface {
	// Get returns the merchant's settings, or an error unwrapping to
	// errs.ErrObjectNotFound when no record exists.
	Get(ctx context.Context, merchantID kernel.UUID) (*ranking.MerchantRankingSettings, error)
}
