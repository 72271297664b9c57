package ranking

import "courierrank/internal/core/domain/model/kernel"

// RankingMode is a merchant's configured ranking preference.
type RankingMode string

const (
	// RankingModeDynamic opts the merchant into cache-served rankings.
	RankingModeDynamic RankingMode = "dynamic"
	// RankingModeStatic forces the heuristic path for the merchant even when
	// the platform flag is on.
	RankingModeStatic RankingMode = "static"
)

// MerchantRankingSettings is the per-merchant override record. It is owned by
// the merchant configuration surface; the engine only reads it. Absence of a
// record means "defer to the platform default".
type MerchantRankingSettings struct {
	MerchantID kernel.UUID

	// RankingMode is nil when the merchant never chose a mode.
	RankingMode *RankingMode

	// FeatureFlag is a per-merchant kill switch; nil means unset.
	FeatureFlag *bool

	// WeightingOverrides is opaque to the engine and passed through to the
	// batch recomputation; the engine never interprets it.
	WeightingOverrides map[string]any
}
