package services

import (
	"strings"

	"courierrank/internal/core/domain/model/ranking"
)

// ParseBoolFlag interprets a configuration string as a boolean toggle.
// Recognized true values: 1, true, yes, enabled, on. Recognized false values:
// 0, false, no, disabled, off. Matching is case-insensitive and ignores
// surrounding whitespace; anything else yields defaultValue.
func ParseBoolFlag(value string, defaultValue bool) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "enabled", "on":
		return true
	case "0", "false", "no", "disabled", "off":
		return false
	default:
		return defaultValue
	}
}

// ResolveFeatureFlags merges the platform-wide flag with an optional merchant
// override record into the per-request FeatureFlagState.
//
// Decision table:
//   - settings == nil: no merchant context or no record. The global flag
//     decides alone, the merchant mode is unknown, and the source is the
//     environment.
//   - settings != nil: dynamic ranking is enabled iff the global flag is on,
//     the merchant did not pick static mode, and the merchant kill switch is
//     not explicitly false. The source is the database.
func ResolveFeatureFlags(globalEnabled bool, settings *ranking.MerchantRankingSettings) ranking.FeatureFlagState {
	if settings == nil {
		return ranking.FeatureFlagState{
			GlobalEnabled:  globalEnabled,
			MerchantMode:   ranking.MerchantModeUnknown,
			FlagSource:     ranking.FlagSourceEnvironment,
			DynamicEnabled: globalEnabled,
		}
	}

	mode := ranking.MerchantModeDynamic
	if settings.RankingMode != nil && *settings.RankingMode == ranking.RankingModeStatic {
		mode = ranking.MerchantModeStatic
	}

	merchantAllows := mode != ranking.MerchantModeStatic &&
		(settings.FeatureFlag == nil || *settings.FeatureFlag)

	return ranking.FeatureFlagState{
		GlobalEnabled:  globalEnabled,
		MerchantMode:   mode,
		FlagSource:     ranking.FlagSourceDatabase,
		DynamicEnabled: globalEnabled && merchantAllows,
	}
}
