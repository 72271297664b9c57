package ranking

// MerchantMode reports how the merchant's override record influenced the
// flag resolution for one request.
type MerchantMode string

const (
	MerchantModeDynamic MerchantMode = "dynamic"
	MerchantModeStatic  MerchantMode = "static"
	// MerchantModeUnknown means no override record exists (or its lookup
	// failed) and the platform default applied.
	MerchantModeUnknown MerchantMode = "unknown"
)

// FlagSource names where the decisive flag value came from.
type FlagSource string

const (
	FlagSourceEnvironment FlagSource = "environment"
	FlagSourceDatabase    FlagSource = "database"
)

// FeatureFlagState is the per-request resolution of the two-level feature
// flag hierarchy. It is computed fresh for every request and returned in the
// response envelope; it is never persisted.
type FeatureFlagState struct {
	GlobalEnabled bool
	MerchantMode  MerchantMode
	FlagSource    FlagSource

	// DynamicEnabled is the merged verdict: whether the dynamic cache may be
	// consulted for this request.
	DynamicEnabled bool
}
