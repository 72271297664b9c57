// Package queries contains the read operations of the ranking engine.
// Queries return read models shaped for the HTTP edge and carry no
// side effects beyond logging.
package queries

import (
	"errors"

	"courierrank/internal/core/domain/model/kernel"
	"courierrank/internal/core/domain/model/ranking"
	"courierrank/internal/pkg/errs"
	"courierrank/internal/pkg/guard"
)

// Result limit bounds for a ranking lookup. Requests outside the bounds are
// clamped, not rejected.
const (
	DefaultLimit = 5
	MinLimit     = 1
	MaxLimit     = 20
)

var (
	ErrGetCourierRankingQueryIsNotConstructed = errors.New(
		"GetCourierRankingQuery must be created via NewGetCourierRankingQuery constructor",
	)

	// ErrPostalCodeIsRequired is the terminal client error for a lookup
	// without a postal code; no fallback tier is attempted for it.
	ErrPostalCodeIsRequired = errs.NewValueIsRequiredError("postalCode")
)

// GetCourierRankingQuery asks which couriers to present for a delivery
// postal area, optionally scoped to one merchant's storefront.
type GetCourierRankingQuery struct {
	postalCode string
	limit      int
	merchantID *kernel.UUID

	// role and includeHistory are client context, passed through to the
	// response without interpretation.
	role           string
	includeHistory bool

	guard guard.ConstructorGuard
}

// NewGetCourierRankingQuery creates a ranking lookup query. The postal code
// is required; a limit outside [MinLimit, MaxLimit] is clamped and a zero
// limit takes the default.
func NewGetCourierRankingQuery(
	postalCode string,
	limit int,
	merchantID *kernel.UUID,
	role string,
	includeHistory bool,
) (GetCourierRankingQuery, error) {
	if postalCode == "" {
		return GetCourierRankingQuery{}, ErrPostalCodeIsRequired
	}

	if limit == 0 {
		limit = DefaultLimit
	}
	if limit < MinLimit {
		limit = MinLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return GetCourierRankingQuery{
		postalCode:     postalCode,
		limit:          limit,
		merchantID:     merchantID,
		role:           role,
		includeHistory: includeHistory,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// PostalCode returns the raw postal code as supplied by the caller.
func (q GetCourierRankingQuery) PostalCode() string {
	return q.postalCode
}

// Limit returns the clamped result limit.
func (q GetCourierRankingQuery) Limit() int {
	return q.limit
}

// MerchantID returns the optional merchant scope.
func (q GetCourierRankingQuery) MerchantID() *kernel.UUID {
	return q.merchantID
}

// Role returns the pass-through client role.
func (q GetCourierRankingQuery) Role() string {
	return q.role
}

// IncludeHistory returns the pass-through history flag.
func (q GetCourierRankingQuery) IncludeHistory() bool {
	return q.includeHistory
}

// Validate ensures the query was created through the constructor.
func (q GetCourierRankingQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierRankingQueryIsNotConstructed)
}

// Fallback reasons reported in the response envelope when the dynamic cache
// was not the source of the result.
const (
	FallbackReasonFlagDisabled  = "Dynamic ranking disabled by feature flag."
	FallbackReasonNoDynamicData = "No dynamic ranking data for this area."
)

// GetCourierRankingQueryResponse is the assembled ranking envelope.
type GetCourierRankingQueryResponse struct {
	PostalCode   string
	PostalArea   string
	FeatureFlags ranking.FeatureFlagState
	Couriers     []ranking.RankingCourier
	TotalFound   int

	// IsLocalData is true only when the dynamic cache served the result.
	IsLocalData bool

	// FallbackReason is nil when dynamic data was used.
	FallbackReason *string

	Role           string
	IncludeHistory bool
}
