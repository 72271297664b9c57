// Package commands contains the write-side operations of the ranking engine.
// The engine itself is read-only; its single command delegates cache
// recomputation to the external batch procedure.
package commands

import (
	"errors"

	"courierrank/internal/core/domain/model/kernel"
	"courierrank/internal/pkg/guard"
)

var ErrRefreshRankingCacheCommandIsNotConstructed = errors.New(
	"RefreshRankingCacheCommand must be created via NewRefreshRankingCacheCommand constructor",
)

// RefreshRankingCacheCommand requests recomputation of the dynamic ranking
// cache, optionally narrowed to one postal area and/or one courier. An empty
// scope recomputes everything. The operation is idempotent: re-running the
// same scope overwrites the same rows.
type RefreshRankingCacheCommand struct {
	postalArea *kernel.PostalArea
	courierID  *kernel.UUID
	guard      guard.ConstructorGuard
}

// NewRefreshRankingCacheCommand creates a refresh command. A supplied postal
// area is normalized before use; a supplied courier ID must be valid.
func NewRefreshRankingCacheCommand(rawPostalArea *string, courierID *kernel.UUID) (RefreshRankingCacheCommand, error) {
	var area *kernel.PostalArea
	if rawPostalArea != nil {
		normalized := kernel.NewPostalArea(*rawPostalArea)
		area = &normalized
	}

	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return RefreshRankingCacheCommand{}, err
		}
	}

	return RefreshRankingCacheCommand{
		postalArea: area,
		courierID:  courierID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// PostalArea returns the optional normalized area scope.
func (c RefreshRankingCacheCommand) PostalArea() *kernel.PostalArea {
	return c.postalArea
}

// CourierID returns the optional courier scope.
func (c RefreshRankingCacheCommand) CourierID() *kernel.UUID {
	return c.courierID
}

// Validate ensures the command was created through the constructor.
func (c RefreshRankingCacheCommand) Validate() error {
	return c.guard.Validate(ErrRefreshRankingCacheCommandIsNotConstructed)
}
