// Package fallbackrepo aggregates raw order and review data for the fallback
// heuristic scorer. It is the last-resort data source of the ranking cascade:
// read-only, windowed to the trailing six months, and queried live on demand.
package fallbackrepo

import (
	"time"

	"github.com/google/uuid"
)

// OrderDTO represents the slice of the orders table the fallback aggregates
// need: who delivered, where to, and how the delivery went. The wider
// marketplace owns the table; this DTO exists for schema migration in tests.
type OrderDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CourierID  *uuid.UUID `gorm:"type:uuid;index"`
	PostalCode string     `gorm:"type:varchar(16);not null"`
	CreatedAt  time.Time  `gorm:"type:timestamptz;not null"`
	// DeliveredAt is nil for orders still in flight.
	DeliveredAt *time.Time `gorm:"type:timestamptz"`
	// PromisedAt is the delivery deadline used for on-time measurement.
	PromisedAt *time.Time `gorm:"type:timestamptz"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ReviewDTO represents a consumer review of a courier.
type ReviewDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CourierID uuid.UUID `gorm:"type:uuid;not null;index"`
	Rating    float64   `gorm:"type:double precision;not null"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null"`
}

// TableName overrides GORM's default naming to use "reviews".
func (ReviewDTO) TableName() string {
	return "reviews"
}
