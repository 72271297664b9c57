// Package rankingrepo provides GORM-based access to the precomputed courier
// ranking cache. The cache is written exclusively by the external batch
// recomputation; this package only reads it and triggers the recomputation.
package rankingrepo

import (
	"time"

	"github.com/google/uuid"
)

// CourierDTO represents the couriers table. The ranking engine never writes
// couriers; the DTO exists for joins and schema migration in tests.
type CourierDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"type:varchar(255);not null"`
	IsActive bool      `gorm:"type:boolean;not null;default:true"`
}

// TableName overrides GORM's default naming to use "couriers".
func (CourierDTO) TableName() string {
	return "couriers"
}

// RankingScoreDTO represents one row of the dynamic ranking cache: the
// precomputed score of one courier in one postal area. The postal_area value
// "ALL" is the nationwide catch-all.
type RankingScoreDTO struct {
	CourierID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	PostalArea          string    `gorm:"type:varchar(8);primaryKey"`
	RankPosition        *int      `gorm:"type:int"`
	FinalRankingScore   *float64  `gorm:"type:double precision"`
	TrustScore          float64   `gorm:"type:double precision;not null;default:0"`
	OnTimeRate          *float64  `gorm:"type:double precision"`
	AvgDeliveryDays     *float64  `gorm:"type:double precision"`
	SelectionRate       *float64  `gorm:"type:double precision"`
	TotalDisplays       *int      `gorm:"type:int"`
	TotalSelections     *int      `gorm:"type:int"`
	PositionPerformance *float64  `gorm:"type:double precision"`
	ActivityLevel       *float64  `gorm:"type:double precision"`
	RecentPerformance   *float64  `gorm:"type:double precision"`
	EtaMinutes          *int      `gorm:"type:int"`
	LastCalculated      time.Time `gorm:"type:timestamptz;not null"`
}

// TableName overrides GORM's default naming to use "courier_ranking_scores".
func (RankingScoreDTO) TableName() string {
	return "courier_ranking_scores"
}
