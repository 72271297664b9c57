// Package settingsrepo reads per-merchant ranking configuration. The records
// are owned by the merchant configuration surface; the engine treats them as
// optional input and never writes them.
package settingsrepo

import (
	"github.com/google/uuid"
)

// MerchantRankingSettingsDTO represents the merchant_ranking_settings table:
// at most one override record per merchant.
type MerchantRankingSettingsDTO struct {
	MerchantID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	RankingMode *string   `gorm:"type:varchar(16)"`
	FeatureFlag *bool     `gorm:"type:boolean"`
	// WeightingOverrides is stored as jsonb and kept opaque.
	WeightingOverrides []byte `gorm:"type:jsonb"`
}

// TableName overrides GORM's default naming to use "merchant_ranking_settings".
func (MerchantRankingSettingsDTO) TableName() string {
	return "merchant_ranking_settings"
}

// MerchantCourierSelectionDTO represents the merchant_courier_selections
// table: the couriers a merchant has actively enabled for its storefront.
// The dynamic ranking reader scopes its results with it.
type MerchantCourierSelectionDTO struct {
	MerchantID uuid.UUID `gorm:"type:uuid;primaryKey"`
	CourierID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	IsActive   bool      `gorm:"type:boolean;not null;default:true"`
}

// TableName overrides GORM's default naming to use "merchant_courier_selections".
func (MerchantCourierSelectionDTO) TableName() string {
	return "merchant_courier_selections"
}
