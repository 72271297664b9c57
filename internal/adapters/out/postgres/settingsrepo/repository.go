package settingsrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"courierrank/internal/core/domain/model/kernel"
	"courierrank/internal/core/domain/model/ranking"
	"courierrank/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMerchantSettingsRepository implements ports.MerchantSettingsReader
// using GORM.
type GormMerchantSettingsRepository struct {
	db *gorm.DB
}

// NewGormMerchantSettingsRepository creates a new GORM merchant settings
// repository.
func NewGormMerchantSettingsRepository(db *gorm.DB) *GormMerchantSettingsRepository {
	return &GormMerchantSettingsRepository{db: db}
}

// Get retrieves the merchant's override record. A missing record maps to
// errs.ErrObjectNotFound; any other failure (the backing table may not even
// exist on some installations) is returned as-is for the caller to classify.
func (r *GormMerchantSettingsRepository) Get(
	ctx context.Context,
	merchantID kernel.UUID,
) (*ranking.MerchantRankingSettings, error) {
	if err := merchantID.Validate(); err != nil {
		return nil, err
	}

	var dto MerchantRankingSettingsDTO
	err := r.db.WithContext(ctx).
		First(&dto, "merchant_id = ?", merchantID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("merchantRankingSettings", merchantID.String())
		}
		return nil, err
	}

	return toDomain(dto, merchantID)
}

func toDomain(dto MerchantRankingSettingsDTO, merchantID kernel.UUID) (*ranking.MerchantRankingSettings, error) {
	settings := &ranking.MerchantRankingSettings{
		MerchantID:  merchantID,
		FeatureFlag: dto.FeatureFlag,
	}

	if dto.RankingMode != nil {
		mode := ranking.RankingMode(*dto.RankingMode)
		settings.RankingMode = &mode
	}

	if len(dto.WeightingOverrides) > 0 {
		overrides := make(map[string]any)
		if err := json.Unmarshal(dto.WeightingOverrides, &overrides); err != nil {
			return nil, fmt.Errorf("malformed weighting overrides for merchant %s: %w",
				merchantID.String(), err)
		}
		settings.WeightingOverrides = overrides
	}

	return settings, nil
}
