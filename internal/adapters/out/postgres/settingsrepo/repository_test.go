package settingsrepo_test

import (
	"errors"
	"testing"

	"courierrank/internal/adapters/out/postgres/settingsrepo"
	"courierrank/internal/core/domain/model/kernel"
	"courierrank/internal/core/domain/model/ranking"
	"courierrank/internal/pkg/errs"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func settingsColumns() []string {
	return []string{"merchant_id", "ranking_mode", "feature_flag", "weighting_overrides"}
}

func TestGormMerchantSettingsRepository_Get(t *testing.T) {
	t.Run("maps_override_record", func(t *testing.T) {
		db, mock := newMockDB(t)
		merchantID := kernel.NewUUID()

		mock.ExpectQuery(`SELECT \* FROM "merchant_ranking_settings" WHERE merchant_id = \$1`).
			WillReturnRows(sqlmock.NewRows(settingsColumns()).
				AddRow(merchantID.String(), "static", false, []byte(`{"trust": 0.7}`)))

		repository := settingsrepo.NewGormMerchantSettingsRepository(db)
		settings, err := repository.Get(t.Context(), merchantID)

		require.NoError(t, err)
		assert.True(t, settings.MerchantID.IsEqual(merchantID))
		require.NotNil(t, settings.RankingMode)
		assert.Equal(t, ranking.RankingModeStatic, *settings.RankingMode)
		require.NotNil(t, settings.FeatureFlag)
		assert.False(t, *settings.FeatureFlag)
		assert.Equal(t, map[string]any{"trust": 0.7}, settings.WeightingOverrides)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty_record_defers_to_platform_default", func(t *testing.T) {
		db, mock := newMockDB(t)
		merchantID := kernel.NewUUID()

		mock.ExpectQuery(`SELECT \* FROM "merchant_ranking_settings" WHERE merchant_id = \$1`).
			WillReturnRows(sqlmock.NewRows(settingsColumns()).
				AddRow(merchantID.String(), nil, nil, nil))

		repository := settingsrepo.NewGormMerchantSettingsRepository(db)
		settings, err := repository.Get(t.Context(), merchantID)

		require.NoError(t, err)
		assert.Nil(t, settings.RankingMode)
		assert.Nil(t, settings.FeatureFlag)
		assert.Nil(t, settings.WeightingOverrides)
	})

	t.Run("missing_record_is_object_not_found", func(t *testing.T) {
		db, mock := newMockDB(t)
		merchantID := kernel.NewUUID()

		mock.ExpectQuery(`SELECT \* FROM "merchant_ranking_settings" WHERE merchant_id = \$1`).
			WillReturnRows(sqlmock.NewRows(settingsColumns()))

		repository := settingsrepo.NewGormMerchantSettingsRepository(db)
		_, err := repository.Get(t.Context(), merchantID)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("missing_table_error_passes_through", func(t *testing.T) {
		db, mock := newMockDB(t)
		merchantID := kernel.NewUUID()

		mock.ExpectQuery(`SELECT \* FROM "merchant_ranking_settings"`).
			WillReturnError(errors.New(`pq: relation "merchant_ranking_settings" does not exist`))

		repository := settingsrepo.NewGormMerchantSettingsRepository(db)
		_, err := repository.Get(t.Context(), merchantID)

		require.Error(t, err)
		assert.NotErrorIs(t, err, errs.ErrObjectNotFound)
		assert.ErrorContains(t, err, "does not exist")
	})

	t.Run("malformed_overrides_fail_loudly", func(t *testing.T) {
		db, mock := newMockDB(t)
		merchantID := kernel.NewUUID()

		mock.ExpectQuery(`SELECT \* FROM "merchant_ranking_settings" WHERE merchant_id = \$1`).
			WillReturnRows(sqlmock.NewRows(settingsColumns()).
				AddRow(merchantID.String(), "dynamic", true, []byte(`{not json`)))

		repository := settingsrepo.NewGormMerchantSettingsRepository(db)
		_, err := repository.Get(t.Context(), merchantID)

		require.Error(t, err)
		assert.ErrorContains(t, err, "malformed weighting overrides")
	})

	t.Run("unconstructed_merchant_id_is_rejected_before_querying", func(t *testing.T) {
		db, mock := newMockDB(t)

		repository := settingsrepo.NewGormMerchantSettingsRepository(db)
		var zero kernel.UUID
		_, err := repository.Get(t.Context(), zero)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
