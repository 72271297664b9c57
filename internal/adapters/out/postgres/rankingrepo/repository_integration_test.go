package rankingrepo_test

import (
	"context"
	"testing"
	"time"

	"courierrank/internal/adapters/out/postgres/rankingrepo"
	"courierrank/internal/adapters/out/postgres/settingsrepo"
	"courierrank/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// RankingScoreRepositoryIntegrationTestSuite verifies the dynamic cache reader
// and the refresher against a real PostgreSQL instance, since both lean on
// Postgres-specific SQL (NULLS LAST ordering, stored procedure invocation).
type RankingScoreRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *rankingrepo.GormRankingScoreRepository
	refresher  *rankingrepo.GormRankingCacheRefresher
}

func (suite *RankingScoreRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&rankingrepo.CourierDTO{},
		&rankingrepo.RankingScoreDTO{},
		&settingsrepo.MerchantCourierSelectionDTO{},
	))

	// Stand-in for the production batch procedure: touches the scoped rows
	// and reports how many it touched.
	suite.Require().NoError(db.Exec(`
		CREATE OR REPLACE FUNCTION refresh_courier_rankings(p_postal_area text, p_courier_id uuid)
		RETURNS integer
		LANGUAGE plpgsql AS $$
		DECLARE updated integer;
		BEGIN
			UPDATE courier_ranking_scores
			SET last_calculated = NOW()
			WHERE (p_postal_area IS NULL OR postal_area = p_postal_area)
			  AND (p_courier_id IS NULL OR courier_id = p_courier_id);
			GET DIAGNOSTICS updated = ROW_COUNT;
			RETURN updated;
		END $$;
	`).Error)
}

func (suite *RankingScoreRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE courier_ranking_scores, couriers, merchant_courier_selections").Error)

	suite.repository = rankingrepo.NewGormRankingScoreRepository(suite.db)
	suite.refresher = rankingrepo.NewGormRankingCacheRefresher(suite.db)
}

func (suite *RankingScoreRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RankingScoreRepositoryIntegrationTestSuite) createCourier(name string, isActive bool) uuid.UUID {
	id := uuid.New()
	suite.Require().NoError(suite.db.Create(&rankingrepo.CourierDTO{
		ID:       id,
		Name:     name,
		IsActive: isActive,
	}).Error)
	return id
}

func (suite *RankingScoreRepositoryIntegrationTestSuite) createScore(
	courierID uuid.UUID, area string, position int, score float64,
) {
	suite.Require().NoError(suite.db.Create(&rankingrepo.RankingScoreDTO{
		CourierID:         courierID,
		PostalArea:        area,
		RankPosition:      &position,
		FinalRankingScore: &score,
		TrustScore:        4.0,
		LastCalculated:    time.Now().UTC(),
	}).Error)
}

func (suite *RankingScoreRepositoryIntegrationTestSuite) TestGetForArea_AreaRowsPrecedeCatchAll() {
	ctx := context.Background()

	local := suite.createCourier("Local", true)
	nationwide := suite.createCourier("Nationwide", true)

	// The catch-all row scores better but must still sort after the
	// area-exact row.
	suite.createScore(local, "111", 2, 0.50)
	suite.createScore(nationwide, "ALL", 1, 0.99)

	couriers, err := suite.repository.GetForArea(ctx, kernel.NewPostalArea("111 22"), 5, nil)
	suite.Require().NoError(err)

	suite.Require().Len(couriers, 2)
	suite.Equal("Local", couriers[0].Name)
	suite.Equal("111", couriers[0].PostalArea)
	suite.Equal("Nationwide", couriers[1].Name)
	suite.Equal("ALL", couriers[1].PostalArea)
}

func (suite *RankingScoreRepositoryIntegrationTestSuite) TestGetForArea_ExcludesInactiveAndForeignAreas() {
	ctx := context.Background()

	active := suite.createCourier("Active", true)
	inactive := suite.createCourier("Inactive", false)
	elsewhere := suite.createCourier("Elsewhere", true)

	suite.createScore(active, "111", 1, 0.80)
	suite.createScore(inactive, "111", 2, 0.70)
	suite.createScore(elsewhere, "222", 1, 0.90)

	couriers, err := suite.repository.GetForArea(ctx, kernel.NewPostalArea("11122"), 5, nil)
	suite.Require().NoError(err)

	suite.Require().Len(couriers, 1)
	suite.Equal("Active", couriers[0].Name)
	suite.Require().NotNil(couriers[0].FinalScore)
	suite.InDelta(0.80, *couriers[0].FinalScore, 1e-9)
	suite.Require().NotNil(couriers[0].RankPosition)
	suite.Equal(1, *couriers[0].RankPosition)
}

func (suite *RankingScoreRepositoryIntegrationTestSuite) TestGetForArea_MerchantScopeNarrowsResults() {
	ctx := context.Background()

	selected := suite.createCourier("Selected", true)
	unselected := suite.createCourier("Unselected", true)

	suite.createScore(selected, "111", 1, 0.80)
	suite.createScore(unselected, "111", 2, 0.70)

	merchantID := kernel.NewUUID()
	suite.Require().NoError(suite.db.Create(&settingsrepo.MerchantCourierSelectionDTO{
		MerchantID: merchantID.Bytes(),
		CourierID:  selected,
		IsActive:   true,
	}).Error)

	couriers, err := suite.repository.GetForArea(ctx, kernel.NewPostalArea("11122"), 5, &merchantID)
	suite.Require().NoError(err)

	suite.Require().Len(couriers, 1)
	suite.Equal("Selected", couriers[0].Name)
}

func (suite *RankingScoreRepositoryIntegrationTestSuite) TestGetForArea_RespectsLimit() {
	ctx := context.Background()

	for i := 1; i <= 4; i++ {
		courierID := suite.createCourier("Courier", true)
		suite.createScore(courierID, "111", i, 1.0-float64(i)*0.1)
	}

	couriers, err := suite.repository.GetForArea(ctx, kernel.NewPostalArea("11122"), 2, nil)
	suite.Require().NoError(err)

	suite.Require().Len(couriers, 2)
	suite.Equal(1, *couriers[0].RankPosition)
	suite.Equal(2, *couriers[1].RankPosition)
}

func (suite *RankingScoreRepositoryIntegrationTestSuite) TestGetForArea_EmptyAreaReturnsNothing() {
	ctx := context.Background()

	courierID := suite.createCourier("Courier", true)
	suite.createScore(courierID, "222", 1, 0.80)

	couriers, err := suite.repository.GetForArea(ctx, kernel.NewPostalArea("11122"), 5, nil)
	suite.Require().NoError(err)

	suite.Empty(couriers)
}

func (suite *RankingScoreRepositoryIntegrationTestSuite) TestRefresh_ScopedToArea() {
	ctx := context.Background()

	first := suite.createCourier("First", true)
	second := suite.createCourier("Second", true)
	suite.createScore(first, "111", 1, 0.80)
	suite.createScore(second, "222", 1, 0.70)

	area := "111"
	updated, err := suite.refresher.Refresh(ctx, &area, nil)
	suite.Require().NoError(err)
	suite.Equal(1, updated)

	updated, err = suite.refresher.Refresh(ctx, nil, nil)
	suite.Require().NoError(err)
	suite.Equal(2, updated)
}

func (suite *RankingScoreRepositoryIntegrationTestSuite) TestStats_AggregatesScope() {
	ctx := context.Background()

	first := suite.createCourier("First", true)
	second := suite.createCourier("Second", true)
	suite.createScore(first, "111", 1, 0.90)
	suite.createScore(first, "ALL", 3, 0.50)
	suite.createScore(second, "111", 2, 0.70)

	stats, err := suite.refresher.Stats(ctx, nil, nil)
	suite.Require().NoError(err)
	suite.Equal(2, stats.CourierCount)
	suite.Equal(2, stats.AreaCount)
	suite.Require().NotNil(stats.MinScore)
	suite.InDelta(0.50, *stats.MinScore, 1e-9)
	suite.Require().NotNil(stats.MaxScore)
	suite.InDelta(0.90, *stats.MaxScore, 1e-9)
	suite.NotNil(stats.LastCalculated)

	area := "111"
	stats, err = suite.refresher.Stats(ctx, &area, nil)
	suite.Require().NoError(err)
	suite.Equal(2, stats.CourierCount)
	suite.Equal(1, stats.AreaCount)
	suite.Require().NotNil(stats.MinScore)
	suite.InDelta(0.70, *stats.MinScore, 1e-9)
}

func (suite *RankingScoreRepositoryIntegrationTestSuite) TestStats_EmptyScope() {
	stats, err := suite.refresher.Stats(context.Background(), nil, nil)
	suite.Require().NoError(err)

	suite.Equal(0, stats.CourierCount)
	suite.Equal(0, stats.AreaCount)
	suite.Nil(stats.MinScore)
	suite.Nil(stats.AvgScore)
	suite.Nil(stats.MaxScore)
	suite.Nil(stats.LastCalculated)
}

func TestRankingScoreRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RankingScoreRepositoryIntegrationTestSuite))
}
