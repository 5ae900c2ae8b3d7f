package stats_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"mtop_registry/internal/config"
	"mtop_registry/internal/models"
	"mtop_registry/internal/stats"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func TestCountAllAndCountWhere(t *testing.T) {
	db := newTestDB(t)
	for i, status := range []string{models.AssetStatusDeployed, models.AssetStatusDeployed, models.AssetStatusBroken} {
		require.NoError(t, db.Create(&models.Asset{
			AssetTag: fmt.Sprintf("AST-%04d", i),
			Name:     fmt.Sprintf("Radio %d", i),
			Status:   status,
		}).Error)
	}

	total, err := stats.CountAll(db, &models.Asset{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	deployed, err := stats.CountWhere(db, &models.Asset{}, "status", models.AssetStatusDeployed)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deployed)
}

func TestGroupByField(t *testing.T) {
	db := newTestDB(t)
	for i, status := range []string{
		models.PermitStatusNew, models.PermitStatusNew, models.PermitStatusRetire,
	} {
		seedOperator(t, db, i, status)
	}

	groups, err := stats.GroupByField(db, &models.Operator{}, "permit_status")
	require.NoError(t, err)

	counts := map[string]int64{}
	for _, g := range groups {
		counts[g.Key] = g.Total
	}
	assert.Equal(t, map[string]int64{
		models.PermitStatusNew:    2,
		models.PermitStatusRetire: 1,
	}, counts)
}

func TestGroupByForeignKeyKeepsNullGroup(t *testing.T) {
	db := newTestDB(t)

	category := models.Category{Name: "Radios"}
	require.NoError(t, db.Create(&category).Error)

	require.NoError(t, db.Create(&models.Asset{
		AssetTag: "AST-0001", Name: "Handheld", Status: models.AssetStatusDeployed,
		CategoryID: &category.ID,
	}).Error)
	require.NoError(t, db.Create(&models.Asset{
		AssetTag: "AST-0002", Name: "Base Unit", Status: models.AssetStatusDeployed,
		CategoryID: &category.ID,
	}).Error)
	// No category at all.
	require.NoError(t, db.Create(&models.Asset{
		AssetTag: "AST-0003", Name: "Stray Cable", Status: models.AssetStatusBroken,
	}).Error)

	groups, err := stats.GroupByForeignKey(db, &models.Asset{}, "assets", "category_id", "categories", "name")
	require.NoError(t, err)
	require.Len(t, groups, 2)

	var nullGroup, radioGroup *stats.ForeignKeyCount
	for i := range groups {
		if groups[i].ID == nil {
			nullGroup = &groups[i]
		} else {
			radioGroup = &groups[i]
		}
	}
	require.NotNil(t, nullGroup)
	require.NotNil(t, radioGroup)

	assert.Equal(t, int64(1), nullGroup.Total)
	assert.Nil(t, nullGroup.Label)

	assert.Equal(t, category.ID, *radioGroup.ID)
	assert.Equal(t, int64(2), radioGroup.Total)
	require.NotNil(t, radioGroup.Label)
	assert.Equal(t, "Radios", *radioGroup.Label)
}

func TestTodaOperatorCountsIncludesZeroGroups(t *testing.T) {
	db := newTestDB(t)

	busy := models.Toda{TodaName: "Bagong Silang TODA", TodaStatus: models.TodaStatusActive}
	require.NoError(t, db.Create(&busy).Error)
	empty := models.Toda{TodaName: "Malinis TODA", TodaStatus: models.TodaStatusActive}
	require.NoError(t, db.Create(&empty).Error)

	seedOperatorForToda(t, db, 1, busy.ID)
	seedOperatorForToda(t, db, 2, busy.ID)

	groups, err := stats.TodaOperatorCounts(db)
	require.NoError(t, err)

	counts := map[string]int64{}
	for _, g := range groups {
		counts[g.Key] = g.Total
	}
	assert.Equal(t, map[string]int64{
		"Bagong Silang TODA": 2,
		"Malinis TODA":       0,
	}, counts)
}

func TestRecentOperatorsOrderAndLimit(t *testing.T) {
	db := newTestDB(t)
	for i := 0; i < 4; i++ {
		operator := seedOperator(t, db, i, models.PermitStatusNew)
		// Spread created_at so the ordering is unambiguous.
		require.NoError(t, db.Model(&models.Operator{}).
			Where("id = ?", operator.ID).
			Update("created_at", time.Now().Add(time.Duration(i)*time.Minute)).Error)
	}

	rows, err := stats.RecentOperators(db, 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Operator 3", rows[0].Fullname)
	assert.Equal(t, "Operator 2", rows[1].Fullname)

	// Relations resolved for the projected rows.
	assert.Equal(t, "Driver 3", rows[0].DriverFullname)
	assert.NotEqual(t, stats.FallbackLabel, rows[0].PlateNumber)
}

func TestNewOperatorRowFallsBackForMissingRelations(t *testing.T) {
	paid := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	row := stats.NewOperatorRow(models.Operator{
		ID:             7,
		Fullname:       "Maria Santos",
		MtopNumber:     "MTOP-0007",
		DateRegistered: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		DateLastPaid:   &paid,
		PermitStatus:   models.PermitStatusRenew,
	})

	assert.Equal(t, stats.FallbackLabel, row.DriverFullname)
	assert.Equal(t, stats.FallbackLabel, row.PlateNumber)
	assert.Equal(t, stats.FallbackLabel, row.TodaName)
	assert.Equal(t, "2025-01-02", row.DateRegistered)
	require.NotNil(t, row.DateLastPaid)
	assert.Equal(t, "2026-03-15", *row.DateLastPaid)
}

func TestNewOperatorRowKeepsNullDateLastPaid(t *testing.T) {
	row := stats.NewOperatorRow(models.Operator{ID: 1, Fullname: "Jose Ramos"})
	assert.Nil(t, row.DateLastPaid)
}

// seedOperator creates an operator plus the parents it requires.
func seedOperator(t *testing.T, db *gorm.DB, n int, permitStatus string) models.Operator {
	t.Helper()

	driver := models.Driver{
		DriverFullname:      fmt.Sprintf("Driver %d", n),
		DriverLicenseNumber: fmt.Sprintf("LIC-%04d", n),
		ExpirationDate:      time.Now().AddDate(1, 0, 0),
	}
	require.NoError(t, db.Create(&driver).Error)

	motorcycle := models.Motorcycle{PlateNumber: fmt.Sprintf("PLT-%04d", n)}
	require.NoError(t, db.Create(&motorcycle).Error)

	toda := models.Toda{TodaName: fmt.Sprintf("TODA %d", n), TodaStatus: models.TodaStatusActive}
	require.NoError(t, db.Create(&toda).Error)

	operator := models.Operator{
		Fullname:       fmt.Sprintf("Operator %d", n),
		Address:        "Poblacion",
		EmailAddress:   fmt.Sprintf("operator%d@example.com", n),
		DriverID:       driver.ID,
		MotorcycleID:   motorcycle.ID,
		TodaID:         toda.ID,
		MtopNumber:     fmt.Sprintf("MTOP-%04d", n),
		DateRegistered: time.Now(),
		PermitStatus:   permitStatus,
	}
	require.NoError(t, db.Create(&operator).Error)
	return operator
}

func seedOperatorForToda(t *testing.T, db *gorm.DB, n int, todaID uint) {
	t.Helper()

	driver := models.Driver{
		DriverFullname:      fmt.Sprintf("Driver %d", n),
		DriverLicenseNumber: fmt.Sprintf("LIC-%04d", n),
		ExpirationDate:      time.Now().AddDate(1, 0, 0),
	}
	require.NoError(t, db.Create(&driver).Error)

	motorcycle := models.Motorcycle{PlateNumber: fmt.Sprintf("PLT-%04d", n)}
	require.NoError(t, db.Create(&motorcycle).Error)

	require.NoError(t, db.Create(&models.Operator{
		Fullname:       fmt.Sprintf("Operator %d", n),
		Address:        "Poblacion",
		EmailAddress:   fmt.Sprintf("operator%d@example.com", n),
		DriverID:       driver.ID,
		MotorcycleID:   motorcycle.ID,
		TodaID:         todaID,
		MtopNumber:     fmt.Sprintf("MTOP-%04d", n),
		DateRegistered: time.Now(),
		PermitStatus:   models.PermitStatusNew,
	}).Error)
}
