package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"mtop_registry/internal/config"
	"mtop_registry/internal/models"
	"mtop_registry/internal/resources"
	"mtop_registry/internal/stats"
)

// DashboardStats is the combined asset + operator dashboard payload: entity
// totals, chart groupings and the recent-operator table.
func DashboardStats(c *gin.Context) {
	db := config.DB

	totals := gin.H{}
	for name, model := range map[string]any{
		"total_assets":        &models.Asset{},
		"total_categories":    &models.Category{},
		"total_manufacturers": &models.Manufacturer{},
		"total_locations":     &models.Location{},
		"total_users":         &models.User{},
		"total_operators":     &models.Operator{},
		"total_drivers":       &models.Driver{},
		"total_motorcycles":   &models.Motorcycle{},
		"total_toda":          &models.Toda{},
	} {
		total, err := stats.CountAll(db, model)
		if err != nil {
			dashboardError(c, err)
			return
		}
		totals[name] = total
	}
	for name, status := range map[string]string{
		"new_permits":    models.PermitStatusNew,
		"renew_permits":  models.PermitStatusRenew,
		"retire_permits": models.PermitStatusRetire,
	} {
		total, err := stats.CountWhere(db, &models.Operator{}, "permit_status", status)
		if err != nil {
			dashboardError(c, err)
			return
		}
		totals[name] = total
	}

	assetsByStatus, err := stats.GroupByField(db, &models.Asset{}, "status")
	if err != nil {
		dashboardError(c, err)
		return
	}
	assetsByCategory, err := stats.GroupByForeignKey(db, &models.Asset{}, "assets", "category_id", "categories", "name")
	if err != nil {
		dashboardError(c, err)
		return
	}
	assetsByLocation, err := stats.GroupByForeignKey(db, &models.Asset{}, "assets", "location_id", "locations", "name")
	if err != nil {
		dashboardError(c, err)
		return
	}
	assetsByUser, err := stats.GroupByForeignKey(db, &models.Asset{}, "assets", "assigned_to_user_id", "users", "name")
	if err != nil {
		dashboardError(c, err)
		return
	}
	operatorsByStatus, err := stats.GroupByField(db, &models.Operator{}, "permit_status")
	if err != nil {
		dashboardError(c, err)
		return
	}
	operatorsByToda, err := stats.GroupByForeignKey(db, &models.Operator{}, "operators", "toda_id", "toda", "toda_name")
	if err != nil {
		dashboardError(c, err)
		return
	}
	recent, err := stats.RecentOperators(db, 50)
	if err != nil {
		dashboardError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totals": totals,
		"charts": gin.H{
			"assets_by_status":        assetsByStatus,
			"assets_by_category":      assetsByCategory,
			"assets_by_location":      assetsByLocation,
			"assets_by_assigned_user": assetsByUser,
			"operators_by_status":     operatorsByStatus,
			"operators_by_toda":       operatorsByToda,
		},
		"operators_list": recent,
	})
}

// DashboardOperatorStats serves the operator-management dashboard charts.
// Operators-per-TODA is counted from the TODA side so empty associations
// still chart with zero.
func DashboardOperatorStats(c *gin.Context) {
	db := config.DB

	payload := gin.H{}
	for name, model := range map[string]any{
		"total_operators":   &models.Operator{},
		"total_drivers":     &models.Driver{},
		"total_motorcycles": &models.Motorcycle{},
		"total_toda":        &models.Toda{},
	} {
		total, err := stats.CountAll(db, model)
		if err != nil {
			dashboardError(c, err)
			return
		}
		payload[name] = total
	}
	for name, status := range map[string]string{
		"new_permits":    models.PermitStatusNew,
		"renew_permits":  models.PermitStatusRenew,
		"retire_permits": models.PermitStatusRetire,
	} {
		total, err := stats.CountWhere(db, &models.Operator{}, "permit_status", status)
		if err != nil {
			dashboardError(c, err)
			return
		}
		payload[name] = total
	}

	operatorsByToda, err := stats.TodaOperatorCounts(db)
	if err != nil {
		dashboardError(c, err)
		return
	}
	operatorsByStatus, err := stats.GroupByField(db, &models.Operator{}, "permit_status")
	if err != nil {
		dashboardError(c, err)
		return
	}

	payload["charts"] = gin.H{
		"operators_by_toda":   operatorsByToda,
		"operators_by_status": operatorsByStatus,
	}
	c.JSON(http.StatusOK, payload)
}

// DashboardRecentOperators serves the recent-operator table.
func DashboardRecentOperators(c *gin.Context) {
	recent, err := stats.RecentOperators(config.DB, 100)
	if err != nil {
		dashboardError(c, err)
		return
	}
	c.JSON(http.StatusOK, recent)
}

// DashboardOverview is the condensed landing-page payload.
func DashboardOverview(c *gin.Context) {
	db := config.DB

	assetStats := gin.H{}
	for name, model := range map[string]any{
		"total_assets":        &models.Asset{},
		"total_categories":    &models.Category{},
		"total_manufacturers": &models.Manufacturer{},
		"total_locations":     &models.Location{},
	} {
		total, err := stats.CountAll(db, model)
		if err != nil {
			dashboardError(c, err)
			return
		}
		assetStats[name] = total
	}

	operatorStats := gin.H{}
	for name, model := range map[string]any{
		"total_operators":   &models.Operator{},
		"total_drivers":     &models.Driver{},
		"total_motorcycles": &models.Motorcycle{},
		"total_toda":        &models.Toda{},
	} {
		total, err := stats.CountAll(db, model)
		if err != nil {
			dashboardError(c, err)
			return
		}
		operatorStats[name] = total
	}
	for name, status := range map[string]string{
		"new_permits":    models.PermitStatusNew,
		"renew_permits":  models.PermitStatusRenew,
		"retire_permits": models.PermitStatusRetire,
	} {
		total, err := stats.CountWhere(db, &models.Operator{}, "permit_status", status)
		if err != nil {
			dashboardError(c, err)
			return
		}
		operatorStats[name] = total
	}

	recent, err := stats.RecentOperators(db, 10)
	if err != nil {
		dashboardError(c, err)
		return
	}
	overviewRows := make([]gin.H, 0, len(recent))
	for _, row := range recent {
		registered, _ := resources.DateOnlyToDisplay(row.DateRegistered)
		overviewRows = append(overviewRows, gin.H{
			"id":              row.ID,
			"fullname":        row.Fullname,
			"driver_fullname": row.DriverFullname,
			"plate_number":    row.PlateNumber,
			"toda_name":       row.TodaName,
			"permit_status":   row.PermitStatus,
			"date_registered": registered,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"asset_stats":      assetStats,
		"operator_stats":   operatorStats,
		"recent_operators": overviewRows,
	})
}

func dashboardError(c *gin.Context, err error) {
	logrus.WithError(err).Error("Dashboard aggregation failed")
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to compute dashboard data."})
}
