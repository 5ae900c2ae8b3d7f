package controllers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"mtop_registry/internal/controllers"
	"mtop_registry/internal/models"
)

func operatorRouter() *gin.Engine {
	r := gin.New()
	r.GET("/operators", controllers.OperatorIndex)
	r.POST("/operators/list", controllers.ListOperators)
	r.GET("/operators/statistics", controllers.OperatorStatistics)
	r.POST("/operators", controllers.CreateOperator)
	r.GET("/operators/:id", controllers.GetOperator)
	r.PUT("/operators/:id", controllers.UpdateOperator)
	r.DELETE("/operators/:id", controllers.DeleteOperator)
	r.DELETE("/drivers/:id", controllers.DeleteDriver)
	r.DELETE("/toda/:id", controllers.DeleteToda)
	return r
}

func seedOperatorParents(t *testing.T, db *gorm.DB, n int) (models.Driver, models.Motorcycle, models.Toda) {
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

	return driver, motorcycle, toda
}

func operatorPayload(driver models.Driver, motorcycle models.Motorcycle, toda models.Toda) gin.H {
	return gin.H{
		"fullname":        "Maria Santos",
		"address":         "Poblacion, San Isidro",
		"email_address":   "maria@example.com",
		"contact_number":  "09171234567",
		"driver_id":       driver.ID,
		"motorcycle_id":   motorcycle.ID,
		"toda_id":         toda.ID,
		"mtop_number":     "MTOP-0001",
		"date_registered": "2025-06-10",
		"permit_status":   models.PermitStatusNew,
	}
}

func TestCreateOperator(t *testing.T) {
	db := useTestDB(t)
	router := operatorRouter()
	driver, motorcycle, toda := seedOperatorParents(t, db, 1)

	w := jsonRequest(t, router, http.MethodPost, "/operators", operatorPayload(driver, motorcycle, toda))
	require.Equal(t, http.StatusCreated, w.Code)

	var operator models.Operator
	require.NoError(t, db.First(&operator).Error)
	assert.Equal(t, "Maria Santos", operator.Fullname)
	assert.Equal(t, driver.ID, operator.DriverID)
	assert.Nil(t, operator.DateLastPaid)
}

func TestCreateOperatorRejectsMissingParents(t *testing.T) {
	useTestDB(t)
	router := operatorRouter()

	payload := operatorPayload(
		models.Driver{ID: 999}, models.Motorcycle{ID: 998}, models.Toda{ID: 997},
	)
	w := jsonRequest(t, router, http.MethodPost, "/operators", payload)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	errs := decodeBody(t, w)["errors"].(map[string]any)
	assert.Contains(t, errs, "driver_id")
	assert.Contains(t, errs, "motorcycle_id")
	assert.Contains(t, errs, "toda_id")
}

func TestCreateOperatorRejectsFutureRegistrationDate(t *testing.T) {
	db := useTestDB(t)
	router := operatorRouter()
	driver, motorcycle, toda := seedOperatorParents(t, db, 1)

	payload := operatorPayload(driver, motorcycle, toda)
	payload["date_registered"] = time.Now().AddDate(0, 0, 7).Format("2006-01-02")

	w := jsonRequest(t, router, http.MethodPost, "/operators", payload)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	errs := decodeBody(t, w)["errors"].(map[string]any)
	assert.Contains(t, errs, "date_registered")
}

func TestCreateOperatorRejectsBadPermitStatus(t *testing.T) {
	db := useTestDB(t)
	router := operatorRouter()
	driver, motorcycle, toda := seedOperatorParents(t, db, 1)

	payload := operatorPayload(driver, motorcycle, toda)
	payload["permit_status"] = "expired"

	w := jsonRequest(t, router, http.MethodPost, "/operators", payload)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	errs := decodeBody(t, w)["errors"].(map[string]any)
	assert.Contains(t, errs, "permit_status")
}

func TestCreateOperatorRejectsDuplicateMtopNumber(t *testing.T) {
	db := useTestDB(t)
	router := operatorRouter()
	driver, motorcycle, toda := seedOperatorParents(t, db, 1)

	w := jsonRequest(t, router, http.MethodPost, "/operators", operatorPayload(driver, motorcycle, toda))
	require.Equal(t, http.StatusCreated, w.Code)

	driver2, motorcycle2, toda2 := seedOperatorParents(t, db, 2)
	payload := operatorPayload(driver2, motorcycle2, toda2)
	payload["email_address"] = "someone.else@example.com"

	w = jsonRequest(t, router, http.MethodPost, "/operators", payload)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	errs := decodeBody(t, w)["errors"].(map[string]any)
	assert.Contains(t, errs, "mtop_number")
}

func TestUpdateOperatorKeepsOwnUniqueFields(t *testing.T) {
	db := useTestDB(t)
	router := operatorRouter()
	driver, motorcycle, toda := seedOperatorParents(t, db, 1)

	w := jsonRequest(t, router, http.MethodPost, "/operators", operatorPayload(driver, motorcycle, toda))
	require.Equal(t, http.StatusCreated, w.Code)

	var operator models.Operator
	require.NoError(t, db.First(&operator).Error)

	// Unchanged email and MTOP number pass the self-excluded checks; the
	// optional payment date gets set.
	payload := operatorPayload(driver, motorcycle, toda)
	payload["permit_status"] = models.PermitStatusRenew
	payload["date_last_paid"] = "2026-01-15"

	w = jsonRequest(t, router, http.MethodPut, fmt.Sprintf("/operators/%d", operator.ID), payload)
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, db.First(&operator, operator.ID).Error)
	assert.Equal(t, models.PermitStatusRenew, operator.PermitStatus)
	require.NotNil(t, operator.DateLastPaid)
	assert.Equal(t, "2026-01-15", operator.DateLastPaid.Format("2006-01-02"))
}

func TestDeleteDriverCascadesToOperator(t *testing.T) {
	db := useTestDB(t)
	router := operatorRouter()
	driver, motorcycle, toda := seedOperatorParents(t, db, 1)

	w := jsonRequest(t, router, http.MethodPost, "/operators", operatorPayload(driver, motorcycle, toda))
	require.Equal(t, http.StatusCreated, w.Code)

	w = jsonRequest(t, router, http.MethodDelete, fmt.Sprintf("/drivers/%d", driver.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var operators int64
	require.NoError(t, db.Model(&models.Operator{}).Count(&operators).Error)
	assert.Equal(t, int64(0), operators)

	// The other parents are untouched.
	var motorcycles, todas int64
	require.NoError(t, db.Model(&models.Motorcycle{}).Count(&motorcycles).Error)
	require.NoError(t, db.Model(&models.Toda{}).Count(&todas).Error)
	assert.Equal(t, int64(1), motorcycles)
	assert.Equal(t, int64(1), todas)
}

func TestDeleteTodaCascadesToOperator(t *testing.T) {
	db := useTestDB(t)
	router := operatorRouter()
	driver, motorcycle, toda := seedOperatorParents(t, db, 1)

	w := jsonRequest(t, router, http.MethodPost, "/operators", operatorPayload(driver, motorcycle, toda))
	require.Equal(t, http.StatusCreated, w.Code)

	w = jsonRequest(t, router, http.MethodDelete, fmt.Sprintf("/toda/%d", toda.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var operators int64
	require.NoError(t, db.Model(&models.Operator{}).Count(&operators).Error)
	assert.Equal(t, int64(0), operators)

	var drivers int64
	require.NoError(t, db.Model(&models.Driver{}).Count(&drivers).Error)
	assert.Equal(t, int64(1), drivers)
}

func TestOperatorIndexLookups(t *testing.T) {
	db := useTestDB(t)
	router := operatorRouter()
	seedOperatorParents(t, db, 1)

	w := jsonRequest(t, router, http.MethodGet, "/operators", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Len(t, body["drivers"].([]any), 1)
	assert.Len(t, body["motorcycles"].([]any), 1)
	assert.Len(t, body["toda"].([]any), 1)
}

func TestOperatorStatistics(t *testing.T) {
	db := useTestDB(t)
	router := operatorRouter()

	for n, status := range []string{models.PermitStatusNew, models.PermitStatusNew, models.PermitStatusRetire} {
		driver, motorcycle, toda := seedOperatorParents(t, db, n)
		payload := operatorPayload(driver, motorcycle, toda)
		payload["email_address"] = fmt.Sprintf("operator%d@example.com", n)
		payload["mtop_number"] = fmt.Sprintf("MTOP-%04d", n)
		payload["permit_status"] = status
		w := jsonRequest(t, router, http.MethodPost, "/operators", payload)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := jsonRequest(t, router, http.MethodGet, "/operators/statistics", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(3), body["total_operators"])
	assert.Len(t, body["by_permit_status"].([]any), 2)
}
