package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"mtop_registry/internal/config"
	"mtop_registry/internal/models"
	"mtop_registry/internal/query"
	"mtop_registry/internal/resources"
)

type todaInput struct {
	TodaName       string `json:"toda_name" binding:"required,max=255"`
	TodaPresident  string `json:"toda_president" binding:"required,max=255"`
	DateRegistered string `json:"date_registered" binding:"required"`
	TodaStatus     string `json:"toda_status" binding:"required,oneof=active inactive"`
}

func TodaIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{})
}

func ListTodas(c *gin.Context) {
	params, ok := bindListParams(c)
	if !ok {
		return
	}

	result, err := query.List[models.Toda](config.DB, query.Todas, params)
	if err != nil {
		respondListError(c, err)
		return
	}

	data := make([]resources.TodaResource, 0, len(result.Items))
	for _, toda := range result.Items {
		data = append(data, resources.NewTodaResource(toda))
	}
	c.JSON(http.StatusOK, gin.H{"data": data, "meta": listMeta(result)})
}

func CreateToda(c *gin.Context) {
	var input todaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondValidation(c, err)
		return
	}

	fieldErrs := map[string]string{}
	registered := parseDateField("date_registered", input.DateRegistered, false, fieldErrs)
	if taken, err := todaNameTaken(input.TodaName, 0); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create TODA."})
		return
	} else if taken {
		fieldErrs["toda_name"] = "A TODA with this name already exists."
	}
	if len(fieldErrs) > 0 {
		respondFieldErrors(c, fieldErrs)
		return
	}

	toda := models.Toda{
		TodaName:       input.TodaName,
		TodaPresident:  input.TodaPresident,
		DateRegistered: registered,
		TodaStatus:     input.TodaStatus,
	}
	if err := config.DB.Create(&toda).Error; err != nil {
		if isUniqueViolation(err) {
			respondFieldError(c, "toda_name", "A TODA with this name already exists.")
			return
		}
		logrus.WithError(err).Error("Failed to create TODA")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create TODA."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "TODA created successfully!",
		"toda":    toda,
	})
}

func GetToda(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var toda models.Toda
	if err := config.DB.First(&toda, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "TODA not found."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error."})
		}
		return
	}
	c.JSON(http.StatusOK, toda)
}

func UpdateToda(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var toda models.Toda
	if err := config.DB.First(&toda, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "TODA not found."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error."})
		}
		return
	}

	var input todaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondValidation(c, err)
		return
	}

	fieldErrs := map[string]string{}
	registered := parseDateField("date_registered", input.DateRegistered, false, fieldErrs)
	if taken, err := todaNameTaken(input.TodaName, toda.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update TODA."})
		return
	} else if taken {
		fieldErrs["toda_name"] = "A TODA with this name already exists."
	}
	if len(fieldErrs) > 0 {
		respondFieldErrors(c, fieldErrs)
		return
	}

	toda.TodaName = input.TodaName
	toda.TodaPresident = input.TodaPresident
	toda.DateRegistered = registered
	toda.TodaStatus = input.TodaStatus
	if err := config.DB.Save(&toda).Error; err != nil {
		if isUniqueViolation(err) {
			respondFieldError(c, "toda_name", "A TODA with this name already exists.")
			return
		}
		logrus.WithError(err).Error("Failed to update TODA")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update TODA."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "TODA updated successfully!",
		"toda":    toda,
	})
}

// DeleteToda removes a TODA and its member operator permits in one
// transaction.
func DeleteToda(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var toda models.Toda
	if err := config.DB.First(&toda, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "TODA not found."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error."})
		}
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("toda_id = ?", toda.ID).Delete(&models.Operator{}).Error; err != nil {
			return err
		}
		return tx.Delete(&toda).Error
	})
	if err != nil {
		logrus.WithError(err).Error("Failed to delete TODA")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete TODA."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "TODA deleted successfully."})
}

// TodaOperatorStats breaks down one TODA's operator permits by status.
func TodaOperatorStats(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var toda models.Toda
	if err := config.DB.First(&toda, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "TODA not found."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error."})
		}
		return
	}

	counts := gin.H{}
	for _, status := range models.PermitStatuses() {
		var total int64
		if err := config.DB.Model(&models.Operator{}).
			Where("toda_id = ? AND permit_status = ?", toda.ID, status).
			Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to compute TODA stats."})
			return
		}
		counts[status] = total
	}

	var active int64
	if err := config.DB.Model(&models.Operator{}).
		Where("toda_id = ? AND permit_status <> ?", toda.ID, models.PermitStatusRetire).
		Count(&active).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to compute TODA stats."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"toda_name":        toda.TodaName,
		"toda_status":      toda.TodaStatus,
		"by_permit_status": counts,
		"active_operators": active,
	})
}

func todaNameTaken(name string, excludeID uint) (bool, error) {
	var count int64
	err := config.DB.Model(&models.Toda{}).
		Where("toda_name = ? AND id <> ?", name, excludeID).
		Count(&count).Error
	return count > 0, err
}
