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

type motorcycleInput struct {
	PlateNumber    string `json:"plate_number" binding:"required,max=20"`
	MotorNumber    string `json:"motor_number" binding:"required,max=50"`
	ChassisNumber  string `json:"chassis_number" binding:"required,max=50"`
	Make           string `json:"make" binding:"required,max=100"`
	YearModel      string `json:"year_model" binding:"required,max=4"`
	RegisteredDate string `json:"registered_date" binding:"required"`
}

func MotorcycleIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{})
}

func ListMotorcycles(c *gin.Context) {
	params, ok := bindListParams(c)
	if !ok {
		return
	}

	result, err := query.List[models.Motorcycle](config.DB, query.Motorcycles, params)
	if err != nil {
		respondListError(c, err)
		return
	}

	data := make([]resources.MotorcycleResource, 0, len(result.Items))
	for _, motorcycle := range result.Items {
		data = append(data, resources.NewMotorcycleResource(motorcycle))
	}
	c.JSON(http.StatusOK, gin.H{"data": data, "meta": listMeta(result)})
}

func CreateMotorcycle(c *gin.Context) {
	var input motorcycleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondValidation(c, err)
		return
	}

	fieldErrs := map[string]string{}
	registered := parseDateField("registered_date", input.RegisteredDate, false, fieldErrs)
	if taken, err := plateNumberTaken(input.PlateNumber, 0); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create motorcycle."})
		return
	} else if taken {
		fieldErrs["plate_number"] = "This plate number is already registered."
	}
	if len(fieldErrs) > 0 {
		respondFieldErrors(c, fieldErrs)
		return
	}

	motorcycle := models.Motorcycle{
		PlateNumber:    input.PlateNumber,
		MotorNumber:    input.MotorNumber,
		ChassisNumber:  input.ChassisNumber,
		Make:           input.Make,
		YearModel:      input.YearModel,
		RegisteredDate: registered,
	}
	if err := config.DB.Create(&motorcycle).Error; err != nil {
		if isUniqueViolation(err) {
			respondFieldError(c, "plate_number", "This plate number is already registered.")
			return
		}
		logrus.WithError(err).Error("Failed to create motorcycle")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create motorcycle."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Motorcycle created successfully!",
		"motorcycle": motorcycle,
	})
}

func GetMotorcycle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var motorcycle models.Motorcycle
	if err := config.DB.First(&motorcycle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Motorcycle not found."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error."})
		}
		return
	}
	c.JSON(http.StatusOK, motorcycle)
}

func UpdateMotorcycle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var motorcycle models.Motorcycle
	if err := config.DB.First(&motorcycle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Motorcycle not found."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error."})
		}
		return
	}

	var input motorcycleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondValidation(c, err)
		return
	}

	fieldErrs := map[string]string{}
	registered := parseDateField("registered_date", input.RegisteredDate, false, fieldErrs)
	if taken, err := plateNumberTaken(input.PlateNumber, motorcycle.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update motorcycle."})
		return
	} else if taken {
		fieldErrs["plate_number"] = "This plate number is already registered."
	}
	if len(fieldErrs) > 0 {
		respondFieldErrors(c, fieldErrs)
		return
	}

	motorcycle.PlateNumber = input.PlateNumber
	motorcycle.MotorNumber = input.MotorNumber
	motorcycle.ChassisNumber = input.ChassisNumber
	motorcycle.Make = input.Make
	motorcycle.YearModel = input.YearModel
	motorcycle.RegisteredDate = registered
	if err := config.DB.Save(&motorcycle).Error; err != nil {
		if isUniqueViolation(err) {
			respondFieldError(c, "plate_number", "This plate number is already registered.")
			return
		}
		logrus.WithError(err).Error("Failed to update motorcycle")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update motorcycle."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Motorcycle updated successfully!",
		"motorcycle": motorcycle,
	})
}

// DeleteMotorcycle removes a motorcycle and its dependent operator permits in
// one transaction.
func DeleteMotorcycle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var motorcycle models.Motorcycle
	if err := config.DB.First(&motorcycle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Motorcycle not found."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error."})
		}
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("motorcycle_id = ?", motorcycle.ID).Delete(&models.Operator{}).Error; err != nil {
			return err
		}
		return tx.Delete(&motorcycle).Error
	})
	if err != nil {
		logrus.WithError(err).Error("Failed to delete motorcycle")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete motorcycle."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Motorcycle deleted successfully."})
}

func plateNumberTaken(plate string, excludeID uint) (bool, error) {
	var count int64
	err := config.DB.Model(&models.Motorcycle{}).
		Where("plate_number = ? AND id <> ?", plate, excludeID).
		Count(&count).Error
	return count > 0, err
}
