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

type driverInput struct {
	DriverFullname      string `json:"driver_fullname" binding:"required,max=255"`
	DriverLicenseNumber string `json:"driver_license_number" binding:"required,max=50"`
	ExpirationDate      string `json:"expiration_date" binding:"required"`
	DriverContactNumber string `json:"driver_contact_number" binding:"required,max=20"`
}

func DriverIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{})
}

func ListDrivers(c *gin.Context) {
	params, ok := bindListParams(c)
	if !ok {
		return
	}

	result, err := query.List[models.Driver](config.DB, query.Drivers, params)
	if err != nil {
		respondListError(c, err)
		return
	}

	data := make([]resources.DriverResource, 0, len(result.Items))
	for _, driver := range result.Items {
		data = append(data, resources.NewDriverResource(driver))
	}
	c.JSON(http.StatusOK, gin.H{"data": data, "meta": listMeta(result)})
}

func CreateDriver(c *gin.Context) {
	var input driverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondValidation(c, err)
		return
	}

	fieldErrs := map[string]string{}
	// A license registered here must still be valid.
	expiration := parseDateField("expiration_date", input.ExpirationDate, true, fieldErrs)
	if taken, err := driverLicenseTaken(input.DriverLicenseNumber, 0); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create driver."})
		return
	} else if taken {
		fieldErrs["driver_license_number"] = "This driver license number is already registered."
	}
	if len(fieldErrs) > 0 {
		respondFieldErrors(c, fieldErrs)
		return
	}

	driver := models.Driver{
		DriverFullname:      input.DriverFullname,
		DriverLicenseNumber: input.DriverLicenseNumber,
		ExpirationDate:      expiration,
		DriverContactNumber: input.DriverContactNumber,
	}
	if err := config.DB.Create(&driver).Error; err != nil {
		if isUniqueViolation(err) {
			respondFieldError(c, "driver_license_number", "This driver license number is already registered.")
			return
		}
		logrus.WithError(err).Error("Failed to create driver")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create driver."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Driver created successfully!",
		"driver":  driver,
	})
}

func GetDriver(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var driver models.Driver
	if err := config.DB.First(&driver, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Driver not found."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error."})
		}
		return
	}
	c.JSON(http.StatusOK, driver)
}

func UpdateDriver(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var driver models.Driver
	if err := config.DB.First(&driver, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Driver not found."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error."})
		}
		return
	}

	var input driverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondValidation(c, err)
		return
	}

	fieldErrs := map[string]string{}
	expiration := parseDateField("expiration_date", input.ExpirationDate, true, fieldErrs)
	if taken, err := driverLicenseTaken(input.DriverLicenseNumber, driver.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update driver."})
		return
	} else if taken {
		fieldErrs["driver_license_number"] = "This driver license number is already registered."
	}
	if len(fieldErrs) > 0 {
		respondFieldErrors(c, fieldErrs)
		return
	}

	driver.DriverFullname = input.DriverFullname
	driver.DriverLicenseNumber = input.DriverLicenseNumber
	driver.ExpirationDate = expiration
	driver.DriverContactNumber = input.DriverContactNumber
	if err := config.DB.Save(&driver).Error; err != nil {
		if isUniqueViolation(err) {
			respondFieldError(c, "driver_license_number", "This driver license number is already registered.")
			return
		}
		logrus.WithError(err).Error("Failed to update driver")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update driver."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Driver updated successfully!",
		"driver":  driver,
	})
}

// DeleteDriver removes a driver and, in the same transaction, the operator
// permits that depend on it. A failed cascade rolls everything back.
func DeleteDriver(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var driver models.Driver
	if err := config.DB.First(&driver, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Driver not found."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error."})
		}
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("driver_id = ?", driver.ID).Delete(&models.Operator{}).Error; err != nil {
			return err
		}
		return tx.Delete(&driver).Error
	})
	if err != nil {
		logrus.WithError(err).Error("Failed to delete driver")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete driver."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Driver deleted successfully."})
}

func driverLicenseTaken(license string, excludeID uint) (bool, error) {
	var count int64
	err := config.DB.Model(&models.Driver{}).
		Where("driver_license_number = ? AND id <> ?", license, excludeID).
		Count(&count).Error
	return count > 0, err
}
