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

type manufacturerInput struct {
	Name         string `json:"name" binding:"required,min=3,max=255"`
	URL          string `json:"url" binding:"omitempty,url,max=255"`
	SupportURL   string `json:"support_url" binding:"omitempty,url,max=255"`
	SupportPhone string `json:"support_phone" binding:"required,max=20"`
	SupportEmail string `json:"support_email" binding:"required,email,max=255"`
}

func ManufacturerIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{})
}

func ListManufacturers(c *gin.Context) {
	params, ok := bindListParams(c)
	if !ok {
		return
	}

	result, err := query.List[models.Manufacturer](config.DB, query.Manufacturers, params)
	if err != nil {
		respondListError(c, err)
		return
	}

	data := make([]resources.ManufacturerResource, 0, len(result.Items))
	for _, manufacturer := range result.Items {
		data = append(data, resources.NewManufacturerResource(manufacturer))
	}
	c.JSON(http.StatusOK, gin.H{"data": data, "meta": listMeta(result)})
}

func CreateManufacturer(c *gin.Context) {
	var input manufacturerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondValidation(c, err)
		return
	}

	if taken, err := manufacturerNameTaken(input.Name, 0); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create manufacturer."})
		return
	} else if taken {
		respondFieldError(c, "name", "A manufacturer with this name already exists.")
		return
	}

	manufacturer := models.Manufacturer{
		Name:         input.Name,
		URL:          input.URL,
		SupportURL:   input.SupportURL,
		SupportPhone: input.SupportPhone,
		SupportEmail: input.SupportEmail,
	}
	if err := config.DB.Create(&manufacturer).Error; err != nil {
		if isUniqueViolation(err) {
			respondFieldError(c, "name", "A manufacturer with this name already exists.")
			return
		}
		logrus.WithError(err).Error("Failed to create manufacturer")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create manufacturer."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Manufacturer created successfully!",
		"manufacturer": manufacturer,
	})
}

func GetManufacturer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var manufacturer models.Manufacturer
	if err := config.DB.First(&manufacturer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Manufacturer not found."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error."})
		}
		return
	}
	c.JSON(http.StatusOK, manufacturer)
}

func UpdateManufacturer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var manufacturer models.Manufacturer
	if err := config.DB.First(&manufacturer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Manufacturer not found."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error."})
		}
		return
	}

	var input manufacturerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondValidation(c, err)
		return
	}

	if taken, err := manufacturerNameTaken(input.Name, manufacturer.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update manufacturer."})
		return
	} else if taken {
		respondFieldError(c, "name", "A manufacturer with this name already exists.")
		return
	}

	manufacturer.Name = input.Name
	manufacturer.URL = input.URL
	manufacturer.SupportURL = input.SupportURL
	manufacturer.SupportPhone = input.SupportPhone
	manufacturer.SupportEmail = input.SupportEmail
	if err := config.DB.Save(&manufacturer).Error; err != nil {
		if isUniqueViolation(err) {
			respondFieldError(c, "name", "A manufacturer with this name already exists.")
			return
		}
		logrus.WithError(err).Error("Failed to update manufacturer")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update manufacturer."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Manufacturer updated successfully!",
		"manufacturer": manufacturer,
	})
}

func DeleteManufacturer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var manufacturer models.Manufacturer
	if err := config.DB.First(&manufacturer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Manufacturer not found."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error."})
		}
		return
	}

	if err := config.DB.Delete(&manufacturer).Error; err != nil {
		logrus.WithError(err).Error("Failed to delete manufacturer")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete manufacturer."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Manufacturer deleted successfully."})
}

func manufacturerNameTaken(name string, excludeID uint) (bool, error) {
	var count int64
	err := config.DB.Model(&models.Manufacturer{}).
		Where("name = ? AND id <> ?", name, excludeID).
		Count(&count).Error
	return count > 0, err
}
