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

type locationInput struct {
	Name    string `json:"name" binding:"required,max=255"`
	Address string `json:"address" binding:"omitempty,max=500"`
}

func LocationIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{})
}

func ListLocations(c *gin.Context) {
	params, ok := bindListParams(c)
	if !ok {
		return
	}

	result, err := query.List[models.Location](config.DB, query.Locations, params)
	if err != nil {
		respondListError(c, err)
		return
	}

	data := make([]resources.LocationResource, 0, len(result.Items))
	for _, location := range result.Items {
		data = append(data, resources.NewLocationResource(location))
	}
	c.JSON(http.StatusOK, gin.H{"data": data, "meta": listMeta(result)})
}

func CreateLocation(c *gin.Context) {
	var input locationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondValidation(c, err)
		return
	}

	location := models.Location{
		Name:    input.Name,
		Address: input.Address,
	}
	if err := config.DB.Create(&location).Error; err != nil {
		logrus.WithError(err).Error("Failed to create location")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create location."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Location created successfully!",
		"location": location,
	})
}

func GetLocation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var location models.Location
	if err := config.DB.First(&location, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Location not found."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error."})
		}
		return
	}
	c.JSON(http.StatusOK, location)
}

func UpdateLocation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var location models.Location
	if err := config.DB.First(&location, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Location not found."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error."})
		}
		return
	}

	var input locationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondValidation(c, err)
		return
	}

	location.Name = input.Name
	location.Address = input.Address
	if err := config.DB.Save(&location).Error; err != nil {
		logrus.WithError(err).Error("Failed to update location")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update location."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Location updated successfully!",
		"location": location,
	})
}

func DeleteLocation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var location models.Location
	if err := config.DB.First(&location, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Location not found."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error."})
		}
		return
	}

	if err := config.DB.Delete(&location).Error; err != nil {
		logrus.WithError(err).Error("Failed to delete location")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete location."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Location deleted successfully."})
}
