package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"mtop_registry/internal/config"
	"mtop_registry/internal/models"
	"mtop_registry/internal/query"
	"mtop_registry/internal/resources"
)

type assetInput struct {
	CategoryID       *uint   `json:"category_id"`
	LocationID       *uint   `json:"location_id"`
	ManufacturerID   *uint   `json:"manufacturer_id"`
	AssignedToUserID *uint   `json:"assigned_to_user_id"`
	AssetTag         string  `json:"asset_tag" binding:"omitempty,max=100"`
	Name             string  `json:"name" binding:"required,min=3,max=255"`
	SerialNumber     string  `json:"serial_number" binding:"omitempty,max=255"`
	ModelName        string  `json:"model_name" binding:"omitempty,max=255"`
	PurchaseDate     string  `json:"purchase_date" binding:"required"`
	PurchasePrice    float64 `json:"purchase_price" binding:"omitempty,gte=0"`
	Status           string  `json:"status" binding:"required,oneof='Deployed' 'In Storage' 'Maintenance' 'Retired' 'Broken'"`
	Notes            string  `json:"notes" binding:"omitempty,max=1000"`
}

type lookupOption struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// AssetIndex serves the lookup lists the asset form's dropdowns need.
func AssetIndex(c *gin.Context) {
	var categories, locations, manufacturers, users []lookupOption

	if err := errors.Join(
		config.DB.Model(&models.Category{}).Select("id, name").Order("name asc").Scan(&categories).Error,
		config.DB.Model(&models.Location{}).Select("id, name").Order("name asc").Scan(&locations).Error,
		config.DB.Model(&models.Manufacturer{}).Select("id, name").Order("name asc").Scan(&manufacturers).Error,
		config.DB.Model(&models.User{}).Select("id, name").Order("name asc").Scan(&users).Error,
	); err != nil {
		logrus.WithError(err).Error("Failed to load asset form lookups")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load lookups."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories":    categories,
		"locations":     locations,
		"manufacturers": manufacturers,
		"users":         users,
	})
}

func ListAssets(c *gin.Context) {
	params, ok := bindListParams(c)
	if !ok {
		return
	}

	result, err := query.List[models.Asset](config.DB, query.Assets, params)
	if err != nil {
		respondListError(c, err)
		return
	}

	data := make([]resources.AssetResource, 0, len(result.Items))
	for _, asset := range result.Items {
		data = append(data, resources.NewAssetResource(asset))
	}
	c.JSON(http.StatusOK, gin.H{"data": data, "meta": listMeta(result)})
}

func CreateAsset(c *gin.Context) {
	var input assetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondValidation(c, err)
		return
	}

	fieldErrs := map[string]string{}
	purchaseDate := parseDateField("purchase_date", input.PurchaseDate, false, fieldErrs)
	checkAssetParents(&input, fieldErrs)
	if len(fieldErrs) > 0 {
		respondFieldErrors(c, fieldErrs)
		return
	}

	assetTag := strings.TrimSpace(input.AssetTag)
	if assetTag == "" {
		assetTag = newAssetTag()
	}

	asset := models.Asset{
		CategoryID:       input.CategoryID,
		LocationID:       input.LocationID,
		ManufacturerID:   input.ManufacturerID,
		AssignedToUserID: input.AssignedToUserID,
		AssetTag:         assetTag,
		Name:             input.Name,
		SerialNumber:     input.SerialNumber,
		ModelName:        input.ModelName,
		PurchaseDate:     purchaseDate,
		PurchasePrice:    input.PurchasePrice,
		Status:           input.Status,
		Notes:            input.Notes,
	}
	if err := config.DB.Create(&asset).Error; err != nil {
		if isUniqueViolation(err) {
			respondFieldError(c, "asset_tag", "An asset with this tag already exists.")
			return
		}
		logrus.WithError(err).Error("Failed to create asset")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create asset."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Asset created successfully!",
		"asset":   asset,
	})
}

func GetAsset(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var asset models.Asset
	if err := config.DB.
		Preload("Category").
		Preload("Location").
		Preload("Manufacturer").
		Preload("AssignedTo").
		First(&asset, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Asset not found."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error."})
		}
		return
	}
	c.JSON(http.StatusOK, asset)
}

func UpdateAsset(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var asset models.Asset
	if err := config.DB.First(&asset, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Asset not found."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error."})
		}
		return
	}

	var input assetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondValidation(c, err)
		return
	}

	fieldErrs := map[string]string{}
	purchaseDate := parseDateField("purchase_date", input.PurchaseDate, false, fieldErrs)
	checkAssetParents(&input, fieldErrs)
	if len(fieldErrs) > 0 {
		respondFieldErrors(c, fieldErrs)
		return
	}

	asset.CategoryID = input.CategoryID
	asset.LocationID = input.LocationID
	asset.ManufacturerID = input.ManufacturerID
	asset.AssignedToUserID = input.AssignedToUserID
	if tag := strings.TrimSpace(input.AssetTag); tag != "" {
		asset.AssetTag = tag
	}
	asset.Name = input.Name
	asset.SerialNumber = input.SerialNumber
	asset.ModelName = input.ModelName
	asset.PurchaseDate = purchaseDate
	asset.PurchasePrice = input.PurchasePrice
	asset.Status = input.Status
	asset.Notes = input.Notes

	if err := config.DB.Save(&asset).Error; err != nil {
		if isUniqueViolation(err) {
			respondFieldError(c, "asset_tag", "An asset with this tag already exists.")
			return
		}
		logrus.WithError(err).Error("Failed to update asset")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update asset."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Asset updated successfully!",
		"asset":   asset,
	})
}

func DeleteAsset(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var asset models.Asset
	if err := config.DB.First(&asset, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Asset not found."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error."})
		}
		return
	}

	if err := config.DB.Delete(&asset).Error; err != nil {
		logrus.WithError(err).Error("Failed to delete asset")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete asset."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Asset deleted successfully."})
}

// checkAssetParents verifies that every provided (nullable) parent reference
// resolves to a real record.
func checkAssetParents(input *assetInput, errs map[string]string) {
	check := func(id *uint, model any, field, label string) {
		if id == nil {
			return
		}
		var count int64
		if err := config.DB.Model(model).Where("id = ?", *id).Count(&count).Error; err != nil || count == 0 {
			errs[field] = "The selected " + label + " does not exist."
		}
	}
	check(input.CategoryID, &models.Category{}, "category_id", "category")
	check(input.LocationID, &models.Location{}, "location_id", "location")
	check(input.ManufacturerID, &models.Manufacturer{}, "manufacturer_id", "manufacturer")
	check(input.AssignedToUserID, &models.User{}, "assigned_to_user_id", "user")
}

// newAssetTag generates a tag for assets submitted without one.
func newAssetTag() string {
	return "AST-" + strings.ToUpper(uuid.NewString()[:8])
}
