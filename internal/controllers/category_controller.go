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

type categoryInput struct {
	Name        string `json:"name" binding:"required,min=3,max=255"`
	Description string `json:"description" binding:"omitempty,max=500"`
}

// CategoryIndex serves the category page shell. The category form has no
// dropdown lookups.
func CategoryIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{})
}

// ListCategories returns one filtered, sorted page of categories.
func ListCategories(c *gin.Context) {
	params, ok := bindListParams(c)
	if !ok {
		return
	}

	result, err := query.List[models.Category](config.DB, query.Categories, params)
	if err != nil {
		respondListError(c, err)
		return
	}

	data := make([]resources.CategoryResource, 0, len(result.Items))
	for _, category := range result.Items {
		data = append(data, resources.NewCategoryResource(category))
	}
	c.JSON(http.StatusOK, gin.H{"data": data, "meta": listMeta(result)})
}

// CreateCategory stores a new category.
func CreateCategory(c *gin.Context) {
	var input categoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondValidation(c, err)
		return
	}

	if taken, err := categoryNameTaken(input.Name, 0); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create category."})
		return
	} else if taken {
		respondFieldError(c, "name", "A category with this name already exists.")
		return
	}

	category := models.Category{
		Name:        input.Name,
		Description: input.Description,
	}
	if err := config.DB.Create(&category).Error; err != nil {
		if isUniqueViolation(err) {
			respondFieldError(c, "name", "A category with this name already exists.")
			return
		}
		logrus.WithError(err).Error("Failed to create category")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create category."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Category created successfully!",
		"category": category,
	})
}

// GetCategory retrieves a category by ID.
func GetCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var category models.Category
	if err := config.DB.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Category not found."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error."})
		}
		return
	}
	c.JSON(http.StatusOK, category)
}

// UpdateCategory modifies an existing category. The uniqueness check excludes
// the category's own row, so re-saving an unchanged name passes.
func UpdateCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var category models.Category
	if err := config.DB.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Category not found."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error."})
		}
		return
	}

	var input categoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondValidation(c, err)
		return
	}

	if taken, err := categoryNameTaken(input.Name, category.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update category."})
		return
	} else if taken {
		respondFieldError(c, "name", "A category with this name already exists.")
		return
	}

	category.Name = input.Name
	category.Description = input.Description
	if err := config.DB.Save(&category).Error; err != nil {
		if isUniqueViolation(err) {
			respondFieldError(c, "name", "A category with this name already exists.")
			return
		}
		logrus.WithError(err).Error("Failed to update category")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update category."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Category updated successfully!",
		"category": category,
	})
}

// DeleteCategory removes a category. Assets in the category keep their rows;
// the foreign key is set to null by the schema constraint.
func DeleteCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var category models.Category
	if err := config.DB.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Category not found."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error."})
		}
		return
	}

	if err := config.DB.Delete(&category).Error; err != nil {
		logrus.WithError(err).Error("Failed to delete category")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete category."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully."})
}

func categoryNameTaken(name string, excludeID uint) (bool, error) {
	var count int64
	err := config.DB.Model(&models.Category{}).
		Where("name = ? AND id <> ?", name, excludeID).
		Count(&count).Error
	return count > 0, err
}
