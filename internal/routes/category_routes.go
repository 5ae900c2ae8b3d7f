package routes

import (
	"github.com/gin-gonic/gin"

	"mtop_registry/internal/controllers"
	"mtop_registry/internal/middleware"
	"mtop_registry/internal/models"
)

func CategoryRoutes(r *gin.Engine) {
	categories := r.Group("/categories")
	categories.Use(middleware.RequireAuth())
	{
		categories.GET("", controllers.CategoryIndex)
		categories.POST("/list", controllers.ListCategories)
		categories.POST("", controllers.CreateCategory)
		categories.GET("/:id", controllers.GetCategory)
		categories.PUT("/:id", controllers.UpdateCategory)
		categories.PATCH("/:id", controllers.UpdateCategory)
		categories.DELETE("/:id", middleware.RequireAuthWithRole(models.RoleAdmin), controllers.DeleteCategory)
	}
}
