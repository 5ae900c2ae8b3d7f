package routes

import (
	"github.com/gin-gonic/gin"

	"mtop_registry/internal/controllers"
	"mtop_registry/internal/middleware"
	"mtop_registry/internal/models"
)

func ManufacturerRoutes(r *gin.Engine) {
	manufacturers := r.Group("/manufacturers")
	manufacturers.Use(middleware.RequireAuth())
	{
		manufacturers.GET("", controllers.ManufacturerIndex)
		manufacturers.POST("/list", controllers.ListManufacturers)
		manufacturers.POST("", controllers.CreateManufacturer)
		manufacturers.GET("/:id", controllers.GetManufacturer)
		manufacturers.PUT("/:id", controllers.UpdateManufacturer)
		manufacturers.PATCH("/:id", controllers.UpdateManufacturer)
		manufacturers.DELETE("/:id", middleware.RequireAuthWithRole(models.RoleAdmin), controllers.DeleteManufacturer)
	}
}
