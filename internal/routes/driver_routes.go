package routes

import (
	"github.com/gin-gonic/gin"

	"mtop_registry/internal/controllers"
	"mtop_registry/internal/middleware"
	"mtop_registry/internal/models"
)

func DriverRoutes(r *gin.Engine) {
	drivers := r.Group("/drivers")
	drivers.Use(middleware.RequireAuth())
	{
		drivers.GET("", controllers.DriverIndex)
		drivers.POST("/list", controllers.ListDrivers)
		drivers.POST("", controllers.CreateDriver)
		drivers.GET("/:id", controllers.GetDriver)
		drivers.PUT("/:id", controllers.UpdateDriver)
		drivers.PATCH("/:id", controllers.UpdateDriver)
		drivers.DELETE("/:id", middleware.RequireAuthWithRole(models.RoleAdmin), controllers.DeleteDriver)
	}
}
