package routes

import (
	"github.com/gin-gonic/gin"

	"mtop_registry/internal/controllers"
	"mtop_registry/internal/middleware"
	"mtop_registry/internal/models"
)

func LocationRoutes(r *gin.Engine) {
	locations := r.Group("/locations")
	locations.Use(middleware.RequireAuth())
	{
		locations.GET("", controllers.LocationIndex)
		locations.POST("/list", controllers.ListLocations)
		locations.POST("", controllers.CreateLocation)
		locations.GET("/:id", controllers.GetLocation)
		locations.PUT("/:id", controllers.UpdateLocation)
		locations.PATCH("/:id", controllers.UpdateLocation)
		locations.DELETE("/:id", middleware.RequireAuthWithRole(models.RoleAdmin), controllers.DeleteLocation)
	}
}
