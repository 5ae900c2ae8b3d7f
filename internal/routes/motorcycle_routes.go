package routes

import (
	"github.com/gin-gonic/gin"

	"mtop_registry/internal/controllers"
	"mtop_registry/internal/middleware"
	"mtop_registry/internal/models"
)

func MotorcycleRoutes(r *gin.Engine) {
	motorcycles := r.Group("/motorcycles")
	motorcycles.Use(middleware.RequireAuth())
	{
		motorcycles.GET("", controllers.MotorcycleIndex)
		motorcycles.POST("/list", controllers.ListMotorcycles)
		motorcycles.POST("", controllers.CreateMotorcycle)
		motorcycles.GET("/:id", controllers.GetMotorcycle)
		motorcycles.PUT("/:id", controllers.UpdateMotorcycle)
		motorcycles.PATCH("/:id", controllers.UpdateMotorcycle)
		motorcycles.DELETE("/:id", middleware.RequireAuthWithRole(models.RoleAdmin), controllers.DeleteMotorcycle)
	}
}
