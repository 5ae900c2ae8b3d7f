package routes

import (
	"github.com/gin-gonic/gin"

	"mtop_registry/internal/controllers"
	"mtop_registry/internal/middleware"
	"mtop_registry/internal/models"
)

func TodaRoutes(r *gin.Engine) {
	toda := r.Group("/toda")
	toda.Use(middleware.RequireAuth())
	{
		toda.GET("", controllers.TodaIndex)
		toda.POST("/list", controllers.ListTodas)
		toda.POST("", controllers.CreateToda)
		toda.GET("/:id", controllers.GetToda)
		toda.GET("/:id/operator-stats", controllers.TodaOperatorStats)
		toda.PUT("/:id", controllers.UpdateToda)
		toda.PATCH("/:id", controllers.UpdateToda)
		toda.DELETE("/:id", middleware.RequireAuthWithRole(models.RoleAdmin), controllers.DeleteToda)
	}
}
