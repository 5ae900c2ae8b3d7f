package routes

import (
	"github.com/gin-gonic/gin"

	"mtop_registry/internal/controllers"
	"mtop_registry/internal/middleware"
	"mtop_registry/internal/models"
)

func OperatorRoutes(r *gin.Engine) {
	operators := r.Group("/operators")
	operators.Use(middleware.RequireAuth())
	{
		operators.GET("", controllers.OperatorIndex)
		operators.POST("/list", controllers.ListOperators)
		operators.GET("/statistics", controllers.OperatorStatistics)
		operators.POST("", controllers.CreateOperator)
		operators.GET("/:id", controllers.GetOperator)
		operators.PUT("/:id", controllers.UpdateOperator)
		operators.PATCH("/:id", controllers.UpdateOperator)
		operators.DELETE("/:id", middleware.RequireAuthWithRole(models.RoleAdmin), controllers.DeleteOperator)
	}
}
