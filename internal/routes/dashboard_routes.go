package routes

import (
	"github.com/gin-gonic/gin"

	"mtop_registry/internal/controllers"
	"mtop_registry/internal/middleware"
)

func DashboardRoutes(r *gin.Engine) {
	dashboard := r.Group("/dashboard")
	dashboard.Use(middleware.RequireAuth())
	{
		dashboard.GET("/stats", controllers.DashboardStats)
		dashboard.GET("/operator-stats", controllers.DashboardOperatorStats)
		dashboard.GET("/recent-operators", controllers.DashboardRecentOperators)
		dashboard.GET("/overview", controllers.DashboardOverview)
	}
}
