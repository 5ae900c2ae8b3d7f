package routes

import (
	"github.com/gin-gonic/gin"

	"mtop_registry/internal/controllers"
	"mtop_registry/internal/middleware"
	"mtop_registry/internal/models"
)

func AssetRoutes(r *gin.Engine) {
	assets := r.Group("/assets")
	assets.Use(middleware.RequireAuth())
	{
		assets.GET("", controllers.AssetIndex)
		assets.POST("/list", controllers.ListAssets)
		assets.POST("", controllers.CreateAsset)
		assets.GET("/:id", controllers.GetAsset)
		assets.PUT("/:id", controllers.UpdateAsset)
		assets.PATCH("/:id", controllers.UpdateAsset)
		assets.DELETE("/:id", middleware.RequireAuthWithRole(models.RoleAdmin), controllers.DeleteAsset)
	}
}
