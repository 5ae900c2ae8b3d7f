package routes

import (
	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"mtop_registry/internal/middleware"
)

// SetupRouter builds the gin engine and registers every resource.
func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlogger.SetLogger())
	r.Use(middleware.CORS())

	AuthRoutes(r)
	DashboardRoutes(r)
	AssetRoutes(r)
	CategoryRoutes(r)
	ManufacturerRoutes(r)
	LocationRoutes(r)
	DriverRoutes(r)
	MotorcycleRoutes(r)
	TodaRoutes(r)
	OperatorRoutes(r)

	return r
}
