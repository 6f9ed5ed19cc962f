package routes

import (
	"oysterfarm/internal/core/container"
	"oysterfarm/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.Engine, container *container.Container) {
	container.ProductHandler.RegisterRoutes(router)
	container.LocationHandler.RegisterRoutes(router)
	container.StockHandler.RegisterRoutes(router)
	container.MovementHandler.RegisterRoutes(router)
	container.StatsHandler.RegisterRoutes(router)
}

func RegisterUtilityRoutes(router *gin.Engine) {
	router.GET("/health", middleware.HealthCheckMiddleware())
}
