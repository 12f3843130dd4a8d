package events

import (
	"tixora/internal/shared/config"
	"tixora/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupEventRoutes registers event routes on the given group
func SetupEventRoutes(rg *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	eventGroup := rg.Group("/events")
	{
		eventGroup.GET("", controller.ListEvents)
		eventGroup.GET("/:id", controller.GetEvent)

		admin := eventGroup.Group("")
		admin.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireAdmin())
		{
			admin.POST("", controller.CreateEvent)
			admin.POST("/:id/publish", controller.PublishEvent)
		}
	}
}
