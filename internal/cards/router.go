package cards

import (
	"tixora/internal/shared/config"
	"tixora/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupCardRoutes registers card routes on the given group
func SetupCardRoutes(rg *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	cardGroup := rg.Group("/cards")
	cardGroup.Use(middleware.JWTAuthWithConfig(cfg))
	{
		cardGroup.GET("/status", controller.GetStatus)
	}
}
