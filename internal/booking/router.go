package booking

import (
	"tixora/internal/shared/config"
	"tixora/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupBookingRoutes registers the booking session and order routes
func SetupBookingRoutes(rg *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	bookingGroup := rg.Group("/bookings")
	bookingGroup.Use(middleware.JWTAuthWithConfig(cfg))
	{
		sessions := bookingGroup.Group("/sessions")
		{
			sessions.POST("", controller.StartSession)
			sessions.GET("/:id", controller.GetSession)
			sessions.POST("/:id/quantity", controller.ChangeQuantity)
			sessions.PUT("/:id/slots/:index", controller.UpdateSlot)
			sessions.POST("/:id/owner", controller.AssignOwner)
			sessions.GET("/:id/quote", controller.GetQuote)
			sessions.POST("/:id/submit", controller.Submit)
		}

		orders := bookingGroup.Group("/orders")
		{
			orders.GET("", controller.ListOrders)
			orders.GET("/:id", controller.GetOrder)
		}
	}

	// Gateway callback is server-to-server and carries no customer JWT
	rg.POST("/payments/callback", controller.PaymentCallback)
}
