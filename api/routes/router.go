// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"tixora/internal/auth"
	"tixora/internal/booking"
	"tixora/internal/cards"
	"tixora/internal/customers"
	"tixora/internal/events"
	"tixora/internal/payments"
	"tixora/internal/shared/config"
	"tixora/internal/shared/database"
	"tixora/pkg/cache"
	"tixora/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config   *config.Config
	db       *database.DB
	producer payments.Producer

	cacheService    cache.Service
	customerService customers.Service
	eventService    events.Service
	cardService     cards.Service
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, producer payments.Producer) *Router {
	return &Router{
		config:   cfg,
		db:       db,
		producer: producer,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	if r.db.Redis != nil {
		r.cacheService = cache.NewService(r.db.GetRedisClient())
	}

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)
		r.setupEventRoutes(api)
		r.setupCardRoutes(api)
		r.setupBookingRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "tixora-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "tixora-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

// setupAuthRoutes configures authentication routes
func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	customerRepo := customers.NewRepository(r.db.GetPostgreSQL())
	r.customerService = customers.NewService(customerRepo)

	authService := auth.NewService(customerRepo, r.config)
	authController := auth.NewController(authService)
	authRouter := auth.NewRouter(authController, r.config)

	authRouter.SetupRoutes(rg)
}

// setupEventRoutes configures event and catalog routes
func (r *Router) setupEventRoutes(rg *gin.RouterGroup) {
	eventRepo := events.NewRepository(r.db.GetPostgreSQL())
	r.eventService = events.NewService(eventRepo, r.config.Redis.CatalogTTL)

	if r.cacheService != nil {
		r.eventService.SetCacheService(r.cacheService)
	}

	eventController := events.NewController(r.eventService)
	events.SetupEventRoutes(rg, eventController, r.config)
}

// setupCardRoutes configures NFC card status routes
func (r *Router) setupCardRoutes(rg *gin.RouterGroup) {
	cardRepo := cards.NewRepository(r.db.GetPostgreSQL())
	r.cardService = cards.NewService(cardRepo, r.cacheService, r.config.Redis.CardStatusTTL, logger.GetDefault())

	cardController := cards.NewController(r.cardService)
	cards.SetupCardRoutes(rg, cardController, r.config)
}

// setupBookingRoutes configures the booking session and order routes.
// Must run after the event and card routes so their services exist.
func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	sessionStore := booking.NewRedisSessionStore(r.db.GetRedisClient(), r.config.Redis.SessionTTL)
	orderRepo := booking.NewRepository(r.db.GetPostgreSQL())
	gatewayClient := payments.NewClient(r.config.Gateway)

	bookingService := booking.NewService(booking.Deps{
		Store:    sessionStore,
		Repo:     orderRepo,
		Catalog:  r.eventService,
		Identity: r.customerService,
		Cards:    r.cardService,
		Gateway:  gatewayClient,
		Producer: r.producer,
		Rules: booking.PricingRules{
			VATRate:        r.config.Pricing.VATRate,
			CardFee:        r.config.Pricing.CardFee,
			RenewalFee:     r.config.Pricing.RenewalFee,
			VIPFreeTickets: r.config.Pricing.VIPFreeTickets,
		},
		Currency:  r.config.Gateway.Currency,
		Country:   r.config.Pricing.DefaultCountry,
		ReturnURL: r.config.Gateway.ReturnURL,
		Logger:    logger.GetDefault(),
	})

	bookingController := booking.NewController(bookingService)
	booking.SetupBookingRoutes(rg, bookingController, r.config)
}
