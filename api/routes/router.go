// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"keepsake/internal/cart"
	"keepsake/internal/catalog"
	"keepsake/internal/orders"
	"keepsake/internal/shared/config"
	"keepsake/internal/tessitura"
	"keepsake/pkg/cache"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config    *config.Config
	cache     cache.Service
	store     *cart.Store
	catalog   catalog.Service
	boxOffice tessitura.Client
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, cacheService cache.Service, store *cart.Store, cat catalog.Service, boxOffice tessitura.Client) *Router {
	return &Router{
		config:    cfg,
		cache:     cacheService,
		store:     store,
		catalog:   cat,
		boxOffice: boxOffice,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupCartRoutes(api)
		r.setupOrderRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.cache.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "keepsake-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "keepsake-backend",
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
			"org":         r.catalog.OrgName(),
			"timestamp":   time.Now(),
		})
	})
}

// setupCartRoutes configures cart-session routes
func (r *Router) setupCartRoutes(rg *gin.RouterGroup) {
	cartController := cart.NewController(r.store)
	cart.SetupCartRoutes(rg, cartController)
}

// setupOrderRoutes configures order-submission routes
func (r *Router) setupOrderRoutes(rg *gin.RouterGroup) {
	orderService := orders.NewService(r.catalog, r.boxOffice, r.store, nil)
	orderController := orders.NewController(orderService)
	orders.SetupOrderRoutes(rg, orderController)
}
