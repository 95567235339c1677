package orders

import "github.com/gin-gonic/gin"

// SetupOrderRoutes registers the order-submission endpoint. Extra middleware
// (rate limiting) is applied by the caller.
func SetupOrderRoutes(rg *gin.RouterGroup, controller *Controller, middleware ...gin.HandlerFunc) {
	group := rg.Group("/orders")
	group.Use(middleware...)
	{
		group.POST("", controller.SubmitOrder)
	}
}
