package cart

import "github.com/gin-gonic/gin"

// SetupCartRoutes registers the cart-session endpoints.
func SetupCartRoutes(rg *gin.RouterGroup, controller *Controller) {
	group := rg.Group("/cart")
	{
		group.GET("", controller.GetCart)
		group.POST("", controller.SeedCart)
	}
}
