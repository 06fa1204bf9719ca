package cart

import "github.com/gin-gonic/gin"

// RegisterRoutes registers all routes related to the cart
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	cart := r.Group("/cart")
	{
		cart.POST("/", AddToCart)
		cart.GET("/:userId", GetCart)
		cart.DELETE("/:userId/:eventId", RemoveFromCart)
		cart.POST("/:userId/checkout", Checkout)
	}
}
