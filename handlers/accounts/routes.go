package accounts

import (
	"symposium-api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to payment accounts
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	accounts := r.Group("/admin/accounts", middleware.AuthMiddleware(), middleware.OrganizerOnly())
	{
		accounts.POST("/", CreateAccount)
		accounts.GET("/", GetAccounts)
		accounts.PUT("/:id", UpdateAccount)
		accounts.DELETE("/:id", DeleteAccount)
	}

	// QR download is public so registrants can pull the payment code
	r.GET("/accounts/:id/qr", GetAccountQR)
}
