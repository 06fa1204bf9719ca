package verification

import (
	"symposium-api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to registration verification
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	verification := r.Group("/verification", middleware.AuthMiddleware(), middleware.OrganizerOnly())
	{
		verification.POST("/", SetVerification)
		verification.GET("/user/:userId", GetUserVerifications)
	}
}
