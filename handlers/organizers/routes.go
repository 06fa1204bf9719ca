package organizers

import (
	"symposium-api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to organizers
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	organizers := r.Group("/organizers", middleware.AuthMiddleware(), middleware.OrganizerOnly())
	{
		organizers.POST("/", CreateOrganizer)
		organizers.GET("/", GetOrganizers)
	}
}
