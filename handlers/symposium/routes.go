package symposium

import (
	"symposium-api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to symposium control
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	control := r.Group("/symposium")
	{
		control.GET("/status", GetStatus)

		organizer := control.Group("", middleware.AuthMiddleware(), middleware.OrganizerOnly())
		{
			organizer.POST("/start", StartSymposium)
			organizer.POST("/stop", StopSymposium)
		}
	}

	timer := r.Group("/timer")
	{
		timer.GET("/", GetTimer)

		organizer := timer.Group("", middleware.AuthMiddleware(), middleware.OrganizerOnly())
		{
			organizer.POST("/", SetTimer)
			organizer.DELETE("/", ClearTimer)
		}
	}
}
