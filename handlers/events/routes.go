package events

import (
	"symposium-api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to events
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	events := r.Group("/events")
	{
		events.GET("/", GetAllEvents)
		events.GET("/:id", GetEvent)
		events.GET("/:id/poster", GetEventPoster)
		events.GET("/:id/accounts", GetEventAccounts)

		organizer := events.Group("", middleware.AuthMiddleware(), middleware.OrganizerOnly())
		{
			organizer.POST("/", CreateEvent)
			organizer.PUT("/:id", UpdateEvent)
			organizer.DELETE("/:id", DeleteEvent)
			organizer.POST("/:id/poster", UploadEventPoster)
			organizer.DELETE("/:id/poster", DeleteEventPoster)
			organizer.POST("/:id/accounts", AssignEventAccount)
			organizer.DELETE("/:id/accounts/:accountId", RemoveEventAccount)
			organizer.GET("/:id/registrations", GetEventRegistrationRows)
			organizer.GET("/:id/registrations/search", SearchEventRegistration)
			organizer.POST("/:id/rounds/:roundNumber/eligible", SetRoundEligibility)
			organizer.POST("/:id/rounds/:roundNumber/notify", NotifyRoundResults)
		}
	}
}
