package registrations

import (
	"symposium-api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to registrations
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	registrations := r.Group("/registrations")
	{
		registrations.POST("/", CreatePaidRegistration)
		registrations.POST("/simple", CreateSimpleRegistration)
		registrations.GET("/check-transaction/:transactionId", CheckTransactionID)
		registrations.GET("/event/:eventId", GetEventRegistrations)
		registrations.GET("/user/:userId", GetUserRegistrations)
		registrations.GET("/by-email/:userEmail", GetRegistrationsByEmail)
		registrations.GET("/verified/:userId", GetVerifiedEvents)
		registrations.GET("/live/:eventId", LiveEventRegistrations)

		// Admin listing across all events
		registrations.GET("/all", middleware.AuthMiddleware(), middleware.OrganizerOnly(), GetAllRegistrations)
	}
}
