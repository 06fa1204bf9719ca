package experiences

import (
	"symposium-api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to placement experiences
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	experiences := r.Group("/experiences")
	{
		experiences.POST("/", SubmitExperience)
		experiences.GET("/", GetApprovedExperiences)
		experiences.GET("/pdf/:id", GetExperiencePdf)

		admin := experiences.Group("", middleware.AuthMiddleware(), middleware.OrganizerOnly())
		{
			admin.GET("/pending", GetPendingExperiences)
			admin.PUT("/:id/status", UpdateExperienceStatus)
			admin.DELETE("/:id", DeleteExperience)
		}
	}
}
