package v1

import (
	"symposium-api/handlers/accounts"
	"symposium-api/handlers/auth"
	"symposium-api/handlers/cart"
	"symposium-api/handlers/events"
	"symposium-api/handlers/experiences"
	"symposium-api/handlers/organizers"
	"symposium-api/handlers/registrations"
	"symposium-api/handlers/symposium"
	"symposium-api/handlers/verification"
	"symposium-api/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes wires every handler package under /api/v1
// r: the gin engine to which the routes are added
func RegisterRoutes(r *gin.Engine) {
	rateLimiter := middleware.NewRateLimiter(10000, 1500)

	v1 := r.Group("/api/v1")
	v1.Use(middleware.MetricsMiddleware())
	v1.Use(middleware.RateLimiterMiddleware(rateLimiter))
	{
		registerPingRoutes(v1)
		registerMetricsRoutes(v1)

		auth.RegisterRoutes(v1)
		events.RegisterRoutes(v1)
		registrations.RegisterRoutes(v1)
		verification.RegisterRoutes(v1)
		cart.RegisterRoutes(v1)
		accounts.RegisterRoutes(v1)
		organizers.RegisterRoutes(v1)
		symposium.RegisterRoutes(v1)
		experiences.RegisterRoutes(v1)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
