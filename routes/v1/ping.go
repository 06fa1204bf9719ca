package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// registerPingRoutes adds the health check endpoint
func registerPingRoutes(r *gin.RouterGroup) {
	// Ping godoc
	// @Summary Health check
	// @Tags Misc
	// @Produce json
	// @Success 200 {object} map[string]string
	// @Router /ping [get]
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
