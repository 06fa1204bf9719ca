package response

import (
	"github.com/gin-gonic/gin"
)

// Error sends a standardized error response
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// Success sends a standardized success message response
func Success(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}
