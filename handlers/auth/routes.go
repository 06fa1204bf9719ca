package auth

import "github.com/gin-gonic/gin"

// RegisterRoutes registers all routes related to authentication
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("/signup", Signup)
		auth.POST("/login", Login)
		auth.POST("/logout", Logout)
		auth.POST("/send-otp", SendOTP)
		auth.POST("/verify-otp", VerifyOTP)
		auth.POST("/reset-password", ResetPassword)
	}
}
