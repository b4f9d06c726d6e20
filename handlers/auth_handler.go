package handlers

import (
	"TnenntAdmin/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the public session check.
func RegisterAuthRoutes(router *gin.RouterGroup, authController *controllers.AuthController) {
	authGroup := router.Group("/auth")
	{
		authGroup.GET("/verify", authController.Verify)
	}
}

// RegisterSessionRoutes registers routes that need an admin session.
func RegisterSessionRoutes(router *gin.RouterGroup, authController *controllers.AuthController) {
	router.GET("/auth/me", authController.Me)
}
