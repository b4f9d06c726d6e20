package handlers

import (
	"TnenntAdmin/controllers"
	"TnenntAdmin/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterGeoRoutes(router *gin.RouterGroup, geoController *controllers.GeoController) {
	router.GET("/geo/distance", geoController.Distance)
}

// RegisterNotificationRoutes puts the push endpoint behind a per-client limiter.
func RegisterNotificationRoutes(router *gin.RouterGroup, notificationController *controllers.NotificationController, limiter *middleware.RateLimiter) {
	router.POST("/notify", limiter.Middleware(), notificationController.Send)
}

// RegisterTaskRoutes registers scheduler endpoints, each guarded by a task token.
func RegisterTaskRoutes(router *gin.RouterGroup, taskController *controllers.TaskController, signingKey string) {
	taskGroup := router.Group("/tasks")
	{
		taskGroup.POST("/stores-on", middleware.TaskAuth(signingKey, TaskStoresOn), taskController.StoresOn)
	}
}

const TaskStoresOn = "stores-on"
