package handlers

import (
	"TnenntAdmin/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterUserRoutes(router *gin.RouterGroup, userController *controllers.UserController) {
	userGroup := router.Group("/users")
	{
		userGroup.GET("", userController.GetUsers)
		userGroup.GET("/customers", userController.GetCustomers)
		userGroup.GET("/growth", userController.GetGrowth)
	}

	creatorGroup := router.Group("/creators")
	{
		creatorGroup.GET("/pending", userController.GetPendingCreators)
		creatorGroup.GET("/verified", userController.GetVerifiedCreators)
		creatorGroup.POST("/:id/approve", userController.ApproveCreator)
		creatorGroup.POST("/:id/remove", userController.RemoveCreator)
	}
}
