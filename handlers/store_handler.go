package handlers

import (
	"TnenntAdmin/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterStoreRoutes(router *gin.RouterGroup, storeController *controllers.StoreController) {
	storeGroup := router.Group("/stores")
	{
		storeGroup.GET("", storeController.GetStores)
		storeGroup.GET("/nearby", storeController.GetNearbyStores)
		storeGroup.GET("/featured", storeController.GetFeaturedStores)
		storeGroup.POST("/featured/:id", storeController.AddFeaturedStore)
		storeGroup.DELETE("/featured/:id", storeController.RemoveFeaturedStore)
		storeGroup.POST("/activate", storeController.ActivateStores)
		storeGroup.GET("/:id", storeController.GetStore)
		storeGroup.PATCH("/:id/flags", storeController.UpdateFlags)
		storeGroup.PUT("/:id/logos", storeController.UpdateLogos)
	}
}
