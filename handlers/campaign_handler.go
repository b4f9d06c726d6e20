package handlers

import (
	"TnenntAdmin/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterCampaignRoutes(router *gin.RouterGroup, campaignController *controllers.CampaignController) {
	campaignGroup := router.Group("/campaigns")
	{
		campaignGroup.GET("", campaignController.GetCampaigns)
		campaignGroup.POST("", campaignController.CreateCampaign)
		campaignGroup.PUT("/:id", campaignController.UpdateCampaign)
		campaignGroup.DELETE("/:id", campaignController.DeleteCampaign)
		campaignGroup.PUT("/:id/products/:productId", campaignController.IncludeProduct)
		campaignGroup.DELETE("/:id/products/:productId", campaignController.ExcludeProduct)
		campaignGroup.POST("/:id/images", campaignController.AddImages)
		campaignGroup.POST("/:id/reset", campaignController.ResetCampaign)
	}
}
