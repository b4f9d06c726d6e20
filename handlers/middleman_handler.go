package handlers

import (
	"TnenntAdmin/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterMiddlemanRoutes(router *gin.RouterGroup, middlemanController *controllers.MiddlemanController, earningsController *controllers.EarningsController) {
	middlemanGroup := router.Group("/middlemen")
	{
		middlemanGroup.GET("", middlemanController.GetMiddlemen)
		middlemanGroup.PATCH("/:id/availability", middlemanController.SetAvailability)
		middlemanGroup.GET("/:id/earnings", earningsController.MiddlemanEarnings)
		middlemanGroup.GET("/:id/earnings/summary", earningsController.MiddlemanSummary)
	}
}
