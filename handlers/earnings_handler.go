package handlers

import (
	"TnenntAdmin/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterEarningsRoutes(router *gin.RouterGroup, earningsController *controllers.EarningsController) {
	earningsGroup := router.Group("/earnings")
	{
		earningsGroup.GET("/stores", earningsController.StoreEarnings)
		earningsGroup.GET("/stores/:id/statement", earningsController.Statement)
	}
}
