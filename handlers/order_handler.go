package handlers

import (
	"TnenntAdmin/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterOrderRoutes(router *gin.RouterGroup, orderController *controllers.OrderController) {
	orderGroup := router.Group("/orders")
	{
		orderGroup.GET("", orderController.GetOrders)
		orderGroup.GET("/:id", orderController.GetOrder)
		orderGroup.PUT("/:id/status", orderController.UpdateStatus)
		orderGroup.POST("/:id/cancel", orderController.CancelOrder)
	}
}

func RegisterReportRoutes(router *gin.RouterGroup, reportController *controllers.ReportController) {
	reportGroup := router.Group("/reports/orders")
	{
		reportGroup.GET("/status", reportController.StatusBreakdown)
		reportGroup.GET("/latency", reportController.Latency)
		reportGroup.GET("/areas", reportController.TopAreas)
		reportGroup.GET("/daily", reportController.Daily)
	}
}
