package handlers

import (
	"TnenntAdmin/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterProductRoutes(router *gin.RouterGroup, productController *controllers.ProductController) {
	productGroup := router.Group("/products")
	{
		productGroup.GET("", productController.GetProducts)
		productGroup.POST("", productController.CreateProduct)
		productGroup.GET("/:id", productController.GetProduct)
		productGroup.PUT("/:id", productController.UpdateProduct)
		productGroup.PATCH("/:id/availability", productController.SetAvailability)
		productGroup.DELETE("/:id", productController.DeleteProduct)
	}
}
