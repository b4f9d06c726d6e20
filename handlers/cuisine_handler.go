package handlers

import (
	"TnenntAdmin/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterCuisineRoutes(router *gin.RouterGroup, cuisineController *controllers.CuisineController) {
	cuisineGroup := router.Group("/cuisines")
	{
		cuisineGroup.GET("", cuisineController.GetCuisines)
		cuisineGroup.POST("", cuisineController.CreateCuisine)
		cuisineGroup.DELETE("/:id", cuisineController.DeleteCuisine)
	}
}
