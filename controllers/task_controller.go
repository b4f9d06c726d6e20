package controllers

import (
	"TnenntAdmin/services"
	"TnenntAdmin/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

// TaskController serves endpoints triggered by an external scheduler.
type TaskController struct {
	StoreService *services.StoreService
}

func NewTaskController(storeService *services.StoreService) *TaskController {
	return &TaskController{StoreService: storeService}
}

func (h *TaskController) StoresOn(c *gin.Context) {
	count, err := h.StoreService.ActivateUnpaused(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "All stores have been successfully activated.", gin.H{"activated": count})
}
