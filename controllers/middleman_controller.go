package controllers

import (
	"TnenntAdmin/services"
	"TnenntAdmin/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type MiddlemanController struct {
	MiddlemanService *services.MiddlemanService
}

func NewMiddlemanController(middlemanService *services.MiddlemanService) *MiddlemanController {
	return &MiddlemanController{MiddlemanService: middlemanService}
}

func (h *MiddlemanController) GetMiddlemen(c *gin.Context) {
	middlemen, err := h.MiddlemanService.ListMiddlemen(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Middlemen fetched successfully", middlemen)
}

func (h *MiddlemanController) SetAvailability(c *gin.Context) {
	var req availabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(utils.BadRequest("isAvailable is required"))
		return
	}
	if err := h.MiddlemanService.SetAvailability(c.Request.Context(), c.Param("id"), *req.IsAvailable); err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Middleman availability updated", gin.H{"isAvailable": *req.IsAvailable})
}
