package controllers

import (
	"TnenntAdmin/services"
	"TnenntAdmin/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type VideoController struct {
	VideoService *services.VideoService
}

func NewVideoController(videoService *services.VideoService) *VideoController {
	return &VideoController{VideoService: videoService}
}

func (h *VideoController) GetVideos(c *gin.Context) {
	videos, err := h.VideoService.ListVideos(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Videos fetched successfully", videos)
}

func (h *VideoController) CreateVideo(c *gin.Context) {
	image, err := formFile(c, "image")
	if err != nil {
		c.Error(err)
		return
	}
	video, err := h.VideoService.CreateVideo(c.Request.Context(), c.PostForm("videoUrl"), image)
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, "Video created successfully", video)
}

func (h *VideoController) DeleteVideo(c *gin.Context) {
	if err := h.VideoService.DeleteVideo(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Video deleted successfully", gin.H{"id": c.Param("id")})
}
