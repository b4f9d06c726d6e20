package controllers

import (
	"TnenntAdmin/services"
	"TnenntAdmin/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CampaignController struct {
	CampaignService *services.CampaignService
}

func NewCampaignController(campaignService *services.CampaignService) *CampaignController {
	return &CampaignController{CampaignService: campaignService}
}

func (h *CampaignController) GetCampaigns(c *gin.Context) {
	campaigns, err := h.CampaignService.ListCampaigns(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Campaigns fetched successfully", campaigns)
}

func (h *CampaignController) CreateCampaign(c *gin.Context) {
	var in services.CampaignInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(utils.BadRequest("Invalid request body"))
		return
	}
	campaign, err := h.CampaignService.CreateCampaign(c.Request.Context(), in)
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, "Campaign created successfully", campaign)
}

func (h *CampaignController) UpdateCampaign(c *gin.Context) {
	var in services.CampaignUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(utils.BadRequest("Invalid request body"))
		return
	}
	campaign, err := h.CampaignService.UpdateCampaign(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Campaign updated successfully", campaign)
}

func (h *CampaignController) DeleteCampaign(c *gin.Context) {
	if err := h.CampaignService.DeleteCampaign(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Campaign deleted successfully", gin.H{"id": c.Param("id")})
}

func (h *CampaignController) IncludeProduct(c *gin.Context) {
	if err := h.CampaignService.IncludeProduct(c.Request.Context(), c.Param("id"), c.Param("productId")); err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Product added to campaign", nil)
}

func (h *CampaignController) ExcludeProduct(c *gin.Context) {
	if err := h.CampaignService.ExcludeProduct(c.Request.Context(), c.Param("id"), c.Param("productId")); err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Product removed from campaign", nil)
}

// AddImages takes one or more multipart "images" files.
func (h *CampaignController) AddImages(c *gin.Context) {
	images, err := formFiles(c, "images")
	if err != nil {
		c.Error(err)
		return
	}
	campaign, err := h.CampaignService.AddImages(c.Request.Context(), c.Param("id"), images)
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Campaign images added", campaign)
}

func (h *CampaignController) ResetCampaign(c *gin.Context) {
	campaign, err := h.CampaignService.Reset(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Campaign reset", campaign)
}
