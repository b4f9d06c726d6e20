package controllers

import (
	"TnenntAdmin/services"
	"TnenntAdmin/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

const defaultNearbyRadiusKm = 5.0

type StoreController struct {
	StoreService *services.StoreService
}

func NewStoreController(storeService *services.StoreService) *StoreController {
	return &StoreController{StoreService: storeService}
}

func (h *StoreController) GetStores(c *gin.Context) {
	stores, err := h.StoreService.ListStores(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Stores fetched successfully", stores)
}

func (h *StoreController) GetStore(c *gin.Context) {
	store, err := h.StoreService.GetStore(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Store fetched successfully", store)
}

func (h *StoreController) GetNearbyStores(c *gin.Context) {
	latitude, err := queryFloat(c, "latitude")
	if err != nil {
		c.Error(err)
		return
	}
	longitude, err := queryFloat(c, "longitude")
	if err != nil {
		c.Error(err)
		return
	}
	radius := defaultNearbyRadiusKm
	if c.Query("radius") != "" {
		if radius, err = queryFloat(c, "radius"); err != nil {
			c.Error(err)
			return
		}
	}

	stores, err := h.StoreService.Nearby(c.Request.Context(), latitude, longitude, radius)
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Nearby stores fetched successfully", stores)
}

func (h *StoreController) UpdateFlags(c *gin.Context) {
	var flags services.StoreFlags
	if err := c.ShouldBindJSON(&flags); err != nil {
		c.Error(utils.BadRequest("Invalid request body"))
		return
	}
	store, err := h.StoreService.UpdateFlags(c.Request.Context(), c.Param("id"), flags)
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Store updated", store)
}

// UpdateLogos takes multipart fields "logo" and/or "banner".
func (h *StoreController) UpdateLogos(c *gin.Context) {
	logo, err := formFile(c, "logo")
	if err != nil {
		c.Error(err)
		return
	}
	banner, err := formFile(c, "banner")
	if err != nil {
		c.Error(err)
		return
	}

	store, err := h.StoreService.UpdateLogos(c.Request.Context(), c.Param("id"), logo, banner)
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Store images updated", store)
}

func (h *StoreController) ActivateStores(c *gin.Context) {
	count, err := h.StoreService.ActivateUnpaused(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "All stores have been successfully activated.", gin.H{"activated": count})
}

func (h *StoreController) GetFeaturedStores(c *gin.Context) {
	stores, err := h.StoreService.FeaturedStores(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Featured stores fetched successfully", stores)
}

func (h *StoreController) AddFeaturedStore(c *gin.Context) {
	if err := h.StoreService.AddFeatured(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Store added to featured", gin.H{"storeId": c.Param("id")})
}

func (h *StoreController) RemoveFeaturedStore(c *gin.Context) {
	if err := h.StoreService.RemoveFeatured(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Store removed from featured", gin.H{"storeId": c.Param("id")})
}
