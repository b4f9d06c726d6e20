package controllers

import (
	"TnenntAdmin/models"
	"TnenntAdmin/services"
	"TnenntAdmin/utils"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	ProductService *services.ProductService
}

func NewProductController(productService *services.ProductService) *ProductController {
	return &ProductController{ProductService: productService}
}

type availabilityRequest struct {
	IsAvailable *bool `json:"isAvailable" binding:"required"`
}

// parseVariations decodes the "variations" form field, a JSON object keyed
// by variation name.
func parseVariations(raw string) (map[string]models.ProductVariation, error) {
	if raw == "" {
		return nil, nil
	}
	var variations map[string]models.ProductVariation
	if err := json.Unmarshal([]byte(raw), &variations); err != nil {
		return nil, utils.BadRequest("variations must be a JSON object")
	}
	return variations, nil
}

func (h *ProductController) GetProducts(c *gin.Context) {
	products, err := h.ProductService.ListProducts(c.Request.Context(), c.Query("storeId"))
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Products fetched successfully", products)
}

func (h *ProductController) GetProduct(c *gin.Context) {
	product, err := h.ProductService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Product fetched successfully", product)
}

// CreateProduct takes a multipart form with an "image" file.
func (h *ProductController) CreateProduct(c *gin.Context) {
	variations, err := parseVariations(c.PostForm("variations"))
	if err != nil {
		c.Error(err)
		return
	}
	image, err := formFile(c, "image")
	if err != nil {
		c.Error(err)
		return
	}

	in := services.ProductInput{
		Name:            c.PostForm("name"),
		Cuisine:         c.PostForm("cuisine"),
		ProductCategory: c.PostForm("productCategory"),
		StoreCategory:   c.PostForm("storeCategory"),
		StoreID:         c.PostForm("storeId"),
		Type:            c.PostForm("type"),
		Variations:      variations,
	}
	product, err := h.ProductService.CreateProduct(c.Request.Context(), in, image)
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, "Product created successfully", product)
}

func (h *ProductController) UpdateProduct(c *gin.Context) {
	variations, err := parseVariations(c.PostForm("variations"))
	if err != nil {
		c.Error(err)
		return
	}
	image, err := formFile(c, "image")
	if err != nil {
		c.Error(err)
		return
	}

	in := services.ProductUpdate{
		Name:       optionalForm(c, "name"),
		Cuisine:    optionalForm(c, "cuisine"),
		Type:       optionalForm(c, "type"),
		Variations: variations,
	}
	product, err := h.ProductService.UpdateProduct(c.Request.Context(), c.Param("id"), in, image)
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Product updated successfully", product)
}

func (h *ProductController) SetAvailability(c *gin.Context) {
	var req availabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(utils.BadRequest("isAvailable is required"))
		return
	}
	if err := h.ProductService.SetAvailability(c.Request.Context(), c.Param("id"), *req.IsAvailable); err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Product availability updated", gin.H{"isAvailable": *req.IsAvailable})
}

func (h *ProductController) DeleteProduct(c *gin.Context) {
	if err := h.ProductService.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Product deleted successfully", nil)
}
