package controllers

import (
	"TnenntAdmin/services"
	"TnenntAdmin/utils"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CuisineController struct {
	CuisineService *services.CuisineService
}

func NewCuisineController(cuisineService *services.CuisineService) *CuisineController {
	return &CuisineController{CuisineService: cuisineService}
}

type cuisineProductField struct {
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

func (h *CuisineController) GetCuisines(c *gin.Context) {
	cuisines, err := h.CuisineService.ListCuisines(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Cuisines fetched successfully", cuisines)
}

// CreateCuisine reads a multipart form: text fields, "image", "banner",
// "products" as a JSON array and one "productImage{i}" file per product.
func (h *CuisineController) CreateCuisine(c *gin.Context) {
	var fields []cuisineProductField
	if raw := c.PostForm("products"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &fields); err != nil {
			c.Error(utils.BadRequest("products must be a JSON array"))
			return
		}
	}

	in := services.CuisineInput{
		Heading:    c.PostForm("heading"),
		SubHeading: c.PostForm("subHeading"),
		About:      c.PostForm("about"),
		Desc:       c.PostForm("desc"),
	}
	var err error
	if in.Image, err = formFile(c, "image"); err != nil {
		c.Error(err)
		return
	}
	if in.Banner, err = formFile(c, "banner"); err != nil {
		c.Error(err)
		return
	}
	for i, f := range fields {
		image, err := formFile(c, fmt.Sprintf("productImage%d", i))
		if err != nil {
			c.Error(err)
			return
		}
		in.Products = append(in.Products, services.CuisineProductInput{Title: f.Title, Desc: f.Desc, Image: image})
	}

	cuisine, err := h.CuisineService.CreateCuisine(c.Request.Context(), in)
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, "Cuisine created successfully", cuisine)
}

func (h *CuisineController) DeleteCuisine(c *gin.Context) {
	if err := h.CuisineService.DeleteCuisine(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Cuisine deleted successfully", gin.H{"id": c.Param("id")})
}
