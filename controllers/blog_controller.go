package controllers

import (
	"TnenntAdmin/services"
	"TnenntAdmin/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type BlogController struct {
	BlogService *services.BlogService
}

func NewBlogController(blogService *services.BlogService) *BlogController {
	return &BlogController{BlogService: blogService}
}

func (h *BlogController) GetBlogs(c *gin.Context) {
	blogs, err := h.BlogService.ListBlogs(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Blogs fetched successfully", blogs)
}

func (h *BlogController) CreateBlog(c *gin.Context) {
	thumbnail, err := formFile(c, "thumbnail")
	if err != nil {
		c.Error(err)
		return
	}
	blog, err := h.BlogService.CreateBlog(c.Request.Context(), services.BlogInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Content:     c.PostForm("content"),
		Thumbnail:   thumbnail,
	})
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, "Blog created successfully", blog)
}

func (h *BlogController) DeleteBlog(c *gin.Context) {
	if err := h.BlogService.DeleteBlog(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Blog deleted successfully", gin.H{"id": c.Param("id")})
}
