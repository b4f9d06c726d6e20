package controllers

import (
	"TnenntAdmin/services"
	"TnenntAdmin/utils"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *services.UserService
}

func NewUserController(userService *services.UserService) *UserController {
	return &UserController{UserService: userService}
}

func (h *UserController) GetUsers(c *gin.Context) {
	users, err := h.UserService.ListUsers(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Users fetched successfully", users)
}

func (h *UserController) GetCustomers(c *gin.Context) {
	customers, err := h.UserService.Customers(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Customers fetched successfully", customers)
}

// GetGrowth defaults to the last twelve months.
func (h *UserController) GetGrowth(c *gin.Context) {
	today := time.Now()
	def := utils.DateRange{
		From: utils.StartOfDay(today.AddDate(0, -11, -today.Day()+1)),
		To:   utils.EndOfDay(today),
	}
	r, err := dateRange(c, def)
	if err != nil {
		c.Error(err)
		return
	}
	growth, err := h.UserService.Growth(c.Request.Context(), r)
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "User growth", growth)
}

func (h *UserController) GetPendingCreators(c *gin.Context) {
	creators, err := h.UserService.PendingCreators(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Pending creators fetched successfully", creators)
}

func (h *UserController) GetVerifiedCreators(c *gin.Context) {
	creators, err := h.UserService.VerifiedCreators(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Verified creators fetched successfully", creators)
}

func (h *UserController) ApproveCreator(c *gin.Context) {
	if err := h.UserService.ApproveCreator(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Creator approved", gin.H{"userId": c.Param("id")})
}

func (h *UserController) RemoveCreator(c *gin.Context) {
	if err := h.UserService.RemoveCreator(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Creator removed", gin.H{"userId": c.Param("id")})
}
