package controllers

import (
	"TnenntAdmin/middleware"
	"TnenntAdmin/services"
	"TnenntAdmin/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AdminService *services.AdminService
}

func NewAuthController(adminService *services.AdminService) *AuthController {
	return &AuthController{AdminService: adminService}
}

// Verify resolves ?token= (a session cookie value) to an authorized admin.
func (h *AuthController) Verify(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.Error(utils.BadRequest("token is required"))
		return
	}
	admin, err := h.AdminService.VerifySession(c.Request.Context(), token)
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Session verified", gin.H{"user": admin})
}

func (h *AuthController) Me(c *gin.Context) {
	admin := middleware.CurrentAdmin(c)
	if admin == nil {
		c.Error(utils.NewCustomError(http.StatusUnauthorized, "Authentication required"))
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Current admin", gin.H{"user": admin})
}
