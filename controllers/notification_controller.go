package controllers

import (
	"TnenntAdmin/services"
	"TnenntAdmin/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	NotificationService *services.NotificationService
}

func NewNotificationController(notificationService *services.NotificationService) *NotificationController {
	return &NotificationController{NotificationService: notificationService}
}

func (h *NotificationController) Send(c *gin.Context) {
	var msg services.PushMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.Error(utils.BadRequest("token and title are required"))
		return
	}
	id, err := h.NotificationService.Send(c.Request.Context(), msg)
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Notification sent successfully", gin.H{"messageId": id})
}
