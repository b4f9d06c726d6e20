package controllers

import (
	"TnenntAdmin/models"
	"TnenntAdmin/services"
	"TnenntAdmin/utils"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	OrderService *services.OrderService
}

func NewOrderController(orderService *services.OrderService) *OrderController {
	return &OrderController{OrderService: orderService}
}

type updateStatusRequest struct {
	Stage   string `json:"stage" binding:"required"`
	Message string `json:"message"`
}

type cancelRequest struct {
	Message string `json:"message"`
}

// GetOrders lists order rows. Filters: storeId, date (YYYY-MM-DD), stage, search.
func (h *OrderController) GetOrders(c *gin.Context) {
	filter := services.OrderFilter{
		StoreID: c.Query("storeId"),
		Stage:   models.OrderStage(strings.ToLower(c.Query("stage"))),
		Search:  strings.TrimSpace(c.Query("search")),
	}
	if raw := c.Query("date"); raw != "" {
		day, err := time.ParseInLocation(utils.DateLayout, raw, time.Local)
		if err != nil {
			c.Error(utils.BadRequest("Invalid date, expected YYYY-MM-DD"))
			return
		}
		filter.Date = day
	}

	rows, err := h.OrderService.ListOrders(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Orders fetched successfully", rows)
}

func (h *OrderController) GetOrder(c *gin.Context) {
	row, err := h.OrderService.GetOrderRow(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Order fetched successfully", row)
}

func (h *OrderController) UpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(utils.BadRequest("stage is required"))
		return
	}

	_, err := h.OrderService.UpdateStatus(c.Request.Context(), c.Param("id"),
		models.OrderStage(strings.ToLower(req.Stage)), req.Message)
	if err != nil {
		c.Error(err)
		return
	}
	h.respondWithRow(c, "Order status updated")
}

func (h *OrderController) CancelOrder(c *gin.Context) {
	var req cancelRequest
	// The body is optional.
	_ = c.ShouldBindJSON(&req)

	if _, err := h.OrderService.CancelOrder(c.Request.Context(), c.Param("id"), req.Message); err != nil {
		c.Error(err)
		return
	}
	h.respondWithRow(c, "Order Cancelled")
}

// respondWithRow renders the order as GET /orders/:id does.
func (h *OrderController) respondWithRow(c *gin.Context, message string) {
	row, err := h.OrderService.GetOrderRow(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, message, row)
}
