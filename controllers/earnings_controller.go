package controllers

import (
	"TnenntAdmin/services"
	"TnenntAdmin/utils"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type EarningsController struct {
	EarningsService *services.EarningsService
}

func NewEarningsController(earningsService *services.EarningsService) *EarningsController {
	return &EarningsController{EarningsService: earningsService}
}

func (h *EarningsController) StoreEarnings(c *gin.Context) {
	r, err := dateRange(c, h.EarningsService.DefaultRange())
	if err != nil {
		c.Error(err)
		return
	}
	report, err := h.EarningsService.StoreEarnings(c.Request.Context(), r, c.Query("search"))
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Store earnings fetched successfully", report)
}

// Statement covers every delivered order unless from or to is given.
func (h *EarningsController) Statement(c *gin.Context) {
	var r *utils.DateRange
	if c.Query("from") != "" || c.Query("to") != "" {
		parsed, err := dateRange(c, h.EarningsService.DefaultRange())
		if err != nil {
			c.Error(err)
			return
		}
		r = &parsed
	}

	st, err := h.EarningsService.Statement(c.Request.Context(), c.Param("id"), r)
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Statement generated", st)
}

func (h *EarningsController) MiddlemanEarnings(c *gin.Context) {
	earnings, err := h.EarningsService.MiddlemanEarnings(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Earnings fetched successfully", earnings)
}

func (h *EarningsController) MiddlemanSummary(c *gin.Context) {
	r, err := dateRange(c, h.EarningsService.DefaultRange())
	if err != nil {
		c.Error(err)
		return
	}
	sum, err := h.EarningsService.MiddlemanSummary(c.Request.Context(), c.Param("id"), r,
		strings.TrimSpace(c.Query("search")))
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Earnings summary", sum)
}
