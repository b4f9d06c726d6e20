package controllers

import (
	"TnenntAdmin/services"
	"TnenntAdmin/utils"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const defaultReportDays = 30

type ReportController struct {
	ReportService *services.ReportService
}

func NewReportController(reportService *services.ReportService) *ReportController {
	return &ReportController{ReportService: reportService}
}

func (h *ReportController) reportRange(c *gin.Context) (utils.DateRange, bool) {
	r, err := dateRange(c, utils.LastDays(time.Now(), defaultReportDays))
	if err != nil {
		c.Error(err)
		return r, false
	}
	return r, true
}

func (h *ReportController) StatusBreakdown(c *gin.Context) {
	r, ok := h.reportRange(c)
	if !ok {
		return
	}
	b, err := h.ReportService.StatusBreakdown(c.Request.Context(), r)
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Order status breakdown", b)
}

func (h *ReportController) Latency(c *gin.Context) {
	r, ok := h.reportRange(c)
	if !ok {
		return
	}
	b, err := h.ReportService.Latency(c.Request.Context(), r)
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Delivery latency", b)
}

func (h *ReportController) TopAreas(c *gin.Context) {
	r, ok := h.reportRange(c)
	if !ok {
		return
	}
	precision, err := queryInt(c, "precision", services.DefaultAreaPrecision)
	if err != nil {
		c.Error(err)
		return
	}
	limit, err := queryInt(c, "limit", services.DefaultAreaLimit)
	if err != nil {
		c.Error(err)
		return
	}

	areas, err := h.ReportService.TopAreas(c.Request.Context(), r, precision, limit)
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Top delivery areas", areas)
}

func (h *ReportController) Daily(c *gin.Context) {
	r, ok := h.reportRange(c)
	if !ok {
		return
	}
	days, err := h.ReportService.Daily(c.Request.Context(), r)
	if err != nil {
		c.Error(err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Orders per day", days)
}
