package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/hotel-billing-api/internal/application/service"
	"github.com/sangkips/hotel-billing-api/internal/presentation/http/dto/response"
)

// ReportHandler handles reporting requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Sales handles the sales summary
// @Summary Sales report
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Param start_date query string false "From date (YYYY-MM-DD)"
// @Param end_date query string false "To date (YYYY-MM-DD)"
// @Param top query int false "Number of best selling products"
// @Success 200 {object} response.APIResponse
// @Router /reports/sales [get]
func (h *ReportHandler) Sales(c *gin.Context) {
	from, err := parseDateQuery(c, "start_date", false)
	if err != nil {
		response.BadRequest(c, "Invalid start_date")
		return
	}
	to, err := parseDateQuery(c, "end_date", true)
	if err != nil {
		response.BadRequest(c, "Invalid end_date")
		return
	}
	top, _ := strconv.Atoi(c.Query("top"))

	report, err := h.reportService.SalesReport(c.Request.Context(), &service.SalesReportInput{
		From:     from,
		To:       to,
		TopItems: top,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales report generated successfully", response.NewSalesReportResponse(report))
}
