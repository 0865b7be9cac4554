package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/hotel-billing-api/internal/application/service"
	"github.com/sangkips/hotel-billing-api/internal/domain/enum"
	"github.com/sangkips/hotel-billing-api/internal/presentation/http/dto/request"
	"github.com/sangkips/hotel-billing-api/internal/presentation/http/dto/response"
)

// InvoiceHandler handles invoice-related HTTP requests
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
	queryService   *service.InvoiceQueryService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService, queryService *service.InvoiceQueryService) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
		queryService:   queryService,
	}
}

// Create handles invoice creation
// @Summary Create invoice
// @Tags invoices
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateInvoiceRequest true "Invoice"
// @Success 201 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req request.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	items := make([]service.InvoiceItemInput, len(req.Items))
	for i, it := range req.Items {
		items[i] = service.InvoiceItemInput{
			ProductID:      it.ProductID,
			Description:    it.Description,
			Quantity:       *it.Quantity,
			UnitPrice:      *it.UnitPrice,
			TaxRate:        *it.TaxRate,
			DiscountAmount: it.DiscountAmount,
		}
	}

	detail, err := h.invoiceService.CreateInvoice(c.Request.Context(), &service.CreateInvoiceInput{
		InvoiceNumber: req.InvoiceNumber,
		CreatedBy:     GetUserID(c),
		TableNumber:   req.TableNumber,
		OrderType:     req.OrderType,
		EmployeeID:    req.EmployeeID,
		Notes:         req.Notes,
		Items:         items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice created successfully", response.NewInvoiceResponse(detail))
}

// Get handles fetching one invoice with its items
// @Summary Get invoice
// @Tags invoices
// @Security BearerAuth
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	detail, err := h.queryService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice retrieved successfully", response.NewInvoiceResponse(detail))
}

// List handles listing invoices
// @Summary List invoices
// @Tags invoices
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page"
// @Param per_page query int false "Items per page"
// @Param search query string false "Invoice number contains"
// @Param status query string false "Status"
// @Param order_type query string false "Order type"
// @Param employee_id query string false "Employee ID"
// @Param start_date query string false "From date (YYYY-MM-DD)"
// @Param end_date query string false "To date (YYYY-MM-DD)"
// @Success 200 {object} response.APIResponse
// @Router /invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	input := &service.InvoiceListInput{
		Pagination: paginationFromQuery(c),
		Search:     strings.TrimSpace(c.Query("search")),
		SortOrder:  c.Query("sort_order"),
	}

	if raw := c.Query("status"); raw != "" {
		status, err := enum.ParseInvoiceStatus(raw)
		if err != nil {
			response.BadRequest(c, "Invalid status")
			return
		}
		input.Status = &status
	}

	if raw := c.Query("order_type"); raw != "" {
		orderType, err := enum.ParseOrderType(raw)
		if err != nil {
			response.BadRequest(c, "Invalid order_type")
			return
		}
		input.OrderType = &orderType
	}

	if raw := c.Query("employee_id"); raw != "" {
		employeeID, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "Invalid employee_id")
			return
		}
		input.EmployeeID = &employeeID
	}

	var err error
	if input.From, err = parseDateQuery(c, "start_date", false); err != nil {
		response.BadRequest(c, "Invalid start_date")
		return
	}
	if input.To, err = parseDateQuery(c, "end_date", true); err != nil {
		response.BadRequest(c, "Invalid end_date")
		return
	}

	invoices, pag, err := h.queryService.ListInvoices(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, "Invoices retrieved successfully", response.NewInvoiceSummaries(invoices), pag)
}

// Pay handles marking an invoice as paid
// @Summary Pay invoice
// @Tags invoices
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param request body request.PayInvoiceRequest false "Payment"
// @Success 200 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /invoices/{id}/pay [post]
func (h *InvoiceHandler) Pay(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	payInvoice(c, h.invoiceService, id)
}

// payInvoice is shared by the invoice and payment routes
func payInvoice(c *gin.Context, invoiceService *service.InvoiceService, invoiceID uuid.UUID) {
	var req request.PayInvoiceRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}
	}

	receipt, err := invoiceService.PayInvoice(c.Request.Context(), &service.PayInvoiceInput{
		InvoiceID: invoiceID,
		Method:    req.Method,
		ActorID:   GetUserID(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice paid successfully", response.NewPaymentReceiptResponse(receipt))
}

// Cancel handles cancelling an invoice
// @Summary Cancel invoice
// @Tags invoices
// @Security BearerAuth
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /invoices/{id}/cancel [post]
func (h *InvoiceHandler) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	detail, err := h.invoiceService.CancelInvoice(c.Request.Context(), id, GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice cancelled successfully", response.NewInvoiceResponse(detail))
}

// UpdateStatus handles moving an invoice through its service stages
// @Summary Update invoice status
// @Tags invoices
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param request body request.UpdateInvoiceStatusRequest true "Status"
// @Success 200 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /invoices/{id}/status [put]
func (h *InvoiceHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req request.UpdateInvoiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	status, err := enum.ParseInvoiceStatus(req.Status)
	if err != nil {
		response.BadRequest(c, "Invalid status")
		return
	}

	detail, err := h.invoiceService.UpdateInvoiceStatus(c.Request.Context(), id, status, GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice status updated successfully", response.NewInvoiceResponse(detail))
}
