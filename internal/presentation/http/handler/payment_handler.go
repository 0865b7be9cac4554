package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/hotel-billing-api/internal/application/service"
	"github.com/sangkips/hotel-billing-api/internal/presentation/http/dto/response"
)

// PaymentHandler handles payment-related HTTP requests
type PaymentHandler struct {
	paymentService *service.PaymentService
	invoiceService *service.InvoiceService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *service.PaymentService, invoiceService *service.InvoiceService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		invoiceService: invoiceService,
	}
}

// Pay records the payment of an invoice. Same contract as POST /invoices/:id/pay.
// @Summary Pay invoice
// @Tags payments
// @Security BearerAuth
// @Produce json
// @Param invoice_id path string true "Invoice ID"
// @Success 200 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /payments/{invoice_id}/pay [post]
func (h *PaymentHandler) Pay(c *gin.Context) {
	id, ok := parseIDParam(c, "invoice_id")
	if !ok {
		return
	}
	payInvoice(c, h.invoiceService, id)
}

// List handles listing the payments of an invoice
// @Summary List payments
// @Tags payments
// @Security BearerAuth
// @Produce json
// @Param invoice_id query string true "Invoice ID"
// @Success 200 {object} response.APIResponse
// @Router /payments [get]
func (h *PaymentHandler) List(c *gin.Context) {
	invoiceID, err := uuid.Parse(c.Query("invoice_id"))
	if err != nil {
		response.BadRequest(c, "invoice_id query parameter is required")
		return
	}

	payments, err := h.paymentService.ListByInvoice(c.Request.Context(), invoiceID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payments retrieved successfully", response.NewPaymentResponses(payments))
}
