package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/hotel-billing-api/internal/application/service"
	"github.com/sangkips/hotel-billing-api/internal/presentation/http/dto/request"
	"github.com/sangkips/hotel-billing-api/internal/presentation/http/dto/response"
)

// TaxSlabHandler handles tax slab requests
type TaxSlabHandler struct {
	taxSlabService *service.TaxSlabService
}

// NewTaxSlabHandler creates a new tax slab handler
func NewTaxSlabHandler(taxSlabService *service.TaxSlabService) *TaxSlabHandler {
	return &TaxSlabHandler{taxSlabService: taxSlabService}
}

// Ensure returns the slab for a rate, creating it when it does not exist.
// Answers 201 on creation and 200 when the slab already existed.
// @Summary Get or create tax slab
// @Tags tax-slabs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.EnsureTaxSlabRequest true "Tax slab"
// @Success 200 {object} response.APIResponse
// @Success 201 {object} response.APIResponse
// @Router /tax-slabs [post]
func (h *TaxSlabHandler) Ensure(c *gin.Context) {
	var req request.EnsureTaxSlabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	slab, created, err := h.taxSlabService.EnsureTaxSlab(c.Request.Context(), &service.EnsureTaxSlabInput{
		Rate: *req.Rate,
		Name: req.Name,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	if created {
		response.Created(c, "Tax slab created successfully", slab)
		return
	}
	response.Success(c, http.StatusOK, "Tax slab already exists", slab)
}

// List handles listing tax slabs
// @Summary List tax slabs
// @Tags tax-slabs
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /tax-slabs [get]
func (h *TaxSlabHandler) List(c *gin.Context) {
	slabs, err := h.taxSlabService.ListTaxSlabs(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tax slabs retrieved successfully", slabs)
}
