package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"uniboks/internal/core/apperror"
	"uniboks/internal/domain/purchase"
	"uniboks/internal/infrastructure/http/v1/dto"
	"uniboks/pkg/logger"
)

// PurchaseHandler handles checkout and purchase history endpoints.
type PurchaseHandler struct {
	*BaseHandler
	service *purchase.Service
}

// NewPurchaseHandler creates a purchase handler.
func NewPurchaseHandler(base *BaseHandler, service *purchase.Service) *PurchaseHandler {
	return &PurchaseHandler{BaseHandler: base, service: service}
}

// Checkout records a purchase and streams back the rendered invoice as
// a PDF download named after the invoice number.
// POST /api/v1/purchases/checkout?userId=...
func (h *PurchaseHandler) Checkout(c *gin.Context) {
	userID, ok := h.QueryID(c, "userId")
	if !ok {
		return
	}

	var req dto.CheckoutRequest
	if !h.BindJSON(c, &req) {
		return
	}

	domainReq, err := req.ToDomain(userID.String())
	if err != nil {
		h.Error(c, err)
		return
	}

	result, err := h.service.Checkout(c.Request.Context(), domainReq)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+result.Filename()+`"`)
	c.Header("Content-Type", "application/pdf")
	c.Header("X-Invoice-Number", result.InvoiceNumber)
	c.Status(http.StatusOK)

	// The purchase is already committed at this point. A failed write
	// only loses the download; it is logged and never retried.
	if _, err := c.Writer.Write(result.Document); err != nil {
		logger.Error(c.Request.Context(), "invoice delivery failed",
			"invoice_number", result.InvoiceNumber,
			"error", apperror.NewDelivery(err),
		)
	}
}

// List returns the user's purchase history.
// GET /api/v1/purchases?userId=...
func (h *PurchaseHandler) List(c *gin.Context) {
	userID, ok := h.QueryID(c, "userId")
	if !ok {
		return
	}

	purchases, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromPurchases(purchases))
}

// Summary returns total spend and book count for a user.
// GET /api/v1/purchases/summary?userId=...
func (h *PurchaseHandler) Summary(c *gin.Context) {
	userID, ok := h.QueryID(c, "userId")
	if !ok {
		return
	}

	summary, err := h.service.SummaryByUser(c.Request.Context(), userID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromSummary(summary))
}
