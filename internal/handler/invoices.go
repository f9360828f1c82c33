package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-pms/internal/service"
)

// InvoiceHandler exposes invoicing and the payment ledger.
type InvoiceHandler struct {
	Invoices *service.InvoiceService
}

// NewInvoiceHandler constructs an InvoiceHandler and panics if the
// service is nil.
func NewInvoiceHandler(inv *service.InvoiceService) *InvoiceHandler {
	if inv == nil {
		panic("nil service passed to NewInvoiceHandler")
	}
	return &InvoiceHandler{Invoices: inv}
}

// ListInvoices handles GET /v1/invoices.
func (h *InvoiceHandler) ListInvoices(c echo.Context) error {
	items := h.Invoices.List()
	return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

// CreateInvoice handles POST /v1/invoices.
func (h *InvoiceHandler) CreateInvoice(c echo.Context) error {
	var draft service.InvoiceDraft
	if err := c.Bind(&draft); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	inv, err := h.Invoices.Add(draft)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"item": inv})
}

// UpdateInvoice handles PATCH /v1/invoices/:id, the generic field
// patch used for operator status marking (overdue, cancelled).
func (h *InvoiceHandler) UpdateInvoice(c echo.Context) error {
	var patch service.InvoicePatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	inv, err := h.Invoices.Update(c.Param("id"), patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"item": inv})
}

// AddPayment handles POST /v1/invoices/:id/payments.  The payment id
// is assigned by the ledger; balance and status come back recomputed.
func (h *InvoiceHandler) AddPayment(c echo.Context) error {
	var draft service.PaymentDraft
	if err := c.Bind(&draft); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	inv, err := h.Invoices.AddPayment(c.Param("id"), draft)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"item": inv})
}
