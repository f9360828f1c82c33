package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-pms/internal/service"
)

// SaleHandler exposes the point of sale.
type SaleHandler struct {
	Sales *service.SaleService
}

// NewSaleHandler constructs a SaleHandler and panics if the service is nil.
func NewSaleHandler(sales *service.SaleService) *SaleHandler {
	if sales == nil {
		panic("nil service passed to NewSaleHandler")
	}
	return &SaleHandler{Sales: sales}
}

// ListSales handles GET /v1/sales; tickets come back most recent first.
func (h *SaleHandler) ListSales(c echo.Context) error {
	items := h.Sales.List()
	return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

// CreateSale handles POST /v1/sales.  The sale and its stock
// deductions settle atomically before the response is written.
func (h *SaleHandler) CreateSale(c echo.Context) error {
	var draft service.SaleDraft
	if err := c.Bind(&draft); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	sale, err := h.Sales.Add(c.Request().Context(), draft)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"item": sale})
}
