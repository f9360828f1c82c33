package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-pms/internal/service"
)

// ReservationHandler exposes reservation intake and the front-desk
// lifecycle operations.
type ReservationHandler struct {
	Reservations *service.ReservationService
}

// NewReservationHandler constructs a ReservationHandler and panics if
// the service is nil.
func NewReservationHandler(res *service.ReservationService) *ReservationHandler {
	if res == nil {
		panic("nil service passed to NewReservationHandler")
	}
	return &ReservationHandler{Reservations: res}
}

// ListReservations handles GET /v1/reservations.
func (h *ReservationHandler) ListReservations(c echo.Context) error {
	items := h.Reservations.List()
	return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

// CreateReservation handles POST /v1/reservations.  Nights, total,
// code and id are computed server-side.
func (h *ReservationHandler) CreateReservation(c echo.Context) error {
	var draft service.ReservationDraft
	if err := c.Bind(&draft); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	res, err := h.Reservations.Add(draft)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"item": res})
}

// UpdateReservation handles PATCH /v1/reservations/:id, the generic
// field patch.  Status set through here does not touch room status.
func (h *ReservationHandler) UpdateReservation(c echo.Context) error {
	var patch service.ReservationPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	res, err := h.Reservations.Update(c.Param("id"), patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"item": res})
}

// CheckIn handles POST /v1/reservations/:id/check-in.
func (h *ReservationHandler) CheckIn(c echo.Context) error {
	res, err := h.Reservations.CompleteCheckIn(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"item": res})
}

// CheckOut handles POST /v1/reservations/:id/check-out.
func (h *ReservationHandler) CheckOut(c echo.Context) error {
	res, err := h.Reservations.CompleteCheckOut(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"item": res})
}
