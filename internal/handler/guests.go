package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-pms/internal/service"
)

// GuestHandler exposes the guest registry.
type GuestHandler struct {
	Guests *service.GuestService
}

// NewGuestHandler constructs a GuestHandler and panics if the service is nil.
func NewGuestHandler(guests *service.GuestService) *GuestHandler {
	if guests == nil {
		panic("nil service passed to NewGuestHandler")
	}
	return &GuestHandler{Guests: guests}
}

// ListGuests handles GET /v1/guests.
func (h *GuestHandler) ListGuests(c echo.Context) error {
	items := h.Guests.List()
	return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

// CreateGuest handles POST /v1/guests.  Preferences are validated
// before anything is written; a malformed record is a 400 with the
// state untouched.
func (h *GuestHandler) CreateGuest(c echo.Context) error {
	var draft service.GuestDraft
	if err := c.Bind(&draft); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	g, err := h.Guests.Add(draft)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"item": g})
}

// UpdateGuest handles PATCH /v1/guests/:id.
func (h *GuestHandler) UpdateGuest(c echo.Context) error {
	var patch service.GuestPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	g, err := h.Guests.Update(c.Param("id"), patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"item": g})
}
