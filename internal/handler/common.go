// Package handler exposes the PMS operation surface over HTTP for the
// dashboard front end.  Handlers bind the request, call exactly one
// service operation and translate sentinel errors into statuses; no
// business rule lives here.
package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-pms/internal/service"
	"github.com/iliyamo/hotel-pms/internal/store"
)

// respondError maps service errors onto HTTP responses.  Unknown ids
// are 404 (referencing a stale id is tolerated, not fatal), rejected
// input is 400, anything else is a 500.
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	case errors.Is(err, service.ErrValidation):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "operation failed"})
	}
}

// Health is a simple health-check endpoint used by load balancers and
// monitoring systems to verify that the service is running.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
