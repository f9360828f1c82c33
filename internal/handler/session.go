package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-pms/internal/session"
)

// sessionHeader identifies the dashboard session.  The front end sends
// a stable random id; a missing header falls back to a shared default
// so single-operator installs work without any setup.
const sessionHeader = "X-Session-ID"

// SessionHandler exposes the per-session dashboard preferences.
type SessionHandler struct {
	Prefs *session.PreferenceStore
}

// NewSessionHandler constructs a SessionHandler and panics if the
// store is nil.
func NewSessionHandler(prefs *session.PreferenceStore) *SessionHandler {
	if prefs == nil {
		panic("nil preference store passed to NewSessionHandler")
	}
	return &SessionHandler{Prefs: prefs}
}

func sessionID(c echo.Context) string {
	if id := c.Request().Header.Get(sessionHeader); id != "" {
		return id
	}
	return "default"
}

// GetPreferences handles GET /v1/session/preferences.
func (h *SessionHandler) GetPreferences(c echo.Context) error {
	prefs := h.Prefs.Get(c.Request().Context(), sessionID(c))
	return c.JSON(http.StatusOK, echo.Map{"item": prefs})
}

// PutPreferences handles PUT /v1/session/preferences.  The write to
// the backing store is fire-and-forget; the response reflects the
// accepted value immediately.
func (h *SessionHandler) PutPreferences(c echo.Context) error {
	var prefs session.Preferences
	if err := c.Bind(&prefs); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	h.Prefs.Set(c.Request().Context(), sessionID(c), prefs)
	return c.JSON(http.StatusOK, echo.Map{"item": prefs})
}
