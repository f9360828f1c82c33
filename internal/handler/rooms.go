package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-pms/internal/service"
)

// RoomHandler exposes room and room-type administration.
type RoomHandler struct {
	Rooms *service.RoomService
}

// NewRoomHandler constructs a RoomHandler and panics if the service is nil.
func NewRoomHandler(rooms *service.RoomService) *RoomHandler {
	if rooms == nil {
		panic("nil service passed to NewRoomHandler")
	}
	return &RoomHandler{Rooms: rooms}
}

// ListRooms handles GET /v1/rooms.
func (h *RoomHandler) ListRooms(c echo.Context) error {
	items := h.Rooms.ListRooms()
	return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

// CreateRoom handles POST /v1/rooms.
func (h *RoomHandler) CreateRoom(c echo.Context) error {
	var draft service.RoomDraft
	if err := c.Bind(&draft); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	room, err := h.Rooms.AddRoom(draft)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"item": room})
}

// UpdateRoom handles PATCH /v1/rooms/:id.
func (h *RoomHandler) UpdateRoom(c echo.Context) error {
	var patch service.RoomPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	room, err := h.Rooms.UpdateRoom(c.Param("id"), patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"item": room})
}

// ListRoomTypes handles GET /v1/room-types.
func (h *RoomHandler) ListRoomTypes(c echo.Context) error {
	items := h.Rooms.ListRoomTypes()
	return c.JSON(http.StatusOK, echo.Map{"items": items, "count": len(items)})
}

// CreateRoomType handles POST /v1/room-types.
func (h *RoomHandler) CreateRoomType(c echo.Context) error {
	var draft service.RoomTypeDraft
	if err := c.Bind(&draft); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	rt, err := h.Rooms.AddRoomType(draft)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"item": rt})
}

// UpdateRoomType handles PATCH /v1/room-types/:id.  A rename cascades
// to the rooms of that type inside the same update.
func (h *RoomHandler) UpdateRoomType(c echo.Context) error {
	var patch service.RoomTypePatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	rt, err := h.Rooms.UpdateRoomType(c.Param("id"), patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"item": rt})
}
