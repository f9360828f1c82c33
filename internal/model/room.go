package model

import "time"

// RoomStatus enumerates the housekeeping states a room moves through.
// Check-in and check-out drive the occupied/cleaning transitions; the
// remaining states are set manually by housekeeping staff.
type RoomStatus string

const (
	RoomAvailable    RoomStatus = "available"
	RoomOccupied     RoomStatus = "occupied"
	RoomCleaning     RoomStatus = "cleaning"
	RoomMaintenance  RoomStatus = "maintenance"
	RoomOutOfService RoomStatus = "out_of_service"
)

// Room describes a physical room in the property.  Rooms are never
// deleted; decommissioned rooms are marked out_of_service instead.
//
// Fields:
//  ID        – unique identifier.
//  Number    – door number displayed throughout the dashboard.
//  Type      – room type name (denormalized copy of RoomType.Name).
//  Floor     – floor the room is on.
//  Status    – current housekeeping status.
//  Notes     – optional free-form operator notes.
type Room struct {
	ID     string     `json:"id"`
	Number string     `json:"number"`
	Type   string     `json:"type"`
	Floor  int        `json:"floor"`
	Status RoomStatus `json:"status"`
	Notes  string     `json:"notes,omitempty"`
}

// RoomType groups rooms that share a layout and a base price.  Renaming
// a room type rewrites the Type field of every room tagged with the old
// name.
//
// Fields:
//  ID        – unique identifier.
//  Name      – display name (e.g. "Standard Double", "Suite").
//  BaseRate  – default nightly rate for rooms of this type.
//  Capacity  – maximum number of guests.
//  CreatedAt – creation timestamp.
type RoomType struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	BaseRate  float64   `json:"base_rate"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
}
