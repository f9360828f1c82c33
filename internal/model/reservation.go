package model

import "time"

// ReservationStatus enumerates the lifecycle states of a reservation.
// Cancellation is terminal; reservations are never physically removed.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCheckIn   ReservationStatus = "checkin"
	ReservationCheckOut  ReservationStatus = "checkout"
	ReservationCancelled ReservationStatus = "cancelled"
)

// Reservation records a stay booked for a guest in a room.  GuestName
// and RoomNumber are denormalized copies taken when the reservation is
// created or the referenced entity is edited; the dashboard reads them
// on every list view without a join.
//
// Dates (CheckIn, CheckOut, ActualCheckIn, ActualCheckOut) are plain
// YYYY-MM-DD strings and compare lexically.
//
// Fields:
//  ID                 – unique identifier.
//  Code               – human-readable booking code (e.g. RES-0042).
//  GuestID            – primary guest.
//  GuestName          – denormalized guest display name.
//  RoomID             – assigned room.
//  RoomNumber         – denormalized room number.
//  Status             – lifecycle status.
//  CheckIn, CheckOut  – planned stay dates.
//  Nights             – number of nights, computed at creation.
//  Total              – total price for the stay.
//  Adults, Children   – party size.
//  AdditionalGuestIDs – companions beyond the primary guest.
//  CreatedAt          – creation timestamp.
//  ActualCheckIn      – date the guest actually arrived, if any.
//  ActualCheckOut     – date the guest actually left, if any.
//  Notes              – optional operator notes.
type Reservation struct {
	ID                 string            `json:"id"`
	Code               string            `json:"code"`
	GuestID            string            `json:"guest_id"`
	GuestName          string            `json:"guest_name"`
	RoomID             string            `json:"room_id"`
	RoomNumber         string            `json:"room_number"`
	Status             ReservationStatus `json:"status"`
	CheckIn            string            `json:"check_in"`
	CheckOut           string            `json:"check_out"`
	Nights             int               `json:"nights"`
	Total              float64           `json:"total"`
	Adults             int               `json:"adults"`
	Children           int               `json:"children"`
	AdditionalGuestIDs []string          `json:"additional_guest_ids,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
	ActualCheckIn      string            `json:"actual_check_in,omitempty"`
	ActualCheckOut     string            `json:"actual_check_out,omitempty"`
	Notes              string            `json:"notes,omitempty"`
}
