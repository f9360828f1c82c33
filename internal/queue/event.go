// Package queue defines the front-desk events exchanged over the
// message broker and the publisher/consumer pair that moves them.
package queue

import "context"

// Event types carried on the frontdesk.events queue.
const (
	EventGuestCheckedIn  = "guest.checked_in"
	EventGuestCheckedOut = "guest.checked_out"
	EventSaleRecorded    = "sale.recorded"
)

// FrontDeskEvent is published when a front-desk operation settles.  It
// carries enough information for downstream consumers to log or notify
// without reading the store.
type FrontDeskEvent struct {
	Type            string  `json:"type"`
	OccurredAt      string  `json:"occurred_at"`
	HotelID         string  `json:"hotel_id,omitempty"`
	ReservationID   string  `json:"reservation_id,omitempty"`
	ReservationCode string  `json:"reservation_code,omitempty"`
	GuestName       string  `json:"guest_name,omitempty"`
	RoomNumber      string  `json:"room_number,omitempty"`
	SaleNumber      string  `json:"sale_number,omitempty"`
	Total           float64 `json:"total,omitempty"`
}

// Publisher sends front-desk events to interested consumers.  Services
// treat publishing as fire-and-forget: a nil Publisher disables it and
// errors never fail the operation that produced the event.
type Publisher interface {
	Publish(ctx context.Context, event FrontDeskEvent) error
}
