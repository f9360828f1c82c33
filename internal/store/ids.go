package store

import (
	"fmt"

	"github.com/google/uuid"
)

// NewID returns a fresh opaque entity id.
func NewID() string { return uuid.NewString() }

// NextReservationCode advances the reservation counter and returns the
// next booking code.  Counters live in the state, so a mutation that
// fails after drawing a code gives the number back.
func (s *State) NextReservationCode() string {
	s.Seq.Reservation++
	return fmt.Sprintf("RES-%04d", s.Seq.Reservation)
}

// NextInvoiceNumber advances the invoice counter and returns the next
// invoice number.
func (s *State) NextInvoiceNumber() string {
	s.Seq.Invoice++
	return fmt.Sprintf("INV-%04d", s.Seq.Invoice)
}

// NextSaleNumber advances the sale counter and returns the next ticket
// number.
func (s *State) NextSaleNumber() string {
	s.Seq.Sale++
	return fmt.Sprintf("POS-%04d", s.Seq.Sale)
}
