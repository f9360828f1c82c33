package store

import (
	"sync"

	"github.com/iliyamo/hotel-pms/internal/model"
)

// State is the full in-memory dataset of the property.  It is a plain
// value: copying a State (via clone) copies every collection, so a
// mutation applied to a copy leaves the original untouched.  Collection
// order is meaningful for Inventory (stock is depleted in row order)
// and Sales (most recent first); the other collections keep insertion
// order for stable dashboard listings.
type State struct {
	Hotels         []model.Hotel
	RoomTypes      []model.RoomType
	Rooms          []model.Room
	Guests         []model.Guest
	Reservations   []model.Reservation
	Invoices       []model.Invoice
	PaymentMethods []model.PaymentMethod
	Categories     []model.ProductCategory
	Products       []model.Product
	Locations      []model.InventoryLocation
	Inventory      []model.InventoryItem
	Sales          []model.Sale

	// Seq carries the counters behind human-readable codes.  Keeping
	// them inside the state means a rolled-back mutation also rolls
	// back the numbering.
	Seq Sequences
}

// Sequences are the per-entity counters for generated codes.
type Sequences struct {
	Reservation uint64
	Invoice     uint64
	Sale        uint64
}

// Store is the single owner of a State.  There is exactly one logical
// writer at a time: Update serializes mutations behind a mutex and
// publishes the next state atomically, so readers always observe the
// fully settled result of the previous operation.
type Store struct {
	mu    sync.RWMutex
	state State
}

// New returns a Store seeded with the given initial state.
func New(initial State) *Store {
	return &Store{state: initial.clone()}
}

// Update runs fn against a copy of the current state.  When fn returns
// nil the copy becomes the current state; when fn returns an error the
// copy is discarded and the store is left exactly as it was.  fn must
// not retain pointers into the state beyond the call.
func (s *Store) Update(fn func(*State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.state.clone()
	if err := fn(&next); err != nil {
		return err
	}
	s.state = next
	return nil
}

// Snapshot returns a copy of the current state for reading.  The copy
// is independent: callers may range over it or hand slices to the
// encoder without holding any lock.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// clone deep-copies the state.  Nested slices and maps are copied
// element by element so that no backing array is shared between the
// current state and a mutation in progress.
func (s State) clone() State {
	out := s
	out.Hotels = append([]model.Hotel(nil), s.Hotels...)
	out.RoomTypes = append([]model.RoomType(nil), s.RoomTypes...)
	out.Rooms = append([]model.Room(nil), s.Rooms...)
	out.PaymentMethods = append([]model.PaymentMethod(nil), s.PaymentMethods...)
	out.Categories = append([]model.ProductCategory(nil), s.Categories...)
	out.Products = append([]model.Product(nil), s.Products...)
	out.Locations = append([]model.InventoryLocation(nil), s.Locations...)
	out.Inventory = append([]model.InventoryItem(nil), s.Inventory...)

	out.Guests = append([]model.Guest(nil), s.Guests...)
	for i := range out.Guests {
		if extra := out.Guests[i].Preferences.Extra; extra != nil {
			m := make(map[string]string, len(extra))
			for k, v := range extra {
				m[k] = v
			}
			out.Guests[i].Preferences.Extra = m
		}
	}

	out.Reservations = append([]model.Reservation(nil), s.Reservations...)
	for i := range out.Reservations {
		out.Reservations[i].AdditionalGuestIDs = append([]string(nil), out.Reservations[i].AdditionalGuestIDs...)
	}

	out.Invoices = append([]model.Invoice(nil), s.Invoices...)
	for i := range out.Invoices {
		out.Invoices[i].Items = append([]model.InvoiceItem(nil), out.Invoices[i].Items...)
		out.Invoices[i].Payments = append([]model.InvoicePayment(nil), out.Invoices[i].Payments...)
	}

	out.Sales = append([]model.Sale(nil), s.Sales...)
	for i := range out.Sales {
		out.Sales[i].Items = append([]model.SaleItem(nil), out.Sales[i].Items...)
	}
	return out
}

// The lookup helpers below return pointers into the state so that
// Update closures can patch an entity in place.  A nil result means the
// id is unknown.

// RoomByID finds a room by id.
func (s *State) RoomByID(id string) *model.Room {
	for i := range s.Rooms {
		if s.Rooms[i].ID == id {
			return &s.Rooms[i]
		}
	}
	return nil
}

// RoomTypeByID finds a room type by id.
func (s *State) RoomTypeByID(id string) *model.RoomType {
	for i := range s.RoomTypes {
		if s.RoomTypes[i].ID == id {
			return &s.RoomTypes[i]
		}
	}
	return nil
}

// GuestByID finds a guest by id.
func (s *State) GuestByID(id string) *model.Guest {
	for i := range s.Guests {
		if s.Guests[i].ID == id {
			return &s.Guests[i]
		}
	}
	return nil
}

// ReservationByID finds a reservation by id.
func (s *State) ReservationByID(id string) *model.Reservation {
	for i := range s.Reservations {
		if s.Reservations[i].ID == id {
			return &s.Reservations[i]
		}
	}
	return nil
}

// InvoiceByID finds an invoice by id.
func (s *State) InvoiceByID(id string) *model.Invoice {
	for i := range s.Invoices {
		if s.Invoices[i].ID == id {
			return &s.Invoices[i]
		}
	}
	return nil
}

// PaymentMethodByID finds a payment method by id.
func (s *State) PaymentMethodByID(id string) *model.PaymentMethod {
	for i := range s.PaymentMethods {
		if s.PaymentMethods[i].ID == id {
			return &s.PaymentMethods[i]
		}
	}
	return nil
}

// CategoryByID finds a product category by id.
func (s *State) CategoryByID(id string) *model.ProductCategory {
	for i := range s.Categories {
		if s.Categories[i].ID == id {
			return &s.Categories[i]
		}
	}
	return nil
}

// ProductByID finds a product by id.
func (s *State) ProductByID(id string) *model.Product {
	for i := range s.Products {
		if s.Products[i].ID == id {
			return &s.Products[i]
		}
	}
	return nil
}

// LocationByID finds an inventory location by id.
func (s *State) LocationByID(id string) *model.InventoryLocation {
	for i := range s.Locations {
		if s.Locations[i].ID == id {
			return &s.Locations[i]
		}
	}
	return nil
}

// InventoryItemByID finds an inventory row by id.
func (s *State) InventoryItemByID(id string) *model.InventoryItem {
	for i := range s.Inventory {
		if s.Inventory[i].ID == id {
			return &s.Inventory[i]
		}
	}
	return nil
}

// ActiveHotel returns the hotel with the given id, or the first hotel
// in the state when the id is empty or unknown.  The dashboard always
// operates on some property, so a best-effort fallback beats failing.
func (s *State) ActiveHotel(id string) *model.Hotel {
	for i := range s.Hotels {
		if s.Hotels[i].ID == id {
			return &s.Hotels[i]
		}
	}
	if len(s.Hotels) > 0 {
		return &s.Hotels[0]
	}
	return nil
}
