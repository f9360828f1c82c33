package service_test

import (
	"context"

	"github.com/iliyamo/hotel-pms/internal/model"
	"github.com/iliyamo/hotel-pms/internal/queue"
	"github.com/iliyamo/hotel-pms/internal/store"
)

// capturingPublisher records published events for assertions.
type capturingPublisher struct {
	events []queue.FrontDeskEvent
}

func (p *capturingPublisher) Publish(_ context.Context, ev queue.FrontDeskEvent) error {
	p.events = append(p.events, ev)
	return nil
}

// newTestState builds a small property: one hotel with a 10% tax rate,
// two rooms, one guest, one pending reservation for room 101, two
// tracked products with stock split across two locations (storage
// listed before the minibar trolley) and one untracked product.
func newTestState() store.State {
	return store.State{
		Hotels: []model.Hotel{
			{ID: "hotel-1", Name: "Test Hotel", Currency: "EUR", TaxRate: 10},
		},
		RoomTypes: []model.RoomType{
			{ID: "rt-1", Name: "Standard Double", BaseRate: 95, Capacity: 2},
			{ID: "rt-2", Name: "Junior Suite", BaseRate: 180, Capacity: 4},
		},
		Rooms: []model.Room{
			{ID: "room-101", Number: "101", Type: "Standard Double", Floor: 1, Status: model.RoomAvailable},
			{ID: "room-102", Number: "102", Type: "Standard Double", Floor: 1, Status: model.RoomAvailable},
		},
		Guests: []model.Guest{
			{ID: "guest-1", FirstName: "Elena", LastName: "Ruiz", Email: "elena@example.com"},
		},
		Reservations: []model.Reservation{
			{
				ID: "res-1", Code: "RES-0001", GuestID: "guest-1", GuestName: "Elena Ruiz",
				RoomID: "room-101", RoomNumber: "101", Status: model.ReservationPending,
				CheckIn: "2026-09-01", CheckOut: "2026-09-04", Nights: 3, Total: 450,
				Adults: 2,
			},
		},
		PaymentMethods: []model.PaymentMethod{
			{ID: "pm-cash", Name: "Cash"},
			{ID: "pm-card", Name: "Card"},
		},
		Categories: []model.ProductCategory{
			{ID: "cat-minibar", Name: "Minibar"},
			{ID: "cat-restaurant", Name: "Restaurant"},
		},
		Products: []model.Product{
			{ID: "prod-water", Name: "Mineral water", SKU: "MB-WAT", CategoryID: "cat-minibar", CategoryName: "Minibar", Price: 2.50, Status: model.ProductActive, TrackStock: true},
			{ID: "prod-snack", Name: "Mixed nuts", SKU: "MB-NUT", CategoryID: "cat-minibar", CategoryName: "Minibar", Price: 4.00, Status: model.ProductActive, TrackStock: true},
			{ID: "prod-breakfast", Name: "Breakfast buffet", SKU: "RS-BRK", CategoryID: "cat-restaurant", CategoryName: "Restaurant", Price: 14.00, Status: model.ProductActive, TrackStock: false},
		},
		Locations: []model.InventoryLocation{
			{ID: "loc-a", Name: "Central storage"},
			{ID: "loc-b", Name: "Minibar trolley"},
		},
		Seq: store.Sequences{Reservation: 1},
		Inventory: []model.InventoryItem{
			{ID: "inv-water-a", ProductID: "prod-water", ProductName: "Mineral water", SKU: "MB-WAT", LocationID: "loc-a", LocationName: "Central storage", Stock: 6, MinStock: 2},
			{ID: "inv-water-b", ProductID: "prod-water", ProductName: "Mineral water", SKU: "MB-WAT", LocationID: "loc-b", LocationName: "Minibar trolley", Stock: 0, MinStock: 2},
			{ID: "inv-snack-a", ProductID: "prod-snack", ProductName: "Mixed nuts", SKU: "MB-NUT", LocationID: "loc-a", LocationName: "Central storage", Stock: 2, MinStock: 1},
			{ID: "inv-snack-b", ProductID: "prod-snack", ProductName: "Mixed nuts", SKU: "MB-NUT", LocationID: "loc-b", LocationName: "Minibar trolley", Stock: 10, MinStock: 1},
		},
	}
}

func newTestStore() *store.Store {
	return store.New(newTestState())
}

// roomByID fetches a room from a snapshot by id.
func roomByID(st store.State, id string) model.Room {
	for _, r := range st.Rooms {
		if r.ID == id {
			return r
		}
	}
	return model.Room{}
}

// inventoryByID fetches a stock row from a snapshot by id.
func inventoryByID(st store.State, id string) model.InventoryItem {
	for _, it := range st.Inventory {
		if it.ID == id {
			return it
		}
	}
	return model.InventoryItem{}
}
