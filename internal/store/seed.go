package store

import (
	"time"

	"github.com/iliyamo/hotel-pms/internal/model"
)

// Seed returns a small demo property so the dashboard has something to
// show on first start: one hotel, a handful of rooms, two guests and a
// minibar catalog with stock in two locations.
func Seed() State {
	now := time.Now().UTC()
	return State{
		Hotels: []model.Hotel{
			{ID: "hotel-1", Name: "Hotel Mirador", Currency: "EUR", TaxRate: 10},
		},
		RoomTypes: []model.RoomType{
			{ID: "rt-standard", Name: "Standard Double", BaseRate: 95, Capacity: 2, CreatedAt: now},
			{ID: "rt-suite", Name: "Junior Suite", BaseRate: 180, Capacity: 4, CreatedAt: now},
		},
		Rooms: []model.Room{
			{ID: "room-101", Number: "101", Type: "Standard Double", Floor: 1, Status: model.RoomAvailable},
			{ID: "room-102", Number: "102", Type: "Standard Double", Floor: 1, Status: model.RoomAvailable},
			{ID: "room-201", Number: "201", Type: "Junior Suite", Floor: 2, Status: model.RoomCleaning},
		},
		Guests: []model.Guest{
			{
				ID: "guest-1", FirstName: "Elena", LastName: "Ruiz",
				DocumentType: "passport", DocumentNumber: "X1204588",
				Email: "elena.ruiz@example.com", Phone: "+34 600 111 222",
				Nationality: "ES",
				Preferences: model.GuestPreferences{Version: model.PreferencesVersion, Language: "es", FloorChoice: "high"},
			},
			{
				ID: "guest-2", FirstName: "Marc", LastName: "Dubois",
				DocumentType: "id_card", DocumentNumber: "FR-77120",
				Email: "marc.dubois@example.com", Phone: "+33 6 11 22 33 44",
				Nationality: "FR",
			},
		},
		PaymentMethods: []model.PaymentMethod{
			{ID: "pm-cash", Name: "Cash"},
			{ID: "pm-card", Name: "Card"},
			{ID: "pm-transfer", Name: "Bank transfer"},
		},
		Categories: []model.ProductCategory{
			{ID: "cat-minibar", Name: "Minibar"},
			{ID: "cat-restaurant", Name: "Restaurant"},
		},
		Products: []model.Product{
			{ID: "prod-water", Name: "Mineral water 50cl", SKU: "MB-WAT", CategoryID: "cat-minibar", CategoryName: "Minibar", Price: 2.50, Cost: 0.60, Status: model.ProductActive, TrackStock: true},
			{ID: "prod-snack", Name: "Mixed nuts", SKU: "MB-NUT", CategoryID: "cat-minibar", CategoryName: "Minibar", Price: 4.00, Cost: 1.20, Status: model.ProductActive, TrackStock: true},
			{ID: "prod-breakfast", Name: "Breakfast buffet", SKU: "RS-BRK", CategoryID: "cat-restaurant", CategoryName: "Restaurant", Price: 14.00, Cost: 5.00, Status: model.ProductActive, TrackStock: false},
		},
		Locations: []model.InventoryLocation{
			{ID: "loc-storage", Name: "Central storage"},
			{ID: "loc-minibar", Name: "Minibar trolley"},
		},
		Inventory: []model.InventoryItem{
			{ID: "inv-water-storage", ProductID: "prod-water", ProductName: "Mineral water 50cl", SKU: "MB-WAT", LocationID: "loc-storage", LocationName: "Central storage", Stock: 120, MinStock: 24},
			{ID: "inv-water-minibar", ProductID: "prod-water", ProductName: "Mineral water 50cl", SKU: "MB-WAT", LocationID: "loc-minibar", LocationName: "Minibar trolley", Stock: 18, MinStock: 6},
			{ID: "inv-snack-storage", ProductID: "prod-snack", ProductName: "Mixed nuts", SKU: "MB-NUT", LocationID: "loc-storage", LocationName: "Central storage", Stock: 40, MinStock: 10},
		},
	}
}
