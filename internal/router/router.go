package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-pms/internal/handler"
)

// Handlers bundles every handler the API mounts.  All fields must be
// non-nil; RegisterRoutes wires each one under /v1.
type Handlers struct {
	Rooms        *handler.RoomHandler
	Reservations *handler.ReservationHandler
	Guests       *handler.GuestHandler
	Invoices     *handler.InvoiceHandler
	Sales        *handler.SaleHandler
	Catalog      *handler.CatalogHandler
	Session      *handler.SessionHandler
}

// RegisterRoutes registers the health check and the full operation
// surface on the provided Echo instance.  The dashboard is the only
// intended caller; every route speaks JSON.
func RegisterRoutes(e *echo.Echo, h Handlers) {
	// Health endpoint for load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	v1 := e.Group("/v1")

	// Rooms and room types.  Room-type renames cascade to rooms.
	v1.GET("/rooms", h.Rooms.ListRooms)
	v1.POST("/rooms", h.Rooms.CreateRoom)
	v1.PATCH("/rooms/:id", h.Rooms.UpdateRoom)
	v1.GET("/room-types", h.Rooms.ListRoomTypes)
	v1.POST("/room-types", h.Rooms.CreateRoomType)
	v1.PATCH("/room-types/:id", h.Rooms.UpdateRoomType)

	// Guests.
	v1.GET("/guests", h.Guests.ListGuests)
	v1.POST("/guests", h.Guests.CreateGuest)
	v1.PATCH("/guests/:id", h.Guests.UpdateGuest)

	// Reservations and the front-desk lifecycle.  Check-in/check-out
	// carry the room status side effects; the generic PATCH does not.
	v1.GET("/reservations", h.Reservations.ListReservations)
	v1.POST("/reservations", h.Reservations.CreateReservation)
	v1.PATCH("/reservations/:id", h.Reservations.UpdateReservation)
	v1.POST("/reservations/:id/check-in", h.Reservations.CheckIn)
	v1.POST("/reservations/:id/check-out", h.Reservations.CheckOut)

	// Invoicing and the payment ledger.
	v1.GET("/invoices", h.Invoices.ListInvoices)
	v1.POST("/invoices", h.Invoices.CreateInvoice)
	v1.PATCH("/invoices/:id", h.Invoices.UpdateInvoice)
	v1.POST("/invoices/:id/payments", h.Invoices.AddPayment)

	// Point of sale.  Creating a sale deducts stock atomically.
	v1.GET("/sales", h.Sales.ListSales)
	v1.POST("/sales", h.Sales.CreateSale)

	// Catalog and inventory.
	v1.GET("/products", h.Catalog.ListProducts)
	v1.POST("/products", h.Catalog.CreateProduct)
	v1.PATCH("/products/:id", h.Catalog.UpdateProduct)
	v1.GET("/categories", h.Catalog.ListCategories)
	v1.POST("/categories", h.Catalog.CreateCategory)
	v1.PATCH("/categories/:id", h.Catalog.UpdateCategory)
	v1.GET("/locations", h.Catalog.ListLocations)
	v1.POST("/locations", h.Catalog.CreateLocation)
	v1.PATCH("/locations/:id", h.Catalog.UpdateLocation)
	v1.GET("/inventory", h.Catalog.ListInventory)
	v1.POST("/inventory", h.Catalog.CreateInventoryItem)
	v1.PATCH("/inventory/:id", h.Catalog.UpdateInventoryItem)

	// Session-scoped dashboard preferences.
	v1.GET("/session/preferences", h.Session.GetPreferences)
	v1.PUT("/session/preferences", h.Session.PutPreferences)
}
