package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-pms/internal/config"
	"github.com/iliyamo/hotel-pms/internal/handler"
	"github.com/iliyamo/hotel-pms/internal/queue"
	"github.com/iliyamo/hotel-pms/internal/router"
	"github.com/iliyamo/hotel-pms/internal/service"
	"github.com/iliyamo/hotel-pms/internal/session"
	"github.com/iliyamo/hotel-pms/internal/store"
)

func main() {
	// Load .env when present; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	// The entity store is the single owner of all collections.  It
	// starts from the demo seed; there is no durable persistence.
	st := store.New(store.Seed())

	// Redis is optional: a nil client leaves session preferences
	// process-local.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; session preferences stay in-memory")
	}
	prefs := session.NewPreferenceStore(rdb)

	// Front-desk events are fire-and-forget; the consumer mirrors them
	// into logs/frontdesk.log for the night audit.
	events := queue.NewAMQPPublisher()
	go queue.StartFrontDeskConsumer()

	reservations := service.NewReservationService(st, events, cfg.NightlyRate)
	rooms := service.NewRoomService(st)
	guests := service.NewGuestService(st)
	invoices := service.NewInvoiceService(st, cfg.TaxRate)
	sales := service.NewSaleService(st, events, cfg.TaxRate)
	catalog := service.NewCatalogService(st)

	e := echo.New()
	router.RegisterRoutes(e, router.Handlers{
		Rooms:        handler.NewRoomHandler(rooms),
		Reservations: handler.NewReservationHandler(reservations),
		Guests:       handler.NewGuestHandler(guests),
		Invoices:     handler.NewInvoiceHandler(invoices),
		Sales:        handler.NewSaleHandler(sales),
		Catalog:      handler.NewCatalogHandler(catalog),
		Session:      handler.NewSessionHandler(prefs),
	})

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
