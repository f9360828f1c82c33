package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-pms/internal/handler"
	"github.com/iliyamo/hotel-pms/internal/model"
	"github.com/iliyamo/hotel-pms/internal/service"
	"github.com/iliyamo/hotel-pms/internal/store"
)

func newReservationHandler() (*handler.ReservationHandler, *store.Store) {
	st := store.New(store.State{
		Hotels: []model.Hotel{{ID: "hotel-1", Name: "Test Hotel", TaxRate: 10}},
		Rooms:  []model.Room{{ID: "room-1", Number: "101", Status: model.RoomAvailable}},
		Guests: []model.Guest{{ID: "guest-1", FirstName: "Elena", LastName: "Ruiz"}},
		Reservations: []model.Reservation{{
			ID: "res-1", Code: "RES-0001", GuestID: "guest-1", RoomID: "room-1",
			GuestName: "Elena Ruiz", RoomNumber: "101", Status: model.ReservationPending,
		}},
		Seq: store.Sequences{Reservation: 1},
	})
	svc := service.NewReservationService(st, nil, 150)
	return handler.NewReservationHandler(svc), st
}

func TestCheckInEndpoint(t *testing.T) {
	h, st := newReservationHandler()
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/v1/reservations/res-1/check-in", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("res-1")

	require.NoError(t, h.CheckIn(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Item model.Reservation `json:"item"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, model.ReservationCheckIn, body.Item.Status)
	assert.NotEmpty(t, body.Item.ActualCheckIn)

	assert.Equal(t, model.RoomOccupied, st.Snapshot().Rooms[0].Status)
}

func TestCheckInUnknownReservationReturns404(t *testing.T) {
	h, _ := newReservationHandler()
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/v1/reservations/res-missing/check-in", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("res-missing")

	require.NoError(t, h.CheckIn(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateReservationEndpoint(t *testing.T) {
	h, _ := newReservationHandler()
	e := echo.New()

	payload := `{"guest_id":"guest-1","room_id":"room-1","check_in":"2026-09-01","check_out":"2026-09-04"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/reservations", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.CreateReservation(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Item model.Reservation `json:"item"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "RES-0002", body.Item.Code)
	assert.Equal(t, 3, body.Item.Nights)
	assert.Equal(t, "Elena Ruiz", body.Item.GuestName)
}

func TestCreateReservationRejectsMalformedBody(t *testing.T) {
	h, _ := newReservationHandler()
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/v1/reservations", strings.NewReader("{not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.CreateReservation(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
