package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-pms/internal/model"
	"github.com/iliyamo/hotel-pms/internal/queue"
	"github.com/iliyamo/hotel-pms/internal/service"
	"github.com/iliyamo/hotel-pms/internal/store"
)

func fixedTime() time.Time {
	return time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC)
}

func TestCompleteCheckInMarksRoomOccupied(t *testing.T) {
	st := newTestStore()
	pub := &capturingPublisher{}
	svc := service.NewReservationService(st, pub, 150)
	svc.Now = fixedTime

	res, err := svc.CompleteCheckIn(context.Background(), "res-1")
	require.NoError(t, err)

	assert.Equal(t, model.ReservationCheckIn, res.Status)
	assert.Equal(t, "2026-09-01", res.ActualCheckIn)

	snap := st.Snapshot()
	assert.Equal(t, model.RoomOccupied, roomByID(snap, "room-101").Status)
	assert.Equal(t, model.RoomAvailable, roomByID(snap, "room-102").Status)

	require.Len(t, pub.events, 1)
	assert.Equal(t, queue.EventGuestCheckedIn, pub.events[0].Type)
	assert.Equal(t, "RES-0001", pub.events[0].ReservationCode)
}

func TestCheckInThenCheckOut(t *testing.T) {
	// The pair of transitions must land on checkout/cleaning no matter
	// what the room status was beforehand.
	for _, initial := range []model.RoomStatus{
		model.RoomAvailable, model.RoomMaintenance, model.RoomOccupied,
	} {
		state := newTestState()
		state.Rooms[0].Status = initial
		st := store.New(state)
		svc := service.NewReservationService(st, nil, 150)
		svc.Now = fixedTime

		_, err := svc.CompleteCheckIn(context.Background(), "res-1")
		require.NoError(t, err)
		res, err := svc.CompleteCheckOut(context.Background(), "res-1")
		require.NoError(t, err)

		assert.Equal(t, model.ReservationCheckOut, res.Status)
		assert.Equal(t, "2026-09-01", res.ActualCheckOut)
		assert.Equal(t, model.RoomCleaning, roomByID(st.Snapshot(), "room-101").Status,
			"initial status %s", initial)
	}
}

func TestCheckInUnknownReservation(t *testing.T) {
	st := newTestStore()
	svc := service.NewReservationService(st, nil, 150)

	before := st.Snapshot()
	_, err := svc.CompleteCheckIn(context.Background(), "res-missing")
	require.ErrorIs(t, err, store.ErrNotFound)

	// Tolerated no-op: nothing moved.
	assert.Equal(t, before.Reservations, st.Snapshot().Reservations)
	assert.Equal(t, before.Rooms, st.Snapshot().Rooms)
}

func TestCheckInWithDanglingRoom(t *testing.T) {
	state := newTestState()
	state.Reservations[0].RoomID = "room-gone"
	st := store.New(state)
	svc := service.NewReservationService(st, nil, 150)
	svc.Now = fixedTime

	res, err := svc.CompleteCheckIn(context.Background(), "res-1")
	require.NoError(t, err)
	assert.Equal(t, model.ReservationCheckIn, res.Status)
}

func TestAddComputesNightsCodeAndDefaultTotal(t *testing.T) {
	st := newTestStore()
	svc := service.NewReservationService(st, nil, 150)
	svc.Now = fixedTime

	res, err := svc.Add(service.ReservationDraft{
		GuestID:  "guest-1",
		RoomID:   "room-102",
		CheckIn:  "2026-10-10",
		CheckOut: "2026-10-13",
		Adults:   2,
	})
	require.NoError(t, err)

	assert.Equal(t, model.ReservationPending, res.Status)
	assert.Equal(t, 3, res.Nights)
	assert.InDelta(t, 450, res.Total, 0.001)
	assert.Equal(t, "RES-0002", res.Code)
	assert.Equal(t, "Elena Ruiz", res.GuestName)
	assert.Equal(t, "102", res.RoomNumber)
	assert.NotEmpty(t, res.ID)
}

func TestAddClampsNightsToOne(t *testing.T) {
	st := newTestStore()
	svc := service.NewReservationService(st, nil, 150)

	res, err := svc.Add(service.ReservationDraft{
		RoomID:   "room-102",
		CheckIn:  "2026-10-10",
		CheckOut: "2026-10-10",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Nights)
	assert.InDelta(t, 150, res.Total, 0.001)
}

func TestAddKeepsSuppliedTotal(t *testing.T) {
	st := newTestStore()
	svc := service.NewReservationService(st, nil, 150)

	res, err := svc.Add(service.ReservationDraft{
		RoomID:   "room-102",
		CheckIn:  "2026-10-10",
		CheckOut: "2026-10-12",
		Total:    999.99,
	})
	require.NoError(t, err)
	assert.InDelta(t, 999.99, res.Total, 0.001)
}

func TestUpdatePatchesStatusWithoutRoomSideEffect(t *testing.T) {
	st := newTestStore()
	svc := service.NewReservationService(st, nil, 150)

	status := model.ReservationConfirmed
	res, err := svc.Update("res-1", service.ReservationPatch{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, model.ReservationConfirmed, res.Status)
	// The generic patch never touches the room.
	assert.Equal(t, model.RoomAvailable, roomByID(st.Snapshot(), "room-101").Status)
}

func TestUpdateRefreshesRoomNumberOnReassignment(t *testing.T) {
	st := newTestStore()
	svc := service.NewReservationService(st, nil, 150)

	roomID := "room-102"
	res, err := svc.Update("res-1", service.ReservationPatch{RoomID: &roomID})
	require.NoError(t, err)
	assert.Equal(t, "102", res.RoomNumber)
}

func TestUpdateUnknownReservation(t *testing.T) {
	st := newTestStore()
	svc := service.NewReservationService(st, nil, 150)

	notes := "late arrival"
	_, err := svc.Update("res-missing", service.ReservationPatch{Notes: &notes})
	assert.ErrorIs(t, err, store.ErrNotFound)
}
