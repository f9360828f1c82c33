package store_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-pms/internal/model"
	"github.com/iliyamo/hotel-pms/internal/store"
)

func baseState() store.State {
	return store.State{
		Hotels: []model.Hotel{{ID: "hotel-1", Name: "Test Hotel", TaxRate: 10}},
		Rooms:  []model.Room{{ID: "room-1", Number: "101", Status: model.RoomAvailable}},
		Guests: []model.Guest{{
			ID: "guest-1", FirstName: "Elena", LastName: "Ruiz",
			Preferences: model.GuestPreferences{
				Version: model.PreferencesVersion,
				Extra:   map[string]string{"pillow": "firm"},
			},
		}},
	}
}

func TestUpdateRollsBackOnError(t *testing.T) {
	st := store.New(baseState())

	boom := errors.New("boom")
	err := st.Update(func(s *store.State) error {
		s.Rooms[0].Status = model.RoomOccupied
		s.Rooms = append(s.Rooms, model.Room{ID: "room-2", Number: "102"})
		s.NextReservationCode()
		return boom
	})
	require.ErrorIs(t, err, boom)

	snap := st.Snapshot()
	assert.Len(t, snap.Rooms, 1)
	assert.Equal(t, model.RoomAvailable, snap.Rooms[0].Status)
	// The sequence counter rolled back with everything else.
	var code string
	require.NoError(t, st.Update(func(s *store.State) error {
		code = s.NextReservationCode()
		return nil
	}))
	assert.Equal(t, "RES-0001", code)
}

func TestSnapshotIsIsolatedFromLaterUpdates(t *testing.T) {
	st := store.New(baseState())

	snap := st.Snapshot()
	require.NoError(t, st.Update(func(s *store.State) error {
		s.Rooms[0].Status = model.RoomMaintenance
		s.Guests[0].Preferences.Extra["pillow"] = "soft"
		return nil
	}))

	assert.Equal(t, model.RoomAvailable, snap.Rooms[0].Status)
	assert.Equal(t, "firm", snap.Guests[0].Preferences.Extra["pillow"])
}

func TestMutatingASnapshotLeavesTheStoreAlone(t *testing.T) {
	st := store.New(baseState())

	snap := st.Snapshot()
	snap.Guests[0].Preferences.Extra["pillow"] = "soft"
	snap.Rooms[0].Number = "999"

	fresh := st.Snapshot()
	assert.Equal(t, "firm", fresh.Guests[0].Preferences.Extra["pillow"])
	assert.Equal(t, "101", fresh.Rooms[0].Number)
}

func TestSequenceCodesAreZeroPadded(t *testing.T) {
	st := store.New(store.State{})

	var codes []string
	require.NoError(t, st.Update(func(s *store.State) error {
		codes = append(codes, s.NextReservationCode(), s.NextInvoiceNumber(), s.NextSaleNumber(), s.NextReservationCode())
		return nil
	}))
	assert.Equal(t, []string{"RES-0001", "INV-0001", "POS-0001", "RES-0002"}, codes)
}

func TestLookupHelpersReturnNilForUnknownIDs(t *testing.T) {
	state := baseState()
	assert.Nil(t, state.RoomByID("nope"))
	assert.Nil(t, state.GuestByID("nope"))
	assert.Nil(t, state.ReservationByID("nope"))
	assert.Nil(t, state.InvoiceByID("nope"))
	assert.NotNil(t, state.RoomByID("room-1"))
}

func TestActiveHotelFallsBackToFirst(t *testing.T) {
	state := baseState()
	assert.Equal(t, "hotel-1", state.ActiveHotel("").ID)
	assert.Equal(t, "hotel-1", state.ActiveHotel("hotel-unknown").ID)
	assert.Equal(t, "hotel-1", state.ActiveHotel("hotel-1").ID)

	empty := store.State{}
	assert.Nil(t, empty.ActiveHotel("hotel-1"))
}
