package service

import (
	"context"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iliyamo/hotel-pms/internal/model"
	"github.com/iliyamo/hotel-pms/internal/queue"
	"github.com/iliyamo/hotel-pms/internal/store"
)

// DefaultNightlyRate prices a reservation when no total is supplied
// and no rate is configured.
const DefaultNightlyRate = 150

// ReservationService is the reservation lifecycle manager.  It owns
// the status state machine and the room-status side effects of
// check-in and check-out.  Check-in deliberately does not require the
// room to be available: overbooking protection belongs to the
// front-desk UI, not this layer.
type ReservationService struct {
	store       *store.Store
	events      queue.Publisher
	nightlyRate float64

	// Now supplies the current time; tests override it to pin dates.
	Now func() time.Time
}

// NewReservationService constructs a ReservationService.  events may
// be nil to disable publishing; a non-positive nightlyRate falls back
// to DefaultNightlyRate.
func NewReservationService(st *store.Store, events queue.Publisher, nightlyRate float64) *ReservationService {
	if st == nil {
		panic("nil store passed to NewReservationService")
	}
	if nightlyRate <= 0 {
		nightlyRate = DefaultNightlyRate
	}
	return &ReservationService{store: st, events: events, nightlyRate: nightlyRate, Now: time.Now}
}

// ReservationDraft is the intake form for a new reservation.  Code,
// id, nights and the default total are computed by Add.
type ReservationDraft struct {
	GuestID            string   `json:"guest_id"`
	RoomID             string   `json:"room_id"`
	CheckIn            string   `json:"check_in"`
	CheckOut           string   `json:"check_out"`
	Total              float64  `json:"total"`
	Adults             int      `json:"adults"`
	Children           int      `json:"children"`
	AdditionalGuestIDs []string `json:"additional_guest_ids"`
	Notes              string   `json:"notes"`
}

// ReservationPatch is a generic field patch.  Nil fields are left
// untouched.  Setting Status here bypasses the dedicated transition
// operations and does not touch room status; callers own consistency
// on that path.
type ReservationPatch struct {
	Status   *model.ReservationStatus `json:"status"`
	GuestID  *string                  `json:"guest_id"`
	RoomID   *string                  `json:"room_id"`
	CheckIn  *string                  `json:"check_in"`
	CheckOut *string                  `json:"check_out"`
	Nights   *int                     `json:"nights"`
	Total    *float64                 `json:"total"`
	Adults   *int                     `json:"adults"`
	Children *int                     `json:"children"`
	Notes    *string                  `json:"notes"`
}

// Add creates a reservation in pending status.  Nights are computed
// from the stay dates (minimum one); a zero total defaults to nights
// times the nightly rate; guest and room display fields are resolved
// from the referenced entities when they exist.
func (s *ReservationService) Add(draft ReservationDraft) (model.Reservation, error) {
	var created model.Reservation
	err := s.store.Update(func(st *store.State) error {
		res := model.Reservation{
			ID:                 store.NewID(),
			Code:               st.NextReservationCode(),
			GuestID:            draft.GuestID,
			RoomID:             draft.RoomID,
			Status:             model.ReservationPending,
			CheckIn:            draft.CheckIn,
			CheckOut:           draft.CheckOut,
			Nights:             nightsBetween(draft.CheckIn, draft.CheckOut),
			Total:              draft.Total,
			Adults:             draft.Adults,
			Children:           draft.Children,
			AdditionalGuestIDs: append([]string(nil), draft.AdditionalGuestIDs...),
			CreatedAt:          s.Now().UTC(),
			Notes:              draft.Notes,
		}
		if res.Total == 0 {
			res.Total = round2(decimal.NewFromFloat(s.nightlyRate).Mul(decimal.NewFromInt(int64(res.Nights))))
		}
		if g := st.GuestByID(draft.GuestID); g != nil {
			res.GuestName = g.DisplayName()
		}
		if r := st.RoomByID(draft.RoomID); r != nil {
			res.RoomNumber = r.Number
		}
		st.Reservations = append(st.Reservations, res)
		created = res
		return nil
	})
	return created, err
}

// Update applies a generic field patch to a reservation.  Reassigning
// the room or the primary guest refreshes the denormalized display
// fields from the newly referenced entity.
func (s *ReservationService) Update(id string, patch ReservationPatch) (model.Reservation, error) {
	var updated model.Reservation
	err := s.store.Update(func(st *store.State) error {
		res := st.ReservationByID(id)
		if res == nil {
			return store.ErrNotFound
		}
		if patch.Status != nil {
			res.Status = *patch.Status
		}
		if patch.GuestID != nil {
			res.GuestID = *patch.GuestID
			res.GuestName = ""
			if g := st.GuestByID(res.GuestID); g != nil {
				res.GuestName = g.DisplayName()
			}
		}
		if patch.RoomID != nil {
			res.RoomID = *patch.RoomID
			res.RoomNumber = ""
			if r := st.RoomByID(res.RoomID); r != nil {
				res.RoomNumber = r.Number
			}
		}
		if patch.CheckIn != nil {
			res.CheckIn = *patch.CheckIn
		}
		if patch.CheckOut != nil {
			res.CheckOut = *patch.CheckOut
		}
		if patch.Nights != nil {
			res.Nights = *patch.Nights
		}
		if patch.Total != nil {
			res.Total = round2(dec(*patch.Total))
		}
		if patch.Adults != nil {
			res.Adults = *patch.Adults
		}
		if patch.Children != nil {
			res.Children = *patch.Children
		}
		if patch.Notes != nil {
			res.Notes = *patch.Notes
		}
		updated = *res
		return nil
	})
	return updated, err
}

// CompleteCheckIn moves a reservation to checkin, stamps the arrival
// date and marks the linked room occupied, all in one update.
func (s *ReservationService) CompleteCheckIn(ctx context.Context, id string) (model.Reservation, error) {
	var updated model.Reservation
	err := s.store.Update(func(st *store.State) error {
		res := st.ReservationByID(id)
		if res == nil {
			return store.ErrNotFound
		}
		res.Status = model.ReservationCheckIn
		res.ActualCheckIn = s.Now().UTC().Format(dateLayout)
		if room := st.RoomByID(res.RoomID); room != nil {
			room.Status = model.RoomOccupied
		}
		updated = *res
		return nil
	})
	if err != nil {
		return model.Reservation{}, err
	}
	s.publish(ctx, queue.EventGuestCheckedIn, updated)
	return updated, nil
}

// CompleteCheckOut moves a reservation to checkout, stamps the
// departure date and sends the linked room to cleaning.
func (s *ReservationService) CompleteCheckOut(ctx context.Context, id string) (model.Reservation, error) {
	var updated model.Reservation
	err := s.store.Update(func(st *store.State) error {
		res := st.ReservationByID(id)
		if res == nil {
			return store.ErrNotFound
		}
		res.Status = model.ReservationCheckOut
		res.ActualCheckOut = s.Now().UTC().Format(dateLayout)
		if room := st.RoomByID(res.RoomID); room != nil {
			room.Status = model.RoomCleaning
		}
		updated = *res
		return nil
	})
	if err != nil {
		return model.Reservation{}, err
	}
	s.publish(ctx, queue.EventGuestCheckedOut, updated)
	return updated, nil
}

// List returns every reservation in creation order.
func (s *ReservationService) List() []model.Reservation {
	return s.store.Snapshot().Reservations
}

func (s *ReservationService) publish(ctx context.Context, eventType string, res model.Reservation) {
	if s.events == nil {
		return
	}
	ev := queue.FrontDeskEvent{
		Type:            eventType,
		OccurredAt:      s.Now().UTC().Format(time.RFC3339),
		ReservationID:   res.ID,
		ReservationCode: res.Code,
		GuestName:       res.GuestName,
		RoomNumber:      res.RoomNumber,
		Total:           res.Total,
	}
	if err := s.events.Publish(ctx, ev); err != nil {
		log.Printf("reservations: publish %s failed: %v", eventType, err)
	}
}
