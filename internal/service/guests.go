package service

import (
	"fmt"

	"github.com/iliyamo/hotel-pms/internal/model"
	"github.com/iliyamo/hotel-pms/internal/store"
)

// GuestService manages the guest registry.  Preferences are validated
// before any write: a malformed preference record never mutates state.
// Renaming a guest carries the new display name to reservations and
// sales referencing the guest.
type GuestService struct {
	store *store.Store
}

// NewGuestService constructs a GuestService.
func NewGuestService(st *store.Store) *GuestService {
	if st == nil {
		panic("nil store passed to NewGuestService")
	}
	return &GuestService{store: st}
}

// GuestDraft is the registration form for a new guest.
type GuestDraft struct {
	FirstName      string                 `json:"first_name"`
	LastName       string                 `json:"last_name"`
	SecondLastName string                 `json:"second_last_name"`
	DocumentType   string                 `json:"document_type"`
	DocumentNumber string                 `json:"document_number"`
	Email          string                 `json:"email"`
	Phone          string                 `json:"phone"`
	Nationality    string                 `json:"nationality"`
	Preferences    model.GuestPreferences `json:"preferences"`
}

// GuestPatch is a partial guest update.  Nil fields are left
// untouched; a non-nil Preferences replaces the whole record.
type GuestPatch struct {
	FirstName      *string                 `json:"first_name"`
	LastName       *string                 `json:"last_name"`
	SecondLastName *string                 `json:"second_last_name"`
	DocumentType   *string                 `json:"document_type"`
	DocumentNumber *string                 `json:"document_number"`
	Email          *string                 `json:"email"`
	Phone          *string                 `json:"phone"`
	Nationality    *string                 `json:"nationality"`
	Preferences    *model.GuestPreferences `json:"preferences"`
}

// Add registers a guest.  Invalid preferences reject the whole call.
func (s *GuestService) Add(draft GuestDraft) (model.Guest, error) {
	if err := draft.Preferences.Validate(); err != nil {
		return model.Guest{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	var created model.Guest
	err := s.store.Update(func(st *store.State) error {
		g := model.Guest{
			ID:             store.NewID(),
			FirstName:      draft.FirstName,
			LastName:       draft.LastName,
			SecondLastName: draft.SecondLastName,
			DocumentType:   draft.DocumentType,
			DocumentNumber: draft.DocumentNumber,
			Email:          draft.Email,
			Phone:          draft.Phone,
			Nationality:    draft.Nationality,
			Preferences:    draft.Preferences,
		}
		st.Guests = append(st.Guests, g)
		created = g
		return nil
	})
	return created, err
}

// Update applies a partial update.  Preferences are validated before
// the store is touched, so a malformed record leaves the guest (and
// everything else) exactly as it was.  A name change rewrites the
// denormalized guest name on reservations and sales.
func (s *GuestService) Update(id string, patch GuestPatch) (model.Guest, error) {
	if patch.Preferences != nil {
		if err := patch.Preferences.Validate(); err != nil {
			return model.Guest{}, fmt.Errorf("%w: %v", ErrValidation, err)
		}
	}
	var updated model.Guest
	err := s.store.Update(func(st *store.State) error {
		g := st.GuestByID(id)
		if g == nil {
			return store.ErrNotFound
		}
		oldName := g.DisplayName()
		if patch.FirstName != nil {
			g.FirstName = *patch.FirstName
		}
		if patch.LastName != nil {
			g.LastName = *patch.LastName
		}
		if patch.SecondLastName != nil {
			g.SecondLastName = *patch.SecondLastName
		}
		if patch.DocumentType != nil {
			g.DocumentType = *patch.DocumentType
		}
		if patch.DocumentNumber != nil {
			g.DocumentNumber = *patch.DocumentNumber
		}
		if patch.Email != nil {
			g.Email = *patch.Email
		}
		if patch.Phone != nil {
			g.Phone = *patch.Phone
		}
		if patch.Nationality != nil {
			g.Nationality = *patch.Nationality
		}
		if patch.Preferences != nil {
			g.Preferences = *patch.Preferences
		}
		if newName := g.DisplayName(); newName != oldName {
			for i := range st.Reservations {
				if st.Reservations[i].GuestID == g.ID {
					st.Reservations[i].GuestName = newName
				}
			}
			for i := range st.Sales {
				if st.Sales[i].GuestID == g.ID {
					st.Sales[i].GuestName = newName
				}
			}
		}
		updated = *g
		return nil
	})
	return updated, err
}

// List returns every guest in insertion order.
func (s *GuestService) List() []model.Guest {
	return s.store.Snapshot().Guests
}
