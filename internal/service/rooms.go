package service

import (
	"fmt"
	"time"

	"github.com/iliyamo/hotel-pms/internal/model"
	"github.com/iliyamo/hotel-pms/internal/store"
)

// RoomService manages rooms and room types.  Renaming a room type
// rewrites the type name on every room tagged with the old name, and
// renumbering a room rewrites the denormalized room number on every
// reservation assigned to it.  Both cascades are one hop: a room-type
// rename never reaches into reservations.
type RoomService struct {
	store *store.Store
}

// NewRoomService constructs a RoomService.
func NewRoomService(st *store.Store) *RoomService {
	if st == nil {
		panic("nil store passed to NewRoomService")
	}
	return &RoomService{store: st}
}

// RoomDraft is the admin form for a new room.  Type is resolved from
// TypeID when possible; a missing status defaults to available.
type RoomDraft struct {
	Number string `json:"number"`
	TypeID string `json:"type_id"`
	Type   string `json:"type"`
	Floor  int    `json:"floor"`
	Notes  string `json:"notes"`
}

// RoomPatch is a partial room update.  Nil fields are left untouched.
type RoomPatch struct {
	Number *string           `json:"number"`
	TypeID *string           `json:"type_id"`
	Floor  *int              `json:"floor"`
	Status *model.RoomStatus `json:"status"`
	Notes  *string           `json:"notes"`
}

// RoomTypeDraft is the admin form for a new room type.
type RoomTypeDraft struct {
	Name     string  `json:"name"`
	BaseRate float64 `json:"base_rate"`
	Capacity int     `json:"capacity"`
}

// RoomTypePatch is a partial room type update.
type RoomTypePatch struct {
	Name     *string  `json:"name"`
	BaseRate *float64 `json:"base_rate"`
	Capacity *int     `json:"capacity"`
}

func validRoomStatus(s model.RoomStatus) bool {
	switch s {
	case model.RoomAvailable, model.RoomOccupied, model.RoomCleaning,
		model.RoomMaintenance, model.RoomOutOfService:
		return true
	}
	return false
}

// AddRoom creates a room in available status.
func (s *RoomService) AddRoom(draft RoomDraft) (model.Room, error) {
	var created model.Room
	err := s.store.Update(func(st *store.State) error {
		room := model.Room{
			ID:     store.NewID(),
			Number: draft.Number,
			Type:   draft.Type,
			Floor:  draft.Floor,
			Status: model.RoomAvailable,
			Notes:  draft.Notes,
		}
		if rt := st.RoomTypeByID(draft.TypeID); rt != nil {
			room.Type = rt.Name
		}
		st.Rooms = append(st.Rooms, room)
		created = room
		return nil
	})
	return created, err
}

// UpdateRoom applies a partial update.  A changed number is carried to
// every reservation assigned to the room so list views stay readable.
func (s *RoomService) UpdateRoom(id string, patch RoomPatch) (model.Room, error) {
	var updated model.Room
	err := s.store.Update(func(st *store.State) error {
		room := st.RoomByID(id)
		if room == nil {
			return store.ErrNotFound
		}
		if patch.Status != nil {
			if !validRoomStatus(*patch.Status) {
				return fmt.Errorf("%w: unknown room status %q", ErrValidation, *patch.Status)
			}
			room.Status = *patch.Status
		}
		if patch.Number != nil && *patch.Number != room.Number {
			room.Number = *patch.Number
			for i := range st.Reservations {
				if st.Reservations[i].RoomID == room.ID {
					st.Reservations[i].RoomNumber = room.Number
				}
			}
		}
		if patch.TypeID != nil {
			if rt := st.RoomTypeByID(*patch.TypeID); rt != nil {
				room.Type = rt.Name
			}
		}
		if patch.Floor != nil {
			room.Floor = *patch.Floor
		}
		if patch.Notes != nil {
			room.Notes = *patch.Notes
		}
		updated = *room
		return nil
	})
	return updated, err
}

// AddRoomType creates a room type.
func (s *RoomService) AddRoomType(draft RoomTypeDraft) (model.RoomType, error) {
	var created model.RoomType
	err := s.store.Update(func(st *store.State) error {
		rt := model.RoomType{
			ID:        store.NewID(),
			Name:      draft.Name,
			BaseRate:  draft.BaseRate,
			Capacity:  draft.Capacity,
			CreatedAt: time.Now().UTC(),
		}
		st.RoomTypes = append(st.RoomTypes, rt)
		created = rt
		return nil
	})
	return created, err
}

// UpdateRoomType applies a partial update.  A rename runs a single
// pass over the rooms collection and rewrites the type name of every
// room carrying the old one; nothing else on those rooms is touched.
func (s *RoomService) UpdateRoomType(id string, patch RoomTypePatch) (model.RoomType, error) {
	var updated model.RoomType
	err := s.store.Update(func(st *store.State) error {
		rt := st.RoomTypeByID(id)
		if rt == nil {
			return store.ErrNotFound
		}
		if patch.Name != nil && *patch.Name != rt.Name {
			oldName := rt.Name
			rt.Name = *patch.Name
			for i := range st.Rooms {
				if st.Rooms[i].Type == oldName {
					st.Rooms[i].Type = rt.Name
				}
			}
		}
		if patch.BaseRate != nil {
			rt.BaseRate = *patch.BaseRate
		}
		if patch.Capacity != nil {
			rt.Capacity = *patch.Capacity
		}
		updated = *rt
		return nil
	})
	return updated, err
}

// ListRooms returns every room in insertion order.
func (s *RoomService) ListRooms() []model.Room {
	return s.store.Snapshot().Rooms
}

// ListRoomTypes returns every room type in insertion order.
func (s *RoomService) ListRoomTypes() []model.RoomType {
	return s.store.Snapshot().RoomTypes
}
