package model

import (
	"errors"
	"fmt"
	"strings"
)

// Guest holds the registration details for a hotel guest.
//
// Fields:
//  ID             – unique identifier.
//  FirstName      – given name.
//  LastName       – family name.
//  SecondLastName – optional second family name.
//  DocumentType   – identity document type (passport, id_card, ...).
//  DocumentNumber – identity document number.
//  Email, Phone   – contact details.
//  Nationality    – ISO country name or code as entered.
//  Preferences    – structured stay preferences, see GuestPreferences.
type Guest struct {
	ID             string           `json:"id"`
	FirstName      string           `json:"first_name"`
	LastName       string           `json:"last_name"`
	SecondLastName string           `json:"second_last_name,omitempty"`
	DocumentType   string           `json:"document_type"`
	DocumentNumber string           `json:"document_number"`
	Email          string           `json:"email"`
	Phone          string           `json:"phone"`
	Nationality    string           `json:"nationality"`
	Preferences    GuestPreferences `json:"preferences"`
}

// DisplayName returns the name shown on reservations and sales.
func (g Guest) DisplayName() string {
	return strings.TrimSpace(g.FirstName + " " + g.LastName)
}

// GuestPreferences is a typed, versioned preference record.  Known
// preferences get dedicated fields; anything else goes into Extra.  The
// structure is validated before it is accepted, so a malformed edit in
// the dashboard never reaches the store.
//
// Fields:
//  Version      – schema version, currently 1.
//  Language     – preferred language for communication.
//  FloorChoice  – "low", "high" or empty for no preference.
//  SmokingRoom  – whether the guest asks for a smoking room.
//  DietaryNotes – free-form dietary requirements.
//  Extra        – arbitrary extension keys for anything not modeled yet.
type GuestPreferences struct {
	Version      int               `json:"version"`
	Language     string            `json:"language,omitempty"`
	FloorChoice  string            `json:"floor_choice,omitempty"`
	SmokingRoom  bool              `json:"smoking_room,omitempty"`
	DietaryNotes string            `json:"dietary_notes,omitempty"`
	Extra        map[string]string `json:"extra,omitempty"`
}

// PreferencesVersion is the current GuestPreferences schema version.
const PreferencesVersion = 1

// Validate checks a preference record before it is written to the
// store.  A zero Version is accepted and treated as the current
// version so that callers sending no preferences at all stay valid.
func (p GuestPreferences) Validate() error {
	if p.Version != 0 && p.Version != PreferencesVersion {
		return fmt.Errorf("unsupported preferences version %d", p.Version)
	}
	switch p.FloorChoice {
	case "", "low", "high":
	default:
		return fmt.Errorf("invalid floor_choice %q", p.FloorChoice)
	}
	for k := range p.Extra {
		if strings.TrimSpace(k) == "" {
			return errors.New("extra preference keys must not be blank")
		}
	}
	return nil
}
