package entity

import (
	"time"
)

type Coordinator struct {
	Name  string `json:"name" validate:"min=2"`
	Phone string `json:"phone" validate:"min=10,phone"`
}

type Event struct {
	ID           string        `json:"id" db:"id"`
	Title        string        `json:"title" db:"title"`
	Description  string        `json:"description" db:"description"`
	EventDate    time.Time     `json:"eventDate" db:"event_date"`
	Coordinators []Coordinator `json:"coordinators" db:"coordinators"`
	WhatsappLink string        `json:"whatsappLink" db:"whatsapp_link"`
	IsTeamBased  bool          `json:"isTeamBased" db:"is_team_based"`
	MinTeamSize  int           `json:"minTeamSize" db:"min_team_size"`
	MaxTeamSize  int           `json:"maxTeamSize" db:"max_team_size"`
	CreatedAt    time.Time     `json:"createdAt" db:"created_at"`
}

// EventInput is a validated event as submitted by an admin, before the
// store assigns id and creation time.
type EventInput struct {
	Title        string        `json:"title" validate:"min=3"`
	Description  string        `json:"description" validate:"min=10"`
	EventDate    string        `json:"eventDate" validate:"timestamp"`
	Coordinators []Coordinator `json:"coordinators" validate:"min=1,max=3,dive"`
	WhatsappLink string        `json:"whatsappLink" validate:"url"`
	IsTeamBased  bool          `json:"isTeamBased"`
	MinTeamSize  int           `json:"minTeamSize" validate:"min=1,max=50"`
	MaxTeamSize  int           `json:"maxTeamSize" validate:"min=1,max=50"`

	// ParsedDate is filled by the validator once EventDate is known to parse.
	ParsedDate time.Time `json:"-" validate:"-"`
}

// ValidTeamConfig reports whether the team bounds agree with IsTeamBased.
func (in *EventInput) ValidTeamConfig() bool {
	if !in.IsTeamBased {
		return in.MinTeamSize == 1 && in.MaxTeamSize == 1
	}
	if in.MinTeamSize < 2 {
		return false
	}
	return in.MaxTeamSize >= in.MinTeamSize
}

// NewEvent builds the event to persist from a validated input.
func NewEvent(in *EventInput, createdAt time.Time) *Event {
	coordinators := make([]Coordinator, len(in.Coordinators))
	copy(coordinators, in.Coordinators)

	return &Event{
		Title:        in.Title,
		Description:  in.Description,
		EventDate:    in.ParsedDate,
		Coordinators: coordinators,
		WhatsappLink: in.WhatsappLink,
		IsTeamBased:  in.IsTeamBased,
		MinTeamSize:  in.MinTeamSize,
		MaxTeamSize:  in.MaxTeamSize,
		CreatedAt:    createdAt,
	}
}

// IsTeamRegistration reports whether registrations for the event go through
// the team path. Events whose bounds collapse to a single member register
// individually even when flagged as team based.
func (e *Event) IsTeamRegistration() bool {
	return e.IsTeamBased && e.MaxTeamSize > 1
}

// IsLive reports whether the event is still open for registration at now.
func (e *Event) IsLive(now time.Time) bool {
	return !e.EventDate.Before(now)
}

// NormalizeTeamBounds resolves the stored team size columns into min/max
// bounds. Events written before min/max existed only carry a single legacy
// team size; missing values fall back to it and then to 1.
func NormalizeTeamBounds(minSize, maxSize, legacySize *int) (int, int) {
	resolve := func(v *int) int {
		if v != nil {
			return *v
		}
		if legacySize != nil {
			return *legacySize
		}
		return 1
	}
	return resolve(minSize), resolve(maxSize)
}
