package event

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	TypeTrial      EventType = "trial"
	TypeTournament EventType = "tournament"
	TypeShowcase   EventType = "showcase"
	TypeWorkshop   EventType = "workshop"
)

func ParseEventType(s string) EventType {
	switch EventType(s) {
	case TypeTrial, TypeTournament, TypeShowcase, TypeWorkshop:
		return EventType(s)
	default:
		return ""
	}
}

type Event struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Type        EventType `json:"type"`
	Organizer   string    `json:"organizer"`
	Description string    `json:"description"`
	CreatedBy   uuid.UUID `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

type EventInput struct {
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Type        string    `json:"type"`
	Organizer   string    `json:"organizer"`
	Description string    `json:"description"`
}
