package opportunity

import (
	"time"

	"github.com/google/uuid"
)

// Opportunity is a club- or agent-posted opening: a trial slot, a scouting
// call, a vacancy for a specific position.
type Opportunity struct {
	ID             uuid.UUID  `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Location       string     `json:"location"`
	PositionNeeded string     `json:"position_needed"`
	AgeRange       string     `json:"age_range"`
	ClosingDate    *time.Time `json:"closing_date"`
	ContactInfo    string     `json:"contact_info"`
	IsActive       bool       `json:"is_active"`
	CreatedBy      uuid.UUID  `json:"created_by"`
	CreatedAt      time.Time  `json:"created_at"`
}

// OpportunityInput carries the client-editable fields for create and update.
type OpportunityInput struct {
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Location       string     `json:"location"`
	PositionNeeded string     `json:"position_needed"`
	AgeRange       string     `json:"age_range"`
	ClosingDate    *time.Time `json:"closing_date"`
	ContactInfo    string     `json:"contact_info"`
	IsActive       *bool      `json:"is_active"`
}
