package player

import (
	"time"

	"github.com/google/uuid"
)

type PreferredFoot string

const (
	FootLeft  PreferredFoot = "left"
	FootRight PreferredFoot = "right"
	FootBoth  PreferredFoot = "both"
)

func ParsePreferredFoot(s string) PreferredFoot {
	switch PreferredFoot(s) {
	case FootLeft:
		return FootLeft
	case FootRight:
		return FootRight
	case FootBoth:
		return FootBoth
	default:
		return ""
	}
}

// Stats are the six 0-100 ability ratings shown on a player card.
type Stats struct {
	Pace      int `json:"pace"`
	Shooting  int `json:"shooting"`
	Passing   int `json:"passing"`
	Dribbling int `json:"dribbling"`
	Defending int `json:"defending"`
	Physical  int `json:"physical"`
}

// Attributes is the 1:1 side table for profiles with the player role. A
// profile without a row simply has not filled its attributes in yet; callers
// get zero-value defaults, not an error.
type Attributes struct {
	ID                   uuid.UUID     `json:"id"`
	FullName             string        `json:"full_name"`
	Age                  int           `json:"age"`
	HeightCm             int           `json:"height_cm"`
	WeightKg             int           `json:"weight_kg"`
	Position             string        `json:"position"`
	SecondaryPosition    *string       `json:"secondary_position"`
	PreferredFoot        PreferredFoot `json:"preferred_foot"`
	Nationality          string        `json:"nationality"`
	CurrentClub          *string       `json:"current_club"`
	AvailableForTransfer bool          `json:"available_for_transfer"`
	OpenToTrials         bool          `json:"open_to_trials"`
	ValueInEuros         int64         `json:"value_in_euros"`
	Stats                Stats         `json:"stats"`
	HasAttributes        bool          `json:"has_attributes"`
	CreatedAt            time.Time     `json:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at"`
}

// AttributesUpdate carries editable fields; nil means unchanged.
type AttributesUpdate struct {
	Age                  *int    `json:"age"`
	HeightCm             *int    `json:"height_cm"`
	WeightKg             *int    `json:"weight_kg"`
	Position             *string `json:"position"`
	SecondaryPosition    *string `json:"secondary_position"`
	PreferredFoot        *string `json:"preferred_foot"`
	Nationality          *string `json:"nationality"`
	CurrentClub          *string `json:"current_club"`
	AvailableForTransfer *bool   `json:"available_for_transfer"`
	OpenToTrials         *bool   `json:"open_to_trials"`
	ValueInEuros         *int64  `json:"value_in_euros"`
	Stats                *Stats  `json:"stats"`
}
