package profile

import (
	"time"

	"github.com/google/uuid"
)

// Role is the closed set of account roles. RoleNone marks an account that
// signed up (typically via OAuth) without choosing a role yet; such profiles
// are treated as incomplete.
type Role string

const (
	RolePlayer    Role = "player"
	RoleCoach     Role = "coach"
	RoleAgent     Role = "agent"
	RoleManager   Role = "manager"
	RoleClubStaff Role = "club_staff"
	RoleAdmin     Role = "admin"
	RoleNone      Role = "none"
)

type Profile struct {
	ID         uuid.UUID `json:"id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Role       Role      `json:"role"`
	Bio        *string   `json:"bio"`
	Location   *string   `json:"location"`
	AvatarURL  *string   `json:"avatar_url"`
	IsVerified bool      `json:"is_verified"`
	IsPremium  bool      `json:"is_premium"`
	IsPublic   bool      `json:"is_public"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ProfileUpdate carries the caller-editable fields; nil means unchanged.
type ProfileUpdate struct {
	FullName  *string `json:"full_name"`
	Bio       *string `json:"bio"`
	Location  *string `json:"location"`
	AvatarURL *string `json:"avatar_url"`
	IsPublic  *bool   `json:"is_public"`
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RolePlayer, RoleCoach, RoleAgent, RoleManager, RoleClubStaff, RoleAdmin, RoleNone:
		return true
	}
	return false
}

// IsSignupRole reports whether the role may be chosen at registration.
// Admin is assigned through configuration, never self-selected.
func (r Role) IsSignupRole() bool {
	switch r {
	case RolePlayer, RoleCoach, RoleAgent, RoleManager, RoleClubStaff:
		return true
	}
	return false
}

// HasDashboard reports whether a dedicated dashboard variant exists for the
// role. RoleNone falls through to the generic completion prompt.
func (r Role) HasDashboard() bool {
	switch r {
	case RolePlayer, RoleCoach, RoleAgent, RoleManager, RoleClubStaff, RoleAdmin:
		return true
	case RoleNone:
		return false
	}
	return false
}

// ParseRole maps a stored or submitted string onto the closed enumeration.
// Unknown values collapse to RoleNone so a bad row never escapes the enum.
func ParseRole(s string) Role {
	switch Role(s) {
	case RolePlayer:
		return RolePlayer
	case RoleCoach:
		return RoleCoach
	case RoleAgent:
		return RoleAgent
	case RoleManager:
		return RoleManager
	case RoleClubStaff:
		return RoleClubStaff
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleNone
	}
}
