package auth

import (
	"scoutlink-server/internal/profile"

	"github.com/google/uuid"
)

// SessionUser is the authenticated identity attached to a request. A nil
// *SessionUser means the request is unauthenticated.
type SessionUser struct {
	ProfileID uuid.UUID
	Email     string
	Role      profile.Role
}
