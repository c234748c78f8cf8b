package admin

import (
	"time"

	"scoutlink-server/internal/player"
	"scoutlink-server/internal/profile"
)

// Stats is the back-office summary card set.
type Stats struct {
	TotalUsers           int            `json:"total_users"`
	UsersByRole          map[string]int `json:"users_by_role"`
	AvailableForTransfer int            `json:"available_for_transfer"`
	NewUsersLast7Days    int            `json:"new_users_last_7_days"`
}

// Summarize computes the dashboard aggregates from fetched collections. It
// does no I/O; the 7-day window is [now - 7d, now] with both ends inclusive.
func Summarize(profiles []profile.Profile, players []player.Attributes, now time.Time) Stats {
	stats := Stats{
		TotalUsers:  len(profiles),
		UsersByRole: make(map[string]int),
	}

	windowStart := now.Add(-7 * 24 * time.Hour)
	for _, p := range profiles {
		if p.Role != profile.RoleNone {
			stats.UsersByRole[p.Role.String()]++
		}
		if !p.CreatedAt.Before(windowStart) && !p.CreatedAt.After(now) {
			stats.NewUsersLast7Days++
		}
	}

	for _, a := range players {
		if a.AvailableForTransfer {
			stats.AvailableForTransfer++
		}
	}

	return stats
}
