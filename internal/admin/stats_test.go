package admin

import (
	"testing"
	"time"

	"scoutlink-server/internal/player"
	"scoutlink-server/internal/profile"
)

func TestSummarizeCountsRolesAndWindow(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	profiles := []profile.Profile{
		{Role: profile.RolePlayer, CreatedAt: now.Add(-2 * 24 * time.Hour)},
		{Role: profile.RolePlayer, CreatedAt: now.Add(-30 * 24 * time.Hour)},
		{Role: profile.RoleCoach, CreatedAt: now.Add(-7 * 24 * time.Hour)}, // window start, inclusive
		{Role: profile.RoleAgent, CreatedAt: now},                          // window end, inclusive
		{Role: profile.RoleAdmin, CreatedAt: now.Add(-8 * 24 * time.Hour)},
		{Role: profile.RoleNone, CreatedAt: now.Add(-1 * time.Hour)},
	}

	players := []player.Attributes{
		{AvailableForTransfer: true},
		{AvailableForTransfer: false},
		{AvailableForTransfer: true},
	}

	stats := Summarize(profiles, players, now)

	if stats.TotalUsers != 6 {
		t.Errorf("TotalUsers = %d, want 6", stats.TotalUsers)
	}
	if stats.UsersByRole["player"] != 2 {
		t.Errorf("player count = %d, want 2", stats.UsersByRole["player"])
	}
	if stats.UsersByRole["coach"] != 1 || stats.UsersByRole["agent"] != 1 || stats.UsersByRole["admin"] != 1 {
		t.Errorf("role counts = %v", stats.UsersByRole)
	}
	if _, ok := stats.UsersByRole["none"]; ok {
		t.Error("profiles without a chosen role must not appear in the role breakdown")
	}
	if stats.AvailableForTransfer != 2 {
		t.Errorf("AvailableForTransfer = %d, want 2", stats.AvailableForTransfer)
	}
	if stats.NewUsersLast7Days != 4 {
		t.Errorf("NewUsersLast7Days = %d, want 4", stats.NewUsersLast7Days)
	}
}

func TestSummarizeRoleCountsNeverExceedTotal(t *testing.T) {
	now := time.Now()
	profiles := []profile.Profile{
		{Role: profile.RolePlayer, CreatedAt: now},
		{Role: profile.RoleNone, CreatedAt: now},
		{Role: profile.RoleCoach, CreatedAt: now},
	}

	stats := Summarize(profiles, nil, now)

	sum := 0
	for _, n := range stats.UsersByRole {
		sum += n
	}
	if sum > stats.TotalUsers {
		t.Errorf("role sum %d exceeds total %d", sum, stats.TotalUsers)
	}

	// Equality only when every profile has a concrete role.
	allRoled := []profile.Profile{
		{Role: profile.RolePlayer, CreatedAt: now},
		{Role: profile.RoleCoach, CreatedAt: now},
	}
	stats = Summarize(allRoled, nil, now)
	sum = 0
	for _, n := range stats.UsersByRole {
		sum += n
	}
	if sum != stats.TotalUsers {
		t.Errorf("role sum %d != total %d with all roles set", sum, stats.TotalUsers)
	}
}

func TestSummarizeEmptyInput(t *testing.T) {
	stats := Summarize(nil, nil, time.Now())

	if stats.TotalUsers != 0 || stats.AvailableForTransfer != 0 || stats.NewUsersLast7Days != 0 {
		t.Errorf("empty input should produce zero stats, got %+v", stats)
	}
	if stats.UsersByRole == nil {
		t.Error("UsersByRole should be an empty map, not nil")
	}
}
