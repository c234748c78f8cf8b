package opportunity

import (
	"testing"

	"scoutlink-server/internal/profile"
)

func TestCanPostRoleMatrix(t *testing.T) {
	allowed := map[profile.Role]bool{
		profile.RolePlayer:    false,
		profile.RoleCoach:     true,
		profile.RoleAgent:     true,
		profile.RoleManager:   true,
		profile.RoleClubStaff: true,
		profile.RoleAdmin:     true,
		profile.RoleNone:      false,
	}

	for role, want := range allowed {
		if got := canPost(role); got != want {
			t.Errorf("canPost(%q) = %v, want %v", role, got, want)
		}
	}
}

func TestValidateInputRequiresTitleAndDescription(t *testing.T) {
	if err := validateInput(OpportunityInput{Description: "trial for u17 strikers"}); err == nil {
		t.Error("missing title should fail validation")
	}
	if err := validateInput(OpportunityInput{Title: "   ", Description: "x"}); err == nil {
		t.Error("blank title should fail validation")
	}
	if err := validateInput(OpportunityInput{Title: "U17 trial", Description: "open trial in Lagos"}); err != nil {
		t.Errorf("valid input rejected: %v", err)
	}
}
