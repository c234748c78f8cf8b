package dashboard

import (
	"context"
	"testing"

	"scoutlink-server/internal/auth"
	"scoutlink-server/internal/opportunity"
	"scoutlink-server/internal/player"
	"scoutlink-server/internal/profile"
	"scoutlink-server/internal/shared/errors"

	"github.com/google/uuid"
)

type fakeProfiles struct {
	profiles map[uuid.UUID]*profile.Profile
}

func (f *fakeProfiles) GetByID(_ context.Context, id uuid.UUID) (*profile.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, errors.NotFoundf("profile %s not found", id)
	}
	return p, nil
}

type fakePlayers struct {
	attrs  map[uuid.UUID]*player.Attributes
	listed []player.Attributes
}

func (f *fakePlayers) GetByID(_ context.Context, id uuid.UUID) (*player.Attributes, error) {
	a, ok := f.attrs[id]
	if !ok {
		return nil, errors.NotFoundf("player %s not found", id)
	}
	return a, nil
}

func (f *fakePlayers) TransferMarket(_ context.Context, c player.Criteria) ([]player.Attributes, error) {
	c.AvailableForTransfer = true
	return player.Filter(f.listed, c), nil
}

type fakeOpportunities struct {
	items []opportunity.Opportunity
}

func (f *fakeOpportunities) List(context.Context) ([]opportunity.Opportunity, error) {
	return f.items, nil
}

type fakeFlags struct {
	values map[string]bool
}

func (f *fakeFlags) Bool(_ context.Context, key string, fallback bool) (bool, error) {
	if v, ok := f.values[key]; ok {
		return v, nil
	}
	return fallback, nil
}

func newTestService(profiles map[uuid.UUID]*profile.Profile, flags map[string]bool) (*Service, *fakePlayers) {
	players := &fakePlayers{attrs: map[uuid.UUID]*player.Attributes{}}
	return NewService(
		&fakeProfiles{profiles: profiles},
		players,
		&fakeOpportunities{items: []opportunity.Opportunity{{Title: "U17 trial in Lagos"}}},
		&fakeFlags{values: flags},
	), players
}

func sessionFor(p *profile.Profile) *auth.SessionUser {
	return &auth.SessionUser{ProfileID: p.ID, Email: p.Email, Role: p.Role}
}

func TestViewPlayerGetsAttributeSheet(t *testing.T) {
	p := &profile.Profile{ID: uuid.New(), FullName: "Emmanuel Oladipo", Role: profile.RolePlayer}
	svc, players := newTestService(map[uuid.UUID]*profile.Profile{p.ID: p}, nil)
	players.attrs[p.ID] = &player.Attributes{ID: p.ID, FullName: p.FullName, Position: "Striker"}

	view, err := svc.View(context.Background(), sessionFor(p))
	if err != nil {
		t.Fatalf("View: %v", err)
	}

	if view.Attributes == nil || view.Attributes.Position != "Striker" {
		t.Errorf("player view missing attributes: %+v", view.Attributes)
	}
	if view.Opportunities != nil || view.AdminStatsURL != "" || view.NeedsCompletion {
		t.Errorf("player view leaked other sections: %+v", view)
	}
}

func TestViewPlayerWithoutAttributesGetsDefaults(t *testing.T) {
	p := &profile.Profile{ID: uuid.New(), FullName: "New Player", Role: profile.RolePlayer}
	svc, _ := newTestService(map[uuid.UUID]*profile.Profile{p.ID: p}, nil)

	view, err := svc.View(context.Background(), sessionFor(p))
	if err != nil {
		t.Fatalf("View: %v", err)
	}

	if view.Attributes == nil {
		t.Fatal("missing attributes section")
	}
	if view.Attributes.FullName != "New Player" || view.Attributes.Position != "" {
		t.Errorf("expected zero-value defaults, got %+v", view.Attributes)
	}
}

func TestViewScoutingRolesGetOpportunities(t *testing.T) {
	for _, role := range []profile.Role{
		profile.RoleCoach, profile.RoleAgent, profile.RoleManager, profile.RoleClubStaff,
	} {
		p := &profile.Profile{ID: uuid.New(), Role: role}
		svc, _ := newTestService(map[uuid.UUID]*profile.Profile{p.ID: p}, nil)

		view, err := svc.View(context.Background(), sessionFor(p))
		if err != nil {
			t.Fatalf("role %q: %v", role, err)
		}

		if len(view.Opportunities) != 1 {
			t.Errorf("role %q: opportunities = %d, want 1", role, len(view.Opportunities))
		}
		if view.Attributes != nil {
			t.Errorf("role %q: attribute sheet should not appear", role)
		}
	}
}

func TestViewAdminGetsStatsLink(t *testing.T) {
	p := &profile.Profile{ID: uuid.New(), Role: profile.RoleAdmin}
	svc, _ := newTestService(map[uuid.UUID]*profile.Profile{p.ID: p}, nil)

	view, err := svc.View(context.Background(), sessionFor(p))
	if err != nil {
		t.Fatalf("View: %v", err)
	}

	if view.AdminStatsURL != "/api/admin/stats" {
		t.Errorf("AdminStatsURL = %q", view.AdminStatsURL)
	}
}

func TestViewIncompleteProfileGetsCompletionPrompt(t *testing.T) {
	p := &profile.Profile{ID: uuid.New(), Role: profile.RoleNone}
	svc, _ := newTestService(map[uuid.UUID]*profile.Profile{p.ID: p}, nil)

	view, err := svc.View(context.Background(), sessionFor(p))
	if err != nil {
		t.Fatalf("View: %v", err)
	}

	if !view.NeedsCompletion {
		t.Error("NeedsCompletion should be set for profiles without a role")
	}
	if view.Attributes != nil || view.Opportunities != nil || view.AdminStatsURL != "" {
		t.Errorf("completion view leaked other sections: %+v", view)
	}
}

func TestPremiumEnabledByFlagOrProfile(t *testing.T) {
	cases := []struct {
		name      string
		isPremium bool
		testMode  bool
		want      bool
	}{
		{"neither", false, false, false},
		{"premium profile", true, false, true},
		{"test mode", false, true, true},
		{"both", true, true, true},
	}

	for _, tc := range cases {
		p := &profile.Profile{ID: uuid.New(), Role: profile.RoleCoach, IsPremium: tc.isPremium}
		svc, _ := newTestService(
			map[uuid.UUID]*profile.Profile{p.ID: p},
			map[string]bool{"test_mode": tc.testMode},
		)

		view, err := svc.View(context.Background(), sessionFor(p))
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if view.PremiumEnabled != tc.want {
			t.Errorf("%s: PremiumEnabled = %v, want %v", tc.name, view.PremiumEnabled, tc.want)
		}
	}
}
