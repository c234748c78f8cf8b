package dashboard

import (
	"context"
	"log/slog"

	"scoutlink-server/internal/auth"
	"scoutlink-server/internal/opportunity"
	"scoutlink-server/internal/player"
	"scoutlink-server/internal/profile"
	"scoutlink-server/internal/shared/errors"

	"github.com/google/uuid"
)

// View is the role-shaped dashboard payload. Exactly one of the optional
// sections is populated, matching the role.
type View struct {
	Role            string                    `json:"role"`
	Profile         *profile.Profile          `json:"profile"`
	PremiumEnabled  bool                      `json:"premium_enabled"`
	NeedsCompletion bool                      `json:"needs_completion"`
	Attributes      *player.Attributes        `json:"attributes,omitempty"`
	TransferListed  []player.Attributes       `json:"transfer_listed,omitempty"`
	Opportunities   []opportunity.Opportunity `json:"opportunities,omitempty"`
	AdminStatsURL   string                    `json:"admin_stats_url,omitempty"`
}

type ProfileStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*profile.Profile, error)
}

type PlayerStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*player.Attributes, error)
	TransferMarket(ctx context.Context, c player.Criteria) ([]player.Attributes, error)
}

type OpportunityStore interface {
	List(ctx context.Context) ([]opportunity.Opportunity, error)
}

// FlagReader reads a boolean system setting.
type FlagReader interface {
	Bool(ctx context.Context, key string, fallback bool) (bool, error)
}

type Service struct {
	profiles      ProfileStore
	players       PlayerStore
	opportunities OpportunityStore
	flags         FlagReader
}

func NewService(profiles ProfileStore, players PlayerStore, opportunities OpportunityStore, flags FlagReader) *Service {
	return &Service{
		profiles:      profiles,
		players:       players,
		opportunities: opportunities,
		flags:         flags,
	}
}

// View builds the dashboard for the authenticated user. Every role in the
// enumeration has an explicit branch; a role outside it means the enum grew
// without this switch keeping up, which we surface as an internal error
// rather than guessing.
func (s *Service) View(ctx context.Context, user *auth.SessionUser) (*View, error) {
	logger := slog.With("component", "dashboard_service", "operation", "view",
		"profile_id", user.ProfileID, "role", user.Role)

	p, err := s.profiles.GetByID(ctx, user.ProfileID)
	if err != nil {
		return nil, err
	}

	view := &View{
		Role:           p.Role.String(),
		Profile:        p,
		PremiumEnabled: s.premiumEnabled(ctx, p),
	}

	switch p.Role {
	case profile.RolePlayer:
		attrs, err := s.players.GetByID(ctx, user.ProfileID)
		if err != nil {
			if errors.GetType(err) != errors.ErrorTypeNotFound {
				return nil, err
			}
			// No attributes row yet; the sheet renders with defaults.
			attrs = &player.Attributes{ID: p.ID, FullName: p.FullName}
		}
		view.Attributes = attrs

	case profile.RoleCoach, profile.RoleAgent, profile.RoleManager, profile.RoleClubStaff:
		opportunities, err := s.opportunities.List(ctx)
		if err != nil {
			return nil, err
		}
		view.Opportunities = opportunities

		if view.PremiumEnabled {
			listed, err := s.players.TransferMarket(ctx, player.Criteria{})
			if err != nil {
				return nil, err
			}
			view.TransferListed = listed
		}

	case profile.RoleAdmin:
		view.AdminStatsURL = "/api/admin/stats"

	case profile.RoleNone:
		view.NeedsCompletion = true

	default:
		logger.Error("Unhandled role in dashboard dispatch")
		return nil, errors.Internalf("no dashboard for role %q", p.Role)
	}

	return view, nil
}

// premiumEnabled is true when the profile is premium or the platform runs in
// test mode, which unlocks premium features for everyone.
func (s *Service) premiumEnabled(ctx context.Context, p *profile.Profile) bool {
	if p.IsPremium {
		return true
	}
	testMode, err := s.flags.Bool(ctx, "test_mode", false)
	if err != nil {
		return false
	}
	return testMode
}
