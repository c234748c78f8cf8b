package opportunity

import (
	"context"
	"strings"

	"scoutlink-server/internal/auth"
	"scoutlink-server/internal/profile"
	"scoutlink-server/internal/shared/errors"

	"github.com/google/uuid"
)

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Opportunity, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Opportunity, error) {
	return s.repo.GetByID(ctx, id)
}

// canPost reports whether a role may publish opportunities. Players browse
// the board; they do not post to it.
func canPost(role profile.Role) bool {
	switch role {
	case profile.RoleCoach, profile.RoleAgent, profile.RoleManager, profile.RoleClubStaff, profile.RoleAdmin:
		return true
	default:
		return false
	}
}

func validateInput(input OpportunityInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return errors.Validation("title is required")
	}
	if strings.TrimSpace(input.Description) == "" {
		return errors.Validation("description is required")
	}
	return nil
}

func (s *Service) Create(ctx context.Context, user *auth.SessionUser, input OpportunityInput) (*Opportunity, error) {
	if !canPost(user.Role) {
		return nil, errors.Forbidden("your role cannot post opportunities")
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, user.ProfileID, input)
}

// Update lets the original poster or an admin edit an opportunity.
func (s *Service) Update(ctx context.Context, user *auth.SessionUser, id uuid.UUID, input OpportunityInput) (*Opportunity, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.CreatedBy != user.ProfileID && user.Role != profile.RoleAdmin {
		return nil, errors.Forbidden("only the poster can edit this opportunity")
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, input)
}

func (s *Service) Delete(ctx context.Context, user *auth.SessionUser, id uuid.UUID) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.CreatedBy != user.ProfileID && user.Role != profile.RoleAdmin {
		return errors.Forbidden("only the poster can delete this opportunity")
	}
	return s.repo.Delete(ctx, id)
}
