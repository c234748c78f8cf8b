package pricing

import (
	"context"
	"strings"

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

// List returns plans, optionally for a single role. An unknown role yields
// an empty list.
func (s *Service) List(ctx context.Context, roleFilter string) ([]Plan, error) {
	if roleFilter != "" && !profile.ParseRole(roleFilter).IsSignupRole() {
		return []Plan{}, nil
	}
	return s.repo.List(ctx, roleFilter)
}

// Upsert creates or replaces a plan keyed by (role, name).
func (s *Service) Upsert(ctx context.Context, input PlanInput) (*Plan, error) {
	if !profile.ParseRole(input.Role).IsSignupRole() {
		return nil, errors.Validationf("invalid plan role %q", input.Role)
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.Validation("plan name is required")
	}
	if input.Price < 0 {
		return nil, errors.Validation("price cannot be negative")
	}
	if input.Currency == "" {
		input.Currency = "NGN"
	}

	period := ParsePeriod(input.Period)
	if period == "" {
		return nil, errors.Validationf("invalid billing period %q", input.Period)
	}

	return s.repo.Upsert(ctx, input, period)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
