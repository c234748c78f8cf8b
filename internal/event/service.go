package event

import (
	"context"
	"strings"
	"time"

	"scoutlink-server/internal/shared/errors"

	"github.com/google/uuid"
)

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Event, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, createdBy uuid.UUID, input EventInput) (*Event, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, errors.Validation("title is required")
	}
	if input.Date.IsZero() {
		return nil, errors.Validation("date is required")
	}
	if input.Date.Before(time.Now()) {
		return nil, errors.Validation("date must be in the future")
	}

	eventType := ParseEventType(input.Type)
	if eventType == "" {
		return nil, errors.Validationf("invalid event type %q", input.Type)
	}

	return s.repo.Create(ctx, createdBy, input, eventType)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
