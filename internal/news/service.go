package news

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

// List returns published items. An unknown category filter yields an empty
// list rather than an error, matching how the directory filters behave.
func (s *Service) List(ctx context.Context, categoryFilter string) ([]Item, error) {
	if categoryFilter != "" && ParseCategory(categoryFilter) == "" {
		return []Item{}, nil
	}
	return s.repo.List(ctx, Category(categoryFilter))
}

func (s *Service) Create(ctx context.Context, createdBy uuid.UUID, input ItemInput) (*Item, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, errors.Validation("title is required")
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, errors.Validation("content is required")
	}

	category := ParseCategory(input.Category)
	if category == "" {
		return nil, errors.Validationf("invalid category %q", input.Category)
	}

	if input.Date.IsZero() {
		input.Date = time.Now()
	}

	return s.repo.Create(ctx, createdBy, input, category)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
