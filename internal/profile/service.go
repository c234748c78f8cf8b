package profile

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type Service struct {
	repo   *Repository
	logger *slog.Logger
}

func NewService(repo *Repository, logger *slog.Logger) *Service {
	logger.Debug("Initializing profile service")

	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Profile, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*Profile, error) {
	return s.repo.GetByEmail(ctx, email)
}

func (s *Service) ListPublic(ctx context.Context) ([]Profile, error) {
	return s.repo.List(ctx, true)
}

func (s *Service) ListAll(ctx context.Context) ([]Profile, error) {
	return s.repo.List(ctx, false)
}

func (s *Service) Create(ctx context.Context, id uuid.UUID, fullName, email string, role Role, verified bool) (*Profile, error) {
	return s.repo.Create(ctx, id, fullName, email, role, verified)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, update ProfileUpdate) (*Profile, error) {
	return s.repo.Update(ctx, id, update)
}

func (s *Service) UpdateRole(ctx context.Context, id uuid.UUID, role Role) error {
	return s.repo.UpdateRole(ctx, id, role)
}

func (s *Service) SetVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	return s.repo.SetVerified(ctx, id, verified)
}
