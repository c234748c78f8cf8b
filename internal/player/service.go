package player

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"scoutlink-server/internal/shared/errors"
	"scoutlink-server/internal/shared/redis"

	"github.com/google/uuid"
)

const (
	listCacheKey = "players:list"
	listCacheTTL = 60 * time.Second
)

type Service struct {
	repo  *Repository
	cache *redis.Client
}

// NewService accepts a nil cache client, in which case every read goes to
// the database.
func NewService(repo *Repository, cache *redis.Client) *Service {
	return &Service{repo: repo, cache: cache}
}

// List returns players matching the criteria. The unfiltered directory is
// cached; filtering happens in memory so every criteria combination shares
// one cache entry.
func (s *Service) List(ctx context.Context, c Criteria) ([]Attributes, error) {
	players, err := s.listAll(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(players, c), nil
}

// TransferMarket returns players listed for transfer, with any further
// criteria applied on top.
func (s *Service) TransferMarket(ctx context.Context, c Criteria) ([]Attributes, error) {
	c.AvailableForTransfer = true
	return s.List(ctx, c)
}

func (s *Service) listAll(ctx context.Context) ([]Attributes, error) {
	logger := slog.With("component", "player_service", "operation", "list")

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, listCacheKey).Result()
		if err == nil {
			var players []Attributes
			if err := json.Unmarshal([]byte(cached), &players); err == nil {
				logger.Debug("Player list served from cache", "count", len(players))
				return players, nil
			}
			// Unreadable entry; fall through and rebuild it
		}
	}

	players, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(players); err == nil {
			if err := s.cache.Set(ctx, listCacheKey, data, listCacheTTL).Err(); err != nil {
				logger.Warn("Failed to cache player list", "error", err)
			}
		}
	}

	return players, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Attributes, error) {
	return s.repo.GetByID(ctx, id)
}

// Ensure seeds an empty attributes row for a freshly registered player.
func (s *Service) Ensure(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Ensure(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, update AttributesUpdate) (*Attributes, error) {
	if update.PreferredFoot != nil && ParsePreferredFoot(*update.PreferredFoot) == "" {
		return nil, errors.Validationf("invalid preferred foot %q", *update.PreferredFoot)
	}
	if update.Age != nil && (*update.Age < 0 || *update.Age > 100) {
		return nil, errors.Validation("age must be between 0 and 100")
	}
	if update.ValueInEuros != nil && *update.ValueInEuros < 0 {
		return nil, errors.Validation("market value cannot be negative")
	}
	if update.Stats != nil {
		for _, v := range []int{
			update.Stats.Pace, update.Stats.Shooting, update.Stats.Passing,
			update.Stats.Dribbling, update.Stats.Defending, update.Stats.Physical,
		} {
			if v < 0 || v > 100 {
				return nil, errors.Validation("stat ratings must be between 0 and 100")
			}
		}
	}

	if err := s.repo.Ensure(ctx, id); err != nil {
		return nil, err
	}

	a, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return a, nil
}

func (s *Service) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, listCacheKey).Err(); err != nil {
		slog.Warn("Failed to invalidate player list cache", "error", err)
	}
}
