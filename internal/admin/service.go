package admin

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"scoutlink-server/internal/player"
	"scoutlink-server/internal/profile"
	"scoutlink-server/internal/shared/redis"

	"github.com/google/uuid"
)

const (
	statsCacheKey = "admin:stats"
	statsCacheTTL = 30 * time.Second
)

// ProfileStore is the slice of the profile service the back-office needs.
type ProfileStore interface {
	ListAll(ctx context.Context) ([]profile.Profile, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role profile.Role) error
	SetVerified(ctx context.Context, id uuid.UUID, verified bool) error
}

// PlayerStore provides the attribute rows the transfer counter needs and
// lets the back-office edit any player's sheet.
type PlayerStore interface {
	List(ctx context.Context, c player.Criteria) ([]player.Attributes, error)
	Update(ctx context.Context, id uuid.UUID, update player.AttributesUpdate) (*player.Attributes, error)
}

type Service struct {
	profiles ProfileStore
	players  PlayerStore
	cache    *redis.Client
}

func NewService(profiles ProfileStore, players PlayerStore, cache *redis.Client) *Service {
	return &Service{profiles: profiles, players: players, cache: cache}
}

// Stats returns the aggregate summary, served from cache when fresh.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	logger := slog.With("component", "admin_service", "operation", "stats")

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, statsCacheKey).Result()
		if err == nil {
			var stats Stats
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				logger.Debug("Stats served from cache")
				return &stats, nil
			}
		}
	}

	profiles, err := s.profiles.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	players, err := s.players.List(ctx, player.Criteria{})
	if err != nil {
		return nil, err
	}

	stats := Summarize(profiles, players, time.Now())

	if s.cache != nil {
		if data, err := json.Marshal(stats); err == nil {
			if err := s.cache.Set(ctx, statsCacheKey, data, statsCacheTTL).Err(); err != nil {
				logger.Warn("Failed to cache stats", "error", err)
			}
		}
	}

	return &stats, nil
}

// ListUsers returns every profile, private ones included.
func (s *Service) ListUsers(ctx context.Context) ([]profile.Profile, error) {
	return s.profiles.ListAll(ctx)
}

func (s *Service) UpdateUserRole(ctx context.Context, id uuid.UUID, role profile.Role) error {
	if err := s.profiles.UpdateRole(ctx, id, role); err != nil {
		return err
	}
	s.invalidateStats(ctx)
	return nil
}

func (s *Service) SetUserVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	return s.profiles.SetVerified(ctx, id, verified)
}

// UpdatePlayerAttributes edits any player's attribute sheet on their behalf.
// The underlying update seeds the row if the player never filled it in.
func (s *Service) UpdatePlayerAttributes(ctx context.Context, id uuid.UUID, update player.AttributesUpdate) (*player.Attributes, error) {
	a, err := s.players.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	s.invalidateStats(ctx)
	return a, nil
}

func (s *Service) invalidateStats(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, statsCacheKey).Err(); err != nil {
		slog.Warn("Failed to invalidate stats cache", "error", err)
	}
}
