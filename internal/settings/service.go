package settings

import (
	"context"
	"sort"

	"scoutlink-server/internal/shared/errors"
)

// Store is the persistence surface the service needs.
type Store interface {
	Get(ctx context.Context, key string) (*Setting, error)
	List(ctx context.Context) ([]Setting, error)
	Set(ctx context.Context, key string, value bool) error
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Bool reads a flag. A flag no admin has ever set reads as its default; a
// key outside the closed set, or a store failure, reads as the caller's
// fallback so the caller decides how to fail.
func (s *Service) Bool(ctx context.Context, key string, fallback bool) (bool, error) {
	if !IsKnownKey(key) {
		return fallback, errors.Validationf("unknown setting %q", key)
	}

	setting, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.GetType(err) == errors.ErrorTypeNotFound {
			return Defaults[key], nil
		}
		return fallback, err
	}

	return setting.Value, nil
}

// List returns every flag in the closed set, stored values layered over
// defaults, in key order.
func (s *Service) List(ctx context.Context) ([]Setting, error) {
	stored, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	merged := make(map[string]Setting, len(Defaults))
	for key, value := range Defaults {
		merged[key] = Setting{Key: key, Value: value}
	}
	for _, st := range stored {
		if IsKnownKey(st.Key) {
			merged[st.Key] = st
		}
	}

	keys := make([]string, 0, len(merged))
	for key := range merged {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	all := make([]Setting, 0, len(keys))
	for _, key := range keys {
		all = append(all, merged[key])
	}
	return all, nil
}

// Set writes one flag. Keys outside the closed set are rejected.
func (s *Service) Set(ctx context.Context, key string, value bool) error {
	if !IsKnownKey(key) {
		return errors.Validationf("unknown setting %q", key)
	}
	return s.store.Set(ctx, key, value)
}
