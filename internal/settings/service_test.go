package settings

import (
	"context"
	"testing"

	"scoutlink-server/internal/shared/errors"
)

type fakeStore struct {
	values map[string]bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: map[string]bool{}}
}

func (f *fakeStore) Get(_ context.Context, key string) (*Setting, error) {
	v, ok := f.values[key]
	if !ok {
		return nil, errors.NotFoundf("setting %q not found", key)
	}
	return &Setting{Key: key, Value: v}, nil
}

func (f *fakeStore) List(context.Context) ([]Setting, error) {
	var all []Setting
	for key, value := range f.values {
		all = append(all, Setting{Key: key, Value: value})
	}
	return all, nil
}

func (f *fakeStore) Set(_ context.Context, key string, value bool) error {
	f.values[key] = value
	return nil
}

func TestBoolReadsDefaultBeforeFirstWrite(t *testing.T) {
	svc := NewService(newFakeStore())

	v, err := svc.Bool(context.Background(), KeyAllowRegistration, false)
	if err != nil {
		t.Fatalf("Bool: %v", err)
	}
	if !v {
		t.Error("allow_registration should default to true")
	}

	v, err = svc.Bool(context.Background(), KeyMaintenanceMode, true)
	if err != nil {
		t.Fatalf("Bool: %v", err)
	}
	if v {
		t.Error("maintenance_mode should default to false")
	}
}

func TestSetThenBoolRoundTrips(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeStore())

	for _, want := range []bool{true, false, true} {
		if err := svc.Set(ctx, KeyTestMode, want); err != nil {
			t.Fatalf("Set(%v): %v", want, err)
		}
		got, err := svc.Bool(ctx, KeyTestMode, !want)
		if err != nil {
			t.Fatalf("Bool: %v", err)
		}
		if got != want {
			t.Errorf("round trip: got %v, want %v", got, want)
		}
	}
}

func TestUnknownKeyIsRejected(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeStore())

	if err := svc.Set(ctx, "enable_chaos", true); err == nil {
		t.Error("Set with unknown key should fail")
	}

	v, err := svc.Bool(ctx, "enable_chaos", true)
	if err == nil {
		t.Error("Bool with unknown key should return an error")
	}
	if !v {
		t.Error("Bool with unknown key should return the caller's fallback")
	}
}

func TestListMergesStoredOverDefaults(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := NewService(store)

	if err := svc.Set(ctx, KeyAutoVerify, true); err != nil {
		t.Fatalf("Set: %v", err)
	}

	all, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if len(all) != len(Defaults) {
		t.Fatalf("List returned %d flags, want %d", len(all), len(Defaults))
	}

	got := map[string]bool{}
	for _, s := range all {
		got[s.Key] = s.Value
	}
	if !got[KeyAutoVerify] {
		t.Error("stored auto_verify=true should win over its default")
	}
	if !got[KeyAllowRegistration] {
		t.Error("untouched allow_registration should read its default")
	}
}
