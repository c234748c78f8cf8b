package auth

import (
	"context"
	"log/slog"
	"testing"

	"scoutlink-server/internal/profile"
	"scoutlink-server/internal/shared/errors"

	"github.com/google/uuid"
)

type fakeProfileStore struct {
	byEmail map[string]*profile.Profile
	created []*profile.Profile
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{byEmail: map[string]*profile.Profile{}}
}

func (f *fakeProfileStore) GetByID(_ context.Context, id uuid.UUID) (*profile.Profile, error) {
	for _, p := range f.byEmail {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, errors.NotFoundf("profile %s not found", id)
}

func (f *fakeProfileStore) GetByEmail(_ context.Context, email string) (*profile.Profile, error) {
	p, ok := f.byEmail[email]
	if !ok {
		return nil, errors.NotFound("no profile with that email")
	}
	return p, nil
}

func (f *fakeProfileStore) Create(_ context.Context, id uuid.UUID, fullName, email string, role profile.Role, verified bool) (*profile.Profile, error) {
	if _, ok := f.byEmail[email]; ok {
		return nil, errors.Conflict("an account with that email already exists")
	}
	p := &profile.Profile{ID: id, FullName: fullName, Email: email, Role: role, IsVerified: verified}
	f.byEmail[email] = p
	f.created = append(f.created, p)
	return p, nil
}

func (f *fakeProfileStore) UpdateRole(_ context.Context, id uuid.UUID, role profile.Role) error {
	for _, p := range f.byEmail {
		if p.ID == id {
			p.Role = role
			return nil
		}
	}
	return errors.NotFoundf("profile %s not found", id)
}

type fakeCredentialStore struct {
	hashes map[uuid.UUID]string
}

func newFakeCredentialStore() *fakeCredentialStore {
	return &fakeCredentialStore{hashes: map[uuid.UUID]string{}}
}

func (f *fakeCredentialStore) CreateCredentials(_ context.Context, profileID uuid.UUID, passwordHash string) error {
	f.hashes[profileID] = passwordHash
	return nil
}

func (f *fakeCredentialStore) GetPasswordHash(_ context.Context, profileID uuid.UUID) (string, error) {
	hash, ok := f.hashes[profileID]
	if !ok {
		return "", errors.NotFound("no password credentials")
	}
	return hash, nil
}

func (f *fakeCredentialStore) LinkAuthProvider(context.Context, uuid.UUID, string, string, string) error {
	return nil
}

func (f *fakeCredentialStore) FindProfileByAuthProvider(context.Context, string, string) (uuid.UUID, error) {
	return uuid.Nil, errors.NotFound("unknown external identity")
}

type fakeFlagStore struct {
	values map[string]bool
}

func (f *fakeFlagStore) Bool(_ context.Context, key string, fallback bool) (bool, error) {
	if v, ok := f.values[key]; ok {
		return v, nil
	}
	return fallback, nil
}

type fakeSeeder struct {
	seeded []uuid.UUID
}

func (f *fakeSeeder) Ensure(_ context.Context, profileID uuid.UUID) error {
	f.seeded = append(f.seeded, profileID)
	return nil
}

type authFixture struct {
	service     *Service
	profiles    *fakeProfileStore
	credentials *fakeCredentialStore
	flags       *fakeFlagStore
	seeder      *fakeSeeder
}

func newAuthFixture(flags map[string]bool) *authFixture {
	f := &authFixture{
		profiles:    newFakeProfileStore(),
		credentials: newFakeCredentialStore(),
		flags:       &fakeFlagStore{values: flags},
		seeder:      &fakeSeeder{},
	}
	f.service = NewService(f.profiles, f.credentials, f.flags, f.seeder, slog.Default())
	return f
}

func TestSignUpValidation(t *testing.T) {
	cases := []struct {
		name     string
		fullName string
		email    string
		password string
		role     string
	}{
		{"missing name", "", "a@b.com", "longenough", "player"},
		{"bad email", "Ada", "not-an-email", "longenough", "player"},
		{"short password", "Ada", "a@b.com", "short", "player"},
		{"unknown role", "Ada", "a@b.com", "longenough", "wizard"},
		{"admin not self-selectable", "Ada", "a@b.com", "longenough", "admin"},
	}

	for _, tc := range cases {
		f := newAuthFixture(nil)
		_, err := f.service.SignUp(context.Background(), tc.fullName, tc.email, tc.password, tc.role)
		if err == nil {
			t.Errorf("%s: expected an error", tc.name)
			continue
		}
		if errors.GetType(err) != errors.ErrorTypeValidation {
			t.Errorf("%s: error type = %s, want validation", tc.name, errors.GetType(err))
		}
		if len(f.profiles.created) != 0 {
			t.Errorf("%s: no profile should be created", tc.name)
		}
	}
}

func TestSignUpBlockedWhenRegistrationDisabled(t *testing.T) {
	f := newAuthFixture(map[string]bool{"allow_registration": false})

	_, err := f.service.SignUp(context.Background(), "Ada", "ada@example.com", "longenough", "player")
	if err == nil {
		t.Fatal("expected an error")
	}
	if errors.GetType(err) != errors.ErrorTypeForbidden {
		t.Errorf("error type = %s, want forbidden", errors.GetType(err))
	}
	if len(f.profiles.created) != 0 {
		t.Error("no profile should be created while registration is disabled")
	}
}

func TestSignUpCreatesPlayerWithSeededAttributes(t *testing.T) {
	f := newAuthFixture(nil)

	p, err := f.service.SignUp(context.Background(), "Emmanuel Oladipo", "Emmanuel@Example.com ", "longenough", "player")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	if p.Email != "emmanuel@example.com" {
		t.Errorf("email not normalized: %q", p.Email)
	}
	if p.Role != profile.RolePlayer {
		t.Errorf("role = %q, want player", p.Role)
	}
	if p.IsVerified {
		t.Error("accounts must not be verified unless auto_verify is on")
	}
	if _, ok := f.credentials.hashes[p.ID]; !ok {
		t.Error("password credentials were not stored")
	}
	if len(f.seeder.seeded) != 1 || f.seeder.seeded[0] != p.ID {
		t.Errorf("attribute seed calls = %v, want exactly the new profile", f.seeder.seeded)
	}
}

func TestSignUpNonPlayerRolesSkipAttributeSeed(t *testing.T) {
	f := newAuthFixture(nil)

	if _, err := f.service.SignUp(context.Background(), "Coach K", "coach@example.com", "longenough", "coach"); err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	if len(f.seeder.seeded) != 0 {
		t.Errorf("coach signup should not seed player attributes, got %v", f.seeder.seeded)
	}
}

func TestSignUpAutoVerifyFlag(t *testing.T) {
	f := newAuthFixture(map[string]bool{"auto_verify": true})

	p, err := f.service.SignUp(context.Background(), "Ada", "ada@example.com", "longenough", "agent")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if !p.IsVerified {
		t.Error("auto_verify=true should mark new accounts verified")
	}
}

func TestSignInFailuresAreUniform(t *testing.T) {
	f := newAuthFixture(nil)

	if _, err := f.service.SignUp(context.Background(), "Ada", "ada@example.com", "longenough", "player"); err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	_, unknownErr := f.service.SignIn(context.Background(), "nobody@example.com", "longenough")
	_, wrongErr := f.service.SignIn(context.Background(), "ada@example.com", "wrong-password")

	for name, err := range map[string]error{"unknown email": unknownErr, "wrong password": wrongErr} {
		if err == nil {
			t.Fatalf("%s: expected an error", name)
		}
		if errors.GetType(err) != errors.ErrorTypeUnauthorized {
			t.Errorf("%s: error type = %s, want unauthorized", name, errors.GetType(err))
		}
	}
	if unknownErr.Error() != wrongErr.Error() {
		t.Errorf("failure messages differ: %q vs %q", unknownErr, wrongErr)
	}
}

func TestSignInSucceedsWithCorrectPassword(t *testing.T) {
	f := newAuthFixture(nil)

	created, err := f.service.SignUp(context.Background(), "Ada", "ada@example.com", "longenough", "player")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	p, err := f.service.SignIn(context.Background(), "ada@example.com", "longenough")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if p.ID != created.ID {
		t.Errorf("signed in as %s, want %s", p.ID, created.ID)
	}
}
