package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"scoutlink-server/internal/admin"
	"scoutlink-server/internal/auth"
	"scoutlink-server/internal/middleware"
	"scoutlink-server/internal/player"
	"scoutlink-server/internal/profile"

	"github.com/google/uuid"
)

type fakeProfiles struct{}

func (f *fakeProfiles) ListAll(context.Context) ([]profile.Profile, error) { return nil, nil }
func (f *fakeProfiles) UpdateRole(context.Context, uuid.UUID, profile.Role) error {
	return nil
}
func (f *fakeProfiles) SetVerified(context.Context, uuid.UUID, bool) error { return nil }

type fakePlayers struct {
	updated map[uuid.UUID]player.AttributesUpdate
}

func (f *fakePlayers) List(context.Context, player.Criteria) ([]player.Attributes, error) {
	return nil, nil
}

func (f *fakePlayers) Update(_ context.Context, id uuid.UUID, update player.AttributesUpdate) (*player.Attributes, error) {
	f.updated[id] = update

	a := &player.Attributes{ID: id, HasAttributes: true}
	if update.Position != nil {
		a.Position = *update.Position
	}
	return a, nil
}

func newPlayersTestHandler() (*fakePlayers, http.Handler) {
	players := &fakePlayers{updated: map[uuid.UUID]player.AttributesUpdate{}}
	service := admin.NewService(&fakeProfiles{}, players, nil)
	handler := NewPlayersHandler(service)
	return players, middleware.RequireAdmin(http.HandlerFunc(handler.UpdateAttributes))
}

func requestAs(role profile.Role, target, body string) *http.Request {
	req := httptest.NewRequest("PUT", target, strings.NewReader(body))
	user := &auth.SessionUser{ProfileID: uuid.New(), Email: "user@example.com", Role: role}
	return req.WithContext(context.WithValue(req.Context(), middleware.UserContextKey, user))
}

func TestAdminCanEditAnotherPlayersAttributes(t *testing.T) {
	players, handler := newPlayersTestHandler()

	target := uuid.New()
	req := requestAs(profile.RoleAdmin, "/api/admin/players/"+target.String(), `{"position":"Striker"}`)
	req.SetPathValue("id", target.String())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	update, ok := players.updated[target]
	if !ok {
		t.Fatal("update never reached the player store")
	}
	if update.Position == nil || *update.Position != "Striker" {
		t.Errorf("position update = %v, want Striker", update.Position)
	}
}

func TestNonAdminCannotEditOtherPlayers(t *testing.T) {
	players, handler := newPlayersTestHandler()

	target := uuid.New()
	req := requestAs(profile.RolePlayer, "/api/admin/players/"+target.String(), `{"position":"Striker"}`)
	req.SetPathValue("id", target.String())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
	if len(players.updated) != 0 {
		t.Error("player store must not be touched on a denied request")
	}
}

func TestAdminEditRejectsBadPlayerID(t *testing.T) {
	players, handler := newPlayersTestHandler()

	req := requestAs(profile.RoleAdmin, "/api/admin/players/not-a-uuid", `{"position":"Striker"}`)
	req.SetPathValue("id", "not-a-uuid")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if len(players.updated) != 0 {
		t.Error("player store must not be touched for an invalid id")
	}
}
