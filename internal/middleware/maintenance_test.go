package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"scoutlink-server/internal/profile"
	"scoutlink-server/internal/shared/errors"
)

type fakeFlags struct {
	maintenance bool
	err         error
}

func (f *fakeFlags) Bool(_ context.Context, key string, fallback bool) (bool, error) {
	if f.err != nil {
		return fallback, f.err
	}
	if key == "maintenance_mode" {
		return f.maintenance, nil
	}
	return fallback, nil
}

func maintenanceHandler(flags *fakeFlags, invoked *bool) http.Handler {
	return Maintenance(flags)(markerHandler(invoked))
}

func TestMaintenanceOffPassesThrough(t *testing.T) {
	var invoked bool
	handler := maintenanceHandler(&fakeFlags{maintenance: false}, &invoked)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/players", nil))

	if !invoked {
		t.Error("handler should run when maintenance is off")
	}
}

func TestMaintenanceBlocksNonAdminTraffic(t *testing.T) {
	for _, role := range []profile.Role{
		profile.RolePlayer,
		profile.RoleCoach,
		profile.RoleAgent,
		profile.RoleManager,
		profile.RoleClubStaff,
		profile.RoleNone,
	} {
		var invoked bool
		handler := maintenanceHandler(&fakeFlags{maintenance: true}, &invoked)

		req := requestWithUser(role)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("role %q: status = %d, want %d", role, rec.Code, http.StatusServiceUnavailable)
		}
		if invoked {
			t.Errorf("role %q: handler must not run during maintenance", role)
		}
	}

	// Unauthenticated requests are blocked too.
	var invoked bool
	handler := maintenanceHandler(&fakeFlags{maintenance: true}, &invoked)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/players", nil))

	if rec.Code != http.StatusServiceUnavailable || invoked {
		t.Errorf("unauthenticated: status = %d, invoked = %v", rec.Code, invoked)
	}
}

func TestMaintenanceAdminsBypass(t *testing.T) {
	var invoked bool
	handler := maintenanceHandler(&fakeFlags{maintenance: true}, &invoked)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithUser(profile.RoleAdmin))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !invoked {
		t.Error("admins must reach the handler during maintenance")
	}
}

func TestMaintenanceAuthEndpointsStayOpen(t *testing.T) {
	// Admins sign in through /auth/ to switch the flag off, so those
	// routes are never blocked.
	var invoked bool
	handler := maintenanceHandler(&fakeFlags{maintenance: true}, &invoked)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("POST", "/auth/login", nil))

	if rec.Code != http.StatusOK || !invoked {
		t.Errorf("auth route blocked: status = %d, invoked = %v", rec.Code, invoked)
	}
}

func TestMaintenanceFlagStoreFailureFailsOpen(t *testing.T) {
	var invoked bool
	flags := &fakeFlags{maintenance: true, err: errors.External("flag store down")}
	handler := maintenanceHandler(flags, &invoked)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/players", nil))

	if rec.Code != http.StatusOK || !invoked {
		t.Errorf("flag store failure should not block traffic: status = %d, invoked = %v", rec.Code, invoked)
	}
}
