package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/plcoach/plcoach/internal/workout"
)

// newTestClient points a client at a test server with all persistent
// state under a throwaway home directory.
func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client, server
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(body))
}

func TestLoginSavesTokenAndSendsBearer(t *testing.T) {
	var gotAuth, gotDeviceID string
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login-mobile", func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode login body: %v", err)
		}
		if req.Email != "lifter@example.com" || req.Password != "hunter2" {
			t.Errorf("login body = %+v", req)
		}
		writeJSON(w, 200, `{"ok":true,"email":"lifter@example.com","role":"athlete","is_coach":false,"has_linked_athlete":true,"athlete_id":7,"token":"tok-123"}`)
	})
	mux.HandleFunc("/athletes/mobile/dashboard", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotDeviceID = r.Header.Get("X-Device-ID")
		writeJSON(w, 200, `{"ok":true,"recent_workouts":[]}`)
	})

	client, _ := newTestClient(t, mux)

	user, err := client.Login("lifter@example.com", "hunter2")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Email != "lifter@example.com" || user.AthleteID == nil || *user.AthleteID != 7 {
		t.Errorf("user = %+v", user)
	}
	if !client.AuthStore().IsLoggedIn() {
		t.Error("token should be cached after login")
	}

	if _, err := client.Dashboard(); err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want Bearer tok-123", gotAuth)
	}
	if gotDeviceID == "" {
		t.Error("X-Device-ID header missing")
	}
}

// A 2xx response whose envelope says ok:false is still a failure.
func TestEnvelopeFalseOnHTTPOK(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, `{"ok":false,"error":"athlete not linked"}`)
	}))

	_, err := client.Dashboard()
	var srvErr *ServerError
	if !errors.As(err, &srvErr) {
		t.Fatalf("want ServerError, got %v", err)
	}
	if srvErr.Message != "athlete not linked" {
		t.Errorf("message = %q", srvErr.Message)
	}
}

func TestServerErrorOnNon2xx(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 500, `{"ok":false,"error":"boom"}`)
	}))

	err := client.Begin(1)
	var srvErr *ServerError
	if !errors.As(err, &srvErr) {
		t.Fatalf("want ServerError, got %v", err)
	}
	if srvErr.Status != 500 || srvErr.Message != "boom" {
		t.Errorf("got status %d message %q", srvErr.Status, srvErr.Message)
	}
}

func TestUnparseableBodyIsServerError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, `<html>gateway timeout</html>`)
	}))

	err := client.Begin(1)
	var srvErr *ServerError
	if !errors.As(err, &srvErr) {
		t.Fatalf("want ServerError for non-JSON body, got %v", err)
	}
}

func TestUnauthorizedClearsCredentials(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 401, `{"ok":false,"error":"unauthorized"}`)
	}))

	if err := client.AuthStore().Save(&AuthData{Token: "stale"}); err != nil {
		t.Fatalf("seed auth: %v", err)
	}

	_, err := client.Dashboard()
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("want AuthError, got %v", err)
	}
	if client.AuthStore().IsLoggedIn() {
		t.Error("401 should clear the cached session")
	}
}

func TestConflictStatus(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 409, `{"ok":false,"error":"workout is checked out on another device"}`)
	}))

	err := client.Begin(3)
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("want ConflictError, got %v", err)
	}
}

// Checkout treats any server-side rejection as lock contention, not just
// a literal 409, so the caller always gets an actionable conflict.
func TestCheckoutMapsServerErrorToConflict(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, `{"ok":false,"error":"workout is checked out by coach"}`)
	}))

	err := client.Checkout(3)
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("want ConflictError, got %v", err)
	}
	if conflict.Message != "workout is checked out by coach" {
		t.Errorf("message = %q", conflict.Message)
	}
}

func TestNetworkError(t *testing.T) {
	client, server := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := client.Dashboard()
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("want NetworkError, got %v", err)
	}
}

func TestLogoutClearsLocalSessionEvenOnServerFailure(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 500, `{"ok":false,"error":"boom"}`)
	}))

	if err := client.AuthStore().Save(&AuthData{Token: "tok"}); err != nil {
		t.Fatalf("seed auth: %v", err)
	}
	if err := client.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if client.AuthStore().IsLoggedIn() {
		t.Error("logout should clear credentials regardless of server response")
	}
}

func TestSetMutationBodies(t *testing.T) {
	var path string
	var body map[string]any
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		body = nil
		json.NewDecoder(r.Body).Decode(&body)
		writeJSON(w, 200, `{"ok":true}`)
	}))

	rpe := 8.0
	if err := client.LogTop(5, 42, workout.LiftEntry{WeightKg: 180, RPE: &rpe}); err != nil {
		t.Fatalf("LogTop: %v", err)
	}
	if path != "/workouts/mobile/5/items/42/log_top" {
		t.Errorf("path = %q", path)
	}
	if body["actual_weight_kg"] != 180.0 || body["actual_rpe"] != 8.0 {
		t.Errorf("body = %v", body)
	}

	if err := client.LogAccessory(5, 43, workout.AccessoryEntry{WeightKg: 40, Reps: 12}); err != nil {
		t.Fatalf("LogAccessory: %v", err)
	}
	if path != "/workouts/mobile/5/items/43/log_acc" {
		t.Errorf("path = %q", path)
	}
	if body["actual_reps"] != 12.0 {
		t.Errorf("body = %v", body)
	}
	if _, present := body["actual_rir"]; present {
		t.Error("nil RIR should be omitted from the body")
	}

	if err := client.SwapAccessory(5, 43, "Incline DB Press"); err != nil {
		t.Fatalf("SwapAccessory: %v", err)
	}
	if path != "/workouts/mobile/5/items/43/swap_acc" || body["movement"] != "Incline DB Press" {
		t.Errorf("swap path %q body %v", path, body)
	}
}
