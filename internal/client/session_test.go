package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

// newTestAPI wires an API client against a stub server.
func newTestAPI(t *testing.T, handler http.Handler) (*API, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	api, err := NewAPI(srv.URL)
	if err != nil {
		t.Fatalf("new api: %v", err)
	}
	return api, srv
}

func writeUser(w http.ResponseWriter, fullname string) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"message": "ok",
		"user":    map[string]any{"id": "driver_1", "email": "alice@example.com", "fullname": fullname},
	})
}

func TestSessionStore_LoginSuccess(t *testing.T) {
	api, _ := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		http.SetCookie(w, &http.Cookie{Name: "token", Value: "tkn", Path: "/"})
		writeUser(w, "Alice Driver")
	}))
	store := NewSessionStore(api, zerolog.Nop())

	if store.State() != StateAnonymous {
		t.Fatalf("initial state = %s", store.State())
	}

	if err := store.Login(context.Background(), "alice@example.com", "hunter2"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if store.State() != StateAuthenticated {
		t.Fatalf("state = %s, want authenticated", store.State())
	}
	if store.User() == nil || store.User().Fullname != "Alice Driver" {
		t.Fatalf("user = %+v", store.User())
	}
	if store.LastError() != "" {
		t.Fatalf("unexpected error: %s", store.LastError())
	}
}

func TestSessionStore_LoginFailureReturnsToAnonymous(t *testing.T) {
	api, _ := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
	}))
	store := NewSessionStore(api, zerolog.Nop())

	if err := store.Login(context.Background(), "alice@example.com", "wrong"); err == nil {
		t.Fatal("expected error")
	}
	if store.State() != StateAnonymous {
		t.Fatalf("state = %s, want anonymous for retry", store.State())
	}
	if store.User() != nil {
		t.Fatalf("user should be nil, got %+v", store.User())
	}
	if store.LastError() == "" {
		t.Fatal("error message not recorded")
	}
}

func TestSessionStore_SignupSuccess(t *testing.T) {
	api, _ := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/signup" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		writeUser(w, "Bob Driver")
	}))
	store := NewSessionStore(api, zerolog.Nop())

	err := store.Signup(context.Background(), SignupInput{Email: "bob@example.com", Password: "hunter2", Fullname: "Bob Driver"})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if store.State() != StateAuthenticated {
		t.Fatalf("state = %s", store.State())
	}
}

func TestSessionStore_Logout(t *testing.T) {
	api, _ := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			writeUser(w, "Alice Driver")
		case "/auth/logout":
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
		}
	}))
	store := NewSessionStore(api, zerolog.Nop())

	if err := store.Login(context.Background(), "a@b.c", "x"); err != nil {
		t.Fatalf("login: %v", err)
	}
	store.Logout(context.Background())
	if store.State() != StateAnonymous || store.User() != nil {
		t.Fatalf("logout left state=%s user=%+v", store.State(), store.User())
	}
}

func TestSessionStore_Logout_AlwaysAnonymousOnServerError(t *testing.T) {
	api, _ := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	store := NewSessionStore(api, zerolog.Nop())

	store.Logout(context.Background())
	if store.State() != StateAnonymous {
		t.Fatalf("state = %s, want anonymous", store.State())
	}
}

func TestSessionStore_Restore_SilentOnFailure(t *testing.T) {
	api, _ := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	store := NewSessionStore(api, zerolog.Nop())

	store.Restore(context.Background())
	if store.State() != StateAnonymous {
		t.Fatalf("state = %s, want anonymous", store.State())
	}
	if store.LastError() != "" {
		t.Fatalf("restore failure must stay silent, got %q", store.LastError())
	}
}

func TestSessionStore_Restore_RecoversSession(t *testing.T) {
	api, _ := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/profile" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		writeUser(w, "Alice Driver")
	}))
	store := NewSessionStore(api, zerolog.Nop())

	store.Restore(context.Background())
	if store.State() != StateAuthenticated {
		t.Fatalf("state = %s, want authenticated", store.State())
	}
}
