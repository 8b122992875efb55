package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/boltdash/driver-dashboard/internal/client"
	"github.com/boltdash/driver-dashboard/internal/core/domain"
)

// newTestApp builds an App against a stub server with scripted stdin.
func newTestApp(t *testing.T, handler http.Handler, stdin string) (*App, *bytes.Buffer) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	api, err := client.NewAPI(srv.URL)
	if err != nil {
		t.Fatalf("new api: %v", err)
	}

	out := &bytes.Buffer{}
	return &App{
		api:      api,
		session:  client.NewSessionStore(api, zerolog.Nop()),
		expenses: client.NewExpenseStore(api, zerolog.Nop()),
		reader:   bufio.NewReader(strings.NewReader(stdin)),
		out:      out,
	}, out
}

func stubPassword(t *testing.T, password string) {
	t.Helper()
	orig := readPassword
	readPassword = func() ([]byte, error) { return []byte(password), nil }
	t.Cleanup(func() { readPassword = orig })
}

func authOK(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"message": "ok",
		"user":    map[string]any{"id": "driver_1", "email": "alice@example.com", "fullname": "Alice Driver"},
	})
}

func TestApp_Login(t *testing.T) {
	stubPassword(t, "hunter2")
	var gotBody map[string]string
	app, out := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		authOK(w)
	}), "alice@example.com\n")

	if err := app.Run(context.Background(), []string{"login"}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if gotBody["email"] != "alice@example.com" || gotBody["password"] != "hunter2" {
		t.Fatalf("unexpected request body: %+v", gotBody)
	}
	if !strings.Contains(out.String(), "Welcome back, Alice Driver") {
		t.Fatalf("output: %s", out.String())
	}
}

func TestApp_Login_Failure(t *testing.T) {
	stubPassword(t, "wrong")
	app, out := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
	}), "alice@example.com\n")

	if err := app.Run(context.Background(), []string{"login"}); err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(out.String(), "invalid credentials") {
		t.Fatalf("output: %s", out.String())
	}
}

func TestApp_AddAndSummary(t *testing.T) {
	expenses := []domain.Expense{}
	app, out := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/profile":
			authOK(w)
		case "/api/add":
			var in client.ExpenseInput
			_ = json.NewDecoder(r.Body).Decode(&in)
			expenses = append(expenses, domain.Expense{
				ID:       "exp_1",
				Category: domain.ExpenseCategory(in.Category),
				Amount:   in.Amount,
			})
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]any{"message": "ok", "expense": expenses[0]})
		case "/api/expenses":
			_ = json.NewEncoder(w).Encode(map[string]any{"expenses": expenses})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}), "")

	err := app.Run(context.Background(), []string{"add", "-category", "fuel", "-amount", "42.50", "-description", "gas"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !strings.Contains(out.String(), "Total spent: 42.50") {
		t.Fatalf("output: %s", out.String())
	}

	out.Reset()
	if err := app.Run(context.Background(), []string{"summary"}); err != nil {
		t.Fatalf("summary: %v", err)
	}
	if !strings.Contains(out.String(), "fuel:") {
		t.Fatalf("output: %s", out.String())
	}
}

func TestApp_Expenses_EmptyState(t *testing.T) {
	app, out := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/profile":
			authOK(w)
		case "/api/expenses":
			_ = json.NewEncoder(w).Encode(map[string]any{"expenses": []domain.Expense{}})
		}
	}), "")

	if err := app.Run(context.Background(), []string{"expenses"}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "No expenses recorded yet") {
		t.Fatalf("output: %s", out.String())
	}
}

func TestApp_UnknownCommand(t *testing.T) {
	app, out := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}), "")

	if err := app.Run(context.Background(), []string{"frobnicate"}); err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(out.String(), "usage:") {
		t.Fatalf("usage not printed: %s", out.String())
	}
}
