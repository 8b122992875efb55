// Package client is the consumer-side SDK for the dashboard API: an
// HTTP client plus the session and expense stores that drive a
// frontend. The credential travels in the same HTTP-only cookie the
// browser uses, held in an in-memory cookie jar.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"

	"github.com/boltdash/driver-dashboard/internal/core/domain"
)

// API talks to the dashboard REST surface. The base URL is injected
// once at construction; nothing else in the SDK knows an endpoint.
type API struct {
	baseURL string
	http    *http.Client
}

// NewAPI builds an API client for the given base URL, e.g.
// "http://localhost:5000". The underlying http.Client keeps the
// session cookie across calls.
func NewAPI(baseURL string) (*API, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	return &API{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Jar: jar},
	}, nil
}

// apiError carries the server's error envelope alongside the status code.
type apiError struct {
	Status  int
	Message string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// SignupInput mirrors the signup form fields.
type SignupInput struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	Fullname     string `json:"fullname"`
	Phone        string `json:"phone,omitempty"`
	VehicleMake  string `json:"vehicleMake,omitempty"`
	VehicleModel string `json:"vehicleModel,omitempty"`
	VehicleYear  int    `json:"vehicleYear,omitempty"`
	LicensePlate string `json:"licensePlate,omitempty"`
}

// ExpenseInput mirrors the add-expense form fields. Date is
// YYYY-MM-DD or RFC 3339; empty means "today" server-side.
type ExpenseInput struct {
	Date        string  `json:"date,omitempty"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
	Receipt     string  `json:"receipt,omitempty"`
}

type userEnvelope struct {
	Message string          `json:"message"`
	User    *domain.Profile `json:"user"`
}

type expensesEnvelope struct {
	Expenses []domain.Expense `json:"expenses"`
}

type expenseEnvelope struct {
	Message string          `json:"message"`
	Expense *domain.Expense `json:"expense"`
}

// Signup registers a driver; the session cookie lands in the jar.
func (a *API) Signup(ctx context.Context, input SignupInput) (*domain.Profile, error) {
	var out userEnvelope
	if err := a.do(ctx, http.MethodPost, "/auth/signup", input, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

// Login authenticates; the session cookie lands in the jar.
func (a *API) Login(ctx context.Context, email, password string) (*domain.Profile, error) {
	body := map[string]string{"email": email, "password": password}
	var out userEnvelope
	if err := a.do(ctx, http.MethodPost, "/auth/login", body, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

// Logout clears the server-side cookie; the jar picks up the expiry.
func (a *API) Logout(ctx context.Context) error {
	return a.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

// Profile fetches the authenticated driver's profile.
func (a *API) Profile(ctx context.Context) (*domain.Profile, error) {
	var out userEnvelope
	if err := a.do(ctx, http.MethodGet, "/api/profile", nil, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

// Expenses fetches the full expense list.
func (a *API) Expenses(ctx context.Context) ([]domain.Expense, error) {
	var out expensesEnvelope
	if err := a.do(ctx, http.MethodGet, "/api/expenses", nil, &out); err != nil {
		return nil, err
	}
	return out.Expenses, nil
}

// AddExpense records a new expense and returns the created row.
func (a *API) AddExpense(ctx context.Context, input ExpenseInput) (*domain.Expense, error) {
	var out expenseEnvelope
	if err := a.do(ctx, http.MethodPost, "/api/add", input, &out); err != nil {
		return nil, err
	}
	return out.Expense, nil
}

// Dashboard fetches the mock-derived dashboard dataset.
func (a *API) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	var out domain.Dashboard
	if err := a.do(ctx, http.MethodGet, "/api/dashboard", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var envelope struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&envelope)
		if envelope.Error == "" {
			envelope.Error = http.StatusText(resp.StatusCode)
		}
		return &apiError{Status: resp.StatusCode, Message: envelope.Error}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
