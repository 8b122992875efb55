package client

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/boltdash/driver-dashboard/internal/core/domain"
)

// SessionState is the session store's current position in the auth flow.
type SessionState string

const (
	// StateAnonymous means no user is signed in. A failed attempt also
	// lands here so the form can be resubmitted.
	StateAnonymous SessionState = "anonymous"
	// StateAuthenticating means a login/signup call is in flight.
	StateAuthenticating SessionState = "authenticating"
	// StateAuthenticated means a profile is loaded.
	StateAuthenticated SessionState = "authenticated"
)

// SessionStore drives the auth flow for a frontend: it owns the current
// user and the loading/error flags the views render from. All state
// changes go through its methods; fields are guarded for callers that
// share a store across goroutines.
type SessionStore struct {
	api    *API
	logger zerolog.Logger

	mu      sync.Mutex
	state   SessionState
	user    *domain.Profile
	lastErr string
}

func NewSessionStore(api *API, logger zerolog.Logger) *SessionStore {
	return &SessionStore{api: api, logger: logger, state: StateAnonymous}
}

// State returns the current flow state.
func (s *SessionStore) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// User returns the signed-in profile, or nil when anonymous.
func (s *SessionStore) User() *domain.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// LastError returns the message from the most recent failed attempt,
// cleared by the next successful transition.
func (s *SessionStore) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Login runs anonymous → authenticating → authenticated. On failure
// the error message is stored and the state returns to anonymous so
// the user can retry.
func (s *SessionStore) Login(ctx context.Context, email, password string) error {
	s.begin()
	user, err := s.api.Login(ctx, email, password)
	return s.finish(user, err)
}

// Signup follows the same transitions as Login.
func (s *SessionStore) Signup(ctx context.Context, input SignupInput) error {
	s.begin()
	user, err := s.api.Signup(ctx, input)
	return s.finish(user, err)
}

// Logout always returns the store to anonymous; the server guarantees
// the cookie is cleared even when its provider call fails.
func (s *SessionStore) Logout(ctx context.Context) {
	if err := s.api.Logout(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("logout call failed")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateAnonymous
	s.user = nil
	s.lastErr = ""
}

// Restore silently attempts to recover an existing session from the
// cookie jar on startup. Failure leaves the store anonymous without
// recording an error: an expired cookie is the normal cold-start case.
func (s *SessionStore) Restore(ctx context.Context) {
	user, err := s.api.Profile(ctx)
	if err != nil {
		s.logger.Debug().Err(err).Msg("no session to restore")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateAuthenticated
	s.user = user
}

func (s *SessionStore) begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateAuthenticating
	s.lastErr = ""
}

func (s *SessionStore) finish(user *domain.Profile, err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = StateAnonymous
		s.user = nil
		s.lastErr = err.Error()
		return err
	}
	s.state = StateAuthenticated
	s.user = user
	return nil
}
