package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/boltdash/driver-dashboard/internal/core/domain"
	"github.com/boltdash/driver-dashboard/internal/core/ports"
	"github.com/boltdash/driver-dashboard/internal/token"
)

// AuthService implements signup, login and logout on top of the
// external identity provider and the mirrored profile store.
type AuthService struct {
	provider  ports.IdentityProvider
	profiles  ports.ProfileRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(provider ports.IdentityProvider, profiles ports.ProfileRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		provider:  provider,
		profiles:  profiles,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Signup creates the provider credential, mirrors the profile row and
// issues a session credential. If the mirror write fails after the
// provider credential was created, the error is surfaced as-is: there
// is deliberately no rollback of the upstream credential (atomic
// two-phase signup is a non-goal).
func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (string, *domain.Profile, error) {
	identity, err := s.provider.SignUp(ctx, input.Email, input.Password)
	if err != nil {
		return "", nil, err
	}

	profile := &domain.Profile{
		ID:        identity.ID,
		Email:     identity.Email,
		Fullname:  input.Fullname,
		Phone:     input.Phone,
		Vehicle:   input.Vehicle,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.profiles.Insert(ctx, profile); err != nil {
		s.logger.Error().Err(err).
			Str("user_id", identity.ID).
			Msg("profile mirror write failed after provider signup")
		return "", nil, fmt.Errorf("%w: mirror profile: %v", domain.ErrPersistence, err)
	}

	tkn, err := token.Issue(identity.ID, identity.Email, input.Fullname, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", identity.ID).Msg("driver signed up")
	return tkn, profile, nil
}

// Login verifies credentials with the provider, loads the mirrored
// profile and issues a session credential. A missing profile for a
// valid credential violates the signup invariant and is reported as
// domain.ErrPersistence (a server error, not a 404).
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Profile, error) {
	identity, err := s.provider.SignInWithPassword(ctx, email, password)
	if err != nil {
		return "", nil, err
	}

	profile, err := s.profiles.FindByID(ctx, identity.ID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			// Invariant breach, not a client error: the credential
			// verified but the signup-time mirror row is gone.
			s.logger.Error().Str("user_id", identity.ID).Msg("profile missing for authenticated identity")
			return "", nil, fmt.Errorf("%w: profile missing for user %s", domain.ErrPersistence, identity.ID)
		}
		return "", nil, err
	}

	tkn, err := token.Issue(identity.ID, identity.Email, profile.Fullname, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", identity.ID).Msg("driver logged in")
	return tkn, profile, nil
}

// Logout tells the provider to drop its session state. It never fails
// from the caller's point of view: the credential transport slot is
// cleared regardless, so a provider error only gets logged.
func (s *AuthService) Logout(ctx context.Context, userID string) {
	if err := s.provider.SignOut(ctx, userID); err != nil {
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("provider sign-out failed")
	}
}

// GetProfile returns the mirrored profile for the session identity.
func (s *AuthService) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	return s.profiles.FindByID(ctx, userID)
}
