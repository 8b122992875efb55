// Package provider implements the external identity provider surface
// the auth service delegates to. LocalProvider is the self-hosted
// stand-in for a hosted auth service: bcrypt credentials in the
// credential store, provider-side sessions in the registry.
package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/boltdash/driver-dashboard/internal/api/metrics"
	"github.com/boltdash/driver-dashboard/internal/core/domain"
	"github.com/boltdash/driver-dashboard/internal/core/ports"
)

// LocalProvider implements ports.IdentityProvider.
type LocalProvider struct {
	credentials ports.CredentialStore
	sessions    ports.SessionRegistry
	logger      zerolog.Logger
}

func NewLocalProvider(credentials ports.CredentialStore, sessions ports.SessionRegistry, logger zerolog.Logger) *LocalProvider {
	return &LocalProvider{credentials: credentials, sessions: sessions, logger: logger}
}

// SignUp creates a credential for a new email. Duplicate emails come
// back as domain.ErrAccountExists.
func (p *LocalProvider) SignUp(ctx context.Context, email, password string) (*domain.Identity, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		metrics.ProviderErrorsTotal.WithLabelValues("sign_up").Inc()
		return nil, fmt.Errorf("%w: hash password: %v", domain.ErrProvider, err)
	}

	id, err := p.credentials.Create(ctx, email, string(hash))
	if err != nil {
		if errors.Is(err, domain.ErrAccountExists) {
			return nil, err
		}
		metrics.ProviderErrorsTotal.WithLabelValues("sign_up").Inc()
		return nil, fmt.Errorf("%w: create credential: %v", domain.ErrProvider, err)
	}

	return &domain.Identity{ID: id, Email: email}, nil
}

// SignInWithPassword verifies the email/password pair and records a
// provider-side session. A missing account and a wrong password are
// indistinguishable to the caller.
func (p *LocalProvider) SignInWithPassword(ctx context.Context, email, password string) (*domain.Identity, error) {
	id, hash, err := p.credentials.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return nil, err
		}
		metrics.ProviderErrorsTotal.WithLabelValues("sign_in").Inc()
		return nil, fmt.Errorf("%w: find credential: %v", domain.ErrProvider, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	// Session bookkeeping must not block a successful sign-in: the
	// registry only exists so SignOut has something to drop.
	if err := p.sessions.Record(ctx, id); err != nil {
		p.logger.Warn().Err(err).Str("user_id", id).Msg("failed to record provider session")
	}

	return &domain.Identity{ID: id, Email: email}, nil
}

// SignOut drops the user's provider-side session.
func (p *LocalProvider) SignOut(ctx context.Context, userID string) error {
	if err := p.sessions.Revoke(ctx, userID); err != nil {
		metrics.ProviderErrorsTotal.WithLabelValues("sign_out").Inc()
		return fmt.Errorf("%w: revoke session: %v", domain.ErrProvider, err)
	}
	return nil
}
