package ports

import (
	"context"

	"github.com/boltdash/driver-dashboard/internal/core/domain"
)

// IdentityProvider is the external auth service this system delegates
// credential storage to. Implementations translate their own failure
// modes into domain.ErrAccountExists / domain.ErrInvalidCredentials,
// wrapping everything else in domain.ErrProvider.
type IdentityProvider interface {
	SignUp(ctx context.Context, email, password string) (*domain.Identity, error)
	SignInWithPassword(ctx context.Context, email, password string) (*domain.Identity, error)
	// SignOut invalidates whatever session state the provider tracks
	// for the user. The API's own credential is stateless and is
	// cleared client-side regardless of this call's outcome.
	SignOut(ctx context.Context, userID string) error
}

// CredentialStore persists provider credentials (hashed passwords).
// It backs the default IdentityProvider implementation.
type CredentialStore interface {
	Create(ctx context.Context, email, passwordHash string) (id string, err error)
	FindByEmail(ctx context.Context, email string) (id, passwordHash string, err error)
}

// SessionRegistry records the provider-side sessions opened by sign-in
// and removed by sign-out. Registry state never influences credential
// verification; it only lets the provider honour SignOut.
type SessionRegistry interface {
	Record(ctx context.Context, userID string) error
	Revoke(ctx context.Context, userID string) error
}
