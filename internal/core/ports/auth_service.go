package ports

import (
	"context"

	"github.com/boltdash/driver-dashboard/internal/core/domain"
)

// SignupInput carries everything a new driver submits on signup.
// Email, password and fullname are mandatory; the rest mirrors into
// the profile row as-is.
type SignupInput struct {
	Email    string
	Password string
	Fullname string
	Phone    string
	Vehicle  domain.Vehicle
}

// AuthService implements the signup/login/logout use cases. Login and
// Signup return the session credential alongside the profile so the
// transport layer can place it in the cookie slot.
type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (string, *domain.Profile, error)
	Login(ctx context.Context, email, password string) (string, *domain.Profile, error)
	// Logout is best-effort: provider failures are logged, never returned.
	Logout(ctx context.Context, userID string)
}

// ProfileService fetches the mirrored profile for an authenticated driver.
type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
}
