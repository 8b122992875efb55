package domain

import "errors"

var (
	// ErrInvalidCredentials is returned when the provider rejects an
	// email/password pair on login.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountExists is returned when signup uses an email the
	// provider already knows.
	ErrAccountExists = errors.New("account already exists")

	// ErrProfileNotFound means the mirrored profile row is missing for
	// a known identity. Every credential is assumed to have a profile,
	// so login surfaces this as a server error rather than a 404.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrUnauthenticated means no usable session identity reached a
	// guarded handler.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrProvider wraps failures of the external auth provider.
	ErrProvider = errors.New("auth provider failure")

	// ErrPersistence wraps failures of the mirrored row store.
	ErrPersistence = errors.New("persistence failure")
)
