package provider

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/boltdash/driver-dashboard/internal/core/domain"
)

type memCredentials struct {
	byEmail map[string][2]string // email -> {id, hash}
	nextID  int
	failOn  string
}

func newMemCredentials() *memCredentials {
	return &memCredentials{byEmail: map[string][2]string{}}
}

func (m *memCredentials) Create(ctx context.Context, email, passwordHash string) (string, error) {
	if m.failOn == "create" {
		return "", errors.New("store down")
	}
	if _, ok := m.byEmail[email]; ok {
		return "", domain.ErrAccountExists
	}
	m.nextID++
	id := string(rune('a' + m.nextID))
	m.byEmail[email] = [2]string{id, passwordHash}
	return id, nil
}

func (m *memCredentials) FindByEmail(ctx context.Context, email string) (string, string, error) {
	if m.failOn == "find" {
		return "", "", errors.New("store down")
	}
	cred, ok := m.byEmail[email]
	if !ok {
		return "", "", domain.ErrInvalidCredentials
	}
	return cred[0], cred[1], nil
}

type memSessions struct {
	open      map[string]bool
	recordErr error
	revokeErr error
}

func newMemSessions() *memSessions {
	return &memSessions{open: map[string]bool{}}
}

func (m *memSessions) Record(ctx context.Context, userID string) error {
	if m.recordErr != nil {
		return m.recordErr
	}
	m.open[userID] = true
	return nil
}

func (m *memSessions) Revoke(ctx context.Context, userID string) error {
	if m.revokeErr != nil {
		return m.revokeErr
	}
	delete(m.open, userID)
	return nil
}

func TestLocalProvider_SignUpThenSignIn(t *testing.T) {
	creds := newMemCredentials()
	sessions := newMemSessions()
	p := NewLocalProvider(creds, sessions, zerolog.Nop())

	identity, err := p.SignUp(context.Background(), "alice@example.com", "hunter2")
	if err != nil {
		t.Fatalf("sign up: %v", err)
	}
	if identity.Email != "alice@example.com" || identity.ID == "" {
		t.Fatalf("unexpected identity: %+v", identity)
	}

	// Stored hash must be bcrypt, never the plaintext.
	stored := creds.byEmail["alice@example.com"][1]
	if stored == "hunter2" {
		t.Fatal("password stored in plaintext")
	}
	if bcrypt.CompareHashAndPassword([]byte(stored), []byte("hunter2")) != nil {
		t.Fatal("stored hash does not match password")
	}

	signedIn, err := p.SignInWithPassword(context.Background(), "alice@example.com", "hunter2")
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if signedIn.ID != identity.ID {
		t.Fatalf("id mismatch: %q vs %q", signedIn.ID, identity.ID)
	}
	if !sessions.open[identity.ID] {
		t.Fatal("provider session not recorded")
	}
}

func TestLocalProvider_SignUp_Duplicate(t *testing.T) {
	p := NewLocalProvider(newMemCredentials(), newMemSessions(), zerolog.Nop())

	if _, err := p.SignUp(context.Background(), "alice@example.com", "x"); err != nil {
		t.Fatalf("first sign up: %v", err)
	}
	_, err := p.SignUp(context.Background(), "alice@example.com", "y")
	if !errors.Is(err, domain.ErrAccountExists) {
		t.Fatalf("err = %v, want ErrAccountExists", err)
	}
}

func TestLocalProvider_SignIn_WrongPassword(t *testing.T) {
	p := NewLocalProvider(newMemCredentials(), newMemSessions(), zerolog.Nop())

	if _, err := p.SignUp(context.Background(), "alice@example.com", "hunter2"); err != nil {
		t.Fatalf("sign up: %v", err)
	}
	_, err := p.SignInWithPassword(context.Background(), "alice@example.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLocalProvider_SignIn_UnknownEmail(t *testing.T) {
	p := NewLocalProvider(newMemCredentials(), newMemSessions(), zerolog.Nop())

	_, err := p.SignInWithPassword(context.Background(), "ghost@example.com", "x")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLocalProvider_SignIn_RegistryFailureDoesNotBlock(t *testing.T) {
	creds := newMemCredentials()
	sessions := newMemSessions()
	sessions.recordErr = errors.New("redis down")
	p := NewLocalProvider(creds, sessions, zerolog.Nop())

	if _, err := p.SignUp(context.Background(), "alice@example.com", "hunter2"); err != nil {
		t.Fatalf("sign up: %v", err)
	}
	if _, err := p.SignInWithPassword(context.Background(), "alice@example.com", "hunter2"); err != nil {
		t.Fatalf("sign in should succeed despite registry failure: %v", err)
	}
}

func TestLocalProvider_SignIn_StoreFailureWrapsProviderError(t *testing.T) {
	creds := newMemCredentials()
	creds.failOn = "find"
	p := NewLocalProvider(creds, newMemSessions(), zerolog.Nop())

	_, err := p.SignInWithPassword(context.Background(), "alice@example.com", "x")
	if !errors.Is(err, domain.ErrProvider) {
		t.Fatalf("err = %v, want ErrProvider", err)
	}
}

func TestLocalProvider_SignOut(t *testing.T) {
	creds := newMemCredentials()
	sessions := newMemSessions()
	p := NewLocalProvider(creds, sessions, zerolog.Nop())

	identity, err := p.SignUp(context.Background(), "alice@example.com", "hunter2")
	if err != nil {
		t.Fatalf("sign up: %v", err)
	}
	if _, err := p.SignInWithPassword(context.Background(), "alice@example.com", "hunter2"); err != nil {
		t.Fatalf("sign in: %v", err)
	}

	if err := p.SignOut(context.Background(), identity.ID); err != nil {
		t.Fatalf("sign out: %v", err)
	}
	if sessions.open[identity.ID] {
		t.Fatal("provider session not revoked")
	}

	sessions.revokeErr = errors.New("redis down")
	if err := p.SignOut(context.Background(), identity.ID); !errors.Is(err, domain.ErrProvider) {
		t.Fatalf("err = %v, want ErrProvider", err)
	}
}
