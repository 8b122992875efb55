package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueVerify_RoundTrip(t *testing.T) {
	raw, err := Issue("driver_1", "alice@example.com", "Alice Driver", "secret", time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := Verify(raw, "secret")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != "driver_1" {
		t.Fatalf("user_id = %q, want driver_1", claims.UserID)
	}
	if claims.Email != "alice@example.com" {
		t.Fatalf("email = %q", claims.Email)
	}
	if claims.Fullname != "Alice Driver" {
		t.Fatalf("fullname = %q", claims.Fullname)
	}
}

func TestVerify_Expired(t *testing.T) {
	raw, err := Issue("driver_1", "alice@example.com", "", "secret", -time.Minute)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, err = Verify(raw, "secret")
	if !errors.Is(err, ErrExpired) {
		t.Fatalf("err = %v, want ErrExpired", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	raw, err := Issue("driver_1", "alice@example.com", "", "secret", time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, err = Verify(raw, "other-secret")
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("err = %v, want ErrInvalid", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	for _, raw := range []string{"", "not-a-token", "a.b", "a.b.c.d"} {
		if _, err := Verify(raw, "secret"); !errors.Is(err, ErrMalformed) {
			t.Fatalf("Verify(%q) err = %v, want ErrMalformed", raw, err)
		}
	}
}

func TestVerify_RejectsUnsignedAlg(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"user_id": "driver_1"})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := Verify(raw, "secret"); err == nil {
		t.Fatal("expected unsigned token to be rejected")
	}
}
