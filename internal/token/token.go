// Package token implements the session credential codec: a compact
// HS256-signed JWT carrying the driver's identity claims. Issue and
// Verify are pure functions of secret, claims and clock; no state is
// kept anywhere, so a credential is valid iff its signature checks out
// and its expiry has not elapsed.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMalformed means the token could not be parsed at all.
	ErrMalformed = errors.New("malformed token")
	// ErrInvalid means the token parsed but its signature does not verify.
	ErrInvalid = errors.New("invalid token signature")
	// ErrExpired means the token was well-formed and signed but its
	// expiry has elapsed.
	ErrExpired = errors.New("expired token")
)

// Claims are the identity claims embedded in every session credential.
type Claims struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Fullname string `json:"fullname,omitempty"`
	jwt.RegisteredClaims
}

// Issue signs a credential for the given identity, expiring ttl from now.
func Issue(userID, email, fullname string, secret string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		UserID:   userID,
		Email:    email,
		Fullname: fullname,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// Verify parses and validates a credential, returning its claims.
// The signing algorithm is pinned to HS256 so a token cannot downgrade
// itself to "none" or switch to an asymmetric scheme.
func Verify(raw string, secret string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalid
		default:
			return nil, ErrMalformed
		}
	}
	if !tkn.Valid {
		return nil, ErrInvalid
	}
	return claims, nil
}
