package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/boltdash/driver-dashboard/internal/token"
)

// CookieName is the credential transport slot: an HTTP-only cookie set
// on login/signup and cleared on logout.
const CookieName = "token"

// Session verifies the session credential and injects identity claims
// into the request context. The cookie is the primary transport; an
// Authorization bearer header is accepted as a fallback for non-browser
// clients. Exactly two outcomes: continue with identity, or 401.
func Session(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := credentialFromRequest(c)
			if raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "no token provided, please log in")
			}

			claims, err := token.Verify(raw, jwtSecret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set("user_id", claims.UserID)
			c.Set("email", claims.Email)
			c.Set("fullname", claims.Fullname)

			return next(c)
		}
	}
}

func credentialFromRequest(c echo.Context) string {
	if cookie, err := c.Cookie(CookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}
