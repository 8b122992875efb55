package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/boltdash/driver-dashboard/internal/api/middleware"
)

// sessionCookie builds the HTTP-only credential cookie. With secure
// set (production behind TLS) the cookie is cross-site capable
// (SameSite=None); in local development it falls back to Lax because
// browsers refuse SameSite=None without Secure.
func sessionCookie(value string, ttl time.Duration, secure bool) *http.Cookie {
	sameSite := http.SameSiteLaxMode
	if secure {
		sameSite = http.SameSiteNoneMode
	}
	return &http.Cookie{
		Name:     middleware.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
	}
}

// clearSessionCookie expires the credential cookie immediately.
func clearSessionCookie(c echo.Context, secure bool) {
	cookie := sessionCookie("", 0, secure)
	cookie.MaxAge = -1
	c.SetCookie(cookie)
}
