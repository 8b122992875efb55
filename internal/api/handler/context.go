package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the session identity injected by the Session
// middleware. A missing user id means the middleware did not run, so
// the request is rejected with 401 before any service call. Handlers
// must scope every query by this id and never by a client-supplied one.
func ctxIdentity(c echo.Context) (userID string, err error) {
	userID, _ = c.Get("user_id").(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing session identity")
	}
	return userID, nil
}
