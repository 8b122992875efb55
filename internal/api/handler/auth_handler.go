package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/boltdash/driver-dashboard/internal/api/metrics"
	"github.com/boltdash/driver-dashboard/internal/api/middleware"
	"github.com/boltdash/driver-dashboard/internal/core/domain"
	"github.com/boltdash/driver-dashboard/internal/core/ports"
	"github.com/boltdash/driver-dashboard/internal/token"
)

// AuthHandler exposes signup, login and logout. It owns the credential
// cookie slot; the session credential itself is issued by the service.
type AuthHandler struct {
	authService  ports.AuthService
	jwtSecret    string
	cookieTTL    time.Duration
	secureCookie bool
}

func NewAuthHandler(authService ports.AuthService, jwtSecret string, cookieTTL time.Duration, secureCookie bool) *AuthHandler {
	if cookieTTL <= 0 {
		cookieTTL = 24 * time.Hour
	}
	return &AuthHandler{authService: authService, jwtSecret: jwtSecret, cookieTTL: cookieTTL, secureCookie: secureCookie}
}

type signupRequest struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6"`
	Fullname     string `json:"fullname" validate:"required"`
	Phone        string `json:"phone"`
	VehicleMake  string `json:"vehicleMake"`
	VehicleModel string `json:"vehicleModel"`
	VehicleYear  int    `json:"vehicleYear"`
	LicensePlate string `json:"licensePlate"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Message string          `json:"message"`
	User    *domain.Profile `json:"user,omitempty"`
}

// Signup registers a new driver account.
//
// @Summary      Register a new driver
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Driver registration details"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tkn, profile, err := h.authService.Signup(c.Request().Context(), ports.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Fullname: req.Fullname,
		Phone:    req.Phone,
		Vehicle: domain.Vehicle{
			Make:         req.VehicleMake,
			Model:        req.VehicleModel,
			Year:         req.VehicleYear,
			LicensePlate: req.LicensePlate,
		},
	})
	if err != nil {
		return err
	}

	c.SetCookie(sessionCookie(tkn, h.cookieTTL, h.secureCookie))
	metrics.SignupsTotal.Inc()

	return c.JSON(http.StatusOK, authResponse{Message: "Signup successful", User: profile})
}

// Login authenticates a driver and sets the session cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tkn, profile, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	c.SetCookie(sessionCookie(tkn, h.cookieTTL, h.secureCookie))
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, authResponse{Message: "Login successful", User: profile})
}

// Logout clears the session cookie and asks the provider to drop its
// session. Always 200: the cookie is cleared before the provider call
// resolves, and provider failures are only logged.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  authResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	clearSessionCookie(c, h.secureCookie)

	// The route is not gated by the session middleware: a caller with
	// an expired or garbled credential still deserves a cleared cookie.
	// The provider sign-out only happens when the credential verifies.
	if cookie, err := c.Cookie(middleware.CookieName); err == nil && cookie.Value != "" {
		if claims, err := token.Verify(cookie.Value, h.jwtSecret); err == nil {
			h.authService.Logout(c.Request().Context(), claims.UserID)
		}
	}

	return c.JSON(http.StatusOK, authResponse{Message: "User logged out successfully"})
}
