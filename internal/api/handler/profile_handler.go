package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/boltdash/driver-dashboard/internal/core/domain"
	"github.com/boltdash/driver-dashboard/internal/core/ports"
)

// ProfileHandler serves the mirrored driver profile.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

type profileResponse struct {
	Message string          `json:"message"`
	User    *domain.Profile `json:"user"`
}

// Get returns the authenticated driver's profile.
//
// @Summary      Get the authenticated driver's profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	userID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	profile, err := h.service.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profileResponse{
		Message: "User profile fetched successfully",
		User:    profile,
	})
}
