package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/boltdash/driver-dashboard/internal/core/ports"
)

// DashboardHandler serves the mock-derived trip and earnings dataset.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Get returns the dashboard dataset for the authenticated driver.
//
// @Summary      Get dashboard earnings and trip statistics
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  domain.Dashboard
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Get(c echo.Context) error {
	userID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	dashboard, err := h.service.GetDashboard(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dashboard)
}
