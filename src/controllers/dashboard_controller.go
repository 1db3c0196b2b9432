package controllers

import (
	"campus-check-dashboard/src/models"
	"campus-check-dashboard/src/services/dashboard"
	"campus-check-dashboard/src/services/session"

	"github.com/gofiber/fiber/v2"
)

type DashboardController struct {
	Gateway   *session.Gateway
	Dashboard *dashboard.Service
}

func NewDashboardController(gw *session.Gateway, svc *dashboard.Service) *DashboardController {
	return &DashboardController{Gateway: gw, Dashboard: svc}
}

// Show godoc
// @Summary      Dashboard view models
// @Description  Fetches staff and records, returns summary, per-date, per-gate and per-staff counts
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  models.DashboardResponse
// @Failure      502  {object}  models.DashboardResponse
// @Router       /dashboard [get]
func (dc *DashboardController) Show(c *fiber.Ctx) error {
	view, err := dc.Dashboard.Load(c.UserContext())
	if err != nil {
		// a rejected token has already cleared the session
		if !dc.Gateway.IsAuthenticated(c.UserContext()) {
			return c.Redirect("/login")
		}
		return c.Status(fiber.StatusBadGateway).JSON(models.DashboardResponse{
			DashboardView: view,
			Error:         dashboard.FetchErrorMessage,
		})
	}
	return c.JSON(models.DashboardResponse{DashboardView: view})
}
