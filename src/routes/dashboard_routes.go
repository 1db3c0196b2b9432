package routes

import (
	"campus-check-dashboard/src/controllers"
	"campus-check-dashboard/src/middleware"
	"campus-check-dashboard/src/services/session"

	"github.com/gofiber/fiber/v2"
)

func dashboardRoutes(app *fiber.App, gw *session.Gateway, dc *controllers.DashboardController) {
	app.Get("/dashboard", middleware.RequireSession(gw), dc.Show)
}
