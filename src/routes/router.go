package routes

import (
	"campus-check-dashboard/src/controllers"
	"campus-check-dashboard/src/middleware"
	"campus-check-dashboard/src/services/dashboard"
	"campus-check-dashboard/src/services/session"

	"github.com/gofiber/fiber/v2"
)

// Deps สิ่งที่ routes ต้องใช้
type Deps struct {
	Gateway   *session.Gateway
	Dashboard *dashboard.Service
}

func InitRoutes(app *fiber.App, deps Deps) {
	app.Use(middleware.SecurityHeaders)

	authRoutes(app, controllers.NewAuthController(deps.Gateway))
	dashboardRoutes(app, deps.Gateway, controllers.NewDashboardController(deps.Gateway, deps.Dashboard))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/login")
	})

	// Route เช็คว่า API ทำงานอยู่
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("✅ Dashboard is running...")
	})
}
