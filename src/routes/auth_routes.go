package routes

import (
	"campus-check-dashboard/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// authRoutes กำหนด route สำหรับ login/logout
func authRoutes(app *fiber.App, ac *controllers.AuthController) {
	app.Get("/login", ac.LoginView)
	app.Post("/login", ac.Login)   // 🔐 login
	app.Post("/logout", ac.Logout) // 🚪 logout
}
