package middleware

import (
	"campus-check-dashboard/src/services/session"

	"github.com/gofiber/fiber/v2"
)

// RequireSession sends unauthenticated visitors to /login.
func RequireSession(gw *session.Gateway) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !gw.IsAuthenticated(c.UserContext()) {
			return c.Redirect("/login")
		}
		return c.Next()
	}
}
