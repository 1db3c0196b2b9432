package middleware

import "github.com/gofiber/fiber/v2"

// SecurityHeaders ตั้ง header ป้องกัน clickjacking / MIME sniffing ให้ทุก response
func SecurityHeaders(c *fiber.Ctx) error {
	c.Set("X-Frame-Options", "DENY")
	c.Set("X-Content-Type-Options", "nosniff")
	return c.Next()
}
