package controllers

import (
	"errors"

	"campus-check-dashboard/src/models"
	"campus-check-dashboard/src/services/session"
	"campus-check-dashboard/src/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	Gateway *session.Gateway
}

func NewAuthController(gw *session.Gateway) *AuthController {
	return &AuthController{Gateway: gw}
}

// LoginView godoc
// @Summary      Login view
// @Description  Redirects to /dashboard when a session exists, otherwise describes the login form
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Success      302
// @Router       /login [get]
func (ac *AuthController) LoginView(c *fiber.Ctx) error {
	if ac.Gateway.IsAuthenticated(c.UserContext()) {
		return c.Redirect("/dashboard")
	}
	return c.JSON(fiber.Map{
		"view":   "login",
		"fields": []string{"username", "password"},
		"action": "/login",
	})
}

// Login godoc
// @Summary      Log in as admin
// @Description  Exchanges admin credentials for a session token held by the dashboard
// @Tags         auth
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        body body models.Credentials true "Admin credentials"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Failure      401  {object}  map[string]interface{}
// @Router       /login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req models.Credentials
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}

	err := ac.Gateway.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			return utils.HandleError(c, fiber.StatusBadRequest, "Username and password are required")
		}
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": session.LoginFailedMessage,
			"code":  "LOGIN_FAILED",
		})
	}

	return c.JSON(fiber.Map{
		"message":  "Login successful",
		"redirect": "/dashboard",
	})
}

// Logout godoc
// @Summary      Log out
// @Description  Clears the stored session token
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  models.ErrorResponse
// @Router       /logout [post]
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	if err := ac.Gateway.Logout(c.UserContext()); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Logout failed")
	}
	return c.JSON(fiber.Map{
		"message":  "Logout successful",
		"redirect": "/login",
	})
}
