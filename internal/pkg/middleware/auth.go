package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/Folio/internal/pkg/constants"
	"github.com/ManuelReschke/Folio/internal/pkg/usercontext"
)

// RequireAdmin ensures a signed-in admin; redirects to the login page otherwise.
func RequireAdmin(c *fiber.Ctx) error {
	if !usercontext.IsAdmin(c) {
		return c.Redirect(constants.RouteAdminLogin, fiber.StatusSeeOther)
	}
	return c.Next()
}

// RedirectIfAdmin sends an already signed-in admin from the login page to the dashboard.
func RedirectIfAdmin(c *fiber.Ctx) error {
	if usercontext.IsAdmin(c) {
		return c.Redirect(constants.RouteAdmin, fiber.StatusSeeOther)
	}
	return c.Next()
}

// RequireAdminJSON is RequireAdmin for JSON endpoints used by the admin panel.
func RequireAdminJSON(c *fiber.Ctx) error {
	if !usercontext.IsAdmin(c) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "unauthorized",
			"message": "login required",
		})
	}
	return c.Next()
}
