package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/ManuelReschke/Folio/internal/pkg/adminauth"
	"github.com/ManuelReschke/Folio/internal/pkg/usercontext"
)

// APIKeyAuthMiddleware authenticates admin API requests carrying the
// configured key in X-API-Key or an Authorization bearer header.
func APIKeyAuthMiddleware(creds adminauth.Credentials) fiber.Handler {
	if creds.APIKey == "" {
		log.Warn("[API] ADMIN_API_KEY is not set, admin API is disabled")
	}
	return func(c *fiber.Ctx) error {
		apiKey := extractAPIKeyFromHeader(c)
		if apiKey == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized", "message": "Missing API key"})
		}
		if !creds.VerifyAPIKey(apiKey) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized", "message": "Invalid API key"})
		}

		usercontext.Set(c, usercontext.AdminContext{
			Username: creds.Username,
			IsAdmin:  true,
			LoginVia: "api_key",
		})
		c.Locals(usercontext.KeyFromAPI, true)

		return c.Next()
	}
}

func extractAPIKeyFromHeader(c *fiber.Ctx) string {
	apiKey := strings.TrimSpace(c.Get("X-API-Key"))
	if apiKey != "" {
		return apiKey
	}
	auth := strings.TrimSpace(c.Get("Authorization"))
	if strings.HasPrefix(strings.ToLower(auth), "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}
