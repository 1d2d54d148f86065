package usercontext

import "github.com/gofiber/fiber/v2"

// AdminContext describes who is making the current request
type AdminContext struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	LoginVia string `json:"login_via"`
}

// Get retrieves the admin context from the fiber context.
// Returns an anonymous context if none is set.
func Get(c *fiber.Ctx) AdminContext {
	if ctx, ok := c.Locals(KeyContext).(AdminContext); ok {
		return ctx
	}
	return AdminContext{}
}

// Set stores the admin context for the rest of the request
func Set(c *fiber.Ctx, ctx AdminContext) {
	c.Locals(KeyContext, ctx)
	c.Locals(KeyIsAdmin, ctx.IsAdmin)
	c.Locals(KeyUsername, ctx.Username)
}

// IsAdmin checks if the current request belongs to the signed-in admin
func IsAdmin(c *fiber.Ctx) bool {
	return Get(c).IsAdmin
}

// Username returns the signed-in admin name, or empty string
func Username(c *fiber.Ctx) string {
	return Get(c).Username
}
