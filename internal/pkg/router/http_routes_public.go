package router

import (
	"github.com/gofiber/fiber/v2"
	gothfiber "github.com/shareed2k/goth_fiber"

	"github.com/ManuelReschke/Folio/app/controllers"
)

// registerPublicRoutes adds the OAuth handshake, which keeps its own state
// in the goth session and never renders a page
func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	app.Get("/auth/:provider", gothfiber.BeginAuthHandler)
	app.Get("/auth/:provider/callback", controllers.HandleOAuthCallback)
}
