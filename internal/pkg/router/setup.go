package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/Folio/app/controllers"
)

// Router installs a set of routes on the app
type Router interface {
	InstallRouter(app *fiber.App)
}

// InstallRouter registers all routes. The HTTP router goes first: it sets up
// the session store, OAuth providers and the admin context middleware the
// other routes rely on. The catch-all 404 page is registered last.
func InstallRouter(app *fiber.App, deps controllers.Dependencies) {
	storage := newLimiterStorage()
	setup(app, NewHttpRouter(deps, storage), NewApiRouter(deps, storage))
	app.Use(controllers.HandleNotFound)
}

func setup(app *fiber.App, router ...Router) {
	for _, r := range router {
		r.InstallRouter(app)
	}
}
