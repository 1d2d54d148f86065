package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/Folio/app/controllers"
	"github.com/ManuelReschke/Folio/internal/pkg/middleware"
	"github.com/ManuelReschke/Folio/internal/pkg/oauth"
	"github.com/ManuelReschke/Folio/internal/pkg/session"
)

type HttpRouter struct {
	deps    controllers.Dependencies
	storage fiber.Storage
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// init oauth providers
	oauth.Setup()

	// admin flag from the session, before any route
	app.Use(middleware.AdminContextMiddleware)

	controllers.InitializeControllers(h.deps)

	h.registerPublicRoutes(app)
	h.registerCSRFProtectedRoutes(app)
}

func NewHttpRouter(deps controllers.Dependencies, storage fiber.Storage) *HttpRouter {
	return &HttpRouter{deps: deps, storage: storage}
}
