package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/ManuelReschke/Folio/app/controllers"
	apiv1 "github.com/ManuelReschke/Folio/internal/api/v1"
	"github.com/ManuelReschke/Folio/internal/pkg/env"
	"github.com/ManuelReschke/Folio/internal/pkg/middleware"
)

type ApiRouter struct {
	deps    controllers.Dependencies
	storage fiber.Storage
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api",
		cors.New(cors.Config{
			AllowOrigins: env.GetEnv("CORS_ALLOW_ORIGINS", "*"),
			AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-API-Key",
		}),
		newLimiter(h.storage, "api", 120, time.Minute, "Too many requests, please slow down"),
	)
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})

	apiServer := apiv1.NewAPIServer(h.deps.Content, h.deps.Newsletter, h.deps.Contact)
	api.Post("/contact", apiServer.PostContact)

	// API v1 routes
	v1 := api.Group("/v1")
	apiv1.RegisterHandlers(v1, apiServer)
	apiv1.RegisterAdminHandlers(v1.Group("/admin", middleware.APIKeyAuthMiddleware(h.deps.Credentials)), apiServer)

	api.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(apiv1.Error{Error: "not_found", Message: "Unknown endpoint"})
	})
}

func NewApiRouter(deps controllers.Dependencies, storage fiber.Storage) *ApiRouter {
	return &ApiRouter{deps: deps, storage: storage}
}
