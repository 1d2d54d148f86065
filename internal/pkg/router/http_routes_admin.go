package router

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/Folio/app/controllers"
	"github.com/ManuelReschke/Folio/internal/pkg/middleware"
)

func (h HttpRouter) registerAdminRoutes(group fiber.Router) {
	adminGroup := group.Group("/admin")

	// Login gate
	adminGroup.Get("/login", middleware.RedirectIfAdmin, controllers.HandleAdminLogin)
	adminGroup.Post("/login", newLimiter(h.storage, "login", 10, 15*time.Minute, "Too many login attempts, please try again later"), controllers.HandleAdminLogin)
	adminGroup.Post("/logout", middleware.RequireAdmin, controllers.HandleAdminLogout)

	adminGroup.Get("/", middleware.RequireAdmin, controllers.HandleAdminDashboard)

	// Posts
	adminGroup.Get("/posts", middleware.RequireAdmin, controllers.HandleAdminPosts)
	adminGroup.Get("/posts/create", middleware.RequireAdmin, controllers.HandleAdminPostCreate)
	adminGroup.Post("/posts/store", middleware.RequireAdmin, controllers.HandleAdminPostStore)
	adminGroup.Get("/posts/edit/:id", middleware.RequireAdmin, controllers.HandleAdminPostEdit)
	adminGroup.Post("/posts/update/:id", middleware.RequireAdmin, controllers.HandleAdminPostUpdate)
	adminGroup.Post("/posts/delete/:id", middleware.RequireAdmin, controllers.HandleAdminPostDelete)

	// Resources
	adminGroup.Get("/resources", middleware.RequireAdmin, controllers.HandleAdminResources)
	adminGroup.Get("/resources/create", middleware.RequireAdmin, controllers.HandleAdminResourceCreate)
	adminGroup.Post("/resources/store", middleware.RequireAdmin, controllers.HandleAdminResourceStore)
	adminGroup.Get("/resources/edit/:id", middleware.RequireAdmin, controllers.HandleAdminResourceEdit)
	adminGroup.Post("/resources/update/:id", middleware.RequireAdmin, controllers.HandleAdminResourceUpdate)
	adminGroup.Post("/resources/delete/:id", middleware.RequireAdmin, controllers.HandleAdminResourceDelete)

	// Subscribers
	adminGroup.Get("/subscribers", middleware.RequireAdmin, controllers.HandleAdminSubscribers)
	adminGroup.Post("/subscribers/deactivate/:id", middleware.RequireAdmin, controllers.HandleAdminSubscriberDeactivate)

	// Image uploads (JSON)
	adminGroup.Post("/uploads", middleware.RequireAdminJSON, controllers.HandleAdminUpload)
	adminGroup.Post("/uploads/delete", middleware.RequireAdminJSON, controllers.HandleAdminUploadDelete)
}
