package router

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"

	"github.com/ManuelReschke/Folio/app/controllers"
	"github.com/ManuelReschke/Folio/internal/pkg/env"
	"github.com/ManuelReschke/Folio/internal/pkg/usercontext"
)

func (h HttpRouter) registerCSRFProtectedRoutes(app *fiber.App) {
	csrfConf := csrf.Config{
		KeyLookup:      "form:_csrf",
		ContextKey:     usercontext.KeyCSRFToken,
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieHTTPOnly: true,
		Expiration:     1 * time.Hour,
		CookieSecure:   !env.IsDev(),
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/api/")
		},
	}

	group := app.Group("", csrf.New(csrfConf))

	// Every page carries the newsletter form in its footer
	group.Get("/", controllers.HandleHome)
	group.Get("/about", controllers.HandleAbout)
	group.Get("/projects", controllers.HandleProjects)
	group.Get("/blog", controllers.HandleBlogIndex)
	group.Get("/blog/:slug", controllers.HandleBlogShow)
	group.Get("/resources", controllers.HandleResourcesIndex)
	group.Get("/resources/:id/visit", controllers.HandleResourceVisit)
	group.Get("/resources/:id/download", controllers.HandleResourceDownload)
	group.Get("/contact", controllers.HandleContact)
	group.Post("/contact", newLimiter(h.storage, "contact", 5, 10*time.Minute, "Too many messages, please try again later"), controllers.HandleContactSubmit)
	group.Post("/newsletter", newLimiter(h.storage, "newsletter", 10, 10*time.Minute, "Too many signups, please try again later"), controllers.HandleNewsletterSubscribe)

	h.registerAdminRoutes(group)
}
