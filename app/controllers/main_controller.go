package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/ManuelReschke/Folio/app/repository"
	"github.com/ManuelReschke/Folio/internal/pkg/content"
	"github.com/ManuelReschke/Folio/internal/pkg/statistics"
	"github.com/ManuelReschke/Folio/internal/pkg/viewmodel"
)

const (
	homeFeaturedPosts = 3
	homeLatestPosts   = 3
)

// MainController renders the static pages and the home page
type MainController struct {
	repos   *repository.Repositories
	content *content.Service
}

// NewMainController creates a new main controller
func NewMainController(repos *repository.Repositories, svc *content.Service) *MainController {
	return &MainController{repos: repos, content: svc}
}

// HandleHome renders the landing page with cached totals and recent posts
func (mc *MainController) HandleHome(c *fiber.Ctx) error {
	featured, err := mc.content.FeaturedPosts(homeFeaturedPosts)
	if err != nil {
		log.Warnf("[Home] Failed to load featured posts: %v", err)
	}
	latest, err := mc.content.ListVisiblePosts("", 1, homeLatestPosts)
	if err != nil {
		log.Warnf("[Home] Failed to load latest posts: %v", err)
	}

	return render(c, "home", newLayout(c, siteName, &viewmodel.OpenGraph{
		Description: "Research, teaching and writing",
	}), fiber.Map{
		"Stats":    statistics.GetHomeStats(mc.repos),
		"Featured": featured,
		"Latest":   latest.Items,
	})
}

// HandleAbout renders the about page
func (mc *MainController) HandleAbout(c *fiber.Ctx) error {
	return render(c, "about", newLayout(c, "About", nil), nil)
}

// HandleProjects renders the projects page
func (mc *MainController) HandleProjects(c *fiber.Ctx) error {
	return render(c, "projects", newLayout(c, "Projects", nil), nil)
}
